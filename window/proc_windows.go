//go:build windows

package window

import (
	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	ProcFindWindowW         = user32.NewProc("FindWindowW")
	ProcIsWindow            = user32.NewProc("IsWindow")
	ProcVkKeyScanW          = user32.NewProc("VkKeyScanW")
	ProcMapVirtualKeyW      = user32.NewProc("MapVirtualKeyW")
	ProcSendMessageTimeoutW = user32.NewProc("SendMessageTimeoutW")
)

const (
	MAPVK_VK_TO_VSC_EX = 4

	SMTO_NORMAL      = 0x0000
	SMTO_ABORTIFHUNG = 0x0002
)

// required lists the procs New checks before handing out a User32.
var required = []*windows.LazyProc{
	ProcFindWindowW,
	ProcIsWindow,
	ProcVkKeyScanW,
	ProcMapVirtualKeyW,
	ProcSendMessageTimeoutW,
}
