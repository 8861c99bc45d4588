//go:build windows

package window

import (
	"fmt"
	"time"
	"unsafe"

	"github.com/lxn/win"

	"github.com/rpdg/winkey/keyboard"
)

// User32 implements the engine's platform on top of user32.dll.
type User32 struct {
	// SendTimeout bounds SendMessage; a window that does not answer in time
	// counts as a rejection.
	SendTimeout time.Duration
}

func New() (*User32, error) {
	for _, p := range required {
		if err := p.Find(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedPlatform, err)
		}
	}
	return &User32{SendTimeout: DefaultSendTimeout}, nil
}

// input mirrors INPUT: the union is sized by its largest member, MOUSEINPUT.
type input struct {
	Type uint32
	_    uint32
	Mi   win.MOUSEINPUT
}

func (u *User32) SendInput(inputs []keyboard.Input) uint32 {
	if len(inputs) == 0 {
		return 0
	}
	buf := make([]input, len(inputs))
	for i, in := range inputs {
		buf[i].Type = win.INPUT_KEYBOARD
		*(*win.KEYBDINPUT)(unsafe.Pointer(&buf[i].Mi)) = win.KEYBDINPUT{
			WVk:     uint16(in.VK),
			WScan:   in.Scan,
			DwFlags: in.Flags,
		}
	}
	return win.SendInput(uint32(len(buf)), unsafe.Pointer(&buf[0]), int32(unsafe.Sizeof(buf[0])))
}

func (u *User32) ForegroundWindow() uintptr {
	return uintptr(win.GetForegroundWindow())
}

func (u *User32) SetForegroundWindow(hwnd uintptr) bool {
	return win.SetForegroundWindow(win.HWND(hwnd))
}

func (u *User32) IsWindow(hwnd uintptr) bool {
	r, _, _ := ProcIsWindow.Call(hwnd)
	return r != 0
}

func (u *User32) SendMessage(hwnd uintptr, msg uint32, wParam, lParam uintptr) bool {
	var result uintptr
	r, _, _ := ProcSendMessageTimeoutW.Call(
		hwnd,
		uintptr(msg),
		wParam,
		lParam,
		SMTO_NORMAL|SMTO_ABORTIFHUNG,
		uintptr(u.SendTimeout/time.Millisecond),
		uintptr(unsafe.Pointer(&result)),
	)
	return r != 0
}

func (u *User32) PostMessage(hwnd uintptr, msg uint32, wParam, lParam uintptr) bool {
	return win.PostMessage(win.HWND(hwnd), msg, wParam, lParam) != 0
}

func (u *User32) KeyState(vk keyboard.VirtualKey) int16 {
	return win.GetKeyState(int32(vk))
}

func (u *User32) VkKeyScan(r rune) (uint16, bool) {
	if r > 0xFFFF {
		return 0, false
	}
	ret, _, _ := ProcVkKeyScanW.Call(uintptr(r))
	v := uint16(ret)
	if v == 0xFFFF {
		return 0, false
	}
	return v, true
}

func (u *User32) ScanCode(vk keyboard.VirtualKey) uint16 {
	ret, _, _ := ProcMapVirtualKeyW.Call(uintptr(vk), MAPVK_VK_TO_VSC_EX)
	return uint16(ret)
}
