package mouse

import (
	"github.com/rpdg/winkey/keyboard"
)

const (
	WM_MOUSEMOVE   = 0x0200
	WM_LBUTTONDOWN = 0x0201
	WM_LBUTTONUP   = 0x0202
	WM_RBUTTONDOWN = 0x0204
	WM_RBUTTONUP   = 0x0205
	WM_MBUTTONDOWN = 0x0207
	WM_MBUTTONUP   = 0x0208

	MK_LBUTTON = 0x0001
	MK_RBUTTON = 0x0002
	MK_MBUTTON = 0x0010
)

// Button describes the messages a mouse button click is made of.
type Button struct {
	Down  uint32
	Up    uint32
	State uintptr // MK_* flag carried in wParam while the button is down
}

var buttons = map[keyboard.VirtualKey]Button{
	keyboard.VKLButton: {Down: WM_LBUTTONDOWN, Up: WM_LBUTTONUP, State: MK_LBUTTON},
	keyboard.VKRButton: {Down: WM_RBUTTONDOWN, Up: WM_RBUTTONUP, State: MK_RBUTTON},
	keyboard.VKMButton: {Down: WM_MBUTTONDOWN, Up: WM_MBUTTONUP, State: MK_MBUTTON},
}

// ButtonFor returns the click messages for a mouse-button virtual key.
func ButtonFor(vk keyboard.VirtualKey) (Button, bool) {
	b, ok := buttons[vk]
	return b, ok
}

// MakeLParam packs client coordinates as (y << 16) | (x & 0xFFFF).
func MakeLParam(x, y int32) uintptr {
	ux := uint32(uint16(x))
	uy := uint32(uint16(y))
	return uintptr(ux | (uy << 16))
}
