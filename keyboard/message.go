package keyboard

const (
	WM_KEYDOWN = 0x0100
	WM_KEYUP   = 0x0101
	WM_CHAR    = 0x0102

	KEYEVENTF_EXTENDEDKEY = 0x0001
	KEYEVENTF_KEYUP       = 0x0002
)

// Input is one keyboard record for the OS input stream.
type Input struct {
	VK    VirtualKey
	Scan  uint16
	Flags uint32
}

// KeyParams holds the fields packed into a WM_KEYDOWN/WM_KEYUP lParam.
type KeyParams struct {
	Repeat     uint16
	Scan       uint8
	Extended   bool
	Context    bool // Alt held
	Previous   bool // key was down before this message
	Transition bool // set for key-up
}

// Pack lays the fields out as documented for WM_KEYDOWN:
//
//	0-15  repeat count
//	16-23 scan code
//	24    extended key
//	25-28 reserved
//	29    context code
//	30    previous key state
//	31    transition state
func (p KeyParams) Pack() uint32 {
	v := uint32(p.Repeat) | uint32(p.Scan)<<16
	if p.Extended {
		v |= 1 << 24
	}
	if p.Context {
		v |= 1 << 29
	}
	if p.Previous {
		v |= 1 << 30
	}
	if p.Transition {
		v |= 1 << 31
	}
	return v
}

// SplitScanCode separates a MAPVK_VK_TO_VSC_EX result into the low scan
// byte and the extended flag (0xE0 or 0xE1 prefix).
func SplitScanCode(sc uint16) (scan uint8, extended bool) {
	prefix := sc >> 8
	return uint8(sc), prefix == 0xE0 || prefix == 0xE1
}

// LParam builds the lParam for a single key transition of vk.
func LParam(layout Layout, vk VirtualKey, up bool) uintptr {
	scan, ext := SplitScanCode(layout.ScanCode(vk))
	p := KeyParams{
		Repeat:     1,
		Scan:       scan,
		Extended:   ext,
		Previous:   up,
		Transition: up,
	}
	return uintptr(p.Pack())
}

// NewInput builds the SendInput record for one transition of vk.
func NewInput(layout Layout, vk VirtualKey, up bool) Input {
	scan, ext := SplitScanCode(layout.ScanCode(vk))
	in := Input{VK: vk, Scan: uint16(scan)}
	if ext {
		in.Flags |= KEYEVENTF_EXTENDEDKEY
	}
	if up {
		in.Flags |= KEYEVENTF_KEYUP
	}
	return in
}

// KeyMessage returns the message id for a transition.
func KeyMessage(up bool) uint32 {
	if up {
		return WM_KEYUP
	}
	return WM_KEYDOWN
}
