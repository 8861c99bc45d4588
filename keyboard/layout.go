package keyboard

// Layout maps characters and virtual keys for the active keyboard layout.
type Layout interface {
	// VkKeyScan returns the packed (virtual key, shift state) pair for r,
	// low byte virtual key, high byte shift state. ok is false when r has
	// no key on this layout.
	VkKeyScan(r rune) (packed uint16, ok bool)
	// ScanCode returns the MAPVK_VK_TO_VSC_EX scan code for vk, 0 if none.
	ScanCode(vk VirtualKey) uint16
}

// Decompose splits a VkKeyScan result. Shift-state bits beyond Shift, Ctrl
// and Alt (Hankaku and the reserved bits) are dropped.
func Decompose(packed uint16) (VirtualKey, Modifiers) {
	return VirtualKey(packed & 0xFF), Modifiers(packed>>8) & modMask
}

// USLayout is a fixed US-QWERTY table. It stands in for the system layout
// off Windows and in tests.
var USLayout Layout = usLayout{}

type usLayout struct{}

func (usLayout) VkKeyScan(r rune) (uint16, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return uint16(VKA) + uint16(r-'a'), true
	case r >= 'A' && r <= 'Z':
		return pack(VKA+VirtualKey(r-'A'), ModShift), true
	case r >= '0' && r <= '9':
		return uint16(VK0) + uint16(r-'0'), true
	}
	k, ok := usPunct[r]
	if !ok {
		return 0, false
	}
	return pack(k.vk, k.mods), true
}

func (usLayout) ScanCode(vk VirtualKey) uint16 {
	return usScanCodes[vk]
}

func pack(vk VirtualKey, mods Modifiers) uint16 {
	return uint16(vk)&0xFF | uint16(mods)<<8
}

type usKey struct {
	vk   VirtualKey
	mods Modifiers
}

var usPunct = map[rune]usKey{
	' ':  {VKSpace, ModNone},
	'\t': {VKTab, ModNone},
	'\n': {VKReturn, ModNone},
	'\r': {VKReturn, ModNone},
	'\b': {VKBack, ModNone},
	0x1B: {VKEscape, ModNone},
	'!':  {VK1, ModShift},
	'@':  {VK2, ModShift},
	'#':  {VK3, ModShift},
	'$':  {VK4, ModShift},
	'%':  {VK5, ModShift},
	'^':  {VK6, ModShift},
	'&':  {VK7, ModShift},
	'*':  {VK8, ModShift},
	'(':  {VK9, ModShift},
	')':  {VK0, ModShift},
	';':  {VKOEM1, ModNone},
	':':  {VKOEM1, ModShift},
	'=':  {VKOEMPlus, ModNone},
	'+':  {VKOEMPlus, ModShift},
	',':  {VKOEMComma, ModNone},
	'<':  {VKOEMComma, ModShift},
	'-':  {VKOEMMinus, ModNone},
	'_':  {VKOEMMinus, ModShift},
	'.':  {VKOEMPeriod, ModNone},
	'>':  {VKOEMPeriod, ModShift},
	'/':  {VKOEM2, ModNone},
	'?':  {VKOEM2, ModShift},
	'`':  {VKOEM3, ModNone},
	'~':  {VKOEM3, ModShift},
	'[':  {VKOEM4, ModNone},
	'{':  {VKOEM4, ModShift},
	'\\': {VKOEM5, ModNone},
	'|':  {VKOEM5, ModShift},
	']':  {VKOEM6, ModNone},
	'}':  {VKOEM6, ModShift},
	'\'': {VKOEM7, ModNone},
	'"':  {VKOEM7, ModShift},
}

// Set 1 make codes; 0xE0xx marks an extended key.
var usScanCodes = map[VirtualKey]uint16{
	VKEscape: 0x01,
	VK1:      0x02, VK2: 0x03, VK3: 0x04, VK4: 0x05, VK5: 0x06,
	VK6: 0x07, VK7: 0x08, VK8: 0x09, VK9: 0x0A, VK0: 0x0B,
	VKOEMMinus: 0x0C,
	VKOEMPlus:  0x0D,
	VKBack:     0x0E,
	VKTab:      0x0F,
	VKQ:        0x10, VKW: 0x11, VKE: 0x12, VKR: 0x13, VKT: 0x14,
	VKY: 0x15, VKU: 0x16, VKI: 0x17, VKO: 0x18, VKP: 0x19,
	VKOEM4:   0x1A,
	VKOEM6:   0x1B,
	VKReturn: 0x1C,
	VKControl: 0x1D, VKLControl: 0x1D,
	VKA: 0x1E, VKS: 0x1F, VKD: 0x20, VKF: 0x21, VKG: 0x22,
	VKH: 0x23, VKJ: 0x24, VKK: 0x25, VKL: 0x26,
	VKOEM1: 0x27,
	VKOEM7: 0x28,
	VKOEM3: 0x29,
	VKShift: 0x2A, VKLShift: 0x2A,
	VKOEM5: 0x2B,
	VKZ:    0x2C, VKX: 0x2D, VKC: 0x2E, VKV: 0x2F, VKB: 0x30,
	VKN: 0x31, VKM: 0x32,
	VKOEMComma:  0x33,
	VKOEMPeriod: 0x34,
	VKOEM2:      0x35,
	VKRShift:    0x36,
	VKMultiply:  0x37,
	VKMenu:      0x38, VKLMenu: 0x38,
	VKSpace:   0x39,
	VKCapital: 0x3A,
	VKF1:      0x3B, VKF2: 0x3C, VKF3: 0x3D, VKF4: 0x3E, VKF5: 0x3F,
	VKF6: 0x40, VKF7: 0x41, VKF8: 0x42, VKF9: 0x43, VKF10: 0x44,
	VKNumLock:  0x45,
	VKScroll:   0x46,
	VKNumpad7:  0x47, VKNumpad8: 0x48, VKNumpad9: 0x49,
	VKSubtract: 0x4A,
	VKNumpad4:  0x4B, VKNumpad5: 0x4C, VKNumpad6: 0x4D,
	VKAdd:     0x4E,
	VKNumpad1: 0x4F, VKNumpad2: 0x50, VKNumpad3: 0x51,
	VKNumpad0: 0x52,
	VKDecimal: 0x53,
	VKF11:     0x57,
	VKF12:     0x58,

	VKRControl: 0xE01D,
	VKDivide:   0xE035,
	VKRMenu:    0xE038,
	VKHome:     0xE047,
	VKUp:       0xE048,
	VKPrior:    0xE049,
	VKLeft:     0xE04B,
	VKRight:    0xE04D,
	VKEnd:      0xE04F,
	VKDown:     0xE050,
	VKNext:     0xE051,
	VKInsert:   0xE052,
	VKDelete:   0xE053,
	VKLWin:     0xE05B,
	VKRWin:     0xE05C,
}
