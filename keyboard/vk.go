package keyboard

import (
	"fmt"
	"strings"
)

// VirtualKey is a Windows virtual-key code.
type VirtualKey uint16

const (
	VKNone     VirtualKey = 0x00
	VKLButton  VirtualKey = 0x01
	VKRButton  VirtualKey = 0x02
	VKCancel   VirtualKey = 0x03
	VKMButton  VirtualKey = 0x04
	VKBack     VirtualKey = 0x08
	VKTab      VirtualKey = 0x09
	VKClear    VirtualKey = 0x0C
	VKReturn   VirtualKey = 0x0D
	VKShift    VirtualKey = 0x10
	VKControl  VirtualKey = 0x11
	VKMenu     VirtualKey = 0x12 // Alt
	VKPause    VirtualKey = 0x13
	VKCapital  VirtualKey = 0x14
	VKEscape   VirtualKey = 0x1B
	VKSpace    VirtualKey = 0x20
	VKPrior    VirtualKey = 0x21
	VKNext     VirtualKey = 0x22
	VKEnd      VirtualKey = 0x23
	VKHome     VirtualKey = 0x24
	VKLeft     VirtualKey = 0x25
	VKUp       VirtualKey = 0x26
	VKRight    VirtualKey = 0x27
	VKDown     VirtualKey = 0x28
	VKSnapshot VirtualKey = 0x2C
	VKInsert   VirtualKey = 0x2D
	VKDelete   VirtualKey = 0x2E

	VK0 VirtualKey = 0x30
	VK1 VirtualKey = 0x31
	VK2 VirtualKey = 0x32
	VK3 VirtualKey = 0x33
	VK4 VirtualKey = 0x34
	VK5 VirtualKey = 0x35
	VK6 VirtualKey = 0x36
	VK7 VirtualKey = 0x37
	VK8 VirtualKey = 0x38
	VK9 VirtualKey = 0x39

	VKA VirtualKey = 0x41
	VKB VirtualKey = 0x42
	VKC VirtualKey = 0x43
	VKD VirtualKey = 0x44
	VKE VirtualKey = 0x45
	VKF VirtualKey = 0x46
	VKG VirtualKey = 0x47
	VKH VirtualKey = 0x48
	VKI VirtualKey = 0x49
	VKJ VirtualKey = 0x4A
	VKK VirtualKey = 0x4B
	VKL VirtualKey = 0x4C
	VKM VirtualKey = 0x4D
	VKN VirtualKey = 0x4E
	VKO VirtualKey = 0x4F
	VKP VirtualKey = 0x50
	VKQ VirtualKey = 0x51
	VKR VirtualKey = 0x52
	VKS VirtualKey = 0x53
	VKT VirtualKey = 0x54
	VKU VirtualKey = 0x55
	VKV VirtualKey = 0x56
	VKW VirtualKey = 0x57
	VKX VirtualKey = 0x58
	VKY VirtualKey = 0x59
	VKZ VirtualKey = 0x5A

	VKLWin VirtualKey = 0x5B
	VKRWin VirtualKey = 0x5C

	VKNumpad0  VirtualKey = 0x60
	VKNumpad1  VirtualKey = 0x61
	VKNumpad2  VirtualKey = 0x62
	VKNumpad3  VirtualKey = 0x63
	VKNumpad4  VirtualKey = 0x64
	VKNumpad5  VirtualKey = 0x65
	VKNumpad6  VirtualKey = 0x66
	VKNumpad7  VirtualKey = 0x67
	VKNumpad8  VirtualKey = 0x68
	VKNumpad9  VirtualKey = 0x69
	VKMultiply VirtualKey = 0x6A
	VKAdd      VirtualKey = 0x6B
	VKSubtract VirtualKey = 0x6D
	VKDecimal  VirtualKey = 0x6E
	VKDivide   VirtualKey = 0x6F

	VKF1  VirtualKey = 0x70
	VKF2  VirtualKey = 0x71
	VKF3  VirtualKey = 0x72
	VKF4  VirtualKey = 0x73
	VKF5  VirtualKey = 0x74
	VKF6  VirtualKey = 0x75
	VKF7  VirtualKey = 0x76
	VKF8  VirtualKey = 0x77
	VKF9  VirtualKey = 0x78
	VKF10 VirtualKey = 0x79
	VKF11 VirtualKey = 0x7A
	VKF12 VirtualKey = 0x7B

	VKNumLock  VirtualKey = 0x90
	VKScroll   VirtualKey = 0x91
	VKLShift   VirtualKey = 0xA0
	VKRShift   VirtualKey = 0xA1
	VKLControl VirtualKey = 0xA2
	VKRControl VirtualKey = 0xA3
	VKLMenu    VirtualKey = 0xA4
	VKRMenu    VirtualKey = 0xA5

	VKOEM1      VirtualKey = 0xBA // ;:
	VKOEMPlus   VirtualKey = 0xBB // =+
	VKOEMComma  VirtualKey = 0xBC // ,<
	VKOEMMinus  VirtualKey = 0xBD // -_
	VKOEMPeriod VirtualKey = 0xBE // .>
	VKOEM2      VirtualKey = 0xBF // /?
	VKOEM3      VirtualKey = 0xC0 // `~
	VKOEM4      VirtualKey = 0xDB // [{
	VKOEM5      VirtualKey = 0xDC // \|
	VKOEM6      VirtualKey = 0xDD // ]}
	VKOEM7      VirtualKey = 0xDE // '"
)

var vkNames = map[VirtualKey]string{
	VKNone:      "None",
	VKLButton:   "LButton",
	VKRButton:   "RButton",
	VKCancel:    "Cancel",
	VKMButton:   "MButton",
	VKBack:      "Back",
	VKTab:       "Tab",
	VKClear:     "Clear",
	VKReturn:    "Return",
	VKShift:     "Shift",
	VKControl:   "Control",
	VKMenu:      "Menu",
	VKPause:     "Pause",
	VKCapital:   "Capital",
	VKEscape:    "Escape",
	VKSpace:     "Space",
	VKPrior:     "PageUp",
	VKNext:      "PageDown",
	VKEnd:       "End",
	VKHome:      "Home",
	VKLeft:      "Left",
	VKUp:        "Up",
	VKRight:     "Right",
	VKDown:      "Down",
	VKSnapshot:  "Snapshot",
	VKInsert:    "Insert",
	VKDelete:    "Delete",
	VKLWin:      "LWin",
	VKRWin:      "RWin",
	VKMultiply:  "Multiply",
	VKAdd:       "Add",
	VKSubtract:  "Subtract",
	VKDecimal:   "Decimal",
	VKDivide:    "Divide",
	VKNumLock:   "NumLock",
	VKScroll:    "Scroll",
	VKLShift:    "LShift",
	VKRShift:    "RShift",
	VKLControl:  "LControl",
	VKRControl:  "RControl",
	VKLMenu:     "LMenu",
	VKRMenu:     "RMenu",
	VKOEM1:      "Semicolon",
	VKOEMPlus:   "Plus",
	VKOEMComma:  "Comma",
	VKOEMMinus:  "Minus",
	VKOEMPeriod: "Period",
	VKOEM2:      "Slash",
	VKOEM3:      "Backtick",
	VKOEM4:      "LBracket",
	VKOEM5:      "Backslash",
	VKOEM6:      "RBracket",
	VKOEM7:      "Quote",
}

// aliases accepted by ParseVirtualKey in addition to the canonical names.
var vkAliases = map[string]VirtualKey{
	"enter":     VKReturn,
	"esc":       VKEscape,
	"backspace": VKBack,
	"ctrl":      VKControl,
	"alt":       VKMenu,
	"del":       VKDelete,
	"ins":       VKInsert,
	"pgup":      VKPrior,
	"pgdn":      VKNext,
	"caps":      VKCapital,
}

var vkByName map[string]VirtualKey

func init() {
	vkByName = make(map[string]VirtualKey, len(vkNames)+len(vkAliases)+60)
	for vk, name := range vkNames {
		vkByName[strings.ToLower(name)] = vk
	}
	for alias, vk := range vkAliases {
		vkByName[alias] = vk
	}
	for vk := VK0; vk <= VK9; vk++ {
		vkByName[string(rune(vk))] = vk
	}
	for vk := VKA; vk <= VKZ; vk++ {
		vkByName[strings.ToLower(string(rune(vk)))] = vk
	}
	for vk := VKNumpad0; vk <= VKNumpad9; vk++ {
		vkByName[fmt.Sprintf("numpad%d", vk-VKNumpad0)] = vk
	}
	for vk := VKF1; vk <= VKF12; vk++ {
		vkByName[fmt.Sprintf("f%d", vk-VKF1+1)] = vk
	}
}

func (vk VirtualKey) String() string {
	switch {
	case vk >= VK0 && vk <= VK9, vk >= VKA && vk <= VKZ:
		return string(rune(vk))
	case vk >= VKNumpad0 && vk <= VKNumpad9:
		return fmt.Sprintf("Numpad%d", vk-VKNumpad0)
	case vk >= VKF1 && vk <= VKF12:
		return fmt.Sprintf("F%d", vk-VKF1+1)
	}
	if name, ok := vkNames[vk]; ok {
		return name
	}
	return fmt.Sprintf("VK(0x%02X)", uint16(vk))
}

// IsMouseButton reports whether vk names the left, right or middle button.
func (vk VirtualKey) IsMouseButton() bool {
	return vk == VKLButton || vk == VKRButton || vk == VKMButton
}

// ParseVirtualKey resolves a key name such as "F5", "a", "Return" or "esc".
func ParseVirtualKey(name string) (VirtualKey, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if vk, ok := vkByName[n]; ok {
		return vk, nil
	}
	return VKNone, fmt.Errorf("unknown virtual key %q", name)
}
