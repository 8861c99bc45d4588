package keyboard

import (
	"fmt"
	"strings"
)

// Modifiers is a set of held modifier keys. The bit layout matches the high
// byte returned by VkKeyScan.
type Modifiers uint8

const (
	ModNone  Modifiers = 0
	ModShift Modifiers = 0x1
	ModCtrl  Modifiers = 0x2
	ModAlt   Modifiers = 0x4

	modMask = ModShift | ModCtrl | ModAlt
)

// Modifier pairs a modifier bit with the virtual key that produces it.
type Modifier struct {
	Flag Modifiers
	Key  VirtualKey
	Name string
}

// PressOrder is the order in which modifiers go down. Releases walk it
// backwards.
var PressOrder = []Modifier{
	{Flag: ModAlt, Key: VKMenu, Name: "Alt"},
	{Flag: ModCtrl, Key: VKControl, Name: "Ctrl"},
	{Flag: ModShift, Key: VKShift, Name: "Shift"},
}

func (m Modifiers) Has(flag Modifiers) bool {
	return flag != 0 && m&flag == flag
}

func (m Modifiers) With(flag Modifiers) Modifiers {
	return m | flag
}

// Without clears flag. Clearing an already clear bit is a no-op.
func (m Modifiers) Without(flag Modifiers) Modifiers {
	return m &^ flag
}

// Set enables or disables flag, the way an editor checkbox would.
func (m Modifiers) Set(flag Modifiers, on bool) Modifiers {
	if on {
		return m.With(flag)
	}
	return m.Without(flag)
}

// Active returns the held modifiers in press order.
func (m Modifiers) Active() []Modifier {
	var out []Modifier
	for _, mod := range PressOrder {
		if m.Has(mod.Flag) {
			out = append(out, mod)
		}
	}
	return out
}

func (m Modifiers) String() string {
	active := m.Active()
	if len(active) == 0 {
		return "None"
	}
	names := make([]string, len(active))
	for i, mod := range active {
		names[i] = mod.Name
	}
	return strings.Join(names, "+")
}

// ParseModifiers parses "ctrl+shift", "Alt", "none" or "".
func ParseModifiers(s string) (Modifiers, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return ModNone, nil
	}
	var m Modifiers
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '+' || r == ',' || r == '|' }) {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "shift":
			m = m.With(ModShift)
		case "ctrl", "control":
			m = m.With(ModCtrl)
		case "alt", "menu":
			m = m.With(ModAlt)
		default:
			return ModNone, fmt.Errorf("unknown modifier %q", part)
		}
	}
	return m, nil
}
