package winkey

import (
	"fmt"

	"github.com/rpdg/winkey/keyboard"
)

// Key is one emulated key press: the key to strike, the modifiers held
// around it and an optional secondary key pressed together with Shift.
type Key struct {
	Code      keyboard.VirtualKey
	ShiftCode keyboard.VirtualKey
	Modifiers keyboard.Modifiers
}

// NewKey builds a key from raw values. The zero Key is (None, None).
func NewKey(code keyboard.VirtualKey, mods keyboard.Modifiers) Key {
	return Key{Code: code, Modifiers: mods}
}

// KeyFromRune asks layout which key and shift state produce r.
// ShiftCode is left unset.
func KeyFromRune(r rune, layout keyboard.Layout) (Key, error) {
	packed, ok := layout.VkKeyScan(r)
	if !ok {
		return Key{}, fmt.Errorf("%w: %q", ErrUnsupportedKey, r)
	}
	code, mods := keyboard.Decompose(packed)
	return Key{Code: code, Modifiers: mods}, nil
}

// KeysFromString maps every rune of s through layout.
func KeysFromString(s string, layout keyboard.Layout) ([]Key, error) {
	keys := make([]Key, 0, len(s))
	for i, r := range s {
		k, err := KeyFromRune(r, layout)
		if err != nil {
			return nil, fmt.Errorf("offset %d: %w", i, err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// HasDistinctShiftCode reports whether ShiftCode is pressed along with Shift.
func (k Key) HasDistinctShiftCode() bool {
	return k.Modifiers.Has(keyboard.ModShift) &&
		k.ShiftCode != keyboard.VKNone &&
		k.ShiftCode != k.Code
}

func (k Key) String() string {
	return fmt.Sprintf("%s %s", k.Modifiers, k.Code)
}

// Press strikes k in w: modifiers down, key down and up, modifiers up.
func (k Key) Press(w *Window, s Strategy) error {
	return w.Press(k, s)
}

// Down sends only the key-down half. It fails without touching the OS when
// k carries modifiers.
func (k Key) Down(w *Window, s Strategy) error {
	return w.KeyDown(k, s)
}

// Up sends only the key-up half. It fails without touching the OS when k
// carries modifiers.
func (k Key) Up(w *Window, s Strategy) error {
	return w.KeyUp(k, s)
}
