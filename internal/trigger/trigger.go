// Package trigger gates an action behind a global hotkey, so the user can
// focus or arrange the target window before input starts.
package trigger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rpdg/winkey/keyboard"
)

var ErrUnsupported = errors.New("global hotkeys are not supported on this platform")

// Combo is a modifier set plus one key, e.g. Ctrl+Shift+F9.
type Combo struct {
	Mods keyboard.Modifiers
	Key  keyboard.VirtualKey
}

// Parse reads "Ctrl+Shift+F9". The last part is the key; the rest are
// modifiers. A bare key is allowed.
func Parse(s string) (Combo, error) {
	parts := strings.Split(strings.TrimSpace(s), "+")
	if len(parts) == 0 || strings.TrimSpace(parts[len(parts)-1]) == "" {
		return Combo{}, fmt.Errorf("empty hotkey %q", s)
	}
	key, err := keyboard.ParseVirtualKey(parts[len(parts)-1])
	if err != nil {
		return Combo{}, err
	}
	if key.IsMouseButton() {
		return Combo{}, fmt.Errorf("hotkey %q: mouse buttons cannot be hotkeys", s)
	}
	mods, err := keyboard.ParseModifiers(strings.Join(parts[:len(parts)-1], "+"))
	if err != nil {
		return Combo{}, fmt.Errorf("hotkey %q: %w", s, err)
	}
	return Combo{Mods: mods, Key: key}, nil
}

func (c Combo) String() string {
	if c.Mods == keyboard.ModNone {
		return c.Key.String()
	}
	return c.Mods.String() + "+" + c.Key.String()
}
