//go:build windows

package trigger

import (
	"context"
	"fmt"
	"log/slog"

	"golang.design/x/hotkey"

	"github.com/rpdg/winkey/keyboard"
)

var modifierMap = map[keyboard.Modifiers]hotkey.Modifier{
	keyboard.ModAlt:   hotkey.ModAlt,
	keyboard.ModCtrl:  hotkey.ModCtrl,
	keyboard.ModShift: hotkey.ModShift,
}

// Wait registers c, blocks until it is pressed and released, then
// unregisters it. Waiting for the release keeps the combo's own modifiers
// out of the input that follows.
func Wait(ctx context.Context, c Combo) error {
	mods := make([]hotkey.Modifier, 0, 3)
	for _, m := range c.Mods.Active() {
		mods = append(mods, modifierMap[m.Flag])
	}
	// hotkey.Key is the virtual-key code on windows.
	hk := hotkey.New(mods, hotkey.Key(c.Key))
	if err := hk.Register(); err != nil {
		return fmt.Errorf("register %s: %w", c, err)
	}
	defer func() {
		if err := hk.Unregister(); err != nil {
			slog.Warn("[WARN-TRIGGER] unregister failed", "hotkey", c.String(), "error", err)
		}
	}()

	slog.Info("waiting for hotkey", "hotkey", c.String())
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-hk.Keydown():
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-hk.Keyup():
	}
	slog.Debug("hotkey fired", "hotkey", c.String())
	return nil
}
