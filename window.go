package winkey

import (
	"fmt"
	"unicode/utf16"

	"github.com/rpdg/winkey/keyboard"
	"github.com/rpdg/winkey/mouse"
	"github.com/rpdg/winkey/window"
)

// Window is a target window handle bound to the engine that drives it.
type Window struct {
	HWND   uintptr
	engine *Engine
}

// Window binds an existing handle. The engine never creates or destroys it.
func (e *Engine) Window(hwnd uintptr) *Window {
	return &Window{HWND: hwnd, engine: e}
}

// -----------------------------------------------------------------------------
// Window Discovery
// -----------------------------------------------------------------------------

func (e *Engine) FindByTitle(title string) (*Window, error) {
	hwnd, err := window.FindByTitle(title)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWindowNotFound, err)
	}
	return e.Window(hwnd), nil
}

func (e *Engine) FindByClass(class string) (*Window, error) {
	hwnd, err := window.FindByClass(class)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWindowNotFound, err)
	}
	return e.Window(hwnd), nil
}

// FindByProcessName returns the top-level windows of the first process
// whose executable matches name, e.g. "notepad.exe".
func (e *Engine) FindByProcessName(name string) ([]*Window, error) {
	pid, err := window.FindPIDByName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWindowNotFound, err)
	}
	hwnds, err := window.FindByPID(pid)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWindowNotFound, err)
	}
	windows := make([]*Window, len(hwnds))
	for i, h := range hwnds {
		windows[i] = e.Window(h)
	}
	return windows, nil
}

// -----------------------------------------------------------------------------
// Window State
// -----------------------------------------------------------------------------

func (w *Window) IsValid() bool {
	return w.engine.platform.IsWindow(w.HWND)
}

func (w *Window) checkReady(s Strategy) error {
	// Foreground input may target whatever window has focus (HWND 0).
	if s == Foreground && w.HWND == 0 {
		return nil
	}
	if !w.IsValid() {
		return ErrWindowGone
	}
	return nil
}

// -----------------------------------------------------------------------------
// Input API (Keyboard)
// -----------------------------------------------------------------------------

// Press runs the full sequence for k: modifiers down, key down, key up,
// modifiers up.
func (w *Window) Press(k Key, s Strategy) error {
	return w.sequence("press", k, s, phasePress)
}

// KeyDown sends only the key-down event. Keys with modifiers are refused.
func (w *Window) KeyDown(k Key, s Strategy) error {
	if k.Modifiers != keyboard.ModNone {
		return fmt.Errorf("down %s: %w", k, ErrModifiersNotAllowed)
	}
	return w.sequence("down", k, s, phaseDown)
}

// KeyUp sends only the key-up event. Keys with modifiers are refused.
func (w *Window) KeyUp(k Key, s Strategy) error {
	if k.Modifiers != keyboard.ModNone {
		return fmt.Errorf("up %s: %w", k, ErrModifiersNotAllowed)
	}
	return w.sequence("up", k, s, phaseUp)
}

func (w *Window) sequence(op string, k Key, s Strategy, p phase) error {
	if err := w.checkReady(s); err != nil {
		return fmt.Errorf("%s %s: %w", op, k, err)
	}
	seq := steps(k, p)
	inj := w.engine.injector(w.HWND, s)
	return w.engine.attempt(op, []any{"key", k.String(), "strategy", s.String()}, func() error {
		return w.engine.run(inj, seq)
	})
}

// Type presses every rune of text, mapped through the engine's layout.
// It stops at the first failure.
func (w *Window) Type(text string, s Strategy) error {
	for i, r := range text {
		k, err := w.engine.KeyFromRune(r)
		if err != nil {
			return fmt.Errorf("type at offset %d: %w", i, err)
		}
		if err := w.Press(k, s); err != nil {
			return fmt.Errorf("type %q at offset %d: %w", r, i, err)
		}
	}
	return nil
}

// SendChar delivers r as WM_CHAR messages, bypassing the layout.
func (w *Window) SendChar(r rune) error {
	if err := w.checkReady(Background); err != nil {
		return fmt.Errorf("char %q: %w", r, err)
	}
	e := w.engine
	lparam := uintptr(1)
	if packed, ok := e.layout.VkKeyScan(r); ok {
		vk, _ := keyboard.Decompose(packed)
		lparam = keyboard.LParam(e.layout, vk, false)
	}
	units := utf16.Encode([]rune{r})
	return e.attempt("char", []any{"char", string(r)}, func() error {
		if err := e.waitForModifiers(); err != nil {
			return err
		}
		for _, u := range units {
			if !e.platform.SendMessage(w.HWND, keyboard.WM_CHAR, uintptr(u), lparam) {
				return fmt.Errorf("SendMessage WM_CHAR: %w", ErrInjectionRejected)
			}
		}
		e.sleep(e.timing.KeyDelay)
		return nil
	})
}

// -----------------------------------------------------------------------------
// Input API (Mouse, background only)
// -----------------------------------------------------------------------------

// Click posts a button down then, after Timing.MouseDelay, a button up at
// client coordinates x, y. button must carry VKLButton, VKRButton or VKMButton.
func (w *Window) Click(button Key, x, y int32) error {
	b, ok := mouse.ButtonFor(button.Code)
	if !ok {
		return fmt.Errorf("click %s: %w", button, ErrNotMouseButton)
	}
	if err := w.checkReady(Background); err != nil {
		return fmt.Errorf("click %s: %w", button, err)
	}
	e := w.engine
	lparam := mouse.MakeLParam(x, y)
	return e.attempt("click", []any{"button", button.Code.String(), "x", x, "y", y}, func() error {
		if !e.platform.PostMessage(w.HWND, b.Down, b.State, lparam) {
			return fmt.Errorf("PostMessage button down: %w", ErrInjectionRejected)
		}
		e.sleep(e.timing.MouseDelay)
		if !e.platform.PostMessage(w.HWND, b.Up, 0, lparam) {
			return fmt.Errorf("PostMessage button up: %w", ErrInjectionRejected)
		}
		return nil
	})
}

// MoveMouse posts a WM_MOUSEMOVE at client coordinates x, y.
func (w *Window) MoveMouse(x, y int32) error {
	if err := w.checkReady(Background); err != nil {
		return fmt.Errorf("move: %w", err)
	}
	e := w.engine
	lparam := mouse.MakeLParam(x, y)
	return e.attempt("move", []any{"x", x, "y", y}, func() error {
		if !e.platform.PostMessage(w.HWND, mouse.WM_MOUSEMOVE, 0, lparam) {
			return fmt.Errorf("PostMessage WM_MOUSEMOVE: %w", ErrInjectionRejected)
		}
		return nil
	})
}
