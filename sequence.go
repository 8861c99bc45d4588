package winkey

import (
	"fmt"

	"github.com/rpdg/winkey/keyboard"
)

type step struct {
	code keyboard.VirtualKey
	up   bool
}

func (s step) String() string {
	if s.up {
		return s.code.String() + " up"
	}
	return s.code.String() + " down"
}

type phase int

const (
	phasePress phase = iota
	phaseDown
	phaseUp
)

// steps lays out the events for k. Modifiers go down in PressOrder, the
// distinct shift code right after Shift, then the key itself, then every
// pressed modifier is released in reverse.
func steps(k Key, p phase) []step {
	mods := k.Modifiers.Active()
	shiftCode := k.HasDistinctShiftCode()

	out := make([]step, 0, 2*len(mods)+4)
	for _, m := range mods {
		out = append(out, step{code: m.Key})
		if shiftCode && m.Flag == keyboard.ModShift {
			out = append(out, step{code: k.ShiftCode})
		}
	}
	if p != phaseUp {
		out = append(out, step{code: k.Code})
	}
	if p != phaseDown {
		out = append(out, step{code: k.Code, up: true})
	}
	for i := len(mods) - 1; i >= 0; i-- {
		if shiftCode && mods[i].Flag == keyboard.ModShift {
			out = append(out, step{code: k.ShiftCode, up: true})
		}
		out = append(out, step{code: mods[i].Key, up: true})
	}
	return out
}

// injector is the strategy-specific half of a sequence.
type injector interface {
	// prepare runs once per attempt before any event.
	prepare() error
	send(s step) error
}

type foregroundInjector struct {
	e    *Engine
	hwnd uintptr
}

func (f foregroundInjector) prepare() error {
	if f.hwnd == 0 {
		return nil
	}
	if f.e.platform.ForegroundWindow() == f.hwnd {
		return nil
	}
	if !f.e.platform.SetForegroundWindow(f.hwnd) {
		return ErrFocusDenied
	}
	return nil
}

func (f foregroundInjector) send(s step) error {
	in := keyboard.NewInput(f.e.layout, s.code, s.up)
	if n := f.e.platform.SendInput([]keyboard.Input{in}); n != 1 {
		return fmt.Errorf("SendInput %s: %w", s, ErrInjectionRejected)
	}
	return nil
}

type backgroundInjector struct {
	e    *Engine
	hwnd uintptr
}

func (b backgroundInjector) prepare() error {
	return b.e.waitForModifiers()
}

func (b backgroundInjector) send(s step) error {
	msg := keyboard.KeyMessage(s.up)
	lparam := keyboard.LParam(b.e.layout, s.code, s.up)
	if !b.e.platform.SendMessage(b.hwnd, msg, uintptr(s.code), lparam) {
		return fmt.Errorf("SendMessage %s: %w", s, ErrInjectionRejected)
	}
	return nil
}

func (e *Engine) injector(hwnd uintptr, s Strategy) injector {
	if s == Foreground {
		return foregroundInjector{e: e, hwnd: hwnd}
	}
	return backgroundInjector{e: e, hwnd: hwnd}
}

// run plays one attempt. When an event is rejected, keys pressed during this
// attempt are released in reverse order, best effort, so a failed attempt
// does not leave a modifier held.
func (e *Engine) run(inj injector, seq []step) error {
	if err := inj.prepare(); err != nil {
		return err
	}
	var held []keyboard.VirtualKey
	for _, s := range seq {
		if err := inj.send(s); err != nil {
			e.release(inj, held)
			return err
		}
		if s.up {
			held = without(held, s.code)
		} else {
			held = append(held, s.code)
		}
		e.sleep(e.timing.KeyDelay)
	}
	return nil
}

func (e *Engine) release(inj injector, held []keyboard.VirtualKey) {
	for i := len(held) - 1; i >= 0; i-- {
		if err := inj.send(step{code: held[i], up: true}); err != nil {
			e.log.Warn("[WARN-INPUT] release after failure", "key", held[i], "error", err)
		}
		e.sleep(e.timing.KeyDelay)
	}
}

func without(held []keyboard.VirtualKey, vk keyboard.VirtualKey) []keyboard.VirtualKey {
	for i := len(held) - 1; i >= 0; i-- {
		if held[i] == vk {
			return append(held[:i], held[i+1:]...)
		}
	}
	return held
}
