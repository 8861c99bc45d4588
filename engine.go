package winkey

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"

	"github.com/rpdg/winkey/keyboard"
	"github.com/rpdg/winkey/window"
)

// Platform is the set of OS primitives the engine drives.
type Platform interface {
	keyboard.Layout

	ForegroundWindow() uintptr
	SetForegroundWindow(hwnd uintptr) bool
	IsWindow(hwnd uintptr) bool
	// SendInput queues the records and returns how many were accepted.
	SendInput(inputs []keyboard.Input) uint32
	// SendMessage delivers synchronously and reports whether the window processed it.
	SendMessage(hwnd uintptr, msg uint32, wParam, lParam uintptr) bool
	PostMessage(hwnd uintptr, msg uint32, wParam, lParam uintptr) bool
	// KeyState returns GetKeyState for vk; the high bit is set while the key is down.
	KeyState(vk keyboard.VirtualKey) int16
}

// -----------------------------------------------------------------------------
// Strategy
// -----------------------------------------------------------------------------

type Strategy int

const (
	// Background delivers window messages to the target without changing focus.
	Background Strategy = iota
	// Foreground focuses the target and injects into the system input stream.
	Foreground
)

func (s Strategy) String() string {
	switch s {
	case Background:
		return "background"
	case Foreground:
		return "foreground"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "background", "bg", "message":
		return Background, nil
	case "foreground", "fg", "input":
		return Foreground, nil
	}
	return Background, fmt.Errorf("unknown strategy %q", s)
}

// -----------------------------------------------------------------------------
// Timing
// -----------------------------------------------------------------------------

// RetryCount is the default number of attempts per operation.
const RetryCount = 3

// Timing holds the delays and retry budget used by every operation.
type Timing struct {
	KeyDelay     time.Duration // after every key event
	MouseDelay   time.Duration // between button down and up
	PollInterval time.Duration // physical modifier polling
	ModifierWait time.Duration // 0 waits until the user lets go
	Attempts     uint
}

func DefaultTiming() Timing {
	return Timing{
		KeyDelay:     100 * time.Millisecond,
		MouseDelay:   100 * time.Millisecond,
		PollInterval: time.Millisecond,
		Attempts:     RetryCount,
	}
}

// -----------------------------------------------------------------------------
// Engine
// -----------------------------------------------------------------------------

// Engine performs key and mouse sequences against windows. It holds no
// mutable state; sequences aimed at the same window from several goroutines
// must be serialized by the caller.
type Engine struct {
	platform Platform
	layout   keyboard.Layout
	timing   Timing
	log      *slog.Logger
	sleep    func(time.Duration)
}

type Option func(*Engine)

func WithTiming(t Timing) Option {
	return func(e *Engine) { e.timing = t }
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithLayout replaces the platform's layout for character lookups and scan codes.
func WithLayout(l keyboard.Layout) Option {
	return func(e *Engine) { e.layout = l }
}

func NewEngine(p Platform, opts ...Option) *Engine {
	e := &Engine{
		platform: p,
		layout:   p,
		timing:   DefaultTiming(),
		log:      slog.Default(),
		sleep:    time.Sleep,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.timing.Attempts == 0 {
		e.timing.Attempts = 1
	}
	if e.timing.PollInterval <= 0 {
		e.timing.PollInterval = time.Millisecond
	}
	return e
}

// Open returns an engine backed by the running system's user32.
func Open(opts ...Option) (*Engine, error) {
	p, err := window.New()
	if err != nil {
		return nil, err
	}
	return NewEngine(p, opts...), nil
}

func (e *Engine) Timing() Timing {
	return e.timing
}

func (e *Engine) Layout() keyboard.Layout {
	return e.layout
}

// KeyFromRune maps r through the engine's layout.
func (e *Engine) KeyFromRune(r rune) (Key, error) {
	return KeyFromRune(r, e.layout)
}

// IsPressed reports whether the physical key vk is currently down.
func (e *Engine) IsPressed(vk keyboard.VirtualKey) bool {
	return uint16(e.platform.KeyState(vk))&0x8000 != 0
}

// attempt runs fn up to Timing.Attempts times with no delay in between. The
// attempt counter lives only in this call.
func (e *Engine) attempt(op string, attrs []any, fn func() error) error {
	log := e.log.With(append([]any{"op", op, "id", uuid.NewString()}, attrs...)...)

	var n uint
	err := retry.Do(
		func() error {
			n++
			return fn()
		},
		retry.Attempts(e.timing.Attempts),
		retry.Delay(0),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(retryable),
		retry.OnRetry(func(i uint, err error) {
			log.Warn("[WARN-INPUT] attempt failed", "attempt", i+1, "error", err)
		}),
	)
	if err == nil {
		log.Debug("input delivered", "attempts", n)
		return nil
	}
	if retryable(err) && n >= e.timing.Attempts {
		log.Error("[ERROR-INPUT] giving up", "attempts", n, "error", err)
		return fmt.Errorf("%s: %w after %d attempts: %w", op, ErrRetryExhausted, n, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// waitForModifiers blocks while the user physically holds Alt, Ctrl or Shift.
func (e *Engine) waitForModifiers() error {
	var waited time.Duration
	for e.modifiersHeld() {
		if e.timing.ModifierWait > 0 && waited >= e.timing.ModifierWait {
			return ErrModifiersHeld
		}
		e.sleep(e.timing.PollInterval)
		waited += e.timing.PollInterval
	}
	return nil
}

func (e *Engine) modifiersHeld() bool {
	for _, m := range keyboard.PressOrder {
		if e.IsPressed(m.Key) {
			return true
		}
	}
	return false
}
