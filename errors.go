package winkey

import (
	"errors"

	"github.com/rpdg/winkey/window"
)

var (
	// ErrFocusDenied implies the OS refused to bring the target window to the foreground.
	ErrFocusDenied = errors.New("window could not be brought to the foreground")

	// ErrInjectionRejected implies SendInput, SendMessage or PostMessage did not accept an event.
	ErrInjectionRejected = errors.New("input rejected by the system")

	// ErrRetryExhausted implies every attempt of an operation failed. It wraps the last cause.
	ErrRetryExhausted = errors.New("retry budget exhausted")

	// ErrModifiersNotAllowed implies Down or Up was called on a key that carries modifiers.
	ErrModifiersNotAllowed = errors.New("key down/up is only defined for keys without modifiers")

	// ErrModifiersHeld implies the user kept Alt, Ctrl or Shift down longer than the configured wait.
	ErrModifiersHeld = errors.New("physical modifier keys still held")

	// ErrWindowNotFound implies the target window could not be located by Title, Class, or PID.
	ErrWindowNotFound = errors.New("window not found")

	// ErrWindowGone implies the window handle is no longer valid.
	ErrWindowGone = errors.New("window is gone or invalid")

	// ErrUnsupportedKey implies the character cannot be mapped to a key.
	ErrUnsupportedKey = errors.New("unsupported key or character")

	// ErrNotMouseButton implies a click was requested with a key that is not a mouse button.
	ErrNotMouseButton = errors.New("key is not a mouse button")

	// ErrUnsupportedPlatform implies the OS backend is not available on this system.
	ErrUnsupportedPlatform = window.ErrUnsupportedPlatform
)

// retryable reports whether another attempt could change the outcome.
func retryable(err error) bool {
	return !errors.Is(err, ErrModifiersHeld) && !errors.Is(err, ErrWindowGone)
}
