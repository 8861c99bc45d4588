// Package window talks to user32: window discovery and the input, message
// and focus primitives the engine drives.
package window

import (
	"errors"
	"time"
)

// ErrUnsupportedPlatform is returned on systems without user32.
var ErrUnsupportedPlatform = errors.New("user32 input is only available on windows")

// DefaultSendTimeout bounds how long SendMessage waits for the target's
// message handler.
const DefaultSendTimeout = 5 * time.Second
