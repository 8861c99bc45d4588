package winkey

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpdg/winkey/keyboard"
	"github.com/rpdg/winkey/mouse"
)

const hwnd = uintptr(0x1234)

func TestPressBackgroundShiftedChar(t *testing.T) {
	e, f, _ := newTestEngine()
	k, err := e.KeyFromRune('@')
	require.NoError(t, err)

	require.NoError(t, e.Window(hwnd).Press(k, Background))

	assert.Equal(t, []string{
		"SendMessage 0x0100 16", // Shift down
		"SendMessage 0x0100 50", // 2 down
		"SendMessage 0x0101 50", // 2 up
		"SendMessage 0x0101 16", // Shift up
	}, f.events())

	var msgs []call
	for _, c := range f.calls {
		if c.name == "SendMessage" {
			msgs = append(msgs, c)
		}
	}
	require.Len(t, msgs, 4)
	assert.Equal(t, uintptr(0x002A0001), msgs[0].lParam)
	assert.Equal(t, uintptr(0x00030001), msgs[1].lParam)
	assert.Equal(t, uintptr(0xC0030001), msgs[2].lParam)
	assert.Equal(t, uintptr(0xC02A0001), msgs[3].lParam)
	for _, m := range msgs {
		assert.Equal(t, hwnd, m.hwnd)
	}
}

func TestPressForegroundModifierOrder(t *testing.T) {
	e, f, _ := newTestEngine()
	f.foreground = hwnd
	k := NewKey(keyboard.VKS, keyboard.ModShift|keyboard.ModCtrl|keyboard.ModAlt)

	require.NoError(t, e.Window(hwnd).Press(k, Foreground))

	assert.Equal(t, []string{
		"input Menu down",
		"input Control down",
		"input Shift down",
		"input S down",
		"input S up",
		"input Shift up",
		"input Control up",
		"input Menu up",
	}, f.events())
	assert.Zero(t, f.count("SetForegroundWindow"))
}

func TestPressDistinctShiftCode(t *testing.T) {
	tests := []struct {
		name string
		key  Key
		want []string
	}{
		{
			name: "distinct shift code",
			key:  Key{Code: keyboard.VK1, ShiftCode: keyboard.VKOEMPlus, Modifiers: keyboard.ModShift},
			want: []string{
				"input Shift down",
				"input Plus down",
				"input 1 down",
				"input 1 up",
				"input Plus up",
				"input Shift up",
			},
		},
		{
			name: "shift code equal to primary",
			key:  Key{Code: keyboard.VK1, ShiftCode: keyboard.VK1, Modifiers: keyboard.ModShift},
			want: []string{"input Shift down", "input 1 down", "input 1 up", "input Shift up"},
		},
		{
			name: "shift code without shift",
			key:  Key{Code: keyboard.VK1, ShiftCode: keyboard.VKOEMPlus, Modifiers: keyboard.ModCtrl},
			want: []string{"input Control down", "input 1 down", "input 1 up", "input Control up"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, f, _ := newTestEngine()
			require.NoError(t, e.Window(0).Press(tt.key, Foreground))
			assert.Equal(t, tt.want, f.events())
		})
	}
}

func TestPressEqualsDownThenUp(t *testing.T) {
	for _, s := range []Strategy{Foreground, Background} {
		t.Run(s.String(), func(t *testing.T) {
			k := NewKey(keyboard.VKF5, keyboard.ModNone)

			e1, pressed, _ := newTestEngine()
			pressed.foreground = hwnd
			require.NoError(t, k.Press(e1.Window(hwnd), s))

			e2, split, _ := newTestEngine()
			split.foreground = hwnd
			w := e2.Window(hwnd)
			require.NoError(t, k.Down(w, s))
			require.NoError(t, k.Up(w, s))

			inputsOnly := func(f *fakePlatform) []call {
				var out []call
				for _, c := range f.calls {
					switch c.name {
					case "SendInput", "SendMessage", "PostMessage":
						out = append(out, c)
					}
				}
				return out
			}
			assert.Equal(t, inputsOnly(pressed), inputsOnly(split))
			assert.Len(t, inputsOnly(pressed), 2)
		})
	}
}

func TestDownUpRefuseModifiers(t *testing.T) {
	k := NewKey(keyboard.VKA, keyboard.ModCtrl)
	for _, s := range []Strategy{Foreground, Background} {
		t.Run(s.String(), func(t *testing.T) {
			e, f, _ := newTestEngine()
			w := e.Window(hwnd)

			err := k.Down(w, s)
			assert.ErrorIs(t, err, ErrModifiersNotAllowed)
			err = k.Up(w, s)
			assert.ErrorIs(t, err, ErrModifiersNotAllowed)

			assert.Empty(t, f.calls)
		})
	}
}

func TestRetrySucceedsOnThirdAttempt(t *testing.T) {
	for _, s := range []Strategy{Foreground, Background} {
		t.Run(s.String(), func(t *testing.T) {
			e, f, _ := newTestEngine()
			f.foreground = hwnd
			f.failFirst = 2

			err := e.Window(hwnd).KeyDown(NewKey(keyboard.VKA, keyboard.ModNone), s)
			require.NoError(t, err)
			assert.Equal(t, 3, f.inputs)
		})
	}
}

func TestRetryExhausted(t *testing.T) {
	tests := []struct {
		name     string
		attempts uint
	}{
		{name: "default budget", attempts: RetryCount},
		{name: "single attempt", attempts: 1},
		{name: "five attempts", attempts: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timing := DefaultTiming()
			timing.Attempts = tt.attempts
			e, f, _ := newTestEngine(WithTiming(timing))
			f.failAlways = true

			err := e.Window(hwnd).KeyDown(NewKey(keyboard.VKA, keyboard.ModNone), Background)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrRetryExhausted)
			assert.ErrorIs(t, err, ErrInjectionRejected)
			assert.Equal(t, int(tt.attempts), f.count("SendMessage"))
		})
	}
}

func TestForegroundFocusDenied(t *testing.T) {
	e, f, _ := newTestEngine()
	f.focusDenied = true
	k, err := e.KeyFromRune('A')
	require.NoError(t, err)

	err = e.Window(hwnd).Press(k, Foreground)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFocusDenied)
	assert.ErrorIs(t, err, ErrRetryExhausted)
	assert.Zero(t, f.count("SendInput"))
	assert.Equal(t, RetryCount, f.count("SetForegroundWindow"))
}

func TestForegroundFocusGranted(t *testing.T) {
	e, f, _ := newTestEngine()
	require.NoError(t, e.Window(hwnd).Press(NewKey(keyboard.VKA, keyboard.ModNone), Foreground))
	assert.Equal(t, 1, f.count("SetForegroundWindow"))
	assert.Equal(t, hwnd, f.foreground)
}

func TestForegroundWithoutWindowSkipsFocus(t *testing.T) {
	e, f, _ := newTestEngine()
	require.NoError(t, e.Window(0).Press(NewKey(keyboard.VKA, keyboard.ModNone), Foreground))
	assert.Zero(t, f.count("SetForegroundWindow"))
	assert.Zero(t, f.count("IsWindow"))
	assert.Equal(t, 2, f.count("SendInput"))
}

func TestForegroundExtendedKeyFlags(t *testing.T) {
	e, f, _ := newTestEngine()
	require.NoError(t, e.Window(0).Press(NewKey(keyboard.VKDelete, keyboard.ModNone), Foreground))

	var inputs []keyboard.Input
	for _, c := range f.calls {
		if c.name == "SendInput" {
			inputs = append(inputs, c.input)
		}
	}
	assert.Equal(t, []keyboard.Input{
		{VK: keyboard.VKDelete, Scan: 0x53, Flags: keyboard.KEYEVENTF_EXTENDEDKEY},
		{VK: keyboard.VKDelete, Scan: 0x53, Flags: keyboard.KEYEVENTF_EXTENDEDKEY | keyboard.KEYEVENTF_KEYUP},
	}, inputs)
}

// A rejected event mid-sequence must not leave a modifier held: the engine
// releases what it pressed before the next attempt.
func TestRejectedPrimaryReleasesModifiers(t *testing.T) {
	t.Run("single attempt", func(t *testing.T) {
		timing := DefaultTiming()
		timing.Attempts = 1
		e, f, _ := newTestEngine(WithTiming(timing))
		f.failOn = 2

		k, err := e.KeyFromRune('@')
		require.NoError(t, err)
		err = e.Window(hwnd).Press(k, Background)
		assert.ErrorIs(t, err, ErrRetryExhausted)
		assert.Equal(t, []string{
			"SendMessage 0x0100 16",
			"SendMessage 0x0100 50", // rejected
			"SendMessage 0x0101 16",
		}, f.events())
	})

	t.Run("retried", func(t *testing.T) {
		e, f, _ := newTestEngine()
		f.failOn = 2

		k, err := e.KeyFromRune('@')
		require.NoError(t, err)
		require.NoError(t, e.Window(hwnd).Press(k, Background))
		assert.Equal(t, []string{
			"SendMessage 0x0100 16",
			"SendMessage 0x0100 50",
			"SendMessage 0x0101 16",
			"SendMessage 0x0100 16",
			"SendMessage 0x0100 50",
			"SendMessage 0x0101 50",
			"SendMessage 0x0101 16",
		}, f.events())
	})

	t.Run("modifier down rejected", func(t *testing.T) {
		timing := DefaultTiming()
		timing.Attempts = 1
		e, f, _ := newTestEngine(WithTiming(timing))
		f.failOn = 3

		k := NewKey(keyboard.VKA, keyboard.ModAlt|keyboard.ModCtrl|keyboard.ModShift)
		err := e.Window(0).Press(k, Foreground)
		assert.ErrorIs(t, err, ErrInjectionRejected)
		assert.Equal(t, []string{
			"input Menu down",
			"input Control down",
			"input Shift down", // rejected
			"input Control up",
			"input Menu up",
		}, f.events())
	})
}

func TestBackgroundWaitsForPhysicalModifiers(t *testing.T) {
	e, f, slept := newTestEngine()
	f.heldPolls = 3

	require.NoError(t, e.Window(hwnd).Press(NewKey(keyboard.VKA, keyboard.ModNone), Background))

	assert.Equal(t, []time.Duration{
		time.Millisecond, time.Millisecond, time.Millisecond,
		100 * time.Millisecond, 100 * time.Millisecond,
	}, *slept)
	assert.Equal(t, 2, f.count("SendMessage"))
}

func TestBackgroundModifierWaitExpires(t *testing.T) {
	timing := DefaultTiming()
	timing.ModifierWait = 5 * time.Millisecond
	e, f, _ := newTestEngine(WithTiming(timing))
	f.heldPolls = 1000

	err := e.Window(hwnd).Press(NewKey(keyboard.VKA, keyboard.ModNone), Background)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrModifiersHeld)
	assert.NotErrorIs(t, err, ErrRetryExhausted)
	assert.Zero(t, f.count("SendMessage"))
}

func TestBackgroundDeadWindow(t *testing.T) {
	e, f, _ := newTestEngine()
	f.dead = true

	err := e.Window(hwnd).Press(NewKey(keyboard.VKA, keyboard.ModNone), Background)
	assert.ErrorIs(t, err, ErrWindowGone)
	assert.Empty(t, f.events())
}

func TestKeyDelays(t *testing.T) {
	e, _, slept := newTestEngine()
	k, err := e.KeyFromRune('@')
	require.NoError(t, err)

	require.NoError(t, e.Window(0).Press(k, Foreground))
	assert.Equal(t, []time.Duration{
		100 * time.Millisecond, 100 * time.Millisecond,
		100 * time.Millisecond, 100 * time.Millisecond,
	}, *slept)
}

func TestType(t *testing.T) {
	e, f, _ := newTestEngine()
	require.NoError(t, e.Window(hwnd).Type("Hi!", Background))

	assert.Equal(t, []string{
		"SendMessage 0x0100 16",
		"SendMessage 0x0100 72",
		"SendMessage 0x0101 72",
		"SendMessage 0x0101 16",
		"SendMessage 0x0100 73",
		"SendMessage 0x0101 73",
		"SendMessage 0x0100 16",
		"SendMessage 0x0100 49",
		"SendMessage 0x0101 49",
		"SendMessage 0x0101 16",
	}, f.events())
}

func TestTypeUnsupportedRune(t *testing.T) {
	e, f, _ := newTestEngine()
	err := e.Window(hwnd).Type("ok€", Background)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedKey)
	assert.Contains(t, err.Error(), "offset 2")
	assert.Len(t, f.events(), 4)
}

func TestSendChar(t *testing.T) {
	e, f, _ := newTestEngine()
	w := e.Window(hwnd)

	require.NoError(t, w.SendChar('a'))
	require.NoError(t, w.SendChar('é'))
	require.NoError(t, w.SendChar('😀'))

	var chars []uintptr
	var lparams []uintptr
	for _, c := range f.calls {
		if c.name == "SendMessage" {
			assert.Equal(t, uint32(keyboard.WM_CHAR), c.msg)
			chars = append(chars, c.wParam)
			lparams = append(lparams, c.lParam)
		}
	}
	assert.Equal(t, []uintptr{'a', 0xE9, 0xD83D, 0xDE00}, chars)
	assert.Equal(t, uintptr(0x001E0001), lparams[0])
	assert.Equal(t, uintptr(1), lparams[1])
}

func TestClick(t *testing.T) {
	e, f, slept := newTestEngine()
	w := e.Window(hwnd)

	require.NoError(t, w.Click(NewKey(keyboard.VKLButton, keyboard.ModNone), 10, 20))

	var posts []call
	for _, c := range f.calls {
		if c.name == "PostMessage" {
			posts = append(posts, c)
		}
	}
	require.Len(t, posts, 2)
	assert.Equal(t, uint32(mouse.WM_LBUTTONDOWN), posts[0].msg)
	assert.Equal(t, uintptr(mouse.MK_LBUTTON), posts[0].wParam)
	assert.Equal(t, uintptr(20<<16|10), posts[0].lParam)
	assert.Equal(t, uint32(mouse.WM_LBUTTONUP), posts[1].msg)
	assert.Equal(t, uintptr(20<<16|10), posts[1].lParam)
	assert.Equal(t, []time.Duration{100 * time.Millisecond}, *slept)
}

func TestClickRetriesWholeClick(t *testing.T) {
	e, f, _ := newTestEngine()
	f.failOn = 2

	require.NoError(t, e.Window(hwnd).Click(NewKey(keyboard.VKRButton, keyboard.ModNone), 1, 1))
	assert.Equal(t, []string{
		"PostMessage 0x0204 2",
		"PostMessage 0x0205 0",
		"PostMessage 0x0204 2",
		"PostMessage 0x0205 0",
	}, f.events())
}

func TestClickRejectsKeyboardKey(t *testing.T) {
	e, f, _ := newTestEngine()
	err := e.Window(hwnd).Click(NewKey(keyboard.VKA, keyboard.ModNone), 1, 1)
	assert.ErrorIs(t, err, ErrNotMouseButton)
	assert.Empty(t, f.calls)
}

func TestMoveMouse(t *testing.T) {
	e, f, _ := newTestEngine()
	require.NoError(t, e.Window(hwnd).MoveMouse(3, 4))
	assert.Equal(t, []string{"PostMessage 0x0200 0"}, f.events())
}

func TestIsPressed(t *testing.T) {
	e, f, _ := newTestEngine()
	f.heldPolls = 1
	assert.True(t, e.IsPressed(keyboard.VKShift))
	assert.False(t, e.IsPressed(keyboard.VKShift))
	assert.False(t, e.IsPressed(keyboard.VKA))
}

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy("Foreground")
	require.NoError(t, err)
	assert.Equal(t, Foreground, s)

	s, err = ParseStrategy("bg")
	require.NoError(t, err)
	assert.Equal(t, Background, s)

	_, err = ParseStrategy("sideways")
	assert.Error(t, err)

	assert.Equal(t, "Strategy(7)", Strategy(7).String())
}

func TestNewEngineNormalizesTiming(t *testing.T) {
	e := NewEngine(newFake(), WithTiming(Timing{}))
	assert.Equal(t, uint(1), e.Timing().Attempts)
	assert.Equal(t, time.Millisecond, e.Timing().PollInterval)
}

func TestErrorsAreDistinguishable(t *testing.T) {
	all := []error{ErrFocusDenied, ErrInjectionRejected, ErrRetryExhausted, ErrModifiersNotAllowed}
	for i, a := range all {
		for j, b := range all {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
			}
		}
	}
}
