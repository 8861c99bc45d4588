package winkey

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rpdg/winkey/keyboard"
)

// call is one recorded OS call.
type call struct {
	name   string
	hwnd   uintptr
	msg    uint32
	wParam uintptr
	lParam uintptr
	input  keyboard.Input
}

func (c call) String() string {
	switch c.name {
	case "SendInput":
		dir := "down"
		if c.input.Flags&keyboard.KEYEVENTF_KEYUP != 0 {
			dir = "up"
		}
		return fmt.Sprintf("input %s %s", c.input.VK, dir)
	case "SendMessage", "PostMessage":
		return fmt.Sprintf("%s 0x%04X %d", c.name, c.msg, c.wParam)
	}
	return c.name
}

// fakePlatform records every call. Input-producing calls (SendInput,
// SendMessage, PostMessage) fail while failFirst is positive, or always when
// failAlways is set.
type fakePlatform struct {
	keyboard.Layout

	calls []call

	foreground  uintptr
	focusDenied bool
	dead        bool

	failFirst  int
	failAlways bool
	// failOn rejects the n-th (1-based) input call only.
	failOn int

	// heldPolls makes the physical Shift key read as down for this many
	// KeyState polls.
	heldPolls int
	inputs    int
}

func newFake() *fakePlatform {
	return &fakePlatform{Layout: keyboard.USLayout}
}

func (f *fakePlatform) accept() bool {
	f.inputs++
	if f.failAlways {
		return false
	}
	if f.failOn > 0 && f.inputs == f.failOn {
		return false
	}
	if f.failFirst > 0 {
		f.failFirst--
		return false
	}
	return true
}

func (f *fakePlatform) ForegroundWindow() uintptr {
	f.calls = append(f.calls, call{name: "ForegroundWindow"})
	return f.foreground
}

func (f *fakePlatform) SetForegroundWindow(hwnd uintptr) bool {
	f.calls = append(f.calls, call{name: "SetForegroundWindow", hwnd: hwnd})
	if f.focusDenied {
		return false
	}
	f.foreground = hwnd
	return true
}

func (f *fakePlatform) IsWindow(hwnd uintptr) bool {
	f.calls = append(f.calls, call{name: "IsWindow", hwnd: hwnd})
	return !f.dead
}

func (f *fakePlatform) SendInput(inputs []keyboard.Input) uint32 {
	ok := f.accept()
	for _, in := range inputs {
		f.calls = append(f.calls, call{name: "SendInput", input: in})
	}
	if !ok {
		return 0
	}
	return uint32(len(inputs))
}

func (f *fakePlatform) SendMessage(hwnd uintptr, msg uint32, wParam, lParam uintptr) bool {
	f.calls = append(f.calls, call{name: "SendMessage", hwnd: hwnd, msg: msg, wParam: wParam, lParam: lParam})
	return f.accept()
}

func (f *fakePlatform) PostMessage(hwnd uintptr, msg uint32, wParam, lParam uintptr) bool {
	f.calls = append(f.calls, call{name: "PostMessage", hwnd: hwnd, msg: msg, wParam: wParam, lParam: lParam})
	return f.accept()
}

func (f *fakePlatform) KeyState(vk keyboard.VirtualKey) int16 {
	f.calls = append(f.calls, call{name: "KeyState", wParam: uintptr(vk)})
	if vk == keyboard.VKShift && f.heldPolls > 0 {
		f.heldPolls--
		return -0x8000
	}
	return 0
}

// events returns the recorded input calls only, rendered for comparison.
func (f *fakePlatform) events() []string {
	var out []string
	for _, c := range f.calls {
		switch c.name {
		case "SendInput", "SendMessage", "PostMessage":
			out = append(out, c.String())
		}
	}
	return out
}

func (f *fakePlatform) count(name string) int {
	n := 0
	for _, c := range f.calls {
		if c.name == name {
			n++
		}
	}
	return n
}

func (f *fakePlatform) reset() {
	f.calls = nil
	f.inputs = 0
}

// newTestEngine returns an engine over a fresh fake that records sleeps
// instead of sleeping.
func newTestEngine(opts ...Option) (*Engine, *fakePlatform, *[]time.Duration) {
	f := newFake()
	var slept []time.Duration
	opts = append([]Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	e := NewEngine(f, opts...)
	e.sleep = func(d time.Duration) { slept = append(slept, d) }
	return e, f, &slept
}
