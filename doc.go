// Package winkey emulates keyboard and mouse input toward a target window.
// It supports two delivery strategies: Foreground, which brings the window
// to the front and injects hardware-level input (SendInput), and Background,
// which delivers window messages (SendMessage/PostMessage) without changing
// focus.
//
// Key Features:
// - Object-centric API (Window, Key)
// - Alt, Ctrl, Shift sequencing shared by both strategies
// - Bounded retry of whole sequences
// - Bit-exact WM_KEYDOWN/WM_KEYUP lParam encoding
// - Explicit error handling
//
// Example:
//
//	e, err := winkey.Open()
//	if err != nil {
//	    panic(err)
//	}
//	w, err := e.FindByClass("Notepad")
//	if err != nil {
//	    panic(err)
//	}
//
//	w.Type("Hello World", winkey.Background)
//	w.Press(winkey.NewKey(keyboard.VKS, keyboard.ModCtrl), winkey.Foreground)
package winkey
