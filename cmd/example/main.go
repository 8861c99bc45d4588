package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/rpdg/winkey"
	"github.com/rpdg/winkey/internal/config"
	"github.com/rpdg/winkey/keyboard"
)

func main() {
	fmt.Println("=== winkey Calculator Example ===")

	cfg := config.DefaultConfig()
	e, err := cfg.Open(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err != nil {
		log.Fatal(err)
	}

	// 1. Find Window
	// Try the process name first, then the class of the classic calculator.
	windows, err := e.FindByProcessName("CalculatorApp.exe")
	var w *winkey.Window
	if err == nil && len(windows) > 0 {
		w = windows[0]
		fmt.Println("✅ Found Calculator via Process Name")
	} else {
		w, err = e.FindByClass("CalcFrame")
		if err != nil {
			log.Println("❌ Calculator not found. Please open Calculator to run this example.")
			return
		}
		fmt.Println("✅ Found Calculator via Window Class")
	}

	// 2. Background: no focus change. '*' needs Shift on US layouts.
	fmt.Println("👉 Background: 111*11=")
	if err := w.Type("111*11=", winkey.Background); err != nil {
		if errors.Is(err, winkey.ErrModifiersHeld) {
			log.Fatal("❌ Please release Alt, Ctrl and Shift.")
		}
		log.Fatal(err)
	}
	time.Sleep(1 * time.Second)

	// 3. Foreground: focus the window and inject through SendInput.
	fmt.Println("👉 Foreground: Escape, 12+30=")
	if err := w.Press(winkey.NewKey(keyboard.VKEscape, keyboard.ModNone), winkey.Foreground); err != nil {
		if errors.Is(err, winkey.ErrFocusDenied) {
			log.Fatal("❌ Windows refused to focus Calculator.")
		}
		log.Fatal(err)
	}
	if err := w.Type("12+30=", winkey.Foreground); err != nil {
		log.Fatal(err)
	}

	fmt.Println("=== Done ===")
}
