package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/rpdg/winkey"
	"github.com/rpdg/winkey/keyboard"
)

func main() {
	fmt.Println("=== winkey: Basic Message Example ===")
	fmt.Println("This example uses SendMessage/PostMessage. It does NOT require focus or mouse movement.")

	e, err := winkey.Open()
	if err != nil {
		log.Fatal(err)
	}

	// 1. Find Window
	// Target: Notepad
	w, err := e.FindByClass("Notepad")
	if err != nil {
		log.Println("❌ Notepad not found. Please open Notepad to run this test.")
		return
	}
	fmt.Printf("✅ Found Notepad handle: %x\n", w.HWND)

	// 2. Type text
	fmt.Println("👉 Typing text...")
	if err := w.Type("Hello from winkey (Background)!\n", winkey.Background); err != nil {
		if errors.Is(err, winkey.ErrWindowGone) {
			log.Fatal("❌ Notepad was closed.")
		}
		log.Fatal(err)
	}

	// 3. Characters outside the layout go through WM_CHAR.
	for _, r := range "Grüße ✓" {
		if err := w.SendChar(r); err != nil {
			log.Fatal(err)
		}
	}

	// 4. Select All: Ctrl+A
	fmt.Println("👉 Testing Ctrl+A...")
	if err := w.Press(winkey.NewKey(keyboard.VKA, keyboard.ModCtrl), winkey.Background); err != nil {
		log.Fatal(err)
	}
	time.Sleep(500 * time.Millisecond)

	// 5. Right Click (context menu)
	fmt.Println("👉 Testing Right Click...")
	if err := w.Click(winkey.NewKey(keyboard.VKRButton, keyboard.ModNone), 100, 100); err != nil {
		log.Fatal(err)
	}

	fmt.Println("=== Done ===")
}
