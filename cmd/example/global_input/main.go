package main

import (
	"context"
	"fmt"
	"log"

	"github.com/rpdg/winkey"
	"github.com/rpdg/winkey/internal/trigger"
	"github.com/rpdg/winkey/keyboard"
)

func main() {
	fmt.Println("=== winkey: Global Input Example ===")
	fmt.Println("Foreground input with no target window goes to whatever has focus.")

	e, err := winkey.Open()
	if err != nil {
		log.Fatal(err)
	}

	// 1. Wait for the user to pick a window
	combo := trigger.Combo{Mods: keyboard.ModCtrl | keyboard.ModShift, Key: keyboard.VKF9}
	fmt.Printf("👉 Focus any text field and press %s...\n", combo)
	if err := trigger.Wait(context.Background(), combo); err != nil {
		log.Fatal(err)
	}

	// 2. Type "globally"
	w := e.Window(0)
	fmt.Println("👉 Typing globally...")
	if err := w.Type("Global Input", winkey.Foreground); err != nil {
		log.Fatal(err)
	}
	if err := w.Press(winkey.NewKey(keyboard.VKReturn, keyboard.ModNone), winkey.Foreground); err != nil {
		log.Fatal(err)
	}

	fmt.Println("=== Done ===")
}
