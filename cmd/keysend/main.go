// Command keysend types text or presses a key in a target window.
//
//	keysend -class Notepad -text "Hello!"
//	keysend -process calc.exe -key Return -strategy fg
//	keysend -title "Untitled - Notepad" -key s -mods ctrl -trigger ctrl+shift+f9
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/rpdg/winkey"
	"github.com/rpdg/winkey/internal/config"
	"github.com/rpdg/winkey/internal/trigger"
	"github.com/rpdg/winkey/keyboard"
)

type options struct {
	configPath string
	class      string
	title      string
	process    string
	text       string
	key        string
	mods       string
	char       string
	strategy   string
	trigger    string
	clickX     int
	clickY     int
	button     string
	verbose    bool
}

func main() {
	var o options
	flag.StringVar(&o.configPath, "config", config.DefaultPath(), "config file")
	flag.StringVar(&o.class, "class", "", "target window class")
	flag.StringVar(&o.title, "title", "", "target window title")
	flag.StringVar(&o.process, "process", "", "target process executable, e.g. notepad.exe")
	flag.StringVar(&o.text, "text", "", "text to type")
	flag.StringVar(&o.key, "key", "", "single key to press, e.g. F5, a, Return")
	flag.StringVar(&o.mods, "mods", "", "modifiers for -key, e.g. ctrl+shift")
	flag.StringVar(&o.char, "char", "", "text to deliver as WM_CHAR, bypassing the layout")
	flag.StringVar(&o.strategy, "strategy", "", "foreground or background (default from config)")
	flag.StringVar(&o.trigger, "trigger", "", "wait for this global hotkey first, e.g. ctrl+shift+f9")
	flag.IntVar(&o.clickX, "x", -1, "click x in client coordinates")
	flag.IntVar(&o.clickY, "y", -1, "click y in client coordinates")
	flag.StringVar(&o.button, "button", "lbutton", "mouse button for -x/-y")
	flag.BoolVar(&o.verbose, "v", false, "debug logging")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: .env: %v\n", err)
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, o, log); err != nil {
		log.Error("keysend failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, o options, log *slog.Logger) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if err := config.ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return err
	}

	strategy := cfg.DefaultStrategy()
	if o.strategy != "" {
		if strategy, err = winkey.ParseStrategy(o.strategy); err != nil {
			return err
		}
	}

	e, err := cfg.Open(log)
	if err != nil {
		return err
	}
	w, err := findTarget(e, o, strategy)
	if err != nil {
		return err
	}
	log.Debug("target resolved", "hwnd", fmt.Sprintf("0x%X", w.HWND), "strategy", strategy.String())

	if o.trigger != "" {
		combo, err := trigger.Parse(o.trigger)
		if err != nil {
			return err
		}
		if err := trigger.Wait(ctx, combo); err != nil {
			return err
		}
	}

	if o.clickX >= 0 && o.clickY >= 0 {
		vk, err := keyboard.ParseVirtualKey(o.button)
		if err != nil {
			return err
		}
		if err := w.Click(winkey.NewKey(vk, keyboard.ModNone), int32(o.clickX), int32(o.clickY)); err != nil {
			return err
		}
	}
	if o.text != "" {
		if err := w.Type(o.text, strategy); err != nil {
			return err
		}
	}
	for _, r := range o.char {
		if err := w.SendChar(r); err != nil {
			return err
		}
	}
	if o.key != "" {
		vk, err := keyboard.ParseVirtualKey(o.key)
		if err != nil {
			return err
		}
		mods, err := keyboard.ParseModifiers(o.mods)
		if err != nil {
			return err
		}
		if err := w.Press(winkey.NewKey(vk, mods), strategy); err != nil {
			return err
		}
	}
	return nil
}

// findTarget resolves the window flags. Without any, foreground input goes
// to whatever window has focus.
func findTarget(e *winkey.Engine, o options, s winkey.Strategy) (*winkey.Window, error) {
	switch {
	case o.process != "":
		windows, err := e.FindByProcessName(o.process)
		if err != nil {
			return nil, err
		}
		if len(windows) == 0 {
			return nil, fmt.Errorf("%s: %w", o.process, winkey.ErrWindowNotFound)
		}
		return windows[0], nil
	case o.class != "":
		return e.FindByClass(o.class)
	case o.title != "":
		return e.FindByTitle(o.title)
	case s == winkey.Foreground:
		return e.Window(0), nil
	}
	return nil, errors.New("background input needs -class, -title or -process")
}
