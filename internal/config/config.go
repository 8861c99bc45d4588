// Package config loads winkey runtime settings from YAML with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/rpdg/winkey"
	"github.com/rpdg/winkey/keyboard"
	"github.com/rpdg/winkey/window"
)

const maxConfigFileBytes int64 = 64 << 10

const (
	LayoutSystem = "system"
	LayoutUS     = "us"
)

var userHomeDirFn = os.UserHomeDir

// Timing mirrors winkey.Timing plus the SendMessage timeout. Durations are
// written as Go duration strings ("100ms", "5s").
type Timing struct {
	KeyDelay     time.Duration `yaml:"key_delay"`
	MouseDelay   time.Duration `yaml:"mouse_delay"`
	PollInterval time.Duration `yaml:"poll_interval"`
	// ModifierWait bounds the wait for physical modifiers. 0 waits forever.
	ModifierWait time.Duration `yaml:"modifier_wait"`
	SendTimeout  time.Duration `yaml:"send_timeout"`
}

type Config struct {
	Timing   Timing `yaml:"timing"`
	Attempts uint   `yaml:"attempts"`
	Strategy string `yaml:"strategy"`
	// Layout selects character mapping: "system" asks the OS, "us" uses the
	// built-in US table.
	Layout string `yaml:"layout"`
}

func DefaultConfig() Config {
	t := winkey.DefaultTiming()
	return Config{
		Timing: Timing{
			KeyDelay:     t.KeyDelay,
			MouseDelay:   t.MouseDelay,
			PollInterval: t.PollInterval,
			ModifierWait: t.ModifierWait,
			SendTimeout:  window.DefaultSendTimeout,
		},
		Attempts: t.Attempts,
		Strategy: winkey.Background.String(),
		Layout:   LayoutSystem,
	}
}

// DefaultPath prefers APPDATA and falls back to ~/.config, then the temp dir.
func DefaultPath() string {
	base := strings.TrimSpace(os.Getenv("APPDATA"))
	if base == "" {
		home, err := userHomeDirFn()
		if err != nil {
			slog.Warn("[WARN-CONFIG] using temp dir as config path fallback", "error", err)
			base = os.TempDir()
		} else {
			base = filepath.Join(home, ".config")
		}
	}
	return filepath.Join(base, "winkey", "config.yaml")
}

// Load reads the file at path over the defaults. A missing or empty file
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, errors.New("config path required")
	}

	raw, err := readLimitedFile(path, maxConfigFileBytes)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		slog.Warn("[WARN-CONFIG] failed to parse config, using defaults", "path", path, "error", err)
		return DefaultConfig(), fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides cfg from WINKEY_* variables looked up through lookup
// (normally os.LookupEnv). Unset variables leave the field alone.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	durations := []struct {
		name string
		dst  *time.Duration
	}{
		{"WINKEY_KEY_DELAY", &cfg.Timing.KeyDelay},
		{"WINKEY_MOUSE_DELAY", &cfg.Timing.MouseDelay},
		{"WINKEY_POLL_INTERVAL", &cfg.Timing.PollInterval},
		{"WINKEY_MODIFIER_WAIT", &cfg.Timing.ModifierWait},
		{"WINKEY_SEND_TIMEOUT", &cfg.Timing.SendTimeout},
	}
	for _, d := range durations {
		v, ok := lookup(d.name)
		if !ok {
			continue
		}
		parsed, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", d.name, err)
		}
		*d.dst = parsed
	}

	if v, ok := lookup("WINKEY_ATTEMPTS"); ok {
		n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 32)
		if err != nil {
			return fmt.Errorf("WINKEY_ATTEMPTS: %w", err)
		}
		cfg.Attempts = uint(n)
	}
	if v, ok := lookup("WINKEY_STRATEGY"); ok {
		cfg.Strategy = strings.TrimSpace(v)
	}
	if v, ok := lookup("WINKEY_LAYOUT"); ok {
		cfg.Layout = strings.ToLower(strings.TrimSpace(v))
	}
	return cfg.Validate()
}

func (c Config) Validate() error {
	if c.Attempts < 1 {
		return errors.New("attempts must be at least 1")
	}
	for name, d := range map[string]time.Duration{
		"key_delay":     c.Timing.KeyDelay,
		"mouse_delay":   c.Timing.MouseDelay,
		"poll_interval": c.Timing.PollInterval,
		"modifier_wait": c.Timing.ModifierWait,
		"send_timeout":  c.Timing.SendTimeout,
	} {
		if d < 0 {
			return fmt.Errorf("%s must not be negative, got %s", name, d)
		}
	}
	if _, err := winkey.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	switch c.Layout {
	case LayoutSystem, LayoutUS:
	default:
		return fmt.Errorf("unknown layout %q", c.Layout)
	}
	return nil
}

// EngineTiming converts the settings for winkey.WithTiming.
func (c Config) EngineTiming() winkey.Timing {
	return winkey.Timing{
		KeyDelay:     c.Timing.KeyDelay,
		MouseDelay:   c.Timing.MouseDelay,
		PollInterval: c.Timing.PollInterval,
		ModifierWait: c.Timing.ModifierWait,
		Attempts:     c.Attempts,
	}
}

// EngineOptions returns the engine options for c, logging to log when it is
// not nil.
func (c Config) EngineOptions(log *slog.Logger) []winkey.Option {
	opts := []winkey.Option{winkey.WithTiming(c.EngineTiming())}
	if c.Layout == LayoutUS {
		opts = append(opts, winkey.WithLayout(keyboard.USLayout))
	}
	if log != nil {
		opts = append(opts, winkey.WithLogger(log))
	}
	return opts
}

// Open builds an engine over the system's user32 with these settings.
func (c Config) Open(log *slog.Logger) (*winkey.Engine, error) {
	p, err := window.New()
	if err != nil {
		return nil, err
	}
	if c.Timing.SendTimeout > 0 {
		p.SendTimeout = c.Timing.SendTimeout
	}
	return winkey.NewEngine(p, c.EngineOptions(log)...), nil
}

// DefaultStrategy returns the parsed strategy. Validate has already accepted it.
func (c Config) DefaultStrategy() winkey.Strategy {
	s, _ := winkey.ParseStrategy(c.Strategy)
	return s
}

func readLimitedFile(path string, maxBytes int64) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(raw)) > maxBytes {
		return nil, fmt.Errorf("config file exceeds %d bytes", maxBytes)
	}
	return raw, nil
}
