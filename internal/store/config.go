package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type GlobalConfig struct {
	// SeedFile optionally replaces the built-in category titles.
	// Relative paths are resolved against the config dir.
	SeedFile string `json:"seedFile,omitempty"`

	// TUI holds optional user preferences for the interactive picker.
	TUI *TUIConfig `json:"tui,omitempty"`
}

type TUIConfig struct {
	// Glyphs selects the glyph set ("unicode", "ascii").
	Glyphs string `json:"glyphs,omitempty"`
	// Theme forces background detection ("light", "dark", "auto").
	Theme string `json:"theme,omitempty"`
	// Mouse enables mouse input (default on).
	Mouse *bool `json:"mouse,omitempty"`
}

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.likes).
	if v := strings.TrimSpace(os.Getenv("LIKES_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".likes"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadConfig reads config.json. A missing file yields an empty config.
func LoadConfig() (*GlobalConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &GlobalConfig{}, nil
		}
		return nil, err
	}
	var cfg GlobalConfig
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

func SaveConfig(cfg *GlobalConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	// Unique temp name + rename so a CLI write can't tear a config the TUI is reading.
	return atomicWriteFile(dir, "config.json.*.tmp", path, b, 0o600)
}

// ConfigKeys lists the keys accepted by Set, sorted.
func ConfigKeys() []string {
	keys := []string{"seedFile", "tui.glyphs", "tui.theme", "tui.mouse"}
	sort.Strings(keys)
	return keys
}

// Set updates one dotted key. An empty value clears it.
func (c *GlobalConfig) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "seedFile":
		c.SeedFile = value
		return nil
	}

	if c.TUI == nil {
		c.TUI = &TUIConfig{}
	}
	switch key {
	case "tui.glyphs":
		switch strings.ToLower(value) {
		case "", "unicode", "ascii":
			c.TUI.Glyphs = strings.ToLower(value)
		default:
			return fmt.Errorf("invalid tui.glyphs %q (want unicode|ascii)", value)
		}
	case "tui.theme":
		switch strings.ToLower(value) {
		case "", "light", "dark", "auto":
			c.TUI.Theme = strings.ToLower(value)
		default:
			return fmt.Errorf("invalid tui.theme %q (want light|dark|auto)", value)
		}
	case "tui.mouse":
		switch strings.ToLower(value) {
		case "":
			c.TUI.Mouse = nil
		case "true", "on", "1":
			v := true
			c.TUI.Mouse = &v
		case "false", "off", "0":
			v := false
			c.TUI.Mouse = &v
		default:
			return fmt.Errorf("invalid tui.mouse %q (want true|false)", value)
		}
	default:
		return fmt.Errorf("unknown config key: %s (known: %s)", key, strings.Join(ConfigKeys(), ", "))
	}
	return nil
}

// MouseEnabled reports the effective mouse preference.
func (c *GlobalConfig) MouseEnabled() bool {
	if c == nil || c.TUI == nil || c.TUI.Mouse == nil {
		return true
	}
	return *c.TUI.Mouse
}
