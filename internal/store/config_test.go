package store

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestLoadConfig_MissingFileIsEmpty(t *testing.T) {
	t.Setenv("LIKES_CONFIG_DIR", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.SeedFile != "" || cfg.TUI != nil {
		t.Fatalf("expected empty config; got %+v", cfg)
	}
	if !cfg.MouseEnabled() {
		t.Fatalf("expected mouse enabled by default")
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LIKES_CONFIG_DIR", dir)

	cfg := &GlobalConfig{}
	for _, kv := range [][2]string{
		{"tui.glyphs", "ASCII"},
		{"tui.theme", "dark"},
		{"tui.mouse", "off"},
		{"seedFile", "seed.yaml"},
	} {
		if err := cfg.Set(kv[0], kv[1]); err != nil {
			t.Fatalf("Set(%s): %v", kv[0], err)
		}
	}
	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.TUI == nil || got.TUI.Glyphs != "ascii" || got.TUI.Theme != "dark" {
		t.Fatalf("unexpected tui config: %+v", got.TUI)
	}
	if got.MouseEnabled() {
		t.Fatalf("expected mouse disabled")
	}
	if got.SeedFile != "seed.yaml" {
		t.Fatalf("unexpected seed file: %q", got.SeedFile)
	}

	ents, _ := os.ReadDir(dir)
	for _, e := range ents {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Fatalf("temp file left behind: %s", e.Name())
		}
	}
}

func TestSaveConfig_ConcurrentWritersLeaveValidJSON(t *testing.T) {
	t.Setenv("LIKES_CONFIG_DIR", t.TempDir())

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cfg := &GlobalConfig{}
			if i%2 == 0 {
				_ = cfg.Set("tui.glyphs", "ascii")
			} else {
				_ = cfg.Set("tui.theme", "light")
			}
			if err := SaveConfig(cfg); err != nil {
				t.Errorf("SaveConfig: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if _, err := LoadConfig(); err != nil {
		t.Fatalf("config corrupted by concurrent writers: %v", err)
	}
}

func TestGlobalConfig_SetRejectsUnknown(t *testing.T) {
	cfg := &GlobalConfig{}
	if err := cfg.Set("tui.glyphs", "emoji"); err == nil {
		t.Fatalf("expected invalid glyphs error")
	}
	if err := cfg.Set("tui.mouse", "maybe"); err == nil {
		t.Fatalf("expected invalid mouse error")
	}
	if err := cfg.Set("nope", "x"); err == nil || !strings.Contains(err.Error(), "unknown config key") {
		t.Fatalf("expected unknown key error; got %v", err)
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LIKES_CONFIG_DIR", dir)
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{nope"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected parse error")
	}
}
