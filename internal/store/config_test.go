package store

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestLoadConfig_MissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("DATEFIELD_CONFIG_DIR", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Locale != "" || cfg.TUI != nil {
		t.Fatalf("expected zero config; got %+v", cfg)
	}
}

func TestSaveConfig_RoundTripAndBackup(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATEFIELD_CONFIG_DIR", dir)

	if err := SaveConfig(&GlobalConfig{Locale: "en-GB"}); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	if err := SaveConfig(&GlobalConfig{Locale: "de-DE", TUI: &TUIConfig{Theme: "dark"}}); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Locale != "de-DE" || cfg.Theme() != "dark" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.json.bak")); err != nil {
		t.Fatalf("expected backup file: %v", err)
	}
}

func TestSaveConfig_ConcurrentWritersLeaveValidJSON(t *testing.T) {
	t.Setenv("DATEFIELD_CONFIG_DIR", t.TempDir())

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			loc := "en-US"
			if i%2 == 0 {
				loc = "en-GB"
			}
			if err := SaveConfig(&GlobalConfig{Locale: loc}); err != nil {
				t.Errorf("SaveConfig: %v", err)
			}
		}(i)
	}
	wg.Wait()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig after concurrent writes: %v", err)
	}
	if cfg.Locale != "en-US" && cfg.Locale != "en-GB" {
		t.Fatalf("unexpected locale %q", cfg.Locale)
	}
}

func TestGlobalConfig_GetSet(t *testing.T) {
	var cfg GlobalConfig
	for _, tc := range []struct{ key, value, want string }{
		{"locale", "en-GB", "en-GB"},
		{"granularity", "datetime", "datetime"},
		{"legacyZeroRule", "true", "true"},
		{"tui.theme", "Dark", "dark"},
		{"tui.altScreen", "1", "true"},
	} {
		if err := cfg.Set(tc.key, tc.value); err != nil {
			t.Fatalf("Set(%s): %v", tc.key, err)
		}
		got, err := cfg.Get(tc.key)
		if err != nil {
			t.Fatalf("Get(%s): %v", tc.key, err)
		}
		if got != tc.want {
			t.Fatalf("Get(%s) = %q; want %q", tc.key, got, tc.want)
		}
	}

	if err := cfg.Set("nope", "x"); !errors.Is(err, ErrUnknownConfigKey) {
		t.Fatalf("expected ErrUnknownConfigKey; got %v", err)
	}
	if _, err := cfg.Get("nope"); !errors.Is(err, ErrUnknownConfigKey) {
		t.Fatalf("expected ErrUnknownConfigKey; got %v", err)
	}
	if err := cfg.Set("tui.theme", "neon"); err == nil {
		t.Fatalf("expected error for bad theme")
	}
	if err := cfg.Set("legacyZeroRule", "maybe"); err == nil {
		t.Fatalf("expected error for bad bool")
	}
}
