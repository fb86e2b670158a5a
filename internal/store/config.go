package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// GlobalConfig holds per-user defaults for the CLI and TUI.
type GlobalConfig struct {
	// Locale is the default locale key (e.g. "en-GB").
	Locale string `json:"locale,omitempty"`
	// Granularity is the default granularity (date|time|datetime).
	Granularity string `json:"granularity,omitempty"`
	// LegacyZeroRule enables the lone-"0" to "1" rewrite for day and month.
	LegacyZeroRule bool `json:"legacyZeroRule,omitempty"`
	// LocalesFile is an optional YAML file with extra locale definitions.
	LocalesFile string `json:"localesFile,omitempty"`
	// HistoryDB overrides the pick history database path.
	HistoryDB string `json:"historyDb,omitempty"`

	// TUI holds optional user preferences for the interactive pickers.
	TUI *TUIConfig `json:"tui,omitempty"`
}

type TUIConfig struct {
	// Theme is "light", "dark" or "auto".
	Theme string `json:"theme,omitempty"`
	// AltScreen runs pickers full-screen.
	AltScreen bool `json:"altScreen,omitempty"`
}

// ErrUnknownConfigKey is returned by Get/Set for keys not in ConfigKeys.
var ErrUnknownConfigKey = errors.New("unknown config key")

// ConfigKeys lists the dotted keys accepted by Get and Set.
func ConfigKeys() []string {
	keys := []string{"locale", "granularity", "legacyZeroRule", "localesFile", "historyDb", "tui.theme", "tui.altScreen"}
	sort.Strings(keys)
	return keys
}

// Get returns the string form of a config key.
func (c *GlobalConfig) Get(key string) (string, error) {
	switch key {
	case "locale":
		return c.Locale, nil
	case "granularity":
		return c.Granularity, nil
	case "legacyZeroRule":
		return strconv.FormatBool(c.LegacyZeroRule), nil
	case "localesFile":
		return c.LocalesFile, nil
	case "historyDb":
		return c.HistoryDB, nil
	case "tui.theme":
		if c.TUI == nil {
			return "", nil
		}
		return c.TUI.Theme, nil
	case "tui.altScreen":
		return strconv.FormatBool(c.TUI != nil && c.TUI.AltScreen), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownConfigKey, key)
}

// Set parses value into a config key. Values are not checked against the
// locale table here; callers validate what they can.
func (c *GlobalConfig) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "locale":
		c.Locale = value
	case "granularity":
		c.Granularity = value
	case "legacyZeroRule":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("legacyZeroRule: %w", err)
		}
		c.LegacyZeroRule = b
	case "localesFile":
		c.LocalesFile = value
	case "historyDb":
		c.HistoryDB = value
	case "tui.theme":
		switch strings.ToLower(value) {
		case "", "auto", "light", "dark":
		default:
			return fmt.Errorf("tui.theme: expected light|dark|auto, got %q", value)
		}
		c.tui().Theme = strings.ToLower(value)
	case "tui.altScreen":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("tui.altScreen: %w", err)
		}
		c.tui().AltScreen = b
	default:
		return fmt.Errorf("%w: %q", ErrUnknownConfigKey, key)
	}
	return nil
}

func (c *GlobalConfig) tui() *TUIConfig {
	if c.TUI == nil {
		c.TUI = &TUIConfig{}
	}
	return c.TUI
}

// Theme returns the configured TUI theme, or "" for auto.
func (c *GlobalConfig) Theme() string {
	if c == nil || c.TUI == nil {
		return ""
	}
	return c.TUI.Theme
}

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.datefield).
	if v := strings.TrimSpace(os.Getenv("DATEFIELD_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".datefield"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadConfig reads the global config; a missing file yields defaults.
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

// SaveConfig writes cfg atomically, keeping the previous file as config.json.bak.
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

	if prev, err := os.ReadFile(path); err == nil && len(prev) > 0 {
		_ = atomicWriteFile(dir, "config.json.bak.*.tmp", path+".bak", prev, 0o644)
	}

	// Unique temp names keep concurrent writers (CLI + TUI) from clobbering each other.
	return atomicWriteFile(dir, "config.json.*.tmp", path, b, 0o600)
}
