// Package config loads the driver's load-time configuration from a TOML
// file. Missing files yield the defaults; a default file is written so the
// user has something to edit.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/openperipheral/k90/internal/evdev"
	"github.com/openperipheral/k90/pkg/k90"
)

// Config is the whole configuration file.
type Config struct {
	// GKeyCodes overrides the output key code for G1..G18. Must hold
	// exactly 18 entries.
	GKeyCodes []uint16 `toml:"gkey_codes"`
}

// Default returns the built-in configuration: G1..G12 bound to F13..F24,
// G13..G18 to the miscellaneous button range.
func Default() *Config {
	codes := []uint16{
		evdev.KeyF13,
		evdev.KeyF14,
		evdev.KeyF15,
		evdev.KeyF16,
		evdev.KeyF17,
		evdev.KeyF18,
		evdev.KeyF19,
		evdev.KeyF20,
		evdev.KeyF21,
		evdev.KeyF22,
		evdev.KeyF23,
		evdev.KeyF24,
	}
	for i := uint16(0); i < 6; i++ {
		codes = append(codes, evdev.BtnMisc+i)
	}
	return &Config{GKeyCodes: codes}
}

// Load reads the configuration at path. If the file does not exist, the
// defaults are saved there and returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Save(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

func (c *Config) validate() error {
	if len(c.GKeyCodes) != k90.GKeyCount {
		return fmt.Errorf("gkey_codes must have %d entries, got %d", k90.GKeyCount, len(c.GKeyCodes))
	}
	return nil
}
