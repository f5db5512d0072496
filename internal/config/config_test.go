package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/openperipheral/k90/internal/evdev"
	"github.com/openperipheral/k90/pkg/k90"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if len(cfg.GKeyCodes) != k90.GKeyCount {
		t.Fatalf("default table has %d entries, want %d", len(cfg.GKeyCodes), k90.GKeyCount)
	}
	if cfg.GKeyCodes[0] != evdev.KeyF13 {
		t.Errorf("G1 = %d, want KEY_F13 (%d)", cfg.GKeyCodes[0], evdev.KeyF13)
	}
	if cfg.GKeyCodes[11] != evdev.KeyF24 {
		t.Errorf("G12 = %d, want KEY_F24 (%d)", cfg.GKeyCodes[11], evdev.KeyF24)
	}
	if cfg.GKeyCodes[17] != evdev.BtnMisc+5 {
		t.Errorf("G18 = %d, want BTN_MISC+5 (%d)", cfg.GKeyCodes[17], evdev.BtnMisc+5)
	}
}

func TestLoadMissingFileWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "k90.toml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.GKeyCodes) != k90.GKeyCount {
		t.Fatalf("got %d entries", len(cfg.GKeyCodes))
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default file not written: %v", err)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "k90.toml")

	want := Default()
	want.GKeyCodes[0] = 59 // KEY_F1
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.GKeyCodes[0] != 59 {
		t.Fatalf("G1 = %d after round trip, want 59", got.GKeyCodes[0])
	}
}

func TestLoadRejectsWrongTableSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "k90.toml")
	if err := os.WriteFile(path, []byte("gkey_codes = [183, 184]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for short gkey_codes table")
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "k90.toml")
	if err := os.WriteFile(path, []byte("gkey_codes = [\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed file")
	}
}
