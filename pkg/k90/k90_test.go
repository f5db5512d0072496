package k90

import (
	"io"
	"log"
	"testing"
)

func testDriver(t *testing.T) *Driver {
	t.Helper()
	codes := make([]uint16, GKeyCount)
	for i := range codes {
		codes[i] = uint16(0x200 + i)
	}
	d, err := NewDriver(Config{GKeyCodes: codes, Logger: log.New(io.Discard, "", 0)})
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}
	return d
}

func TestUsageToGKey(t *testing.T) {
	for usage := uint32(0); usage <= 0xff; usage++ {
		want := 0
		switch {
		case usage >= 0xd0 && usage <= 0xdf:
			want = int(usage-0xd0) + 1
		case usage >= 0xe8 && usage <= 0xe9:
			want = int(usage-0xe8) + 17
		}
		if got := UsageToGKey(usage); got != want {
			t.Errorf("UsageToGKey(%#02x) = %d, want %d", usage, got, want)
		}
	}
}

func TestMapUsage(t *testing.T) {
	d := testDriver(t)

	tests := []struct {
		name   string
		usage  uint32
		action MappingAction
		code   uint16
	}{
		{"G1", 0xd0, MapGKey, 0x200},
		{"G16", 0xdf, MapGKey, 0x20f},
		{"G17", 0xe8, MapGKey, 0x210},
		{"G18", 0xe9, MapGKey, 0x211},
		{"SpecialMin", 0xf0, MapSuppress, 0},
		{"SpecialMax", 0xff, MapSuppress, 0},
		{"LightBright", 0xfd, MapSuppress, 0},
		{"PlainKey", 0x04, MapDefault, 0},
		{"BelowGKeys", 0xcf, MapDefault, 0},
		{"BetweenRanges", 0xe0, MapDefault, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := d.MapUsage(tt.usage)
			if m.Action != tt.action {
				t.Fatalf("action = %d, want %d", m.Action, tt.action)
			}
			if m.Code != tt.code {
				t.Fatalf("code = %#04x, want %#04x", m.Code, tt.code)
			}
		})
	}
}

func TestMapUsageSuppressesAllSpecials(t *testing.T) {
	d := testDriver(t)
	for usage := uint32(UsageSpecialMin); usage <= UsageSpecialMax; usage++ {
		if UsageToGKey(usage) != 0 {
			continue
		}
		if m := d.MapUsage(usage); m.Action != MapSuppress {
			t.Errorf("MapUsage(%#02x).Action = %d, want MapSuppress", usage, m.Action)
		}
	}
}

func TestNewDriverDefaultLogger(t *testing.T) {
	d, err := NewDriver(Config{GKeyCodes: make([]uint16, GKeyCount)})
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}
	if d.logger != log.Default() {
		t.Fatal("nil Logger should fall back to the default logger")
	}
}

func TestNewDriverValidatesTable(t *testing.T) {
	tests := []struct {
		name    string
		entries int
		wantErr bool
	}{
		{"Exact", GKeyCount, false},
		{"Short", GKeyCount - 1, true},
		{"Long", GKeyCount + 1, true},
		{"Empty", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDriver(Config{GKeyCodes: make([]uint16, tt.entries)})
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewDriver with %d entries: err = %v, wantErr %v", tt.entries, err, tt.wantErr)
			}
		})
	}
}
