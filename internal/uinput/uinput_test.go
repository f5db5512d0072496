package uinput

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/openperipheral/k90/internal/evdev"
)

func TestInputEventLayout(t *testing.T) {
	// The kernel expects struct input_event: 16 bytes of timestamp, then
	// type, code, value.
	ev := inputEvent{Type: evdev.EvKey, Code: evdev.KeyF20, Value: 1}

	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, ev); err != nil {
		t.Fatalf("encode: %v", err)
	}
	b := buf.Bytes()
	if len(b) != 24 {
		t.Fatalf("encoded length = %d, want 24", len(b))
	}
	if got := binary.LittleEndian.Uint16(b[16:18]); got != evdev.EvKey {
		t.Errorf("type = %d, want %d", got, evdev.EvKey)
	}
	if got := binary.LittleEndian.Uint16(b[18:20]); got != evdev.KeyF20 {
		t.Errorf("code = %d, want %d", got, evdev.KeyF20)
	}
	if got := binary.LittleEndian.Uint32(b[20:24]); got != 1 {
		t.Errorf("value = %d, want 1", got)
	}
}

func TestUserDevLayout(t *testing.T) {
	// struct uinput_user_dev: name, input_id, ff_effects_max, four abs
	// arrays of 64 int32 each.
	want := evdev.MaxNameSize + 8 + 4 + 4*64*4
	if got := binary.Size(userDev{}); got != want {
		t.Fatalf("userDev size = %d, want %d", got, want)
	}

	dev := userDev{ID: inputID{Bustype: evdev.BusUSB}}
	copy(dev.Name[:], "test")

	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, dev); err != nil {
		t.Fatalf("encode: %v", err)
	}
	b := buf.Bytes()
	if string(b[:4]) != "test" {
		t.Errorf("name prefix = %q, want %q", b[:4], "test")
	}
	if got := binary.LittleEndian.Uint16(b[evdev.MaxNameSize : evdev.MaxNameSize+2]); got != evdev.BusUSB {
		t.Errorf("bustype = %d, want %d", got, evdev.BusUSB)
	}
}
