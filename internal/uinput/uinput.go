// Package uinput injects remapped G-key events into the input subsystem
// through a virtual keyboard, standing in for the kernel input core the
// original driver delivered events to.
package uinput

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/openperipheral/k90/internal/evdev"
	"github.com/openperipheral/k90/pkg/k90"
)

const devicePath = "/dev/uinput"

// inputID mirrors struct input_id.
type inputID struct {
	Bustype uint16
	Vendor  uint16
	Product uint16
	Version uint16
}

// userDev mirrors struct uinput_user_dev.
type userDev struct {
	Name       [evdev.MaxNameSize]byte
	ID         inputID
	EffectsMax uint32
	Absmax     [64]int32
	Absmin     [64]int32
	Absfuzz    [64]int32
	Absflat    [64]int32
}

// inputEvent mirrors struct input_event.
type inputEvent struct {
	Time  syscall.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// Keyboard is a uinput virtual keyboard limited to a fixed set of key codes.
type Keyboard struct {
	file *os.File
}

// NewKeyboard creates a virtual keyboard named name that can emit the given
// key codes.
func NewKeyboard(name string, codes []uint16) (*Keyboard, error) {
	f, err := os.OpenFile(devicePath, syscall.O_WRONLY|syscall.O_NONBLOCK, 0660)
	if err != nil {
		return nil, fmt.Errorf("uinput: open %s: %w", devicePath, err)
	}

	if err := ioctl(f, evdev.SetEvBit, uintptr(evdev.EvKey)); err != nil {
		f.Close()
		return nil, fmt.Errorf("uinput: enable key events: %w", err)
	}
	for _, code := range codes {
		if err := ioctl(f, evdev.SetKeyBit, uintptr(code)); err != nil {
			f.Close()
			return nil, fmt.Errorf("uinput: enable key %d: %w", code, err)
		}
	}

	dev := userDev{
		ID: inputID{
			Bustype: evdev.BusUSB,
			Vendor:  k90.CorsairVID,
			Product: k90.K90PID,
			Version: 1,
		},
	}
	copy(dev.Name[:], name)

	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, dev); err != nil {
		f.Close()
		return nil, fmt.Errorf("uinput: encode device: %w", err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return nil, fmt.Errorf("uinput: write device: %w", err)
	}
	if err := ioctl(f, evdev.DevCreate, 0); err != nil {
		f.Close()
		return nil, fmt.Errorf("uinput: create device: %w", err)
	}

	return &Keyboard{file: f}, nil
}

// SendKey emits one key press or release followed by a sync report.
func (k *Keyboard) SendKey(code uint16, pressed bool) error {
	var value int32
	if pressed {
		value = 1
	}
	events := []inputEvent{
		{Type: evdev.EvKey, Code: code, Value: value},
		{Type: evdev.EvSyn, Code: evdev.SynReport, Value: 0},
	}

	buf := new(bytes.Buffer)
	for _, ev := range events {
		if err := binary.Write(buf, binary.LittleEndian, ev); err != nil {
			return fmt.Errorf("uinput: encode event: %w", err)
		}
	}
	if _, err := k.file.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("uinput: write event: %w", err)
	}
	return nil
}

// Close destroys the virtual device.
func (k *Keyboard) Close() error {
	_ = ioctl(k.file, evdev.DevDestroy, 0)
	return k.file.Close()
}

func ioctl(f *os.File, request uint, arg uintptr) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, f.Fd(), uintptr(request), arg)
	if errno != 0 {
		return errno
	}
	return nil
}
