package k90

import (
	"strconv"
	"strings"
)

// The attribute surface mirrors the original driver's four sysfs files:
// each field reads back as newline-terminated text and writes parse the
// same text form. A write talks to the hardware first and only updates the
// mirrored state once the transfer succeeded, so a transport failure leaves
// the state at its pre-write value.

// ShowBrightness renders the backlight brightness (0..3).
func (in *Instance) ShowBrightness() (string, error) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if in.state == nil {
		return "", ErrNotSupported
	}
	return strconv.Itoa(in.state.brightness) + "\n", nil
}

// StoreBrightness parses a brightness in 0..3 and programs it. It returns
// the number of input bytes consumed.
func (in *Instance) StoreBrightness(buf string) (int, error) {
	brightness, err := parseInt(buf)
	if err != nil {
		return 0, err
	}
	if brightness < 0 || brightness > 3 {
		return 0, ErrInvalidInput
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	if in.state == nil {
		return 0, ErrNotSupported
	}
	if err := in.sendCommand(requestBrightness, uint16(brightness)); err != nil {
		return 0, err
	}
	in.state.brightness = brightness
	return len(buf), nil
}

// ShowMacroMode renders the macro playback mode as "SW" or "HW".
func (in *Instance) ShowMacroMode() (string, error) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if in.state == nil {
		return "", ErrNotSupported
	}
	if in.state.macroMode {
		return "HW\n", nil
	}
	return "SW\n", nil
}

// StoreMacroMode accepts "SW" or "HW" (leading characters, case-sensitive)
// and programs the playback mode.
func (in *Instance) StoreMacroMode(buf string) (int, error) {
	var value uint16
	switch {
	case strings.HasPrefix(buf, "SW"):
		value = macroModeSW
	case strings.HasPrefix(buf, "HW"):
		value = macroModeHW
	default:
		return 0, ErrInvalidInput
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	if in.state == nil {
		return 0, ErrNotSupported
	}
	if err := in.sendCommand(requestMacroMode, value); err != nil {
		return 0, err
	}
	in.state.macroMode = value == macroModeHW
	return len(buf), nil
}

// ShowMacroRecord renders the macro-record indicator as "ON" or "OFF".
func (in *Instance) ShowMacroRecord() (string, error) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if in.state == nil {
		return "", ErrNotSupported
	}
	if in.state.macroRecord {
		return "ON\n", nil
	}
	return "OFF\n", nil
}

// StoreMacroRecord accepts "ON" or "OFF" and drives the record LED. The
// LED shares its request number with the macro mode; see control.go.
func (in *Instance) StoreMacroRecord(buf string) (int, error) {
	var value uint16
	switch {
	case strings.HasPrefix(buf, "ON"):
		value = macroLEDOn
	case strings.HasPrefix(buf, "OFF"):
		value = macroLEDOff
	default:
		return 0, ErrInvalidInput
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	if in.state == nil {
		return 0, ErrNotSupported
	}
	if err := in.sendCommand(requestMacroMode, value); err != nil {
		return 0, err
	}
	in.state.macroRecord = value == macroLEDOn
	return len(buf), nil
}

// ShowCurrentProfile renders the active profile (1..3).
func (in *Instance) ShowCurrentProfile() (string, error) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if in.state == nil {
		return "", ErrNotSupported
	}
	return strconv.Itoa(in.state.currentProfile) + "\n", nil
}

// StoreCurrentProfile parses a profile in 1..3 and selects it.
func (in *Instance) StoreCurrentProfile(buf string) (int, error) {
	profile, err := parseInt(buf)
	if err != nil {
		return 0, err
	}
	if profile < 1 || profile > 3 {
		return 0, ErrInvalidInput
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	if in.state == nil {
		return 0, ErrNotSupported
	}
	if err := in.sendCommand(requestProfile, uint16(profile)); err != nil {
		return 0, err
	}
	in.state.currentProfile = profile
	return len(buf), nil
}

func parseInt(buf string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(buf))
	if err != nil {
		return 0, ErrInvalidInput
	}
	return v, nil
}

// Attribute is one named entry of the textual surface.
type Attribute struct {
	Name  string
	Show  func() (string, error)
	Store func(string) (int, error)
}

// Attributes lists the four externally exposed attributes in stable order.
func (in *Instance) Attributes() []Attribute {
	return []Attribute{
		{Name: "brightness", Show: in.ShowBrightness, Store: in.StoreBrightness},
		{Name: "macro_mode", Show: in.ShowMacroMode, Store: in.StoreMacroMode},
		{Name: "macro_record", Show: in.ShowMacroRecord, Store: in.StoreMacroRecord},
		{Name: "current_profile", Show: in.ShowCurrentProfile, Store: in.StoreCurrentProfile},
	}
}

// Attr returns the named attribute, or false if it does not exist.
func (in *Instance) Attr(name string) (Attribute, bool) {
	for _, a := range in.Attributes() {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}
