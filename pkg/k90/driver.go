package k90

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/openperipheral/k90/pkg/usb"
)

var (
	// ErrNotSupported is returned by attribute operations on a handle that
	// carries no device state (secondary interface, or already detached).
	ErrNotSupported = errors.New("k90: operation not supported on this interface")
	// ErrInvalidInput is returned when an attribute write carries an
	// out-of-range value or an unrecognized token.
	ErrInvalidInput = errors.New("k90: invalid input")
)

// Config carries the load-time driver configuration.
type Config struct {
	// GKeyCodes maps G1..G18 to output key codes. Must hold exactly
	// GKeyCount entries.
	GKeyCodes []uint16
	// Logger receives the attach-time status-query warning. Defaults to
	// the standard logger.
	Logger *log.Logger
}

// Driver holds the immutable per-load configuration shared by every
// attached device instance.
type Driver struct {
	gkeyCodes [GKeyCount]uint16
	logger    *log.Logger
}

// NewDriver validates cfg and returns a driver. The G-key table is copied
// and immutable afterwards.
func NewDriver(cfg Config) (*Driver, error) {
	if len(cfg.GKeyCodes) != GKeyCount {
		return nil, fmt.Errorf("k90: gkey table must have %d entries, got %d", GKeyCount, len(cfg.GKeyCodes))
	}
	d := &Driver{logger: cfg.Logger}
	copy(d.gkeyCodes[:], cfg.GKeyCodes)
	if d.logger == nil {
		d.logger = log.Default()
	}
	return d, nil
}

// Handle identifies one bound USB interface of a physical keyboard.
type Handle struct {
	// Interface is the USB interface number the instance binds to. Only
	// interface 0 carries device state.
	Interface int
	// Device is the control-transfer endpoint of the keyboard.
	Device usb.ControlDevice
}

// deviceState mirrors what the keyboard last reported or acknowledged.
type deviceState struct {
	brightness     int  // 0..3
	currentProfile int  // 1..3
	macroMode      bool // true = hardware playback
	macroRecord    bool
	metaLocked     bool // tracked from events, never surfaced
}

// Instance is one attached interface of a K90. All exported methods are
// safe for concurrent use.
type Instance struct {
	driver *Driver

	mu    sync.Mutex
	dev   usb.ControlDevice
	state *deviceState // nil on secondary interfaces and after Detach
}

// Attach binds the driver to one interface of the keyboard. On interface 0
// it creates device state, seeding brightness and profile from a hardware
// status query; a failed query logs a warning and falls back to brightness
// 0, profile 1 rather than failing the attach. Other interfaces get a
// stateless instance whose classifier is a no-op and whose attribute
// surface reports ErrNotSupported.
func (d *Driver) Attach(h Handle) (*Instance, error) {
	if h.Device == nil {
		return nil, errors.New("k90: attach without control device")
	}
	in := &Instance{driver: d, dev: h.Device}
	if h.Interface != 0 {
		return in, nil
	}

	st := &deviceState{brightness: 0, currentProfile: 1}
	if brightness, profile, err := in.queryStatus(); err != nil {
		d.logger.Printf("k90: failed to read initial state, using defaults: %v", err)
	} else {
		st.brightness = brightness
		st.currentProfile = profile
	}
	in.state = st
	return in, nil
}

// Detach releases the device state. It waits for in-flight operations to
// drain; once it returns, the attribute surface reports ErrNotSupported
// and events are ignored. The control device itself stays open; the caller
// that supplied it closes it.
func (in *Instance) Detach() {
	in.mu.Lock()
	in.state = nil
	in.mu.Unlock()
}

// OnEvent consumes one changed input field. Special-function usages update
// the mirrored device state; the keyboard has already performed the
// transition itself, so no hardware command is issued. Stateless instances
// ignore everything.
func (in *Instance) OnEvent(usage uint32, value int32) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if in.state == nil {
		return
	}

	switch usage {
	case UsageMacroRecordStart:
		in.state.macroRecord = true
	case UsageMacroRecordStop:
		in.state.macroRecord = false
	case UsageM1, UsageM2, UsageM3:
		in.state.currentProfile = int(usage-UsageProfile) + 1
	case UsageMetaOff, UsageMetaOn:
		// The keyboard reports both meta transitions, but the original
		// driver clears the flag for either one.
		in.state.metaLocked = false
	case UsageLightOff, UsageLightDim, UsageLightMedium, UsageLightBright:
		in.state.brightness = int(usage - UsageLight)
	}
}

// State is a read-only snapshot of the externally visible device state.
type State struct {
	Brightness     int
	CurrentProfile int
	MacroHW        bool
	MacroRecording bool
}

// State returns a snapshot of the current device state, or ErrNotSupported
// for a stateless handle.
func (in *Instance) State() (State, error) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if in.state == nil {
		return State{}, ErrNotSupported
	}
	return State{
		Brightness:     in.state.brightness,
		CurrentProfile: in.state.currentProfile,
		MacroHW:        in.state.macroMode,
		MacroRecording: in.state.macroRecord,
	}, nil
}
