package k90

import (
	"fmt"

	"github.com/openperipheral/k90/pkg/usb"
)

// Vendor control request numbers.
const (
	requestBrightness = 49
	requestMacroMode  = 2
	requestStatus     = 4
	requestProfile    = 20
)

// wValue codes for requestMacroMode. The macro-record LED shares the
// request number with the playback mode; only the value differs. That is
// how the hardware works, not a driver shortcut.
const (
	macroModeSW  = 0x0030
	macroModeHW  = 0x0001
	macroLEDOn   = 0x0020
	macroLEDOff  = 0x0040
	statusLength = 8
)

// queryStatus reads the 8-byte status report: brightness at byte 4,
// current profile at byte 7.
func (in *Instance) queryStatus() (brightness, profile int, err error) {
	data := make([]byte, statusLength)
	n, err := in.dev.Control(usb.VendorRequestIn, requestStatus, 0, 0, data)
	if err != nil {
		return 0, 0, fmt.Errorf("k90: status query: %w", err)
	}
	if n < statusLength {
		return 0, 0, fmt.Errorf("k90: status query: short read (%d bytes)", n)
	}
	return int(data[4]), int(data[7]), nil
}

// sendCommand issues one zero-length vendor OUT request.
func (in *Instance) sendCommand(request uint8, value uint16) error {
	if _, err := in.dev.Control(usb.VendorRequestOut, request, value, 0, nil); err != nil {
		return fmt.Errorf("k90: request %d value %#04x: %w", request, value, err)
	}
	return nil
}
