// Package discover enumerates the K90's HID interfaces so callers can see
// which interface would carry the device state (interface 0) before
// binding anything.
package discover

import (
	"github.com/karalabe/usb"

	"github.com/openperipheral/k90/pkg/k90"
)

// Interface describes one enumerated HID interface of a connected K90.
type Interface struct {
	Path         string
	Product      string
	Manufacturer string
	Interface    int
	// Primary is true for the control interface that carries device state.
	Primary bool
}

// Keyboards lists the HID interfaces of every connected K90.
func Keyboards() ([]Interface, error) {
	infos, err := usb.EnumerateHid(k90.CorsairVID, k90.K90PID)
	if err != nil {
		return nil, err
	}

	out := make([]Interface, 0, len(infos))
	for _, info := range infos {
		out = append(out, Interface{
			Path:         info.Path,
			Product:      info.Product,
			Manufacturer: info.Manufacturer,
			Interface:    info.Interface,
			Primary:      info.Interface == 0,
		})
	}
	return out, nil
}
