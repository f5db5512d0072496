package hidreport

import (
	"fmt"

	usbhid "rafaelmartins.com/p/usbhid"
)

// Source reads raw input reports from an opened HID interface.
type Source interface {
	ReadReport() ([]byte, error)
	Close() error
}

type usbhidSource struct {
	dev *usbhid.Device
}

// Open opens the HID interface of the device matching vid/pid and returns
// a report source for it. Exactly one matching interface must be present.
func Open(vid, pid uint16) (Source, error) {
	dev, err := usbhid.Get(func(d *usbhid.Device) bool {
		return d.VendorId() == vid && d.ProductId() == pid
	}, true, false)
	if err != nil {
		return nil, fmt.Errorf("hidreport: open %04x:%04x: %w", vid, pid, err)
	}
	return &usbhidSource{dev: dev}, nil
}

func (s *usbhidSource) ReadReport() ([]byte, error) {
	_, data, err := s.dev.GetInputReport()
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *usbhidSource) Close() error {
	return s.dev.Close()
}
