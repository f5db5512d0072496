package usb

import (
	"fmt"
	"time"

	"github.com/google/gousb"
)

// controlTimeout matches the standard control-transfer timeout used by the
// original kernel path (USB_CTRL_SET_TIMEOUT).
const controlTimeout = 5 * time.Second

type gousbDevice struct {
	ctx *gousb.Context
	dev *gousb.Device
}

// Open opens the first device matching vid/pid and prepares it for vendor
// control transfers on endpoint zero. The kernel driver is detached from
// the claimed interfaces automatically and reattached on Close.
func Open(vid, pid uint16) (ControlDevice, error) {
	ctx := gousb.NewContext()

	dev, err := ctx.OpenDeviceWithVIDPID(gousb.ID(vid), gousb.ID(pid))
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("usb: open %04x:%04x: %w", vid, pid, err)
	}
	if dev == nil {
		ctx.Close()
		return nil, fmt.Errorf("usb: device %04x:%04x not found", vid, pid)
	}

	if err := dev.SetAutoDetach(true); err != nil {
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("usb: auto-detach: %w", err)
	}
	dev.ControlTimeout = controlTimeout

	return &gousbDevice{ctx: ctx, dev: dev}, nil
}

func (d *gousbDevice) Control(requestType, request uint8, value, index uint16, data []byte) (int, error) {
	return d.dev.Control(requestType, request, value, index, data)
}

func (d *gousbDevice) Close() error {
	err := d.dev.Close()
	if cerr := d.ctx.Close(); err == nil {
		err = cerr
	}
	return err
}
