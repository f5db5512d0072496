package usb

// ControlDevice is a synchronous vendor control-transfer endpoint.
type ControlDevice interface {
	// Control performs one control transfer and blocks until it completes
	// or the transport's timeout expires. It returns the number of bytes
	// transferred. data may be nil for zero-length transfers.
	Control(requestType, request uint8, value, index uint16, data []byte) (int, error)
	Close() error
}

// bmRequestType values for vendor requests addressed to the device.
const (
	VendorRequestOut = 0x40 // host to device
	VendorRequestIn  = 0xc0 // device to host
)
