// Package evdev holds the Linux input subsystem constants the driver needs
// to express its default G-key bindings and to create a uinput device.
package evdev

// Event types (input-event-codes.h).
const (
	EvSyn uint16 = 0x00
	EvKey uint16 = 0x01

	SynReport uint16 = 0
)

// Key codes used by the default G-key table.
const (
	KeyF13 uint16 = 183
	KeyF14 uint16 = 184
	KeyF15 uint16 = 185
	KeyF16 uint16 = 186
	KeyF17 uint16 = 187
	KeyF18 uint16 = 188
	KeyF19 uint16 = 189
	KeyF20 uint16 = 190
	KeyF21 uint16 = 191
	KeyF22 uint16 = 192
	KeyF23 uint16 = 193
	KeyF24 uint16 = 194

	BtnMisc uint16 = 0x100
)

// uinput ioctls and limits (uinput.h).
const (
	MaxNameSize = 80
	DevCreate   = 0x5501
	DevDestroy  = 0x5502
	SetEvBit    = 0x40045564
	SetKeyBit   = 0x40045565
	BusUSB      = 0x03
)
