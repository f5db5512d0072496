// Package k90 implements a user-space driver for the Corsair Vengeance K90
// keyboard: it classifies the keyboard's vendor usage codes, tracks the
// device state they report, and drives the vendor control protocol behind
// the textual attribute surface (brightness, macro_mode, macro_record,
// current_profile).
package k90

// VID/PID of the Corsair Vengeance K90.
const (
	CorsairVID uint16 = 0x1b1c
	K90PID     uint16 = 0x1b02
)

// GKeyCount is the number of dedicated programmable macro keys.
const GKeyCount = 18

// Vendor usage codes reported on the keyboard's control interface.
const (
	UsageSpecialMin = 0xf0
	UsageSpecialMax = 0xff

	UsageMacroRecordStart = 0xf6
	UsageMacroRecordStop  = 0xf7

	UsageProfile = 0xf1
	UsageM1      = 0xf1
	UsageM2      = 0xf2
	UsageM3      = 0xf3

	UsageMetaOff = 0xf4
	UsageMetaOn  = 0xf5

	UsageLight       = 0xfa
	UsageLightOff    = 0xfa
	UsageLightDim    = 0xfb
	UsageLightMedium = 0xfc
	UsageLightBright = 0xfd
)

// UsageToGKey returns the 1-based G-key index for a vendor usage code, or 0
// if the usage is not a G-key.
func UsageToGKey(usage uint32) int {
	// G1 (0xd0) to G16 (0xdf)
	if usage >= 0xd0 && usage <= 0xdf {
		return int(usage-0xd0) + 1
	}
	// G17 (0xe8) to G18 (0xe9)
	if usage >= 0xe8 && usage <= 0xe9 {
		return int(usage-0xe8) + 17
	}
	return 0
}

// MappingAction is the outcome of classifying a usage at input-mapping setup.
type MappingAction int

const (
	// MapDefault leaves the usage to standard key handling.
	MapDefault MappingAction = iota
	// MapGKey remaps the usage to the output code carried in the Mapping.
	MapGKey
	// MapSuppress claims the usage for the driver; no input event may be
	// synthesized for it.
	MapSuppress
)

// Mapping is an input-mapping decision for one usage. Code is meaningful
// only for MapGKey.
type Mapping struct {
	Action MappingAction
	Code   uint16
}

// MapUsage decides, once per usage at setup time, how the host input layer
// must treat a usage: G-keys are bound to the configured output code,
// special-function usages are claimed by the driver, everything else passes
// through.
func (d *Driver) MapUsage(usage uint32) Mapping {
	if gkey := UsageToGKey(usage); gkey != 0 {
		return Mapping{Action: MapGKey, Code: d.gkeyCodes[gkey-1]}
	}
	if usage >= UsageSpecialMin && usage <= UsageSpecialMax {
		return Mapping{Action: MapSuppress}
	}
	return Mapping{}
}
