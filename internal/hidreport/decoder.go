// Package hidreport turns the keyboard's raw vendor input reports into the
// per-usage change events the driver core consumes. The kernel HID stack
// does this for the original driver; in user space we decode the reports
// ourselves.
package hidreport

// Event is one changed input field: a usage code and its new value
// (1 = active, 0 = released).
type Event struct {
	Usage uint32
	Value int32
}

// Decoder diffs consecutive array-item reports. The K90's vendor reports
// carry the active usage indices as report bytes; a usage missing from the
// next report has been released. The zero Decoder starts with no active
// usages.
type Decoder struct {
	active [256]bool
}

// Next decodes one report and returns the usage changes since the previous
// one: releases first, then presses, each in ascending usage order.
func (d *Decoder) Next(report []byte) []Event {
	var next [256]bool
	for _, b := range report {
		if b != 0 {
			next[b] = true
		}
	}

	var events []Event
	for usage := 0; usage < len(next); usage++ {
		if d.active[usage] && !next[usage] {
			events = append(events, Event{Usage: uint32(usage), Value: 0})
		}
	}
	for usage := 0; usage < len(next); usage++ {
		if next[usage] && !d.active[usage] {
			events = append(events, Event{Usage: uint32(usage), Value: 1})
		}
	}

	d.active = next
	return events
}

// Reset forgets all active usages, e.g. after reopening the device.
func (d *Decoder) Reset() {
	d.active = [256]bool{}
}
