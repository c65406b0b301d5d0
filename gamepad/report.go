// Package gamepad implements a HID gamepad input driver for text-mode
// menus: it turns raw 8-byte controller reports into discrete,
// edge-triggered logical keys delivered through a bounded queue.
//
// The driver is strictly non-blocking and spawns no goroutines; the host
// loop drives it by calling GetKey repeatedly.
package gamepad

// ReportSize is the fixed length of a controller input report.
const ReportSize = 8

// Axis scale constants. Most generic SNES-style USB pads report axes as
// a full byte with 0x7F at rest.
const (
	AxisMin    = 0x00
	AxisCenter = 0x7F
	AxisMax    = 0xFF

	// DefaultThreshold is the deadzone half-width around AxisCenter
	// (a quarter of the range). Cheap pads jitter a few units around
	// center; anything inside the band is treated as neutral.
	DefaultThreshold = 0x40
)

// Report is one sampled controller state.
//
// Layout:
//
//	byte 0: X axis (0x00=left, 0x7F=center, 0xFF=right)
//	byte 1: Y axis (0x00=up,   0x7F=center, 0xFF=down)
//	byte 2-3: unused (usually 0x7F)
//	byte 4: button bitmask, one bit per Button
//	byte 5-7: unused
type Report [ReportSize]byte

// ParseReport copies data into a Report. It returns false when data is
// shorter than ReportSize; a short read carries no new state and the
// caller must keep diffing against its last full report.
func ParseReport(data []byte) (Report, bool) {
	var r Report
	if len(data) < ReportSize {
		return r, false
	}
	copy(r[:], data[:ReportSize])
	return r, true
}

// Baseline returns the resting state a session diffs its first real
// report against: both axes centered, no buttons down.
func Baseline() Report {
	var r Report
	for i := range r {
		r[i] = AxisCenter
	}
	r[4] = 0
	return r
}

// X returns the horizontal axis sample.
func (r Report) X() uint8 { return r[0] }

// Y returns the vertical axis sample.
func (r Report) Y() uint8 { return r[1] }

// Buttons returns the button bitmask.
func (r Report) Buttons() uint8 { return r[4] }

// AxisZone classifies an axis sample relative to the deadzone.
type AxisZone int8

const (
	ZoneLow     AxisZone = -1 // left or up
	ZoneNeutral AxisZone = 0
	ZoneHigh    AxisZone = 1 // right or down
)
