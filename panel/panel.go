// Package panel defines the four Simon panels, their host-page identifiers
// and the "active" class marker used to highlight them.
package panel

import "image/color"

// ID identifies one of the four colored panels.
type ID int

const (
	Green ID = iota
	Red
	Yellow
	Blue
)

// Count is the size of the panel domain.
const Count = 4

// ScoreElementID is the host-page identifier of the score display.
const ScoreElementID = "user_score"

// All lists every panel in intro order.
var All = [Count]ID{Green, Red, Yellow, Blue}

var names = [Count]string{"Green", "Red", "Yellow", "Blue"}

var elementIDs = [Count]string{"green_button", "red_button", "yellow_button", "blue_button"}

// Classic Simon pitches, in Hz.
var frequencies = [Count]float64{415, 310, 252, 209}

var (
	idleColors = [Count]color.NRGBA{
		{R: 0x00, G: 0x7a, B: 0x33, A: 0xff},
		{R: 0x9e, G: 0x0b, B: 0x0f, A: 0xff},
		{R: 0xb3, G: 0x9b, B: 0x00, A: 0xff},
		{R: 0x00, G: 0x3d, B: 0x9e, A: 0xff},
	}
	litColors = [Count]color.NRGBA{
		{R: 0x3d, G: 0xff, B: 0x7d, A: 0xff},
		{R: 0xff, G: 0x4d, B: 0x4d, A: 0xff},
		{R: 0xff, G: 0xf0, B: 0x5a, A: 0xff},
		{R: 0x4d, G: 0x9d, B: 0xff, A: 0xff},
	}
)

// Valid reports whether id is one of the four panels.
func (id ID) Valid() bool {
	return id >= Green && id <= Blue
}

func (id ID) String() string {
	if !id.Valid() {
		return "Unknown"
	}
	return names[id]
}

// ElementID returns the host-page identifier bound to the panel.
func (id ID) ElementID() string {
	if !id.Valid() {
		return ""
	}
	return elementIDs[id]
}

// Frequency returns the tone played while the panel is lit.
func (id ID) Frequency() float64 {
	if !id.Valid() {
		return 0
	}
	return frequencies[id]
}

// Color returns the idle fill of the panel.
func (id ID) Color() color.NRGBA {
	if !id.Valid() {
		return color.NRGBA{}
	}
	return idleColors[id]
}

// LitColor returns the fill of the panel while it carries the active marker.
func (id ID) LitColor() color.NRGBA {
	if !id.Valid() {
		return color.NRGBA{}
	}
	return litColors[id]
}
