// Package util provides small shared helpers for the converter front ends:
// size constants, status colors and formatting for progress and reports.
package util

import "image/color"

// Size constants for byte calculations
const (
	KiB = 1 << 10
	MiB = 1 << 20
	GiB = 1 << 30
	TiB = 1 << 40
)

// Colors for the main status line.
var (
	WHITE  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	RED    = color.RGBA{0xff, 0x00, 0x00, 0xff}
	GREEN  = color.RGBA{0x00, 0xff, 0x00, 0xff}
	YELLOW = color.RGBA{0xcc, 0x70, 0x00, 0xff} // dark amber, readable on light themes
)
