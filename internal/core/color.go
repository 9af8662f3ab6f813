package core

import (
	"fmt"
	"math/rand"
)

// Color is a 24-bit RGB color. Wall segments and the ball carry arbitrary
// generated colors, so a fixed palette enum is not enough here; the
// platform layer maps these to terminal truecolor sequences.
type Color struct {
	R, G, B uint8
}

// ColorDefault is the zero value, rendered with the terminal's default
// foreground.
var ColorDefault = Color{}

// RGB creates a color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex returns the color as a "#rrggbb" string, the form lipgloss accepts.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RandomColor draws a color with independent uniform RGB components from
// the given source. Components start at 48 so generated walls stay
// distinguishable on dark terminal backgrounds.
func RandomColor(rng *rand.Rand) Color {
	return Color{
		R: uint8(48 + rng.Intn(208)),
		G: uint8(48 + rng.Intn(208)),
		B: uint8(48 + rng.Intn(208)),
	}
}
