// Package core provides fundamental types for the game: the fixed-step
// clock, the screen buffer, colors, input actions and geometry helpers.
// It contains no external dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

// Bounds describes the rectangular play area in simulation coordinates.
// Y grows upward; the walls sit on the Left and Right edges.
type Bounds struct {
	Left, Right float64
	Bottom, Top float64
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Clamp restricts an integer to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
