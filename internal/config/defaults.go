package config

import (
	_ "embed"
)

//go:embed defaults/colorwalls.yaml
var defaultYAML []byte

// Default returns the built-in game configuration. Values mirror
// defaults/colorwalls.yaml and serve as the last-resort fallback if the
// embedded file fails to parse.
func Default() GameConfig {
	return GameConfig{
		Simulation: SimulationConfig{
			Step: 0.05,
		},
		Bounds: BoundsConfig{
			Left:   -5.0,
			Right:  5.0,
			Bottom: 0.0,
			Top:    10.0,
		},
		Ball: BallConfig{
			HalfWidth:  1.0,
			HalfHeight: 1.0,
			StartX:     0.0,
			StartY:     5.0,
		},
		Bounce: BounceConfig{
			AngleStart:     0.5,
			AngleEnd:       1.1,
			AngleRate:      0.6,
			HorizontalStep: 0.05,
			VerticalStep:   0.15,
			SettleStep:     0.015,
		},
		Fall: FallConfig{
			DropStep:  0.2,
			DriftStep: 0.05,
		},
	}
}
