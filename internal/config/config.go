// Package config provides YAML-based game configuration loading for
// colorwalls, with embedded defaults and user overrides.
package config

import "fmt"

// GameConfig contains every tunable of the simulation core.
type GameConfig struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Bounds     BoundsConfig     `yaml:"bounds"`
	Ball       BallConfig       `yaml:"ball"`
	Bounce     BounceConfig     `yaml:"bounce"`
	Fall       FallConfig       `yaml:"fall"`
}

// SimulationConfig defines the fixed-timestep parameters.
type SimulationConfig struct {
	// Step is the fixed simulation step in seconds.
	Step float64 `yaml:"step"`
}

// BoundsConfig defines the play area in simulation units. Y grows upward.
type BoundsConfig struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Top    float64 `yaml:"top"`
}

// BallConfig defines the ball's extents and starting position.
type BallConfig struct {
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
	StartX     float64 `yaml:"start_x"`
	StartY     float64 `yaml:"start_y"`
}

// BounceConfig defines the scripted bounce arc. Angles are expressed in
// multiples of pi; the arc runs from AngleStart to AngleEnd, advancing by
// AngleRate*step*pi radians per fixed step.
type BounceConfig struct {
	AngleStart     float64 `yaml:"angle_start"`
	AngleEnd       float64 `yaml:"angle_end"`
	AngleRate      float64 `yaml:"angle_rate"`
	HorizontalStep float64 `yaml:"horizontal_step"`
	VerticalStep   float64 `yaml:"vertical_step"`
	SettleStep     float64 `yaml:"settle_step"`
}

// FallConfig defines the drift between bounce arcs.
type FallConfig struct {
	DropStep  float64 `yaml:"drop_step"`
	DriftStep float64 `yaml:"drift_step"`
}

// Validate checks the configuration for values that would break the
// simulation. Loaders call this so a bad file fails fast at startup
// instead of misbehaving mid-game.
func (c GameConfig) Validate() error {
	if c.Simulation.Step <= 0 {
		return fmt.Errorf("config: simulation.step must be positive, got %v", c.Simulation.Step)
	}
	if c.Bounds.Right <= c.Bounds.Left {
		return fmt.Errorf("config: bounds.right (%v) must exceed bounds.left (%v)", c.Bounds.Right, c.Bounds.Left)
	}
	if c.Bounds.Top <= c.Bounds.Bottom {
		return fmt.Errorf("config: bounds.top (%v) must exceed bounds.bottom (%v)", c.Bounds.Top, c.Bounds.Bottom)
	}
	if c.Ball.HalfWidth <= 0 || c.Ball.HalfHeight <= 0 {
		return fmt.Errorf("config: ball extents must be positive")
	}
	if c.Bounce.AngleEnd <= c.Bounce.AngleStart {
		return fmt.Errorf("config: bounce.angle_end (%v) must exceed bounce.angle_start (%v)", c.Bounce.AngleEnd, c.Bounce.AngleStart)
	}
	if c.Bounce.AngleRate <= 0 {
		return fmt.Errorf("config: bounce.angle_rate must be positive, got %v", c.Bounce.AngleRate)
	}
	if c.Fall.DropStep <= 0 {
		return fmt.Errorf("config: fall.drop_step must be positive, got %v", c.Fall.DropStep)
	}
	return nil
}
