package core

// RuntimeConfig contains configuration the platform passes to a game at
// initialization. Games use this for deterministic simulation; the screen
// dimensions belong to the renderer and may change on terminal resize.
type RuntimeConfig struct {
	ScreenW   int     // Screen width in characters
	ScreenH   int     // Screen height in characters
	FrameRate int     // Render frames per second (default 60)
	TimeScale float64 // Initial simulation time scale (default 1.0)
	Seed      int64   // RNG seed; 0 means derive from current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 60,
		TimeScale: 1.0,
		Seed:      0,
	}
}

// GameState communicates game status to the platform after each step.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Started  bool // Whether the player has left the idle screen
}

// StepResult is returned after each fixed simulation step.
type StepResult struct {
	State GameState
}
