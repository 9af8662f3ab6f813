// Package game implements the colorwalls simulation core: a ball bounces
// between colored side walls and must hit wall segments of its own color
// to keep going. The package is pure logic driven by fixed steps; timing,
// input mapping and rendering live in the platform layer.
package game

import (
	"math/rand"

	"github.com/avoronkov/colorwalls/internal/config"
	"github.com/avoronkov/colorwalls/internal/core"
)

// Phase is the top-level game state. Transitions are one-directional
// except for the explicit restart, which the platform performs by calling
// Reset.
type Phase int

const (
	// PhaseIdle: initial state, the ball hovers with no motion.
	PhaseIdle Phase = iota
	// PhaseBouncing: one bounce arc is in progress.
	PhaseBouncing
	// PhaseFalling: between arcs, the ball drifts down and sideways.
	PhaseFalling
	// PhaseGameOver: terminal until restart.
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseBouncing:
		return "bouncing"
	case PhaseFalling:
		return "falling"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Game owns all simulation state. It is not safe for concurrent use: the
// platform calls Step zero or more times per rendered frame, strictly
// sequentially, and reads state only between frames.
type Game struct {
	cfg config.GameConfig
	rng *rand.Rand

	phase  Phase
	ball   Ball
	layout Layout
	score  int
	steps  uint64

	// layoutPending defers wall regeneration to the start of the step
	// after a match, so the renderer shows the hit against the walls
	// that were actually struck.
	layoutPending bool

	prev, curr Snapshot
	onScore    func(score int)
}

// New creates a game with the given configuration. Panics if the
// configuration is invalid; loaders validate, so reaching this with a bad
// config is a programming error. Call Reset before stepping.
func New(cfg config.GameConfig) *Game {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	g := &Game{cfg: cfg}
	g.Reset(0)
	return g
}

// ID returns the identifier used for config files and screenshots.
func (g *Game) ID() string {
	return "colorwalls"
}

// Title returns the display name of the game.
func (g *Game) Title() string {
	return "Color Walls"
}

// Reset reinitializes every entity to its creation-time values: score 0,
// layout level 0, ball at the configured start position moving right,
// phase idle. The same seed reproduces the same layouts and ball colors.
func (g *Game) Reset(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.phase = PhaseIdle
	g.score = 0
	g.steps = 0
	g.layoutPending = false

	g.layout = GenerateLayout(g.rng, MinLevel, g.cfg.Bounds.Bottom, g.cfg.Bounds.Top)
	g.ball = Ball{
		X:     g.cfg.Ball.StartX,
		Y:     g.cfg.Ball.StartY,
		Dir:   DirRight,
		Color: g.layout.Palette[g.rng.Intn(len(g.layout.Palette))],
	}

	snap := g.snapshot()
	g.prev, g.curr = snap, snap
}

// SetScoreFunc registers a callback invoked with the new total after
// every score increment. The core never touches the UI directly.
func (g *Game) SetScoreFunc(fn func(score int)) {
	g.onScore = fn
}

// Step advances the simulation by one fixed step. The input frame holds
// the discrete actions triggered since the previous step; the platform
// passes a latched frame to the first step of a render frame and empty
// frames to any catch-up steps after it.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.prev = g.curr
	g.steps++

	if in.Has(core.ActionForceOver) && (g.phase == PhaseBouncing || g.phase == PhaseFalling) {
		g.phase = PhaseGameOver
	}

	// A pending match regeneration applies before any motion, one step
	// after the collision that requested it.
	if g.layoutPending && g.phase != PhaseGameOver {
		g.regenerate()
	}

	switch g.phase {
	case PhaseIdle:
		if in.Has(core.ActionBounce) {
			g.ball.BeginArc(g.cfg.Bounce)
			g.phase = PhaseBouncing
			g.stepBounce()
		}
	case PhaseFalling:
		if in.Has(core.ActionBounce) {
			g.ball.BeginArc(g.cfg.Bounce)
			g.phase = PhaseBouncing
			g.stepBounce()
		} else {
			g.stepFall()
		}
	case PhaseBouncing:
		g.stepBounce()
	case PhaseGameOver:
		// Terminal: no motion, no score changes until Reset.
	}

	g.curr = g.snapshot()
	return core.StepResult{State: g.State()}
}

// stepBounce runs one arc step: primary motion, collision resolution,
// then the secondary settle nudge with the same angle. The arc hands over
// to the falling phase once the end angle is reached.
func (g *Game) stepBounce() {
	g.ball.AdvanceArc(g.cfg.Bounce, g.cfg.Simulation.Step)
	g.apply(g.resolveBall())
	if g.phase == PhaseGameOver {
		return
	}
	g.ball.Settle(g.cfg.Bounce)
	if g.ball.ArcDone(g.cfg.Bounce) {
		g.phase = PhaseFalling
	}
}

// stepFall runs one falling-phase step followed by collision resolution.
func (g *Game) stepFall() {
	g.ball.Fall(g.cfg.Fall)
	g.apply(g.resolveBall())
}

func (g *Game) resolveBall() Outcome {
	bounds := core.Bounds{
		Left:   g.cfg.Bounds.Left,
		Right:  g.cfg.Bounds.Right,
		Bottom: g.cfg.Bounds.Bottom,
		Top:    g.cfg.Bounds.Top,
	}
	return resolve(g.ball, g.layout, bounds, g.cfg.Ball.HalfWidth, g.cfg.Ball.HalfHeight)
}

// apply turns a resolver outcome into state changes.
func (g *Game) apply(o Outcome) {
	switch {
	case o == OutcomeMatch:
		g.ball.Dir = g.ball.Dir.Opposite()
		g.score++
		if g.onScore != nil {
			g.onScore(g.score)
		}
		g.layoutPending = true
	case o.Terminal():
		g.phase = PhaseGameOver
	}
}

// regenerate replaces the walls with a new layout at a different level
// and recolors the ball from the new palette.
func (g *Game) regenerate() {
	level := NextLevel(g.rng, g.layout.Level)
	g.layout = GenerateLayout(g.rng, level, g.cfg.Bounds.Bottom, g.cfg.Bounds.Top)
	g.ball.Color = g.layout.Palette[g.rng.Intn(len(g.layout.Palette))]
	g.layoutPending = false
}

// State returns the platform-facing game status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
		Started:  g.phase != PhaseIdle,
	}
}

// Phase returns the current top-level phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Layout returns the current wall layout. The returned value must not be
// mutated.
func (g *Game) Layout() Layout {
	return g.layout
}

// Ball returns a copy of the current ball state.
func (g *Game) Ball() Ball {
	return g.ball
}

// Config returns the game configuration.
func (g *Game) Config() config.GameConfig {
	return g.cfg
}
