package game

import "github.com/avoronkov/colorwalls/internal/core"

// Snapshot captures the renderable simulation state after one fixed
// step. The game keeps the last two snapshots so the renderer can blend
// between them with the clock's alpha instead of drawing stepped motion.
type Snapshot struct {
	Steps uint64
	X, Y  float64
	Angle float64
	Color core.Color
	Dir   Direction
	Phase Phase
	Score int
	Level int
}

func (g *Game) snapshot() Snapshot {
	return Snapshot{
		Steps: g.steps,
		X:     g.ball.X,
		Y:     g.ball.Y,
		Angle: g.ball.Angle,
		Color: g.ball.Color,
		Dir:   g.ball.Dir,
		Phase: g.phase,
		Score: g.score,
		Level: g.layout.Level,
	}
}

// Snapshot returns the state after the most recent step.
func (g *Game) Snapshot() Snapshot {
	return g.curr
}

// Interpolated blends the previous and current snapshots by alpha in
// [0, 1) for rendering between fixed steps. Continuous quantities are
// interpolated; discrete ones come from the current snapshot. A phase
// change between the snapshots disables blending for that frame, so the
// ball never lerps across a restart or a direction flip artifact.
func (g *Game) Interpolated(alpha float64) Snapshot {
	s := g.curr
	if g.prev.Phase != g.curr.Phase || g.prev.Steps > g.curr.Steps {
		return s
	}
	s.X = core.Lerp(g.prev.X, g.curr.X, alpha)
	s.Y = core.Lerp(g.prev.Y, g.curr.Y, alpha)
	s.Angle = core.Lerp(g.prev.Angle, g.curr.Angle, alpha)
	return s
}
