package game

import "github.com/avoronkov/colorwalls/internal/core"

// Outcome classifies the result of a boundary check after one position
// update. Boundary violations are defined game outcomes, never errors.
type Outcome int

const (
	// OutcomeNone: no boundary contact this step.
	OutcomeNone Outcome = iota

	// OutcomeMatch: the ball reached a side wall segment of its own
	// color. Direction flips, the score increments and a new layout is
	// requested.
	OutcomeMatch

	// OutcomeMismatch: the ball reached a side wall segment of a
	// different color. Terminal.
	OutcomeMismatch

	// OutcomeOutOfBounds: the ball left the play area through the top or
	// bottom. Terminal regardless of wall colors.
	OutcomeOutOfBounds

	// OutcomeSeamMiss: the ball crossed a side boundary at a height no
	// segment covers. Generated layouts make this impossible, but the
	// resolver defines it anyway and the game treats it as a mismatch
	// rather than letting the ball escape.
	OutcomeSeamMiss
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeMatch:
		return "match"
	case OutcomeMismatch:
		return "mismatch"
	case OutcomeOutOfBounds:
		return "out-of-bounds"
	case OutcomeSeamMiss:
		return "seam-miss"
	default:
		return "unknown"
	}
}

// Terminal reports whether the outcome ends the game.
func (o Outcome) Terminal() bool {
	return o == OutcomeMismatch || o == OutcomeOutOfBounds || o == OutcomeSeamMiss
}

// resolve checks the ball against the play area boundaries and the
// current wall layout after a position update.
//
// The vertical bounds are checked first and win over any wall contact:
// top contact uses the ball's half height, bottom contact the raw
// position. A side check only triggers in the direction of travel, using
// the ball's half width against the bound.
func resolve(b Ball, layout Layout, bounds core.Bounds, halfW, halfH float64) Outcome {
	if b.Y+halfH >= bounds.Top || b.Y <= bounds.Bottom {
		return OutcomeOutOfBounds
	}

	var side Side
	switch {
	case b.Dir == DirRight && b.X+halfW >= bounds.Right:
		side = SideRight
	case b.Dir == DirLeft && b.X-halfW <= bounds.Left:
		side = SideLeft
	default:
		return OutcomeNone
	}

	seg, ok := layout.SegmentAt(side, b.Y)
	if !ok {
		return OutcomeSeamMiss
	}
	if seg.Color == b.Color {
		return OutcomeMatch
	}
	return OutcomeMismatch
}
