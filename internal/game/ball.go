package game

import (
	"math"

	"github.com/avoronkov/colorwalls/internal/config"
	"github.com/avoronkov/colorwalls/internal/core"
)

// Direction is the ball's horizontal heading.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// Sign returns -1 for left and +1 for right.
func (d Direction) Sign() float64 {
	if d == DirLeft {
		return -1
	}
	return 1
}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	if d == DirLeft {
		return DirRight
	}
	return DirLeft
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	if d == DirLeft {
		return "left"
	}
	return "right"
}

// Ball is the single moving entity of the game. It is created once per
// reset and mutated in place every simulation step. Motion is a scripted
// explicit-Euler update on raw coordinates: a parametric arc while
// bouncing, a straight drift while falling. There is no velocity, mass or
// force model on purpose.
type Ball struct {
	X, Y  float64
	Color core.Color
	Dir   Direction

	// Angle is the bounce-phase accumulator in radians. It only has
	// meaning while an arc is in progress.
	Angle float64
}

// BeginArc resets the angle accumulator to the arc's start angle.
func (b *Ball) BeginArc(cfg config.BounceConfig) {
	b.Angle = cfg.AngleStart * math.Pi
}

// AdvanceArc performs the primary per-step arc update: the angle advances
// by AngleRate*dt*pi, the ball moves horizontally against the cosine of
// the new angle (signed by direction) and vertically with its sine.
func (b *Ball) AdvanceArc(cfg config.BounceConfig, dt float64) {
	b.Angle += cfg.AngleRate * dt * math.Pi
	b.X -= b.Dir.Sign() * cfg.HorizontalStep * math.Cos(b.Angle)
	b.Y += cfg.VerticalStep * math.Sin(b.Angle)
}

// Settle performs the secondary vertical nudge of the arc step. It uses
// the same angle value as the preceding AdvanceArc and runs after
// collision resolution.
func (b *Ball) Settle(cfg config.BounceConfig) {
	b.Y += cfg.SettleStep * math.Sin(b.Angle)
}

// ArcDone reports whether the angle accumulator has reached the end of
// the arc.
func (b *Ball) ArcDone(cfg config.BounceConfig) bool {
	return b.Angle >= cfg.AngleEnd*math.Pi
}

// Fall performs one falling-phase step: a fixed drop plus a fixed
// horizontal drift in the current direction.
func (b *Ball) Fall(cfg config.FallConfig) {
	b.Y -= cfg.DropStep
	b.X += b.Dir.Sign() * cfg.DriftStep
}
