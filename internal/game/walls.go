package game

import (
	"fmt"
	"math/rand"

	"github.com/avoronkov/colorwalls/internal/core"
)

// Layout levels select how many segments populate each side wall.
const (
	MinLevel = 0
	MaxLevel = 2
)

// Side identifies which wall a segment belongs to.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Segment is one colored span of a side wall. Spans are half-open
// [Low, High) so adjacent segments share their boundary value exactly and
// the ball can never slip through a seam.
type Segment struct {
	Low, High float64
	Color     core.Color
}

// Contains reports whether the vertical position y falls in this span.
func (s Segment) Contains(y float64) bool {
	return y >= s.Low && y < s.High
}

// Layout is the full wall arrangement for one difficulty level: the
// shared palette plus an ordered segment list per side. Layouts are
// replaced wholesale on every regeneration, never mutated.
type Layout struct {
	Level   int
	Palette []core.Color
	Left    []Segment
	Right   []Segment
}

// Segments returns the ordered segment list for the given side.
func (l Layout) Segments(side Side) []Segment {
	if side == SideLeft {
		return l.Left
	}
	return l.Right
}

// SegmentAt finds the segment on the given side whose span contains y.
// Spans are contiguous and non-overlapping, so at most one can match.
func (l Layout) SegmentAt(side Side, y float64) (Segment, bool) {
	for _, seg := range l.Segments(side) {
		if seg.Contains(y) {
			return seg, true
		}
	}
	return Segment{}, false
}

// GenerateLayout builds the wall layout for a level: level+2 segments per
// side partitioning [bottom, top] boundary-to-boundary, colored with an
// independent shuffle of a freshly randomized palette per side. Shuffling
// the full palette onto each side guarantees every palette color, and so
// any ball color drawn from the palette, appears on both walls.
// Panics on a level outside [MinLevel, MaxLevel]: that is a programming
// error, not a game outcome.
func GenerateLayout(rng *rand.Rand, level int, bottom, top float64) Layout {
	if level < MinLevel || level > MaxLevel {
		panic(fmt.Sprintf("game: invalid layout level %d", level))
	}

	n := level + 2
	palette := randomPalette(rng, n)

	// Shared boundary values: segment i's High is the same float64 as
	// segment i+1's Low, and the ends are exactly bottom and top.
	edges := make([]float64, n+1)
	edges[0] = bottom
	edges[n] = top
	span := top - bottom
	for i := 1; i < n; i++ {
		edges[i] = bottom + span*float64(i)/float64(n)
	}

	layout := Layout{
		Level:   level,
		Palette: palette,
		Left:    colorSegments(rng, edges, palette),
		Right:   colorSegments(rng, edges, palette),
	}
	return layout
}

// NextLevel picks a new level uniformly at random from the allowed set,
// excluding the current one so a regeneration always visibly changes the
// layout.
func NextLevel(rng *rand.Rand, current int) int {
	if current < MinLevel || current > MaxLevel {
		panic(fmt.Sprintf("game: invalid layout level %d", current))
	}
	pick := MinLevel + rng.Intn(MaxLevel-MinLevel)
	if pick >= current {
		pick++
	}
	return pick
}

// randomPalette generates n distinct random colors.
func randomPalette(rng *rand.Rand, n int) []core.Color {
	palette := make([]core.Color, 0, n)
	seen := make(map[core.Color]bool, n)
	for len(palette) < n {
		c := core.RandomColor(rng)
		if seen[c] {
			continue
		}
		seen[c] = true
		palette = append(palette, c)
	}
	return palette
}

// colorSegments builds one side's segments from the shared edge values,
// assigning palette colors by random permutation.
func colorSegments(rng *rand.Rand, edges []float64, palette []core.Color) []Segment {
	n := len(edges) - 1
	perm := rng.Perm(n)
	segments := make([]Segment, n)
	for i := 0; i < n; i++ {
		segments[i] = Segment{
			Low:   edges[i],
			High:  edges[i+1],
			Color: palette[perm[i]],
		}
	}
	return segments
}
