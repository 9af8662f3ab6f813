package game

import (
	"math/rand"
	"testing"

	"github.com/avoronkov/colorwalls/internal/core"
)

func TestGenerateLayoutPartition(t *testing.T) {
	const bottom, top = 0.0, 10.0
	rng := rand.New(rand.NewSource(7))

	for level := MinLevel; level <= MaxLevel; level++ {
		layout := GenerateLayout(rng, level, bottom, top)

		if layout.Level != level {
			t.Errorf("level %d: layout.Level = %d", level, layout.Level)
		}
		if got, want := len(layout.Palette), level+2; got != want {
			t.Errorf("level %d: palette size = %d, expected %d", level, got, want)
		}

		for _, side := range []Side{SideLeft, SideRight} {
			segs := layout.Segments(side)
			if got, want := len(segs), level+2; got != want {
				t.Fatalf("level %d %s: %d segments, expected %d", level, side, got, want)
			}

			// Boundary-to-boundary coverage with exact shared edges.
			if segs[0].Low != bottom {
				t.Errorf("level %d %s: first Low = %v, expected %v", level, side, segs[0].Low, bottom)
			}
			if segs[len(segs)-1].High != top {
				t.Errorf("level %d %s: last High = %v, expected %v", level, side, segs[len(segs)-1].High, top)
			}
			for i := 0; i < len(segs)-1; i++ {
				if segs[i].High != segs[i+1].Low {
					t.Errorf("level %d %s: seam between segments %d and %d: %v != %v",
						level, side, i, i+1, segs[i].High, segs[i+1].Low)
				}
			}
		}
	}
}

func TestGenerateLayoutPaletteOnBothSides(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for round := 0; round < 50; round++ {
		level := rng.Intn(MaxLevel + 1)
		layout := GenerateLayout(rng, level, 0, 10)

		for _, side := range []Side{SideLeft, SideRight} {
			have := make(map[core.Color]bool)
			for _, seg := range layout.Segments(side) {
				have[seg.Color] = true
			}
			for _, c := range layout.Palette {
				if !have[c] {
					t.Fatalf("round %d: palette color %v missing on %s side", round, c, side)
				}
			}
		}
	}
}

func TestGenerateLayoutDistinctPalette(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for round := 0; round < 100; round++ {
		layout := GenerateLayout(rng, MaxLevel, 0, 10)
		seen := make(map[core.Color]bool)
		for _, c := range layout.Palette {
			if seen[c] {
				t.Fatalf("round %d: duplicate palette color %v", round, c)
			}
			seen[c] = true
		}
	}
}

func TestSegmentAt(t *testing.T) {
	white := core.RGB(255, 255, 255)
	black := core.RGB(0, 0, 0)
	layout := Layout{
		Level:   0,
		Palette: []core.Color{white, black},
		Right: []Segment{
			{Low: 0, High: 5, Color: white},
			{Low: 5, High: 10, Color: black},
		},
	}

	tests := []struct {
		name  string
		y     float64
		want  core.Color
		found bool
	}{
		{"bottom edge", 0, white, true},
		{"mid lower", 2.5, white, true},
		{"shared edge belongs to upper", 5, black, true},
		{"just below shared edge", 4.999, white, true},
		{"mid upper", 7.5, black, true},
		{"top edge is exclusive", 10, core.Color{}, false},
		{"below range", -0.1, core.Color{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seg, ok := layout.SegmentAt(SideRight, tc.y)
			if ok != tc.found {
				t.Fatalf("SegmentAt(%v) found = %v, expected %v", tc.y, ok, tc.found)
			}
			if ok && seg.Color != tc.want {
				t.Errorf("SegmentAt(%v) color = %v, expected %v", tc.y, seg.Color, tc.want)
			}
		})
	}
}

func TestNextLevelNeverRepeats(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	level := MinLevel
	counts := make(map[int]int)
	for i := 0; i < 1000; i++ {
		next := NextLevel(rng, level)
		if next == level {
			t.Fatalf("iteration %d: level %d repeated", i, level)
		}
		if next < MinLevel || next > MaxLevel {
			t.Fatalf("iteration %d: level %d out of range", i, next)
		}
		counts[next]++
		level = next
	}

	// All levels should come up; with 1000 draws over 3 levels anything
	// else points at a broken exclusion shift.
	for l := MinLevel; l <= MaxLevel; l++ {
		if counts[l] == 0 {
			t.Errorf("level %d never selected", l)
		}
	}
}

func TestGenerateLayoutPanicsOnBadLevel(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("GenerateLayout with invalid level should panic")
		}
	}()
	GenerateLayout(rand.New(rand.NewSource(1)), MaxLevel+1, 0, 10)
}
