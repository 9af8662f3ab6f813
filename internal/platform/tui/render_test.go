package tui

import (
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/avoronkov/colorwalls/internal/config"
	"github.com/avoronkov/colorwalls/internal/core"
	"github.com/avoronkov/colorwalls/internal/game"
)

func testFrame(t *testing.T, phase game.Phase) (*core.Screen, game.Layout, game.Snapshot) {
	t.Helper()

	bounds := config.Default().Bounds
	rng := rand.New(rand.NewSource(7))
	lay := game.GenerateLayout(rng, 0, bounds.Bottom, bounds.Top)

	snap := game.Snapshot{
		X:     0,
		Y:     5,
		Color: lay.Palette[0],
		Dir:   game.DirRight,
		Phase: phase,
		Score: 3,
	}

	return core.NewScreen(60, 20), lay, snap
}

func TestDrawFrameWallsAndBall(t *testing.T) {
	screen, lay, snap := testFrame(t, game.PhaseBouncing)
	bounds := config.Default().Bounds

	DrawFrame(screen, lay, snap, bounds, HUD{TimeScale: 1})

	// Both wall strips are solid below the HUD row.
	for _, x := range []int{0, 1, screen.Width() - 2, screen.Width() - 1} {
		for y := 1; y < screen.Height(); y++ {
			if screen.Get(x, y) != '█' {
				t.Fatalf("expected wall at (%d, %d), got %q", x, y, screen.Get(x, y))
			}
		}
	}

	// Ball sits in the middle of the field in its own color.
	cx, cy := screen.Width()/2, screen.Height()/2
	found := false
	for dy := -1; dy <= 1 && !found; dy++ {
		for dx := -1; dx <= 1 && !found; dx++ {
			cell := screen.GetCell(cx+dx, cy+dy)
			if cell.Rune == '●' && cell.Color == snap.Color {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected ball glyph near screen center")
	}
}

func TestDrawFrameWallColorsMatchLayout(t *testing.T) {
	screen, lay, snap := testFrame(t, game.PhaseBouncing)
	bounds := config.Default().Bounds

	DrawFrame(screen, lay, snap, bounds, HUD{TimeScale: 1})

	v := viewport{bounds: bounds, w: screen.Width(), h: screen.Height()}
	for y := 1; y < screen.Height(); y++ {
		seg, ok := lay.SegmentAt(game.SideLeft, v.simY(y))
		if !ok {
			continue
		}
		if got := screen.GetCell(0, y).Color; got != seg.Color {
			t.Errorf("row %d: left wall color %v, want %v", y, got, seg.Color)
		}
	}
}

func TestDrawFrameShowsHUD(t *testing.T) {
	screen, lay, snap := testFrame(t, game.PhaseBouncing)

	DrawFrame(screen, lay, snap, config.Default().Bounds, HUD{TimeScale: 1})

	if !strings.Contains(screen.Row(0), "Score: 3") {
		t.Errorf("expected score in HUD row, got %q", screen.Row(0))
	}
}

func TestDrawFrameGameOverOverlay(t *testing.T) {
	screen, lay, snap := testFrame(t, game.PhaseGameOver)

	DrawFrame(screen, lay, snap, config.Default().Bounds, HUD{TimeScale: 1})

	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("expected game over overlay")
	}
}

func TestRenderScreenConcurrentSessions(t *testing.T) {
	// In serve mode every SSH session renders on its own goroutine, all
	// funneling through the shared style cache. Exercise it from several
	// goroutines with disjoint random palettes; the race detector flags
	// any unsynchronized cache access.
	var wg sync.WaitGroup
	for session := 0; session < 4; session++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			screen := core.NewScreen(40, 12)
			for i := 0; i < 200; i++ {
				for y := 0; y < screen.Height(); y++ {
					for x := 0; x < screen.Width(); x++ {
						screen.SetColored(x, y, '█', core.RandomColor(rng))
					}
				}
				if out := RenderScreen(screen); out == "" {
					t.Error("concurrent render produced empty output")
					return
				}
			}
		}(int64(session + 1))
	}
	wg.Wait()
}

func TestRenderScreenLineCount(t *testing.T) {
	screen, lay, snap := testFrame(t, game.PhaseBouncing)

	DrawFrame(screen, lay, snap, config.Default().Bounds, HUD{TimeScale: 1})

	out := RenderScreen(screen)
	if got := strings.Count(out, "\n") + 1; got != screen.Height() {
		t.Errorf("expected %d lines, got %d", screen.Height(), got)
	}
}
