package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/avoronkov/colorwalls/internal/config"
	"github.com/avoronkov/colorwalls/internal/core"
	"github.com/avoronkov/colorwalls/internal/game"
)

// Width of each wall strip in screen columns.
const wallCols = 2

// HUD carries the platform-side numbers shown around the play field.
type HUD struct {
	Best        int
	GamesPlayed int
	TimeScale   float64
	Elapsed     float64
}

// viewport maps simulation coordinates onto the screen cell grid.
// Simulation Y grows upward, screen rows grow downward.
type viewport struct {
	bounds config.BoundsConfig
	w, h   int
}

// cellX maps a simulation x to a column.
func (v viewport) cellX(x float64) int {
	fx := (x - v.bounds.Left) / (v.bounds.Right - v.bounds.Left)
	return core.Clamp(int(fx*float64(v.w-1)+0.5), 0, v.w-1)
}

// cellY maps a simulation y to a row.
func (v viewport) cellY(y float64) int {
	fy := (v.bounds.Top - y) / (v.bounds.Top - v.bounds.Bottom)
	return core.Clamp(int(fy*float64(v.h-1)+0.5), 0, v.h-1)
}

// simY returns the simulation height at the center of a screen row, so
// wall sampling never lands exactly on the exclusive top boundary.
func (v viewport) simY(row int) float64 {
	span := v.bounds.Top - v.bounds.Bottom
	return v.bounds.Top - (float64(row)+0.5)*span/float64(v.h)
}

// DrawFrame renders one frame of the game into the screen buffer. It is
// a stateless reader of simulation state: the layout and snapshot come
// from the game, the alpha-blended ball position is already baked into
// the snapshot by the caller.
func DrawFrame(dst *core.Screen, lay game.Layout, snap game.Snapshot, bounds config.BoundsConfig, hud HUD) {
	dst.Clear()

	v := viewport{bounds: bounds, w: dst.Width(), h: dst.Height()}

	drawWalls(dst, v, lay)
	drawBall(dst, v, snap)
	drawHUD(dst, snap, hud)

	switch snap.Phase {
	case game.PhaseIdle:
		drawCenteredMessage(dst, "COLOR WALLS",
			"Hit walls of your own color. Press SPACE to bounce.")
	case game.PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d  Games: %d  |  R restart, Q quit",
				snap.Score, hud.Best, hud.GamesPlayed+1))
	}
}

// drawWalls paints both side walls by sampling the segment color at each
// row's center height.
func drawWalls(dst *core.Screen, v viewport, lay game.Layout) {
	for row := 0; row < v.h; row++ {
		y := v.simY(row)
		for _, side := range []game.Side{game.SideLeft, game.SideRight} {
			seg, ok := lay.SegmentAt(side, y)
			if !ok {
				continue
			}
			x0 := 0
			if side == game.SideRight {
				x0 = v.w - wallCols
			}
			for dx := 0; dx < wallCols; dx++ {
				dst.SetColored(x0+dx, row, '█', seg.Color)
			}
		}
	}
}

// drawBall draws the interpolated ball position in the ball's color.
func drawBall(dst *core.Screen, v viewport, snap game.Snapshot) {
	cx := v.cellX(snap.X)
	cy := v.cellY(snap.Y)
	dst.SetColored(cx, cy, '●', snap.Color)
	dst.SetColored(cx-1, cy, '(', snap.Color)
	dst.SetColored(cx+1, cy, ')', snap.Color)
}

// drawHUD writes the status line inside the top row, between the walls.
func drawHUD(dst *core.Screen, snap game.Snapshot, hud HUD) {
	status := fmt.Sprintf(" Score: %d  Level: %d  Speed: %.2gx  t=%.1fs ",
		snap.Score, snap.Level+1, hud.TimeScale, hud.Elapsed)
	dst.DrawText(wallCols+1, 0, status)

	ballTag := "Ball: "
	x := dst.Width() - wallCols - 1 - len(ballTag) - 1
	dst.DrawText(x, 0, ballTag)
	dst.SetColored(x+len(ballTag), 0, '●', snap.Color)
}

// drawCenteredMessage draws a boxed message in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// styleCache memoizes lipgloss styles per color. Palettes are small but
// change on every regeneration, so the cache is capped rather than
// allowed to grow for the life of an SSH server. The mutex matters in
// serve mode, where every SSH session renders on its own goroutine.
var (
	styleMu    sync.Mutex
	styleCache = make(map[core.Color]lipgloss.Style)
)

func styleFor(c core.Color) lipgloss.Style {
	if c == core.ColorDefault {
		return lipgloss.NewStyle()
	}
	styleMu.Lock()
	defer styleMu.Unlock()
	if s, ok := styleCache[c]; ok {
		return s
	}
	if len(styleCache) > 1024 {
		styleCache = make(map[core.Color]lipgloss.Style)
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	styleCache[c] = s
	return s
}

// RenderScreen converts a screen buffer to a styled string for display.
// Adjacent cells with the same color are grouped to minimize ANSI escape
// sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if startColor == core.ColorDefault {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(styleFor(startColor).Render(run.String()))
			}
		}
	}
	return sb.String()
}
