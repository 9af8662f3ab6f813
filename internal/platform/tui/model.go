package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avoronkov/colorwalls/internal/core"
	"github.com/avoronkov/colorwalls/internal/game"
)

// Time scale limits for the +/- keys.
const (
	minTimeScale  = 0.25
	maxTimeScale  = 4.0
	timeScaleStep = 0.25
)

// scoreTracker receives score notifications from the game core. It is
// shared by pointer so the value-typed Bubble Tea model and the game
// callback observe the same numbers.
type scoreTracker struct {
	best int
}

// Notify records a new score total.
func (t *scoreTracker) Notify(score int) {
	if score > t.best {
		t.best = score
	}
}

// Model is the Bubble Tea model driving one game session. Each render
// frame it measures the real elapsed time, feeds it to the fixed-step
// clock, runs the returned number of simulation steps, and draws the
// state blended with the returned alpha.
type Model struct {
	game   *game.Game
	clock  *core.Clock
	screen *core.Screen
	scores *scoreTracker
	config core.RuntimeConfig

	keys KeyMap
	help help.Model

	// input latches triggered actions until the next fixed step
	// consumes them; at 60 render frames and 20 simulation steps per
	// second most frames run zero steps, and a press must not be lost
	// to one of those.
	input core.InputFrame

	state       core.GameState
	alpha       float64
	lastTick    time.Time
	gamesPlayed int
	quitting    bool
}

// NewModel creates a model for the given game.
func NewModel(g *game.Game, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TimeScale == 0 {
		cfg.TimeScale = 1.0
	}

	clock := core.NewClock(g.Config().Simulation.Step)
	clock.SetTimeScale(cfg.TimeScale)

	scores := &scoreTracker{}
	g.SetScoreFunc(scores.Notify)

	return Model{
		game:   g,
		clock:  clock,
		screen: core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1)),
		scores: scores,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		input:  core.NewInputFrame(),
	}
}

// Init seeds the game and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config.Seed)
	return tickCmd(m.config.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

// handleKey maps key presses to game actions or clock adjustments.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Bounce):
		m.input.Set(core.ActionBounce)
	case key.Matches(msg, m.keys.ForceOver):
		m.input.Set(core.ActionForceOver)
	case key.Matches(msg, m.keys.Restart):
		if m.state.GameOver {
			m.input.Set(core.ActionRestart)
		}
	case key.Matches(msg, m.keys.SpeedUp):
		m.clock.SetTimeScale(core.ClampF(m.clock.TimeScale()+timeScaleStep, minTimeScale, maxTimeScale))
	case key.Matches(msg, m.keys.SpeedDown):
		m.clock.SetTimeScale(core.ClampF(m.clock.TimeScale()-timeScaleStep, minTimeScale, maxTimeScale))
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleResize adapts the screen buffer to the new terminal size. The
// simulation runs in its own coordinate space, so the game keeps going.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by the real elapsed frame time.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	now := time.Time(msg)
	var frame float64
	if !m.lastTick.IsZero() {
		frame = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	// Restart is handled at the frame level so the clock resets together
	// with the game entities.
	if m.input.Has(core.ActionRestart) && m.state.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config.Seed)
		m.clock.Reset()
		m.state = m.game.State()
		m.gamesPlayed++
		m.input = core.NewInputFrame()
		m.alpha = 0
		return m, tickCmd(m.config.FrameRate)
	}

	steps, alpha := m.clock.Advance(frame)
	if steps > 0 {
		// Latched input rides on the first fixed step of the frame;
		// catch-up steps run with empty frames.
		in := m.input
		for i := 0; i < steps; i++ {
			res := m.game.Step(in)
			m.state = res.State
			in = core.NewInputFrame()
		}
		m.input = core.NewInputFrame()
	}
	m.alpha = alpha

	return m, tickCmd(m.config.FrameRate)
}

// View renders the interpolated frame plus the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.game.Interpolated(m.alpha)
	hud := HUD{
		Best:        m.scores.best,
		GamesPlayed: m.gamesPlayed,
		TimeScale:   m.clock.TimeScale(),
		Elapsed:     m.clock.Elapsed(),
	}
	DrawFrame(m.screen, m.game.Layout(), snap, m.game.Config().Bounds, hud)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(g *game.Game, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(g, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
