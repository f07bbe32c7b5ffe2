package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyglider/internal/audio"
	"github.com/vovakirdan/skyglider/internal/config"
	"github.com/vovakirdan/skyglider/internal/core"
	"github.com/vovakirdan/skyglider/internal/glider"
	"github.com/vovakirdan/skyglider/internal/session"
)

// Options configure a game model.
type Options struct {
	Config     *config.GliderConfig
	Difficulty *config.DifficultyManager
	Runtime    core.RuntimeConfig
	Sink       audio.Sink  // nil means silent
	Logger     *log.Logger // nil discards
}

// Model is the Bubble Tea model for the glider game.
type Model struct {
	ctrl      *session.Controller
	world     *glider.World
	driver    *cmdDriver
	frame     *frameRenderer
	keys      *KeyMapper
	help      help.Model
	log       *log.Logger
	release   time.Duration
	thrustGen int // bumped on every thrust press; stale releases are ignored
	width     int
	height    int
	quitting  bool
}

// NewModel creates the game model. The session starts idle.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rng := core.NewRand(rt.Seed)
	world := glider.NewWorld(opts.Config, opts.Difficulty, rng)
	frame := newFrameRenderer(rt.ScreenW, max(rt.ScreenH-hudLines, 1))
	world.SetRenderer(frame)

	driver := &cmdDriver{}
	ctrl := session.New(session.Deps{
		Config:     opts.Config,
		World:      world,
		Difficulty: opts.Difficulty,
		Driver:     driver,
		Sink:       opts.Sink,
		Logger:     logger,
		Rand:       rng,
		TickRate:   rt.TickRate,
	})

	h := help.New()
	h.Width = rt.ScreenW

	return Model{
		ctrl:    ctrl,
		world:   world,
		driver:  driver,
		frame:   frame,
		keys:    NewKeyMapper(DefaultKeyMap()),
		help:    h,
		log:     logger,
		release: opts.Config.Session.ThrustRelease,
		width:   rt.ScreenW,
		height:  rt.ScreenH,
	}
}

// Controller returns the session controller.
func (m Model) Controller() *session.Controller {
	return m.ctrl
}

// Init starts the idle timer.
func (m Model) Init() tea.Cmd {
	return m.driver.Flush()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m = m.handleMouse(msg)

	case thrustReleaseMsg:
		if msg.gen == m.thrustGen {
			m.ctrl.Handle(core.Intent{Action: core.ActionThrustEnd})
		}

	case TimerMsg:
		m.ctrl.Fire(msg.Ticket)
		if msg.Ticket.Slot != session.SlotFrame {
			m.frame.Invalidate()
		}

	case tea.WindowSizeMsg:
		m = m.handleResize(msg)

	case tea.FocusMsg:
		m.ctrl.SetVisible(true)
		m.frame.Invalidate()

	case tea.BlurMsg:
		m.ctrl.SetVisible(false)
		m.frame.Invalidate()
	}

	if m.quitting {
		return m, tea.Quit
	}
	m.frame.SetOverlay(m.ctrl.DevOverlay())
	return m, tea.Batch(cmd, m.driver.Flush())
}

// handleKey processes keyboard input. Terminals report no key release, so
// keyboard thrust ends after a short timeout that key repeat keeps
// extending.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	in := m.keys.MapKey(msg)
	switch in.Action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.log.Info("quit", "best", m.ctrl.Best())
		m.quitting = true
		return m, nil
	case core.ActionThrustStart:
		m.ctrl.Handle(in)
		m.thrustGen++
		return m, releaseCmd(m.thrustGen, m.release)
	}

	m.ctrl.Handle(in)
	m.frame.Invalidate()
	return m, nil
}

// handleMouse maps button presses to thrust.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	in := m.keys.MapMouse(msg)
	if in.Action == core.ActionNone {
		return m
	}
	if in.Action == core.ActionThrustStart {
		m.thrustGen++
	}
	m.ctrl.Handle(in)
	m.frame.Invalidate()
	return m
}

// handleResize fits the playfield to the terminal, keeping the HUD lines.
func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.frame.Resize(msg.Width, max(msg.Height-hudLines, 1))
	return m
}

// View renders the HUD and the playfield.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	keys := m.keys.Keys()
	var body string
	if m.ctrl.HelpVisible() {
		body = lipgloss.Place(m.width, max(m.height-hudLines, 1), lipgloss.Center, lipgloss.Center,
			helpView(m.help.FullHelpView(keys.FullHelp())))
	} else {
		s := m.frame.Frame(m.world)
		drawStateBanner(s, m.ctrl)
		body = RenderScreen(s, m.world.Night())
	}

	return statusLine(m.ctrl, m.width) + "\n" +
		body + "\n" +
		noticeLine(m.ctrl, m.help.ShortHelpView(keys.ShortHelp()), m.width)
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse buttons drive thrust
		tea.WithReportFocus(),     // Pause while the terminal is unfocused
	)

	_, err := p.Run()
	return err
}
