package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// Options configure the terminal front end.
type Options struct {
	TickRate int         // Ticks per second
	CellSize int         // Terminal columns per grid cell
	Logger   *log.Logger // Event log; nil discards
}

var messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

// Model is the Bubble Tea model driving one game session.
// Keys are buffered into an input frame and applied on the next tick, so
// every View sees a state produced by a complete Tick.
type Model struct {
	loop     *game.Loop
	render   *RenderContext
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	tickRate int

	frame    core.InputFrame
	state    game.State
	roundID  string
	width    int // Terminal size, 0 until the first WindowSizeMsg
	height   int
	quitting bool
}

// NewModel creates a model for the given session.
func NewModel(loop *game.Loop, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	st := loop.State()
	m := Model{
		loop:     loop,
		render:   NewRenderContext(st.Grid, opts.CellSize),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   logger,
		tickRate: opts.TickRate,
		frame:    core.NewInputFrame(),
		state:    st,
		roundID:  uuid.NewString(),
	}
	m.logger.Info("round started", "round", m.roundID, "grid", fmt.Sprintf("%dx%d", st.Grid.Width, st.Grid.Height))
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey buffers commands for the next tick. Quit is applied at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	cmd := m.keys.Command(msg)
	if cmd == core.CommandNone {
		return m, nil
	}

	m.frame.Push(cmd)
	if cmd == core.CommandQuit {
		m = m.step()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick runs one simulation step and schedules the next.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Hold the simulation while the board cannot be seen
	if m.tooSmall() {
		return m, tickCmd(m.tickRate)
	}

	m = m.step()
	if m.loop.Stopped() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.tickRate)
}

// step feeds the buffered frame to the game and logs what happened.
func (m Model) step() Model {
	result := m.loop.Tick(m.frame)
	m.state = result.State
	m.frame.Clear()

	for _, ev := range result.Events {
		if ev.Kind == game.EventRestarted {
			m.roundID = uuid.NewString()
		}
		m.logEvent(ev)
	}
	return m
}

func (m Model) logEvent(ev game.Event) {
	fields := []any{
		"round", m.roundID,
		"tick", ev.Tick,
		"score", ev.Score,
		"length", ev.Length,
	}

	switch ev.Kind {
	case game.EventAte:
		m.logger.Debug("food eaten", append(fields, "cell", ev.Cell)...)
	case game.EventCollided:
		m.logger.Info("round over: collision", append(fields, "head", ev.Cell)...)
		m.logBoard()
	case game.EventBoardFull:
		m.logger.Info("round over: board full", fields...)
		m.logBoard()
	case game.EventRestarted:
		m.logger.Info("round started", fields...)
	case game.EventQuit:
		m.logger.Info("quit", append(fields, "best", m.state.Best)...)
	}
}

// logBoard writes the final board as plain text at debug level.
func (m Model) logBoard() {
	if m.logger.GetLevel() > log.DebugLevel {
		return
	}
	m.render.Draw(m.state)
	m.logger.Debug("final board", "round", m.roundID, "board", "\n"+m.render.Screen().String())
}

// tooSmall reports whether the terminal is known to be smaller than the view.
func (m Model) tooSmall() bool {
	if m.width == 0 || m.height == 0 {
		return false
	}
	w, h := m.requiredSize()
	return m.width < w || m.height < h
}

// requiredSize returns the board size plus the rows the help footer
// currently takes, which grow when the full help is shown.
func (m Model) requiredSize() (int, int) {
	w, h := m.render.Size()
	return w, h + lipgloss.Height(m.help.View(m.keys))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		w, h := m.requiredSize()
		return messageStyle.Render(fmt.Sprintf("Window too small: need %dx%d, have %dx%d", w, h, m.width, m.height))
	}

	m.render.Draw(m.state)
	return RenderScreen(m.render.Screen()) + "\n" + m.help.View(m.keys)
}

// State returns the last state produced by a tick.
func (m Model) State() game.State {
	return m.state
}

// Run starts the Bubble Tea program for the session.
func Run(loop *game.Loop, opts Options) error {
	model := NewModel(loop, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
