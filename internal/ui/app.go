package ui

import (
	"context"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rkeller/stride/internal/plan"
	"github.com/rkeller/stride/internal/prefs"
	"github.com/rkeller/stride/internal/trainer"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    trainer.PlanAPI
	Store     *plan.Store
	PlanWeeks int
	ThemeName string
	PrefsPath string
}

const defaultPlanWeeks = 10

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    trainer.PlanAPI
	store     *plan.Store
	prefsPath string
	planWeeks int

	// UI state
	theme  Theme
	keys   keyMap
	width  int
	height int
	ready  bool

	// Table state
	body        viewport.Model
	rows        []plan.Row
	selectedRow int
	selectedCol int

	// Edit state
	editor plan.Editor
	input  textinput.Model

	// Sync state
	connected   bool
	syncing     bool
	syncMessage string

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	planWeeks := opts.PlanWeeks
	if planWeeks <= 0 {
		planWeeks = defaultPlanWeeks
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 200

	m := Model{
		ctx:       ctx,
		client:    opts.Client,
		store:     opts.Store,
		prefsPath: prefsPath,
		planWeeks: planWeeks,
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		input:     input,
	}
	m.refreshRows()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.syncStatusCmd(),
	}
	// The orchestration layer usually preloads the store; reload only
	// when that failed or was skipped.
	if m.store != nil && !m.store.Loaded() {
		cmds = append(cmds, m.reloadCmd())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.body = viewport.New(msg.Width, bodyHeight(msg.Height))
		} else {
			m.body.Width = msg.Width
			m.body.Height = bodyHeight(msg.Height)
		}
		m.ready = true
		m.renderBody()
		return m, nil

	case workoutsMsg:
		if msg.err != nil {
			// Load failure keeps the last-known table on screen.
			log.Printf("workout load failed: %v", msg.err)
			return m, nil
		}
		m.store.ReplaceWorkouts(msg.workouts)
		m.refreshRows()
		m.renderBody()
		return m, nil

	case countdownMsg:
		if msg.err != nil {
			log.Printf("countdown load failed: %v", msg.err)
			return m, nil
		}
		m.store.SetCountdown(msg.countdown)
		return m, nil

	case savedMsg:
		if msg.err != nil {
			// Persistence failure: discard optimistic state by reloading
			// everything from the backend. No field-level rollback.
			log.Printf("save failed for workout %d: %v", msg.workoutID, msg.err)
			return m, m.reloadCmd()
		}
		return m, nil

	case syncStatusMsg:
		m.connected = msg.connected
		return m, nil

	case syncDoneMsg:
		m.syncing = false
		switch {
		case msg.err != nil:
			log.Printf("sync failed: %v", msg.err)
			m.syncMessage = "Failed"
		case msg.synced > 0:
			m.syncMessage = syncedMessage(msg.synced)
		default:
			m.syncMessage = "Up to date"
		}
		// Reload even after zero synced activities: derived fields may
		// still have changed server-side.
		return m, m.reloadCmd()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderColumnHeader())
	b.WriteString("\n")
	b.WriteString(m.body.View())
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help.
		m.showHelp = false
		return m, nil
	}

	if m.editor.Editing() {
		return m.handleEditKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		m.renderBody()
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		return m, m.reloadCmd()

	case key.Matches(msg, m.keys.Sync):
		return m.startSync()

	case key.Matches(msg, m.keys.Down):
		m.moveRow(1)
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.moveRow(-1)
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.selectRow(0)
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.selectRow(len(m.rows) - 1)
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.moveCol(-1)
		return m, nil
	case key.Matches(msg, m.keys.Right):
		m.moveCol(1)
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		return m.activateCell()
	}

	return m, nil
}

// startSync begins a sync run when the provider is connected and idle.
func (m Model) startSync() (tea.Model, tea.Cmd) {
	if !m.connected || m.syncing {
		return m, nil
	}
	m.syncing = true
	m.syncMessage = ""
	return m, m.triggerSyncCmd()
}

// refreshRows recomputes the projection from the store.
func (m *Model) refreshRows() {
	if m.store == nil {
		m.rows = nil
		return
	}
	m.rows = plan.Rows(m.store.Workouts(), m.planWeeks)
	if m.selectedRow >= len(m.rows) {
		m.selectedRow = len(m.rows) - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
}

func (m *Model) moveRow(delta int) {
	m.selectRow(m.selectedRow + delta)
}

func (m *Model) selectRow(row int) {
	if len(m.rows) == 0 {
		return
	}
	if row < 0 {
		row = 0
	}
	if row > len(m.rows)-1 {
		row = len(m.rows) - 1
	}
	m.selectedRow = row
	m.renderBody()
	m.scrollToSelection()
}

func (m *Model) moveCol(delta int) {
	next := m.selectedCol + delta
	if next < 0 {
		next = 0
	}
	if next > len(editTargets)-1 {
		next = len(editTargets) - 1
	}
	if next != m.selectedCol {
		m.selectedCol = next
		m.renderBody()
	}
}

// scrollToSelection keeps the selected row inside the viewport.
func (m *Model) scrollToSelection() {
	if !m.ready {
		return
	}
	top := m.body.YOffset
	bottom := top + m.body.Height - 1
	if m.selectedRow < top {
		m.body.SetYOffset(m.selectedRow)
	} else if m.selectedRow > bottom {
		m.body.SetYOffset(m.selectedRow - m.body.Height + 1)
	}
}

func bodyHeight(total int) int {
	// Header, command bar, and column header occupy three lines.
	h := total - 3
	if h < 1 {
		h = 1
	}
	return h
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Messages

type workoutsMsg struct {
	workouts []trainer.Workout
	err      error
}

type countdownMsg struct {
	countdown *trainer.Countdown
	err       error
}

type savedMsg struct {
	workoutID int64
	err       error
}

type syncStatusMsg struct {
	connected bool
}

type syncDoneMsg struct {
	synced int
	err    error
}
