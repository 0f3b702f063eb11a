// Package ui provides the Bubble Tea scoreboard TUI.
package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ronesse/volley-score-v2/internal/config"
	"github.com/ronesse/volley-score-v2/internal/feed"
	"github.com/ronesse/volley-score-v2/internal/logtail"
	"github.com/ronesse/volley-score-v2/internal/prefs"
	"github.com/ronesse/volley-score-v2/internal/score"
	"github.com/ronesse/volley-score-v2/internal/state"
	"github.com/ronesse/volley-score-v2/internal/wakelock"
)

// View represents the current active view.
type View int

const (
	ViewMatches View = iota
	ViewLogs
)

// flashTicks is how many UI ticks a score flash stays lit.
const flashTicks = 3

// Options configures the UI.
type Options struct {
	Context    context.Context
	Store      *state.Store
	Locks      *wakelock.Manager
	Config     *config.Config
	PollTick   time.Duration
	ThemeName  string
	FilterName string
	PrefsPath  string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	locks     *wakelock.Manager
	config    *config.Config
	prefsPath string
	pollTick  time.Duration

	// UI state
	keys        keyMap
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time

	// Match list state
	selectedRow int
	filterMode  MatchFilter
	focus       score.Focus

	// Flash state
	flashes   *flashTracker
	flashHome map[feed.Key]int // remaining ticks per key
	flashAway map[feed.Key]int

	// Log state
	logLines []string

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = time.Second
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		ctx:         ctx,
		store:       opts.Store,
		locks:       opts.Locks,
		config:      opts.Config,
		prefsPath:   prefsPath,
		pollTick:    pollTick,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(opts.ThemeName),
		filterMode:  FilterFromName(opts.FilterName),
		currentView: ViewMatches,
		flashes:     newFlashTracker(),
		flashHome:   make(map[feed.Key]int),
		flashAway:   make(map[feed.Key]int),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
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
		m.ready = true
		return m, nil

	case tea.FocusMsg:
		// The terminal may have let the machine idle while we were hidden,
		// silently dropping the inhibitor. Force a fresh acquire.
		if m.locks != nil {
			m.locks.SetVisible(m.ctx, true, m.lockConditions())
		}
		return m, nil

	case tea.BlurMsg:
		if m.locks != nil {
			m.locks.SetVisible(m.ctx, false, m.lockConditions())
		}
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.lastUpdated = time.Now()
		m.absorbFlashes()
		m.clampSelection()
		if m.locks != nil {
			m.locks.Apply(m.ctx, m.lockConditions())
		}
		return m, nil

	case logLinesMsg:
		m.logLines = msg
		return m, nil

	case logErrorMsg:
		// The overlay simply stays empty; the error is already in the log.
		return m, nil
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

	switch m.currentView {
	case ViewLogs:
		b.WriteString(m.renderLogs())
	default:
		b.WriteString(m.renderMatches())
	}

	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Quit still works under the overlay; any other key closes it.
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.CycleFilter):
		// A filter change redefines the visible population, so any focus
		// is stale by definition.
		m.filterMode = m.filterMode.Next()
		m.focus.Clear()
		m.selectedRow = 0
		m.savePrefs()
		if m.locks != nil {
			m.locks.Apply(m.ctx, m.lockConditions())
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleFocus):
		if m.currentView == ViewMatches {
			m.toggleFocus()
			if m.locks != nil {
				m.locks.Apply(m.ctx, m.lockConditions())
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.ViewLogs):
		m.currentView = ViewLogs
		return m, readLogsCmd(m.sessionLogPath())

	case key.Matches(msg, m.keys.ViewMatches), key.Matches(msg, m.keys.Escape):
		m.currentView = ViewMatches
		return m, nil
	}

	if m.currentView == ViewMatches {
		return m.handleMatchKey(msg)
	}
	return m, nil
}

// handleMatchKey processes navigation in the match list.
func (m Model) handleMatchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.visibleRows())
	if count == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < count-1 {
			m.selectedRow++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selectedRow = count - 1
	}

	return m, nil
}

// toggleFocus toggles focus on the selected match. Selecting the focused
// match again clears focus; selecting another match moves it.
func (m *Model) toggleFocus() {
	rows := m.visibleRows()
	if m.selectedRow < 0 || m.selectedRow >= len(rows) {
		return
	}
	m.focus.Select(rows[m.selectedRow].Key)
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	m.decayFlashes()

	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}

	if m.currentView == ViewLogs {
		cmds = append(cmds, readLogsCmd(m.sessionLogPath()))
	}

	cmds = append(cmds, tickCmd(m.pollTick))
	return m, tea.Batch(cmds...)
}

// absorbFlashes lights the markers whose generation moved in this snapshot.
func (m *Model) absorbFlashes() {
	home, away := m.flashes.diff(m.snapshot)
	for key := range home {
		m.flashHome[key] = flashTicks
	}
	for key := range away {
		m.flashAway[key] = flashTicks
	}
}

// decayFlashes counts lit markers down one tick.
func (m *Model) decayFlashes() {
	for key, left := range m.flashHome {
		if left <= 1 {
			delete(m.flashHome, key)
		} else {
			m.flashHome[key] = left - 1
		}
	}
	for key, left := range m.flashAway {
		if left <= 1 {
			delete(m.flashAway, key)
		} else {
			m.flashAway[key] = left - 1
		}
	}
}

// clampSelection keeps the cursor inside the current row count.
func (m *Model) clampSelection() {
	count := len(m.visibleRows())
	if count == 0 {
		m.selectedRow = 0
		return
	}
	if m.selectedRow >= count {
		m.selectedRow = count - 1
	}
}

// visibleRows projects the snapshot through the active filter.
func (m Model) visibleRows() []MatchRow {
	return buildRows(m.snapshot, m.filterMode, m.focus, m.litFlashes(m.flashHome), m.litFlashes(m.flashAway))
}

func (m Model) litFlashes(counts map[feed.Key]int) map[feed.Key]bool {
	lit := make(map[feed.Key]bool, len(counts))
	for key := range counts {
		lit[key] = true
	}
	return lit
}

// lockConditions derives the wake lock preconditions from the focused match.
func (m Model) lockConditions() wakelock.Conditions {
	key, ok := m.focus.Key()
	if !ok {
		return wakelock.Conditions{}
	}
	ms, present := m.snapshot.ByKey(key)
	if !present {
		return wakelock.Conditions{}
	}
	return wakelock.Conditions{
		Focused:       true,
		Live:          ms.Match.IsLive(),
		HasCurrentSet: ms.HasPoints,
	}
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:  m.theme.Name,
		Filter: m.filterMode.Name(),
	})
}

func (m Model) sessionLogPath() string {
	if m.config == nil {
		return ""
	}
	return m.config.SessionLogPath()
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type logLinesMsg []string

type logErrorMsg struct{ err error }

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func readLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, 400)
		if err != nil {
			return logErrorMsg{err: err}
		}
		return logLinesMsg(lines)
	}
}

// Run starts the Bubble Tea program. Focus reporting is enabled so the wake
// lock can track terminal visibility, and the program is bound to the
// caller's context so a signal tears the TUI down along with the pollers.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithReportFocus(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return shutdownErr(m.ctx, err)
}

// shutdownErr maps the program result: a kill caused by our own context
// ending is an orderly shutdown, not a failure.
func shutdownErr(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
