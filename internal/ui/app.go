// Package ui provides the Bubble Tea terminal interface for ojview.
package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/caizhw/ojview/internal/catalog"
	"github.com/caizhw/ojview/internal/prefs"
	"github.com/caizhw/ojview/internal/state"
)

// Source is the data-source contract the UI drives: one repository that can
// be (re)loaded and whose hosting provider can be switched.
type Source interface {
	Label() string
	ProviderName() string
	Load(ctx context.Context, force bool) state.Snapshot
	Switch() string
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Source    Source
	Store     *state.Store
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	source    Source
	store     *state.Store
	prefsPath string

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
	loading  bool
	provider string

	// Data state
	snapshot state.Snapshot

	// Derived state, recomputed only when the snapshot or filter changes
	filter         catalog.Filter
	yearOptions    []string
	contestOptions []string
	levelOptions   []string
	filtered       []catalog.Entry
	selected       int

	// Search input
	searching   bool
	searchInput textinput.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	provider := ""
	if opts.Source != nil {
		provider = opts.Source.ProviderName()
	}

	return Model{
		ctx:       ctx,
		source:    opts.Source,
		store:     opts.Store,
		prefsPath: prefsPath,
		theme:     GetTheme(themeName),
		provider:  provider,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnterAltScreen}
	// The loader populated the store before the UI started; pick that up.
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

	case snapshotMsg:
		m.loading = false
		m.applySnapshot(state.Snapshot(msg))
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
	b.WriteString(m.renderTable())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// applySnapshot replaces the entry collection and rebuilds everything
// derived from it.
func (m *Model) applySnapshot(snap state.Snapshot) {
	m.snapshot = snap

	years := make([]string, 0, len(snap.Entries))
	contests := make([]string, 0, len(snap.Entries))
	levels := make([]string, 0, len(snap.Entries))
	for _, entry := range snap.Entries {
		years = append(years, entry.Year)
		contests = append(contests, entry.Contest)
		levels = append(levels, entry.Level)
	}
	m.yearOptions = catalog.BuildOptions(years, true)
	m.contestOptions = catalog.BuildOptions(contests, false)
	m.levelOptions = catalog.BuildOptions(levels, false)

	m.refilter()
}

// refilter recomputes the visible subset from the current collection and
// filter state.
func (m *Model) refilter() {
	m.filtered = catalog.Apply(m.snapshot.Entries, m.filter)
	if m.selected >= len(m.filtered) {
		m.selected = len(m.filtered) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// Messages

type snapshotMsg state.Snapshot

// Commands

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func loadCmd(ctx context.Context, src Source, force bool) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(src.Load(ctx, force))
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		// Teardown via signal is a normal exit, not a failure.
		return nil
	}
	return err
}
