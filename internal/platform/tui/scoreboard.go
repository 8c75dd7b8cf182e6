package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dash/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the stats sidebar
	sidebarWidth       = 24  // Width of the stats sidebar
	maxRuns            = 100 // Max runs to load
)

// RunSource is the read side of the run history.
type RunSource interface {
	RecentRuns(limit int) ([]storage.RunRecord, error)
	TopRuns(limit int) ([]storage.RunRecord, error)
	Stats() (*storage.RunStats, error)
}

// RunView selects which runs the scoreboard lists.
type RunView int

const (
	ViewTop RunView = iota
	ViewRecent
)

// String returns the tab title.
func (v RunView) String() string {
	if v == ViewRecent {
		return "Recent"
	}
	return "Top"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Switch, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "top/recent"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	source      RunSource
	view        RunView
	runs        []storage.RunRecord
	stats       *storage.RunStats
	best        int // Persisted best score
	err         error
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(source RunSource, best, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		source:      source,
		best:        best,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.load()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Time", Width: 7},
		{Title: "Jumps", Width: 6},
		{Title: "Player", Width: 10},
		{Title: "Date", Width: 12},
	}

	// Give spare width to the player column
	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if spare := tableWidth - used; spare > 0 {
		columns[4].Width += min(spare, 10)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load fetches runs for the current view and the aggregate stats.
func (m *ScoreboardModel) load() {
	m.runs, m.stats, m.err = nil, nil, nil
	if m.source == nil {
		m.updateTableRows()
		return
	}

	var runs []storage.RunRecord
	var err error
	if m.view == ViewRecent {
		runs, err = m.source.RecentRuns(maxRuns)
	} else {
		runs, err = m.source.TopRuns(maxRuns)
	}
	if err != nil {
		m.err = err
	}
	m.runs = runs

	if stats, err := m.source.Stats(); err == nil {
		m.stats = stats
	}
	m.updateTableRows()
}

// Rows renders the loaded runs as table rows.
func (m ScoreboardModel) Rows() []table.Row {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		score := fmt.Sprintf("%d", r.DisplayScore())
		if r.NewRecord {
			score += "*"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			score,
			formatDuration(r.Duration),
			fmt.Sprintf("%d", r.Jumps),
			r.Player,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// updateTableRows updates the table with current runs.
func (m *ScoreboardModel) updateTableRows() {
	m.table.SetRows(m.Rows())
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			if m.view == ViewTop {
				m.view = ViewRecent
			} else {
				m.view = ViewTop
			}
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString(titleStyle.Render(centerText(fmt.Sprintf("DASH - BEST %d", m.best), m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	var tabs []string
	for _, v := range []RunView{ViewTop, ViewRecent} {
		if v == m.view {
			tabs = append(tabs, activeTabStyle.Render(v.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(v.String()))
		}
	}
	return strings.Join(tabs, " ")
}

// renderSidebar renders aggregate stats.
func (m ScoreboardModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var s strings.Builder
	s.WriteString("Stats\n")
	s.WriteString(strings.Repeat("-", sidebarWidth-4))
	s.WriteString("\n")

	st := m.stats
	if st == nil {
		st = &storage.RunStats{}
	}
	fmt.Fprintf(&s, "Runs     %d\n", st.Runs)
	fmt.Fprintf(&s, "Best run %d\n", st.BestScore)
	fmt.Fprintf(&s, "Average  %.1f\n", st.AvgScore)
	fmt.Fprintf(&s, "Played   %s\n", formatDuration(st.TotalTime))
	fmt.Fprintf(&s, "Jumps    %d\n", st.TotalJumps)
	if !st.LastPlayed.IsZero() {
		fmt.Fprintf(&s, "Last     %s", st.LastPlayed.Format("Jan 02"))
	}

	return sidebarStyle.Render(s.String())
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if m.err != nil {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render("Cannot load runs: " + m.err.Error())
	}
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nPlay a game to set a high score!")
	}

	return m.table.View()
}

// IsQuitting returns true if user wants to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
func RunScoreboard(source RunSource, best, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(source, best, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// formatDuration renders a play time as m:ss.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
