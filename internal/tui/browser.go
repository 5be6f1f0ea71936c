// Package tui implements the interactive report browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"dailylog/internal/daterange"
	"dailylog/internal/report"
	"dailylog/internal/tui/shared"
)

const listWidth = 16

var helpSections = []shared.HelpSection{
	{
		Title: "Navigation",
		Binds: []shared.HelpBind{
			{Key: "j/k", Desc: "next / previous day"},
			{Key: "g/G", Desc: "newest / oldest day"},
			{Key: "pgup/pgdn", Desc: "scroll entries"},
		},
	},
	{
		Title: "Search",
		Binds: []shared.HelpBind{
			{Key: "/", Desc: "fuzzy filter days"},
			{Key: "enter", Desc: "keep filter"},
			{Key: "esc", Desc: "clear filter"},
		},
	},
	{
		Title: "General",
		Binds: []shared.HelpBind{
			{Key: "?", Desc: "toggle help"},
			{Key: "q", Desc: "quit"},
		},
	},
}

// BrowserModel shows one day's log entries at a time, newest day first
type BrowserModel struct {
	interval daterange.Interval
	allDays  []report.Day // report order, before filtering
	days     []report.Day // after filtering
	cursor   int
	entries  viewport.Model
	width    int
	height   int
	showHelp bool

	searchActive bool
	searchInput  textinput.Model
	searchQuery  string
}

// NewBrowserModel creates a browser over days, which are expected in report order
func NewBrowserModel(days []report.Day, iv daterange.Interval) BrowserModel {
	si := textinput.New()
	si.Placeholder = "Search..."
	si.CharLimit = 100
	si.Width = 30

	m := BrowserModel{
		interval:    iv,
		allDays:     days,
		days:        days,
		entries:     viewport.New(60, 20),
		searchInput: si,
	}
	m.refreshEntries()
	return m
}

// Run starts the browser and blocks until the user quits
func Run(days []report.Day, iv daterange.Interval) error {
	p := tea.NewProgram(NewBrowserModel(days, iv), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Selected returns the day under the cursor
func (m BrowserModel) Selected() (report.Day, bool) {
	if m.cursor < 0 || m.cursor >= len(m.days) {
		return report.Day{}, false
	}
	return m.days[m.cursor], true
}

// Visible returns the days left after filtering
func (m BrowserModel) Visible() []report.Day {
	return m.days
}

func searchString(day report.Day) string {
	return day.Identifier + " " + strings.Join(day.Lines, " ")
}

func (m *BrowserModel) applySearchFilter() {
	if m.searchQuery == "" {
		m.days = m.allDays
	} else {
		names := make([]string, len(m.allDays))
		for i, day := range m.allDays {
			names[i] = searchString(day)
		}
		matches := fuzzy.Find(m.searchQuery, names)
		m.days = make([]report.Day, len(matches))
		for i, match := range matches {
			m.days[i] = m.allDays[match.Index]
		}
	}

	// Clamp cursor
	if m.cursor >= len(m.days) {
		m.cursor = max(0, len(m.days)-1)
	}
	m.refreshEntries()
}

func (m *BrowserModel) refreshEntries() {
	day, ok := m.Selected()
	if !ok {
		m.entries.SetContent(emptyStyle.Render("No log entries."))
		return
	}

	var sb strings.Builder
	sb.WriteString(headingStyle.Render(day.Identifier))
	sb.WriteString("\n\n")
	for _, line := range day.Lines {
		sb.WriteString(entryStyle.Render(strings.TrimRight(line, "\r\n")))
		sb.WriteString("\n")
	}
	m.entries.SetContent(sb.String())
	m.entries.GotoTop()
}

func (m *BrowserModel) setSize(width, height int) {
	m.width = width
	m.height = height
	m.entries.Width = max(10, width-listWidth-8)
	m.entries.Height = max(3, height-6)
}

// Init implements tea.Model
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		if m.searchActive {
			return m.handleSearchMode(msg)
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "?":
			m.showHelp = true
		case "/":
			m.searchActive = true
			m.searchInput.SetValue(m.searchQuery)
			return m, m.searchInput.Focus()
		case "esc":
			if m.searchQuery != "" {
				m.searchQuery = ""
				m.applySearchFilter()
			}
		case "j", "down":
			if m.cursor < len(m.days)-1 {
				m.cursor++
				m.refreshEntries()
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
				m.refreshEntries()
			}
		case "g", "home":
			m.cursor = 0
			m.refreshEntries()
		case "G", "end":
			m.cursor = max(0, len(m.days)-1)
			m.refreshEntries()
		default:
			var cmd tea.Cmd
			m.entries, cmd = m.entries.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m BrowserModel) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchActive = false
		m.searchInput.Blur()
		return m, nil
	case "esc":
		m.searchInput.SetValue("")
		m.searchQuery = ""
		m.searchActive = false
		m.searchInput.Blur()
		m.applySearchFilter()
		return m, nil
	default:
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.searchQuery = m.searchInput.Value()
		m.applySearchFilter()
		return m, cmd
	}
}

// View implements tea.Model
func (m BrowserModel) View() string {
	if m.showHelp {
		return shared.RenderHelpPopup(helpSections, m.width, m.height)
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(" Daily log"))
	sb.WriteString("  ")
	sb.WriteString(rangeStyle.Render(m.interval.String()))
	sb.WriteString("\n")

	if m.searchActive {
		sb.WriteString("  " + m.searchInput.View() + "\n")
	} else if m.searchQuery != "" {
		sb.WriteString("  " + searchLabelStyle.Render("Filter: ") + m.searchQuery + "\n")
	}

	if len(m.allDays) == 0 {
		sb.WriteString("\n")
		sb.WriteString(emptyStyle.Render("  No log entries in this period."))
		return shared.CenterContent(sb.String(), m.height)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		listPanelStyle.Render(m.renderDayList()),
		detailPanelStyle.Render(m.entries.View()),
	)
	sb.WriteString(body)
	sb.WriteString("\n")

	status := fmt.Sprintf("%d of %d days  ?:help  q:quit", len(m.days), len(m.allDays))
	sb.WriteString(statusStyle.Render(status))
	return sb.String()
}

func (m BrowserModel) renderDayList() string {
	if len(m.days) == 0 {
		return emptyStyle.Render(shared.Truncate("No matches", listWidth))
	}

	// keep the cursor on screen
	rows := max(1, m.entries.Height)
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	end := min(len(m.days), start+rows)

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		day := m.days[i]
		label := shared.Truncate(day.Identifier, listWidth-6)
		count := countStyle.Render(fmt.Sprintf(" %d", len(day.Lines)))
		if i == m.cursor {
			lines = append(lines, cursorStyle.Render("> ")+daySelectedStyle.Render(label)+count)
		} else {
			lines = append(lines, "  "+dayStyle.Render(label)+count)
		}
	}
	return strings.Join(lines, "\n")
}
