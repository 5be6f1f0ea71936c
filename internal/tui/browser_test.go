package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dailylog/internal/daterange"
	"dailylog/internal/report"
)

func sampleDays() []report.Day {
	return report.Days(report.Entries{
		"2024-06-03": {"- wrote the release notes\n"},
		"2024-06-02": {"- reviewed pull requests\n", "- lunch with Sam\n"},
		"2024-06-01": {"- fixed flaky test\n"},
		"2024-05-31": {},
	})
}

func sampleInterval() daterange.Interval {
	return daterange.NewInterval(
		time.Date(2024, 5, 31, 0, 0, 0, 0, time.Local),
		time.Date(2024, 6, 3, 0, 0, 0, 0, time.Local),
	)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m BrowserModel, keys ...string) BrowserModel {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(BrowserModel)
	}
	return m
}

func TestBrowser_StartsOnNewestDay(t *testing.T) {
	m := NewBrowserModel(sampleDays(), sampleInterval())

	require.Len(t, m.Visible(), 3)
	day, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "2024-06-03", day.Identifier)
}

func TestBrowser_Navigation(t *testing.T) {
	m := NewBrowserModel(sampleDays(), sampleInterval())

	m = press(m, "j", "j", "j")
	day, _ := m.Selected()
	assert.Equal(t, "2024-06-01", day.Identifier, "cursor stops at the last day")

	m = press(m, "k")
	day, _ = m.Selected()
	assert.Equal(t, "2024-06-02", day.Identifier)

	m = press(m, "g")
	day, _ = m.Selected()
	assert.Equal(t, "2024-06-03", day.Identifier)

	m = press(m, "G")
	day, _ = m.Selected()
	assert.Equal(t, "2024-06-01", day.Identifier)
}

func TestBrowser_SearchFilter(t *testing.T) {
	m := NewBrowserModel(sampleDays(), sampleInterval())

	m = press(m, "/", "f", "l", "a", "k", "y")
	require.Len(t, m.Visible(), 1)
	assert.Equal(t, "2024-06-01", m.Visible()[0].Identifier)

	// enter keeps the filter, esc clears it
	m = press(m, "enter")
	assert.Len(t, m.Visible(), 1)

	m = press(m, "esc")
	assert.Len(t, m.Visible(), 3)
}

func TestBrowser_SearchNoMatches(t *testing.T) {
	m := NewBrowserModel(sampleDays(), sampleInterval())

	m = press(m, "/", "z", "z", "z")
	assert.Empty(t, m.Visible())
	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "No matches")
}

func TestBrowser_QuitAndHelp(t *testing.T) {
	m := NewBrowserModel(sampleDays(), sampleInterval())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(BrowserModel)

	m = press(m, "?")
	assert.Contains(t, m.View(), "toggle help")
	m = press(m, "x")
	assert.NotContains(t, m.View(), "toggle help")

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestBrowser_EmptyReport(t *testing.T) {
	m := NewBrowserModel(nil, sampleInterval())

	assert.Contains(t, m.View(), "No log entries in this period.")
	m = press(m, "j", "k")
	_, ok := m.Selected()
	assert.False(t, ok)
}
