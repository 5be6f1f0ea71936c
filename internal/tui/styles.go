package tui

import (
	"github.com/charmbracelet/lipgloss"

	"dailylog/internal/tui/theme"
)

var (
	titleStyle       = theme.Title
	rangeStyle       = theme.Muted
	dayStyle         = lipgloss.NewStyle()
	daySelectedStyle = theme.SelectedBg
	cursorStyle      = theme.Cursor
	countStyle       = theme.Muted
	emptyStyle       = lipgloss.NewStyle().Foreground(theme.TextMuted).Italic(true)
	searchLabelStyle = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	entryStyle       = lipgloss.NewStyle().Foreground(theme.Text)
	headingStyle     = theme.Subtitle
	listPanelStyle   = theme.Panel
	detailPanelStyle = theme.PanelFocused
	statusStyle      = theme.StatusBar
)
