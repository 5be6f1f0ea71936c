package shared

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dailylog/internal/tui/theme"
)

// HelpBind represents a single keybind entry
type HelpBind struct {
	Key  string
	Desc string
}

// HelpSection represents a group of related keybinds
type HelpSection struct {
	Title string
	Binds []HelpBind
}

var (
	helpSectionStyle = theme.Title
	helpKeyStyle     = lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary)
	helpDescStyle    = lipgloss.NewStyle().Foreground(theme.Text)
	helpBoxStyle     = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(theme.Primary).
				Padding(1, 2)
	helpDismissStyle = theme.Muted
)

// RenderHelpPopup renders a centered help popup with the given sections
func RenderHelpPopup(sections []HelpSection, width, height int) string {
	var sb strings.Builder
	for i, section := range sections {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(helpSectionStyle.Render(section.Title))
		sb.WriteString("\n")
		for _, bind := range section.Binds {
			sb.WriteString("  ")
			sb.WriteString(helpKeyStyle.Width(12).Render(bind.Key))
			sb.WriteString(helpDescStyle.Render(bind.Desc))
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n")
	sb.WriteString(helpDismissStyle.Render("Press any key to close"))

	box := helpBoxStyle.Render(sb.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
