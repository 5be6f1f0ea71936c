package report

import (
	"sort"
	"strings"
)

// Day is one identifier's log lines in report order
type Day struct {
	Identifier string
	Lines      []string
}

// Days returns the non-empty entries sorted by identifier, newest first.
// Identifiers are compared case-insensitively.
func Days(entries Entries) []Day {
	days := make([]Day, 0, len(entries))
	for id, lines := range entries {
		if len(lines) == 0 {
			continue
		}
		days = append(days, Day{Identifier: id, Lines: lines})
	}

	sort.SliceStable(days, func(i, j int) bool {
		a, b := strings.ToLower(days[i].Identifier), strings.ToLower(days[j].Identifier)
		if a != b {
			return a > b
		}
		return days[i].Identifier > days[j].Identifier
	})

	return days
}

// Render produces the markdown report: a "## <identifier>" heading and a blank
// line per day, followed by the day's lines exactly as captured.
func Render(entries Entries) string {
	var sb strings.Builder
	for _, day := range Days(entries) {
		sb.WriteString("## ")
		sb.WriteString(day.Identifier)
		sb.WriteString("\n\n")
		for _, line := range day.Lines {
			sb.WriteString(line)
		}
	}
	return sb.String()
}
