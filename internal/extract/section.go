// Package extract pulls the list items of one named section out of a note's lines.
package extract

import (
	"regexp"
	"strings"
)

// DefaultHeader is the heading that opens the log section of a daily note
const DefaultHeader = "## Log"

// State is the position of the scanner relative to the section
type State int

const (
	BeforeSection State = iota
	Collecting
	Done
)

func (s State) String() string {
	switch s {
	case BeforeSection:
		return "before"
	case Collecting:
		return "collecting"
	case Done:
		return "done"
	default:
		return ""
	}
}

var listItemPattern = regexp.MustCompile(`^\s*-`)

// IsListItem reports whether line is a list entry: optional whitespace, then a hyphen
func IsListItem(line string) bool {
	return listItemPattern.MatchString(line)
}

// IsHeading reports whether line starts a markdown heading
func IsHeading(line string) bool {
	return strings.HasPrefix(line, "#")
}

// Step advances the scanner by one line. It returns the next state and, when
// ok is true, the line to emit.
func Step(state State, line, header string) (next State, emit string, ok bool) {
	switch state {
	case BeforeSection:
		if strings.HasPrefix(line, header) {
			return Collecting, "", false
		}
		return BeforeSection, "", false
	case Collecting:
		if IsListItem(line) {
			return Collecting, line, true
		}
		if IsHeading(line) {
			return Done, "", false
		}
		// blank lines and prose stay inside the section
		return Collecting, "", false
	default:
		return Done, "", false
	}
}

// Extract returns the list items of the first section whose heading starts with
// header, verbatim and in order. The result is empty if the header never appears.
func Extract(lines []string, header string) []string {
	entries := []string{}
	state := BeforeSection
	for _, line := range lines {
		next, emit, ok := Step(state, line, header)
		if ok {
			entries = append(entries, emit)
		}
		if next == Done {
			break
		}
		state = next
	}
	return entries
}

// SplitLines splits content into physical lines, each keeping its trailing newline.
// The last line has none if content does not end with one.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
