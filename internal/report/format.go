package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

// Format selects how a report is encoded
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatHTML     Format = "html"
)

// ParseFormat maps a format name (or common alias) to a Format
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "html":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unknown report format %q (markdown, json, yaml, html)", name)
	}
}

type dayRecord struct {
	Date    string   `json:"date" yaml:"date"`
	Entries []string `json:"entries" yaml:"entries"`
}

func records(entries Entries) []dayRecord {
	days := Days(entries)
	out := make([]dayRecord, 0, len(days))
	for _, day := range days {
		rec := dayRecord{Date: day.Identifier, Entries: make([]string, 0, len(day.Lines))}
		for _, line := range day.Lines {
			rec.Entries = append(rec.Entries, strings.TrimRight(line, "\r\n"))
		}
		out = append(out, rec)
	}
	return out
}

// Encode renders entries in the given format
func Encode(format Format, entries Entries) ([]byte, error) {
	switch format {
	case FormatMarkdown, "":
		return []byte(Render(entries)), nil
	case FormatJSON:
		data, err := json.MarshalIndent(records(entries), "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(records(entries)); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatHTML:
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(Render(entries)), &buf); err != nil {
			return nil, fmt.Errorf("failed to convert report to html: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

// Write encodes entries and writes them to path in one call. A path of "-"
// writes to stdout instead.
func Write(path string, format Format, entries Entries, stdout io.Writer) error {
	data, err := Encode(format, entries)
	if err != nil {
		return err
	}

	if path == "-" {
		if stdout == nil {
			stdout = os.Stdout
		}
		_, err := stdout.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
