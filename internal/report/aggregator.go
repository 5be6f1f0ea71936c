package report

import (
	"errors"
	"os"

	"dailylog/internal/daterange"
	"dailylog/internal/extract"
	"dailylog/internal/logs"
	"dailylog/internal/notes"
)

// Entries maps a note identifier to the log lines extracted from it
type Entries map[string][]string

// Policy decides what happens when the date range or notes directory is unusable
type Policy int

const (
	// Degrade logs the error and returns an empty result
	Degrade Policy = iota
	// Propagate returns the error to the caller
	Propagate
)

// Aggregator collects log sections from every note file in a date range
type Aggregator struct {
	// Header opens the log section; defaults to extract.DefaultHeader
	Header  string
	Locator notes.Locator
	Policy  Policy
}

// NewAggregator creates an aggregator with the default header, extension and policy
func NewAggregator() *Aggregator {
	return &Aggregator{Header: extract.DefaultHeader}
}

// Gather parses begin and end as dates and aggregates the notes between them
func (a *Aggregator) Gather(dir, begin, end string) (Entries, error) {
	start, err := daterange.ParseDate(begin)
	if err != nil {
		return a.fail(err)
	}
	stop, err := daterange.ParseDate(end)
	if err != nil {
		return a.fail(err)
	}
	return a.Aggregate(dir, daterange.NewInterval(start, stop))
}

// Aggregate extracts the log section of every note in dir that falls inside iv.
// Notes are read one at a time; an unreadable note is skipped.
func (a *Aggregator) Aggregate(dir string, iv daterange.Interval) (Entries, error) {
	found, err := a.Locator.Locate(dir, iv)
	if err != nil {
		return a.fail(err)
	}

	entries := make(Entries, len(found))
	for _, note := range found {
		content, err := os.ReadFile(note.Path)
		if err != nil {
			logs.Logger.Warn().Err(err).Str("file", note.Path).Msg("skipping unreadable note")
			continue
		}
		entries[note.Identifier] = extract.Extract(extract.SplitLines(string(content)), a.header())
		logs.Logger.Debug().
			Str("note", note.Identifier).
			Int("entries", len(entries[note.Identifier])).
			Msg("extracted log section")
	}

	logs.Logger.Info().Str("range", iv.String()).Int("notes", len(entries)).Msg("aggregated notes")
	return entries, nil
}

func (a *Aggregator) fail(err error) (Entries, error) {
	if a.Policy == Propagate {
		return nil, err
	}

	var parseErr *daterange.DateParseError
	var accessErr *notes.AccessError
	switch {
	case errors.As(err, &parseErr):
		logs.Logger.Error().Err(err).Msg("error parsing date")
	case errors.As(err, &accessErr):
		logs.Logger.Error().Err(err).Msg("error scanning notes")
	default:
		return nil, err
	}
	return Entries{}, nil
}

func (a *Aggregator) header() string {
	if a.Header == "" {
		return extract.DefaultHeader
	}
	return a.Header
}
