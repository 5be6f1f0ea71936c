package notes

import "time"

// DefaultExtension is the file extension of daily note files
const DefaultExtension = ".md"

// Note represents a daily note file whose name encodes its date
type Note struct {
	Identifier string    // Filename without extension, e.g. "2024-06-01"
	Date       time.Time // Parsed from Identifier, midnight local time
	Path       string    // Path to the file
}
