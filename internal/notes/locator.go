package notes

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dailylog/internal/daterange"
	"dailylog/internal/logs"
)

// AccessError reports a notes directory that cannot be scanned
type AccessError struct {
	Dir string
	Err error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("cannot scan notes directory %s: %v", e.Dir, e.Err)
}

func (e *AccessError) Unwrap() error {
	return e.Err
}

// Locator finds daily note files inside a date interval
type Locator struct {
	Extension string // note file extension, defaults to .md
}

// Locate scans dir with the default extension
func Locate(dir string, iv daterange.Interval) ([]Note, error) {
	return Locator{}.Locate(dir, iv)
}

// Locate scans dir (non-recursively) for note files whose name parses as a date
// inside iv. Files whose stem is not a date are skipped.
func (l Locator) Locate(dir string, iv daterange.Interval) ([]Note, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, &AccessError{Dir: dir, Err: err}
	}
	if !info.IsDir() {
		return nil, &AccessError{Dir: dir, Err: fmt.Errorf("not a directory")}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &AccessError{Dir: dir, Err: err}
	}

	ext := l.extension()
	var found []Note
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ext) || !isRegularFile(dir, entry) {
			continue
		}

		noteDate, err := daterange.ParseDate(dateStem(name))
		if err != nil {
			logs.Logger.Debug().Str("file", name).Msg("skipping file without a date name")
			continue
		}

		if iv.Contains(noteDate) {
			found = append(found, Note{
				Identifier: Identifier(name),
				Date:       noteDate,
				Path:       filepath.Join(dir, name),
			})
		}
	}

	return found, nil
}

// Identifier returns the filename without its extension
func Identifier(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// dateStem returns the part of the name parsed as a date: everything before the first dot
func dateStem(name string) string {
	if i := strings.Index(name, "."); i >= 0 {
		return name[:i]
	}
	return name
}

// isRegularFile follows symlinks so linked notes are picked up
func isRegularFile(dir string, entry os.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && info.Mode().IsRegular()
}

func (l Locator) extension() string {
	if l.Extension == "" {
		return DefaultExtension
	}
	if !strings.HasPrefix(l.Extension, ".") {
		return "." + l.Extension
	}
	return l.Extension
}
