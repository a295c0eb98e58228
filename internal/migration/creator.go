package migration

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

type Creator struct {
	dir    string
	Logger zerolog.Logger
}

func NewCreator(dir string, logger zerolog.Logger) *Creator {
	return &Creator{
		dir:    dir,
		Logger: logger,
	}
}

func (c *Creator) Dir() string {
	return c.dir
}

// Create allocates the next index and writes the placeholder up file, plus
// the down file when includeDown is set. Files that already exist are left
// untouched and reported as skipped. Files written before a failure stay on
// disk and are included in the returned report.
func (c *Creator) Create(name string, includeDown bool) (*Report, error) {
	sanitized := Sanitize(name)

	stems, err := ListStems(c.dir)
	if err != nil {
		return nil, err
	}

	c.Logger.Debug().
		Str("dir", c.dir).
		Int("existing", len(stems)).
		Msg("Scanned migrations directory")

	index, err := NextIndex(stems)
	if err != nil {
		return nil, fmt.Errorf("failed to determine next index: %w", err)
	}

	stem := BuildStem(index, sanitized)
	report := &Report{
		Index: index,
		Name:  sanitized,
		Stem:  stem,
	}

	directions := []Direction{DirectionUp}
	if includeDown {
		directions = append(directions, DirectionDown)
	}

	for _, d := range directions {
		filename := stem + d.Suffix()
		path := filepath.Join(c.dir, filename)

		created, err := writePlaceholder(path)
		if err != nil {
			return report, fmt.Errorf("failed to create %s migration %s: %w", d, filename, err)
		}

		outcome := OutcomeCreated
		if !created {
			outcome = OutcomeSkipped
		}
		report.Files = append(report.Files, FileResult{
			Direction: d,
			Filename:  filename,
			Path:      path,
			Outcome:   outcome,
		})

		c.Logger.Debug().
			Str("file", path).
			Str("outcome", string(outcome)).
			Msg("Processed migration file")
	}

	return report, nil
}

// writePlaceholder reports false without touching the file when path exists.
func writePlaceholder(path string) (bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, err
	}

	if _, err := f.WriteString(Placeholder); err != nil {
		f.Close()
		return true, err
	}
	return true, f.Close()
}
