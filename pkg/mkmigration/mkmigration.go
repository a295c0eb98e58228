// Package mkmigration provides the migration scaffolder as a Go library.
//
// Example usage:
//
//	g, err := mkmigration.New(
//	    mkmigration.WithMigrationsDir("./db/migrations"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := g.Create("add users", mkmigration.WithDown())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, f := range report.Files {
//	    fmt.Println(f.Outcome, f.Path)
//	}
package mkmigration

import (
	"fmt"
	"os"

	"github.com/mkmigration/mkmigration/internal/config"
	"github.com/mkmigration/mkmigration/internal/logging"
	"github.com/mkmigration/mkmigration/internal/migration"
)

type (
	Report     = migration.Report
	FileResult = migration.FileResult
	Outcome    = migration.Outcome
	Direction  = migration.Direction

	DirectoryAccessError = migration.DirectoryAccessError
	MalformedStemError   = migration.MalformedStemError
)

const (
	OutcomeCreated = migration.OutcomeCreated
	OutcomeSkipped = migration.OutcomeSkipped

	DirectionUp   = migration.DirectionUp
	DirectionDown = migration.DirectionDown

	Placeholder = migration.Placeholder
)

type Generator struct {
	creator *migration.Creator
}

func New(opts ...Option) (*Generator, error) {
	s := &settings{
		migrationsDir: config.DefaultMigrationsDir,
		logLevel:      "warn",
		logOutput:     os.Stderr,
	}

	for _, opt := range opts {
		opt(s)
	}

	cfg := config.Default()
	cfg.MigrationsDir = s.migrationsDir
	cfg.LogLevel = s.logLevel

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := logging.New(cfg.LogLevel, s.logOutput)

	return &Generator{
		creator: migration.NewCreator(cfg.MigrationsDir, logger),
	}, nil
}

func (g *Generator) Dir() string {
	return g.creator.Dir()
}

func (g *Generator) Create(name string, opts ...CreateOption) (*Report, error) {
	s := &createSettings{}
	for _, opt := range opts {
		opt(s)
	}
	return g.creator.Create(name, s.down)
}

// NextIndex reports the index the next Create call would use.
func (g *Generator) NextIndex() (int, error) {
	return migration.GetNextIndex(g.creator.Dir())
}

func Sanitize(name string) string {
	return migration.Sanitize(name)
}
