package mkmigration

import (
	"io"
)

type settings struct {
	migrationsDir string
	logLevel      string
	logOutput     io.Writer
}

type Option func(*settings)

// WithMigrationsDir points the generator at dir instead of the CLI default.
func WithMigrationsDir(dir string) Option {
	return func(s *settings) {
		s.migrationsDir = dir
	}
}

func WithLogLevel(level string) Option {
	return func(s *settings) {
		s.logLevel = level
	}
}

// WithLogOutput sends log lines to w. Pass io.Discard to silence them.
func WithLogOutput(w io.Writer) Option {
	return func(s *settings) {
		s.logOutput = w
	}
}

type createSettings struct {
	down bool
}

type CreateOption func(*createSettings)

// WithDown also creates the down migration file.
func WithDown() CreateOption {
	return func(s *createSettings) {
		s.down = true
	}
}
