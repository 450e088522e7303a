// Package logging builds the zap logger used by the taxicab command.
//
// Logs always go to stderr so that stdout carries nothing but matches.
package logging

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// DefaultLevel keeps a normal run silent on stderr.
const DefaultLevel = "warn"

// ErrInvalidLevel is returned for a level zap does not recognise.
var ErrInvalidLevel = errors.New("logging: invalid level")

// New returns a production (JSON) logger writing to stderr at level.
// An empty level means DefaultLevel.
func New(level string) (*zap.Logger, error) {
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidLevel, level, err)
	}

	config := zap.NewProductionConfig()
	config.Level = lvl
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}
