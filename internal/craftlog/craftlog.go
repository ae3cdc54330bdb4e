// ABOUTME: Structured debug logging, off unless a sink is configured
// ABOUTME: Mirrors the reference solver's file-backed debugf, backed by zerolog

package craftlog

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.Nop()

// Setup initializes debug logging to the given file. Passing an empty
// filename disables logging (the package-level logger stays a no-op).
func Setup(filename string) error {
	if filename == "" {
		return nil
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create debug log file: %w", err)
	}

	logger = zerolog.New(f).With().Timestamp().Logger()
	return nil
}

// Debugf logs a formatted debug message if logging has been configured.
// It is a no-op otherwise, matching the reference solver's debugf.
func Debugf(format string, args ...interface{}) {
	logger.Debug().Msg(fmt.Sprintf(format, args...))
}

// Generation logs one GA generation's summary fields in structured form.
func Generation(gen int, bestFitness int, genPerSec float64) {
	logger.Info().
		Int("generation", gen).
		Int("best_fitness", bestFitness).
		Float64("generations_per_sec", genPerSec).
		Msg("generation complete")
}

// Event logs a single structured line with arbitrary key/value fields,
// for call sites that want more than a plain formatted message.
func Event(msg string, fields map[string]interface{}) {
	e := logger.Info()
	for k, v := range fields {
		e = e.Interface(k, v)
	}
	e.Msg(msg)
}
