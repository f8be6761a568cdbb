package shared

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds the process-wide zerolog logger. Development gets the
// console writer, everything else emits JSON.
func NewLogger(environment string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	var logger zerolog.Logger

	if environment == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	} else {
		logger = zerolog.New(os.Stdout)
	}

	return logger.With().
		Timestamp().
		Str("service", "todoapi").
		Logger()
}
