package log

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// MigrationLogger satisfies goose.Logger. Progress lines go to debug so a
// normal start stays quiet.
type MigrationLogger struct {
	logger zerolog.Logger
}

func NewGooseLoggerFromCtx(ctx context.Context) *MigrationLogger {
	return &MigrationLogger{
		logger: FromCtx(ctx).With().Str("component", "goose").Logger(),
	}
}

func (m *MigrationLogger) Printf(format string, v ...interface{}) {
	m.logger.Debug().Msgf(strings.TrimRight(format, "\n"), v...)
}

// Fatalf is only reached on broken migrations; goose expects it not to return.
func (m *MigrationLogger) Fatalf(format string, v ...interface{}) {
	m.logger.Fatal().Msgf(strings.TrimRight(format, "\n"), v...)
}
