package commands

import (
	"os"

	"github.com/photoflow-io/smugmug/pkg/smugmug"
	"github.com/rs/zerolog"
)

// ZerologAdapter adapts a zerolog.Logger to the smugmug.Logger
// interface.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter creates a console logger suitable for CLI debug
// output.
func NewZerologAdapter() *ZerologAdapter {
	writer := zerolog.ConsoleWriter{Out: os.Stderr}

	return &ZerologAdapter{
		logger: zerolog.New(writer).Level(zerolog.DebugLevel).With().Timestamp().Logger(),
	}
}

var _ smugmug.Logger = (*ZerologAdapter)(nil)

// Debug implements smugmug.Logger.Debug.
func (a *ZerologAdapter) Debug(msg string, fields map[string]interface{}) {
	a.logger.Debug().Fields(fields).Msg(msg)
}

// Info implements smugmug.Logger.Info.
func (a *ZerologAdapter) Info(msg string, fields map[string]interface{}) {
	a.logger.Info().Fields(fields).Msg(msg)
}

// Warn implements smugmug.Logger.Warn.
func (a *ZerologAdapter) Warn(msg string, fields map[string]interface{}) {
	a.logger.Warn().Fields(fields).Msg(msg)
}

// Error implements smugmug.Logger.Error.
func (a *ZerologAdapter) Error(msg string, fields map[string]interface{}) {
	a.logger.Error().Fields(fields).Msg(msg)
}
