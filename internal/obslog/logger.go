// Package obslog bridges the zap logging stack to the log/slog interface
// the decoder package accepts (decoder.WithLogger), so the core wire-codec
// packages never depend on zap directly.
package obslog

import (
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

// New builds a *slog.Logger backed by zap. In production mode it uses
// zap's JSON production config; otherwise a colorized development
// config. The returned func flushes the underlying zap core and should
// be deferred by the caller.
func New(isProd bool) (*slog.Logger, func() error) {
	var zapLogger *zap.Logger

	if isProd {
		zapLogger = zap.Must(zap.NewProduction())
	} else {
		config := zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapLogger = zap.Must(config.Build())
	}

	return slog.New(zapslog.NewHandler(zapLogger.Core())), zapLogger.Sync
}
