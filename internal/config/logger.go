package config

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns the console logger of the CLI.
//
// Debug and info messages go to stdout, warnings and errors to stderr.
// Level "normal" starts at info, "debug" at debug. Level "none" silences
// stdout only; warnings and errors still reach stderr. An empty level means
// "normal".
func NewLogger(level string, stdout, stderr io.Writer) (*zap.Logger, error) {
	var lowest zapcore.Level
	switch level {
	case "", LogNormal:
		lowest = zapcore.InfoLevel
	case LogDebug:
		lowest = zapcore.DebugLevel
	case LogNone:
		lowest = zapcore.WarnLevel
	default:
		return nil, fmt.Errorf("%w: logging level %q", ErrInvalidValue, level)
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(ec)

	lowPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lowest <= lvl && lvl < zapcore.WarnLevel
	})
	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.WarnLevel
	})

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(stdout)), lowPriority),
		zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(stderr)), highPriority),
	)
	return zap.New(core), nil
}
