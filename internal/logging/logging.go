// Package logging builds the console logger used by the command line tools.
package logging

import (
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// A console logger at the named level ("debug", "info", ...). Level names are
// colored with aurora when color is set.
func New(level string, out zapcore.WriteSyncer, color bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "log level %q", level)
	}

	config := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     timeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	if color {
		config.EncodeLevel = colorLevelEncoder
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(config), out, lvl)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("[2006-01-02 | 15:04:05]"))
}

func colorLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	name := level.CapitalString()
	switch level {
	case zapcore.DebugLevel:
		enc.AppendString(aurora.Cyan(name).String())
	case zapcore.InfoLevel:
		enc.AppendString(aurora.Green(name).String())
	case zapcore.WarnLevel:
		enc.AppendString(aurora.Yellow(name).String())
	case zapcore.ErrorLevel:
		enc.AppendString(aurora.Red(name).String())
	default:
		enc.AppendString(aurora.Magenta(name).String())
	}
}
