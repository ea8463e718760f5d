// Package logger provides leveled logging for the gw application.
package logger

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/mattn/go-isatty"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocks/logger.gen.go -package=mocks

// Logger interface provides leveled logging capabilities.
type Logger interface {
	// Debugf logs a formatted message shown only in verbose mode.
	Debugf(format string, args ...interface{})
	// Infof logs a formatted informational message.
	Infof(format string, args ...interface{})
	// Warnf logs a formatted warning.
	Warnf(format string, args ...interface{})
	// Errorf logs a formatted error.
	Errorf(format string, args ...interface{})
	// Sync flushes buffered entries.
	Sync() error
}

// Params contains parameters for creating a Logger.
type Params struct {
	// Verbose is the number of -v flags; any value above zero enables debug messages.
	Verbose int
	// LogFile is an optional path of a rotated JSON log file receiving every entry.
	LogFile string
	// Output receives the console entries. Defaults to os.Stderr.
	Output io.Writer
}

// Log file rotation settings.
const (
	logFileMaxSizeMB  = 5
	logFileMaxBackups = 3
	logFileMaxAgeDays = 28
)

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewLogger creates a Logger writing plain messages to the console and,
// when a log file is configured, JSON entries to a rotated file.
func NewLogger(params Params) (Logger, error) {
	out := params.Output
	if out == nil {
		out = os.Stderr
	}

	level := zapcore.InfoLevel
	if params.Verbose > 0 {
		level = zapcore.DebugLevel
	}

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleEncoderConfig(params.Verbose, isTerminal(out))),
			zapcore.AddSync(out),
			level,
		),
	}

	if params.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(params.LogFile), 0755); err != nil {
			return nil, err
		}

		fileWriter := &lumberjack.Logger{
			Filename:   params.LogFile,
			MaxSize:    logFileMaxSizeMB,
			MaxBackups: logFileMaxBackups,
			MaxAge:     logFileMaxAgeDays,
			Compress:   true,
		}

		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.TimeKey = "ts"
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoderCfg.EncodeLevel = zapcore.LowercaseLevelEncoder

		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.AddSync(fileWriter),
			zapcore.DebugLevel,
		))
	}

	return &zapLogger{sugar: zap.New(zapcore.NewTee(cores...)).Sugar()}, nil
}

// consoleEncoderConfig prints the bare message by default, and the level as well in verbose mode.
func consoleEncoderConfig(verbose int, colored bool) zapcore.EncoderConfig {
	cfg := zapcore.EncoderConfig{
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	if verbose > 0 {
		cfg.LevelKey = "level"
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		if colored {
			cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
	}

	return cfg
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (l *zapLogger) Debugf(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

func (l *zapLogger) Infof(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

func (l *zapLogger) Warnf(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

func (l *zapLogger) Errorf(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// Sync flushes buffered entries. Terminals and pipes cannot be synced
// (EINVAL, ENOTTY): those errors are dropped, any other is returned.
func (l *zapLogger) Sync() error {
	var errs error
	for _, err := range multierr.Errors(l.sugar.Sync()) {
		if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
			continue
		}
		errs = multierr.Append(errs, err)
	}
	return errs
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

func (n *noopLogger) Debugf(_ string, _ ...interface{}) {}
func (n *noopLogger) Infof(_ string, _ ...interface{})  {}
func (n *noopLogger) Warnf(_ string, _ ...interface{})  {}
func (n *noopLogger) Errorf(_ string, _ ...interface{}) {}
func (n *noopLogger) Sync() error                       { return nil }
