// Package logger builds zap loggers from settings.Logger.
package logger

import (
	"io"
	"os"

	"github.com/natefinch/lumberjack"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/huynhanx03/go-collections/pkg/settings"
)

// New returns a logger writing console output to stderr and, when
// FileLogName is set, JSON output to a rotated file.
// The returned close function flushes the logger and closes the file.
func New(cfg settings.Logger) (*zap.Logger, func() error, error) {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	consoleCfg := encoderCfg
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), consoleSink(os.Stderr), level),
	}
	var file *lumberjack.Logger
	if cfg.FileLogName != "" {
		file = fileSink(cfg)
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(file), level))
	}

	log := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	closeFn := func() error {
		err := log.Sync()
		if file != nil {
			err = multierr.Append(err, file.Close())
		}
		return err
	}
	return log, closeFn, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *zap.Logger {
	return zap.NewNop()
}

func parseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	level, err := zapcore.ParseLevel(s)
	if err != nil {
		return level, errors.Wrapf(err, "invalid log level %q", s)
	}
	return level, nil
}

// consoleSink writes to w and never syncs it.
// fsync on a terminal or pipe fails with EINVAL.
func consoleSink(w io.Writer) zapcore.WriteSyncer {
	return zapcore.Lock(nopSyncer{w})
}

type nopSyncer struct {
	io.Writer
}

func (nopSyncer) Sync() error { return nil }

func fileSink(cfg settings.Logger) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   cfg.FileLogName,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
}
