// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package logging

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"github.com/zeebo/errs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type (
	Field  = zapcore.Field
	Option = zap.Option
	Level  = zapcore.Level
)

type loggerCtxKey struct{}

// Config selects how Build assembles a logger.
type Config struct {
	// Production switches to JSON output and sampling.
	Production bool

	// Level is the minimum enabled level.
	Level Level
}

// Logger is a thin wrapper over *zap.Logger.
type Logger struct {
	log *zap.Logger
}

var (
	logOnce      sync.Once
	cachedLogger *Logger
)

// Production reports whether the process runs with GO_ENVIRONMENT=production.
func Production() bool {
	return os.Getenv("GO_ENVIRONMENT") == "production"
}

// DefaultConfig returns the configuration derived from the environment.
func DefaultConfig() Config {
	cfg := Config{Production: Production(), Level: zapcore.DebugLevel}
	if cfg.Production {
		cfg.Level = zapcore.InfoLevel
	}
	return cfg
}

// Build creates a new logger from cfg.
func Build(cfg Config, opts ...Option) (*Logger, error) {
	var logCfg zap.Config
	if cfg.Production {
		logCfg = zap.NewProductionConfig()
	} else {
		logCfg = zap.NewDevelopmentConfig()
		logCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	logCfg.Level = zap.NewAtomicLevelAt(cfg.Level)
	logCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	logger, err := logCfg.Build(opts...)
	if err != nil {
		return nil, errs.New("could not create logger: %w", err)
	}
	return &Logger{log: logger}, nil
}

// New returns the process-wide logger, building it from the environment on
// first use.
func New() *Logger {
	logOnce.Do(func() {
		logger, err := Build(DefaultConfig())
		if err != nil {
			log.Panicf("%v", err)
		}
		cachedLogger = logger
	})
	return cachedLogger
}

// Wrap adapts an existing zap logger.
func Wrap(l *zap.Logger) *Logger {
	return &Logger{log: l}
}

// FromContext returns the logger stored in ctx, or New().
func FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return New()
	}
	if l, ok := ctx.Value(loggerCtxKey{}).(*Logger); ok {
		return l
	}
	return New()
}

// WithContext stores l in ctx.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, l)
}

func (l *Logger) Debug(msg string, fields ...Field) {
	l.log.Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...Field) {
	l.log.Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...Field) {
	l.log.Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...Field) {
	l.log.Error(msg, fields...)
}

func (l *Logger) Sync() error {
	return l.log.Sync()
}

func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{log: l.log.With(fields...)}
}

func (l *Logger) Named(name string) *Logger {
	return &Logger{log: l.log.Named(name)}
}
