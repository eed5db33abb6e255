package logger

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu  sync.RWMutex
	log = zap.NewNop().Sugar()
)

// Init replaces the package logger. Until it is called every helper is a no-op.
func Init(environment, level string) {
	var cfg zap.Config
	if strings.EqualFold(environment, "production") {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))

	z, err := cfg.Build()
	if err != nil {
		z, _ = zap.NewProduction()
	}

	set(z.Sugar())
}

// Use installs an existing zap logger, mostly for tests.
func Use(z *zap.Logger) {
	set(z.Sugar())
}

func set(s *zap.SugaredLogger) {
	mu.Lock()
	defer mu.Unlock()
	log = s
}

func get() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

func Debug(msg string, keyvals ...any) {
	get().Debugw(msg, keyvals...)
}

func Info(msg string, keyvals ...any) {
	get().Infow(msg, keyvals...)
}

func Warn(msg string, keyvals ...any) {
	get().Warnw(msg, keyvals...)
}

func Error(msg string, keyvals ...any) {
	get().Errorw(msg, keyvals...)
}

// Fatal logs and exits with status 1.
func Fatal(msg string, keyvals ...any) {
	s := get()
	s.Errorw(msg, keyvals...)
	_ = s.Sync()
	os.Exit(1)
}

func Sync() error {
	return get().Sync()
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
