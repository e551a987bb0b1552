package logger

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger configuration
type Config struct {
	Level       string
	ServiceName string
	Development bool
}

var (
	global *zap.Logger
	once   sync.Once
)

// Init initializes the global logger with the given configuration
func Init(cfg *Config) error {
	var err error
	once.Do(func() {
		var zapCfg zap.Config
		if cfg.Development {
			zapCfg = zap.NewDevelopmentConfig()
			zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		} else {
			zapCfg = zap.NewProductionConfig()
		}

		if level, parseErr := zapcore.ParseLevel(cfg.Level); parseErr == nil {
			zapCfg.Level = zap.NewAtomicLevelAt(level)
		}

		var logger *zap.Logger
		logger, err = zapCfg.Build(zap.Fields(zap.String("service", cfg.ServiceName)))
		if err != nil {
			err = fmt.Errorf("failed to build logger: %w", err)
			return
		}
		global = logger
	})
	return err
}

// Get returns the global logger. It falls back to a no-op logger when
// Init has not been called, so library code can always log safely.
func Get() *zap.Logger {
	if global == nil {
		return zap.NewNop()
	}
	return global
}

// Sync flushes any buffered log entries
func Sync() {
	if global != nil {
		_ = global.Sync()
	}
}
