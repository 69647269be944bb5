package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"prospectcrm/internal/config"
)

// New builds the service logger: JSON output in prod-like environments,
// colored console output otherwise.
func New(cfg *config.Config) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.IsProduction() {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build(zap.Fields(zap.String("env", cfg.AppEnv)))
}
