package logger

import (
	"go.uber.org/zap"
)

// New builds a production sugared logger.
func New() (*zap.SugaredLogger, error) {
	log, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return log.Sugar(), nil
}

// NewNop returns a no-op logger for tests and optional dependencies.
func NewNop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
