// Package app provides logger initialization.
package app

import (
	"github.com/guttosm/box-service/config"
	"github.com/guttosm/box-service/internal/logger"
)

// InitializeLogger configures the global zerolog logger.
func InitializeLogger(cfg config.LogConfig) {
	logger.Init(cfg.Level, cfg.Pretty)
}
