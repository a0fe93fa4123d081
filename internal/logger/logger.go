package logger

import (
	"go.uber.org/zap"

	"github.com/aliskhannn/fawazir-bot/internal/config"
)

// New builds the application logger: JSON output in production, console output elsewhere.
func New(cfg *config.Config) (*zap.Logger, error) {
	switch cfg.Env {
	case "prod", "production":
		return zap.NewProduction()
	default:
		return zap.NewDevelopment()
	}
}
