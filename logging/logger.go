package logging

import "go.uber.org/zap"

// New creates a zap logger for the given environment. production and development use
// the matching zap presets; anything else gets the example logger used locally.
func New(env string) (*zap.Logger, error) {
	switch env {
	case "production":
		return zap.NewProduction()
	case "development":
		return zap.NewDevelopment()
	default:
		return zap.NewExample(), nil
	}
}
