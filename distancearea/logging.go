package distancearea

import "go.uber.org/zap"

// logger returns the engine's configured logger, defaulting to a no-op
// sink so an Engine built with New() never needs a nil check before
// logging a diagnostic.
func (e *Engine) log() *zap.Logger {
	if e.logger == nil {
		return zap.NewNop()
	}
	return e.logger
}
