package logger

import (
	"go.uber.org/zap"
)

// New builds the process logger. Anything other than "production" gets the
// development config.
func New(mode string) (*zap.Logger, error) {
	if mode == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
