package logger

import "go.uber.org/zap"

// New builds the process-wide production logger writing JSON to stdout.
func New() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stdout"}
	return config.Build()
}
