package cmd

import (
	"github.com/harrison/catr/internal/executor"
	"github.com/harrison/catr/internal/models"
)

// multiLogger implements executor.Logger by delegating to multiple loggers
type multiLogger struct {
	loggers []executor.Logger
}

// LogSourceStart forwards to all loggers
func (ml *multiLogger) LogSourceStart(identifier string) {
	for _, logger := range ml.loggers {
		logger.LogSourceStart(identifier)
	}
}

// LogSourceComplete forwards to all loggers
func (ml *multiLogger) LogSourceComplete(result models.SourceResult) {
	for _, logger := range ml.loggers {
		logger.LogSourceComplete(result)
	}
}

// LogSummary forwards to all loggers
func (ml *multiLogger) LogSummary(result models.RunResult) {
	for _, logger := range ml.loggers {
		logger.LogSummary(result)
	}
}
