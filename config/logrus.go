package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the process-wide structured logger. JSON output so log
// aggregators can index the module/funcName/context fields emitted by
// LogError.
func NewLogger(cfg *Config) *logrus.Logger {
	logg := logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetOutput(os.Stdout)

	var levelName string
	if cfg != nil {
		levelName = cfg.LogLevel
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		if cfg != nil && cfg.IsProduction() {
			level = logrus.ErrorLevel
		} else {
			level = logrus.InfoLevel
		}
	}
	logg.SetLevel(level)

	return logg
}

func LogError(logger *logrus.Logger, moduleName string, funcName string, context string, data any, err error) {
	if data != nil {
		logger.WithFields(logrus.Fields{
			"module":   moduleName,
			"funcName": funcName,
			"context":  context,
			"data":     data,
		}).Error(err.Error())
	} else {
		logger.WithFields(logrus.Fields{
			"module":   moduleName,
			"funcName": funcName,
			"context":  context,
		}).Error(err.Error())
	}
}
