package config

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

func InitLogger(cfg *Config) {
	logger.SetOutput(os.Stdout)
	if cfg.IsProduction() {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.WithError(err).Warnf("Unknown LOG_LEVEL %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
}

func Logger() *logrus.Logger {
	return logger
}

// WithContext returns an entry tagged with the chi request id, if any.
func WithContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(logger)
	if id := middleware.GetReqID(ctx); id != "" {
		entry = entry.WithField("request_id", id)
	}
	return entry
}
