package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

func SetupLogger(cfg *Config) {
	logrus.SetOutput(os.Stdout)
	if cfg.IsRelease() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Warnf("Unknown LOG_LEVEL %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
