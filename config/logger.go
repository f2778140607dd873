package config

import (
	log "github.com/sirupsen/logrus"
)

func SetupLogger(cfg *Config) {
	if cfg.IsProduction() {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("Unknown LOG_LEVEL %q, falling back to info", cfg.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
