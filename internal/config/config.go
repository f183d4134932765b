// Package config sets up the shared generator configuration.
package config

import "github.com/retroenv/retrogolib/log"

// CreateLogger creates the generator logger, debug wins over quiet.
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case debug:
		cfg.Level = log.DebugLevel
	case quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
