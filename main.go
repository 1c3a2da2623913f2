package main

import (
	"os"

	"github.com/pboueri/supervisor/src/cmd"
	"github.com/pboueri/supervisor/src/config"
	"github.com/pboueri/supervisor/src/logger"
)

func main() {
	logger.Initialize()

	// A broken config file is reported by the command itself; here it only
	// means the default logger stays in place.
	if wd, err := os.Getwd(); err == nil {
		if cfg, err := config.LoadConfig(wd); err == nil {
			if err := config.InitializeLogger(cfg, wd); err != nil {
				logger.Warn("Failed to initialize logger from config: %v", err)
			}
		}
	}

	if err := cmd.Execute(); err != nil {
		logger.Error("Command failed: %v", err)
		os.Exit(1)
	}
}
