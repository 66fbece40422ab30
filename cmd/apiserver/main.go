// Command apiserver is the ByeStunting API server entry point for
// containerised deployments: flag-driven, config from file or environment.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/byestunting/byestunting/internal/config"
	"github.com/byestunting/byestunting/internal/infrastructure/monitoring/logging"
	"github.com/byestunting/byestunting/internal/interfaces/cli"
)

const defaultConfigPath = "configs/config.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to configuration file")
	port := flag.Int("port", 0, "server port (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}

	logger, err := logging.NewLogger(logging.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		OutputPaths: cfg.Log.OutputPaths,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	if err := cli.RunServer(cfg, logger); err != nil {
		logger.Error("server exited with error", logging.Err(err))
		os.Exit(1)
	}
}

// loadConfig prefers the config file but falls back to environment-only
// configuration when the default path does not exist.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); err != nil {
		if path != defaultConfigPath {
			return nil, fmt.Errorf("config file %s not found", path)
		}
		return config.LoadFromEnv()
	}
	return config.Load(path)
}
