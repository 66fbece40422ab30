// Package cli implements the byestunting command tree: a local assessment
// command for field workers and a serve command running the API server.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/byestunting/byestunting/internal/config"
	"github.com/byestunting/byestunting/internal/infrastructure/monitoring/logging"
)

// RootOptions holds global CLI flags.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	JSONOutput bool
}

// NewRootCommand creates the root cobra command with all global flags and
// subcommands.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "byestunting",
		Short:   "ByeStunting: deteksi dini risiko stunting pada anak",
		Long:    "ByeStunting menganalisis data antropometri anak usia 0-60 bulan dengan\nmodel jaringan saraf dan memberikan rekomendasi penanganan dini.",
		Version: config.Version,

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (default: configs/config.yaml)")
	pf.StringVar(&opts.LogLevel, "log-level", "", "log level override (debug, info, warn, error)")
	pf.BoolVar(&opts.JSONOutput, "json", false, "print results as JSON")

	cmd.AddCommand(
		NewAssessCommand(opts),
		NewServeCommand(opts),
	)

	return cmd
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration for a command run. A
// missing default config file is not fatal; defaults plus environment
// variables apply.
func loadConfig(opts *RootOptions) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)

	switch {
	case opts.ConfigPath != "":
		cfg, err = config.Load(opts.ConfigPath)
	default:
		if _, statErr := os.Stat("configs/config.yaml"); statErr == nil {
			cfg, err = config.Load("configs/config.yaml")
		} else {
			cfg, err = config.LoadFromEnv()
		}
	}
	if err != nil {
		return nil, err
	}

	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// newLogger builds the process logger from config.
func newLogger(cfg *config.Config) (logging.Logger, error) {
	return logging.NewLogger(logging.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		OutputPaths: cfg.Log.OutputPaths,
	})
}
