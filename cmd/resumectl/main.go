package main

import (
	"fmt"
	"log/slog"
	"os"

	"resume-builder/internal/config"
	"resume-builder/pkg/logger"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var cfg config.Config

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "resumectl",
	Short: "Render resumes from the command line",
	Long: `resumectl drives the same template catalog and PDF pipeline as the
server, without the HTTP layer.

Configuration is read from .env, CONFIG_FILE and the environment, exactly as
the server reads it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		slog.SetDefault(logger.New(os.Stderr, level, cfg.LogFormat))
		return nil
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
