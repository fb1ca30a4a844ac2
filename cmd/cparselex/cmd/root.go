package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cparselex/cparselex/internal/config"
)

var (
	rootCmd = &cobra.Command{
		Use:               "cparselex",
		Short:             "cparselex",
		SilenceUsage:      true,
		Long:              `Standalone driver for the cparselex C lexical-analysis pipeline.`,
		PersistentPreRunE: loadProjectConfig,
	}

	directory string
	logLevel  string

	projectConfig config.Config
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&directory, "directory", "d", ".", "path to directory searched for cparselex.yaml")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "", "log level: debug, info, warn, error (overrides cparselex.yaml)")
	return rootCmd.Execute()
}

// loadProjectConfig reads cparselex.yaml from --directory and, unless
// the caller passed --log-level explicitly, adopts the level it names.
func loadProjectConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(directory)
	if err != nil {
		return fmt.Errorf("loading cparselex.yaml: %w", err)
	}
	projectConfig = cfg
	if logLevel == "" {
		logLevel = cfg.LogLevel
	}
	return nil
}
