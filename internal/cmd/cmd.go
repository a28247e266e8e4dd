// Package cmd assembles the coerce command tree.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dave-shawley/coercion/internal/cmd/normalise"
	"github.com/dave-shawley/coercion/internal/cmd/version"
	"github.com/dave-shawley/coercion/internal/flags/log"
)

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := New().Execute(); err != nil {
		os.Exit(1)
	}
}

// New returns the coerce root command with its subcommands and logging flags.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coerce [sub-command]",
		Short: "Normalise nested documents into canonical string-oriented form",
		Long: `coerce normalises nested documents: every mapping key and value is
converted to its canonical string form where one exists, and the result is
written as JSON, canonical JSON or YAML.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: setupLogging,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
	}

	log.RegisterLoggingFlags(cmd.PersistentFlags())
	cmd.AddCommand(normalise.New())
	cmd.AddCommand(version.New())
	return cmd
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	logger, err := log.GetBaseLogger(cmd)
	if err != nil {
		return fmt.Errorf("could not retrieve logger: %w", err)
	}
	slog.SetDefault(logger)
	return nil
}
