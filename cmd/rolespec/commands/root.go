// Package commands wires the rolespec CLI. Each subcommand discovers the
// scenarios under the current directory, resolves one configuration per
// scenario, and operates on the resulting list.
package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rolespec/rolespec/pkg/telemetry"
)

var (
	// Global flags
	debug bool
)

// Execute runs the root command
func Execute(ctx context.Context, version, commit, buildDate string) error {
	rootCmd := newRootCommand(version, commit, buildDate)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rolespec",
		Short: "rolespec - scenario-based role testing",
		Long: `rolespec tests infrastructure roles against named scenarios.

Each scenario directory under ./rolespec holds a rolespec.yml. The file is
merged over built-in defaults to produce the scenario's effective
configuration, which selects the dependency manager, infrastructure
driver, linter, provisioner, and verifier by name.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "info"
			if debug {
				level = "debug"
			}
			logger := telemetry.NewLogger(level, "console").WithRunID(uuid.NewString())
			cmd.SetContext(logger.WithContext(cmd.Context()))
		},
	}

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")

	// Add subcommands
	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newMatrixCommand())

	return rootCmd
}
