package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/reconcile/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := newRootCmd()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

// newRootCmd assembles the command tree.
func newRootCmd() *cobra.Command {
	app := &app{}

	rootCmd := &cobra.Command{
		Use:   "vango-reconcile",
		Short: "Inspect keyed child updates and resolved component options",
		Long: `vango-reconcile runs the reconciliation helpers on JSON documents.

  • diff compares two child lists by key and reports what entered and left
  • options resolves sparse component options against their defaults`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.teardown(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.configDir, "config", ".", "Directory containing reconcile.json")
	flags.Bool("debug", false, "Enable debug logging and hook order validation")
	flags.Bool("metrics", false, "Print Prometheus metrics to stderr after the command")
	flags.Bool("compact", false, "Print single-line JSON")

	rootCmd.AddCommand(
		diffCmd(app),
		optionsCmd(app),
		versionCmd(),
	)

	return rootCmd
}

// warn prints a warning message to stderr.
func warn(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.ErrOrStderr(), "\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
