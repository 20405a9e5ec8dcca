// Package cli implements cardctl, a terminal client for the metrics backend.
package cli

import (
	"flag"
	"os"

	"github.com/and161185/metrics-dashboard/internal/buildinfo"
	"github.com/and161185/metrics-dashboard/internal/client"
	"github.com/and161185/metrics-dashboard/internal/config"
	"github.com/spf13/cobra"
)

// app carries the configuration resolved once before any subcommand runs.
type app struct {
	flags  config.Flags
	config *config.DashboardConfig
	client *client.Client
}

// NewRootCommand builds the cardctl command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "cardctl",
		Short: "Fetch dashboard metric cards from the metrics backend",
		Long: `cardctl fetches metric payloads from the metrics REST backend,
normalizes them into cards and prints them with the same icons and
badge severities the dashboard UI uses.

Configuration comes from a JSON file (-c), flags and the METRICS_URL,
ALL_METRICS_URL, CLIENT_TIMEOUT and LOG_LEVEL environment variables.

Examples:
  cardctl all                         # every card, bulk endpoint first
  cardctl type DELETE_SERVICE         # a single category
  cardctl legacy --json               # compatibility endpoint as JSON`,
		Version:       buildinfo.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.config = a.flags.Resolve()
			a.client = client.NewClient(a.config)
		},
	}

	fs := flag.NewFlagSet("cardctl", flag.ContinueOnError)
	a.flags.Register(fs)
	cmd.PersistentFlags().AddGoFlagSet(fs)
	cmd.PersistentFlags().Bool("json", false, "print cards as JSON")

	cmd.AddCommand(allCommand(a))
	cmd.AddCommand(typeCommand(a))
	cmd.AddCommand(legacyCommand(a))

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		root.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
