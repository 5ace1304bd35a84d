package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rsorensen/tracklog/internal/logging"
)

// NewRootCommand creates the top-level Cobra command hosting the
// subcommands. Running it without a subcommand launches the timeline
// TUI over the resolved inputs, mirroring `tracklog timeline`.
func NewRootCommand(clock func() time.Time) *cobra.Command {
	var logLevel string
	flags := newFilterFlags()

	cmd := &cobra.Command{
		Use:   "tracklog [files...]",
		Short: "Reconstruct and report labeled timespans from plain-text event logs.",
		Args:  cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Init(logging.ParseLevel(logLevel))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimeline(cmd, args, flags, clock)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug|info|warn|error)")
	flags.register(cmd)

	cmd.AddCommand(
		newReportCommand(clock),
		newTimelineCommand(clock),
		newVersionCommand(),
	)

	return cmd
}

// Main is a helper used by cmd/tracklog/main.go to keep wiring contained
// in one package.
func Main() {
	cmd := NewRootCommand(time.Now)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
