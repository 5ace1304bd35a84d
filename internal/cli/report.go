package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rsorensen/tracklog/internal/tracker"
)

func newReportCommand(clock func() time.Time) *cobra.Command {
	flags := newFilterFlags()

	cmd := &cobra.Command{
		Use:   "report [files...]",
		Short: "Print reconstructed timespans per label with durations and totals.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spans, err := loadSpans(cmd, args, flags, clock)
			if err != nil {
				return err
			}
			return printReport(cmd, spans)
		},
	}

	flags.register(cmd)
	return cmd
}

func printReport(cmd *cobra.Command, spans map[string][]tracker.Timespan) error {
	out := cmd.OutOrStdout()
	labels := sortedLabels(spans)
	if len(labels) == 0 {
		fmt.Fprintln(out, "(no timespans)")
		return nil
	}

	for i, label := range labels {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s\n", label)

		var total time.Duration
		for _, span := range spans[label] {
			fmt.Fprintf(out, "  %s\n", formatSpan(span))
			total += span.Duration
		}
		fmt.Fprintf(out, "  total: %s\n", formatDuration(total))
	}
	return nil
}
