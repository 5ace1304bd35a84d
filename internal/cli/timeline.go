package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rsorensen/tracklog/internal/ui"
)

func newTimelineCommand(clock func() time.Time) *cobra.Command {
	flags := newFilterFlags()

	cmd := &cobra.Command{
		Use:   "timeline [files...]",
		Short: "Show reconstructed timespans on an interactive terminal timeline.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimeline(cmd, args, flags, clock)
		},
	}

	flags.register(cmd)
	return cmd
}

func runTimeline(cmd *cobra.Command, args []string, flags *filterFlags, clock func() time.Time) error {
	spans, err := loadSpans(cmd, args, flags, clock)
	if err != nil {
		return err
	}

	m := ui.NewModel(spans)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}
