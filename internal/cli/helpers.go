package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rsorensen/tracklog/internal/config"
	"github.com/rsorensen/tracklog/internal/files"
	"github.com/rsorensen/tracklog/internal/tracker"
)

// filterFlags carries every run option a command can override on the
// command line. Flag values only take effect when the flag was actually
// set, so config-file values survive unless overridden.
type filterFlags struct {
	configPath string

	autoStop         bool
	discardRedundant bool
	labels           []string
	excludeLabels    []string

	startAfter  string
	startBefore string
	endAfter    string
	endBefore   string

	today     bool
	yesterday bool
	thisWeek  bool

	discardEmpty bool
}

func newFilterFlags() *filterFlags {
	return &filterFlags{autoStop: true}
}

func (f *filterFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.configPath, "config", "", "YAML config file with run options")
	fs.BoolVarP(&f.autoStop, "auto-stop-on-start", "a", true, "Stop running activities when a new one starts")
	fs.BoolVarP(&f.discardRedundant, "discard-redundant-stops", "d", false, "Drop stop events that close nothing")
	fs.StringSliceVarP(&f.labels, "labels", "l", nil, "Only include these labels")
	fs.StringSliceVar(&f.excludeLabels, "exclude-labels", nil, "Exclude these labels")
	fs.StringVar(&f.startAfter, "start-after", "", `Only spans starting at or after this point ("yyyy-mm-dd HH:MM")`)
	fs.StringVar(&f.startBefore, "start-before", "", "Only spans starting at or before this point")
	fs.StringVar(&f.endAfter, "end-after", "", "Only spans ending at or after this point")
	fs.StringVar(&f.endBefore, "end-before", "", "Only spans ending at or before this point")
	fs.BoolVar(&f.today, "today", false, "Only spans starting today")
	fs.BoolVar(&f.yesterday, "yesterday", false, "Only spans starting yesterday")
	fs.BoolVar(&f.thisWeek, "this-week", false, "Only spans starting within the last week")
	fs.BoolVar(&f.discardEmpty, "discard-empty-labels", false, "Drop labels with zero spans after filtering")
}

// resolve merges defaults, the config file, and explicitly-set flags,
// in that order.
func (f *filterFlags) resolve(cmd *cobra.Command) (config.Options, error) {
	opts := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return opts, err
		}
		opts = loaded
	}

	fs := cmd.Flags()
	if fs.Changed("auto-stop-on-start") {
		opts.AutoStopOnStart = f.autoStop
	}
	if fs.Changed("discard-redundant-stops") {
		opts.DiscardRedundantStops = f.discardRedundant
	}
	if fs.Changed("labels") {
		opts.Labels = f.labels
	}
	if fs.Changed("exclude-labels") {
		opts.ExcludeLabels = f.excludeLabels
	}
	if fs.Changed("start-after") {
		opts.StartAfter = f.startAfter
	}
	if fs.Changed("start-before") {
		opts.StartBefore = f.startBefore
	}
	if fs.Changed("end-after") {
		opts.EndAfter = f.endAfter
	}
	if fs.Changed("end-before") {
		opts.EndBefore = f.endBefore
	}
	if fs.Changed("today") {
		opts.Today = f.today
	}
	if fs.Changed("yesterday") {
		opts.Yesterday = f.yesterday
	}
	if fs.Changed("this-week") {
		opts.ThisWeek = f.thisWeek
	}
	if fs.Changed("discard-empty-labels") {
		opts.DiscardEmptyLabels = f.discardEmpty
	}
	return opts, nil
}

// loadSpans runs the whole pipeline: resolve inputs, parse, reconstruct,
// filter. It is the only place the CLI touches the filesystem.
func loadSpans(cmd *cobra.Command, args []string, flags *filterFlags, clock func() time.Time) (map[string][]tracker.Timespan, error) {
	opts, err := flags.resolve(cmd)
	if err != nil {
		return nil, err
	}

	patterns := args
	if len(patterns) == 0 {
		patterns = opts.Files
	}
	if len(patterns) == 0 {
		patterns, err = files.DefaultPatterns()
		if err != nil {
			return nil, err
		}
	}

	paths, err := files.ExpandPatterns(patterns)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no input files found")
	}

	var events []tracker.Event
	for _, path := range paths {
		parsed, err := parseFile(path)
		if err != nil {
			return nil, err
		}
		events = append(events, parsed...)
	}

	filter, err := opts.Filter(clock())
	if err != nil {
		return nil, err
	}

	return tracker.Reconstruct(events, opts.GroupOptions(), filter, tracker.Clock(clock)), nil
}

func parseFile(path string) ([]tracker.Event, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()
	return tracker.ParseReader(file, path)
}

// sortedLabels returns the mapping's labels in a stable display order.
func sortedLabels(spans map[string][]tracker.Timespan) []string {
	labels := make([]string, 0, len(spans))
	for label := range spans {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// formatDuration renders a duration as a compact "1h 40m" style string.
func formatDuration(d time.Duration) string {
	seconds := int64(d.Seconds())
	h := seconds / 3600
	m := (seconds % 3600) / 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

func formatSpan(span tracker.Timespan) string {
	builder := strings.Builder{}
	builder.WriteString(span.Start.Format("2006-01-02 15:04"))
	builder.WriteString(" - ")
	builder.WriteString(span.Stop.Format("2006-01-02 15:04"))
	builder.WriteString("  ")
	builder.WriteString(formatDuration(span.Duration))
	if span.OpenEnded {
		builder.WriteString("  (still running)")
	}
	if span.OverlapWarning {
		builder.WriteString("  (overlaps next start)")
	}
	return builder.String()
}
