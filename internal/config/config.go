package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rsorensen/tracklog/internal/tracker"
)

// BoundLayout is the format for time-window bounds given on the command
// line or in a config file. Unlike event lines, bounds use a colon
// between hour and minute.
const BoundLayout = "2006-01-02 15:04"

// Options is the full set of recognized run options. It can be loaded
// from a YAML file and overridden by command-line flags; flags win.
type Options struct {
	AutoStopOnStart       bool     `yaml:"auto_stop_on_start"`
	DiscardRedundantStops bool     `yaml:"discard_redundant_stops"`
	Labels                []string `yaml:"labels"`
	ExcludeLabels         []string `yaml:"exclude_labels"`

	// Window bounds in BoundLayout format. Empty means unset.
	StartAfter  string `yaml:"start_after"`
	StartBefore string `yaml:"start_before"`
	EndAfter    string `yaml:"end_after"`
	EndBefore   string `yaml:"end_before"`

	// Date shorthands. Each overwrites the bounds it implies.
	Today     bool `yaml:"today"`
	Yesterday bool `yaml:"yesterday"`
	ThisWeek  bool `yaml:"this_week"`

	DiscardEmptyLabels bool `yaml:"discard_empty_labels"`

	// Files holds input paths or glob patterns.
	Files []string `yaml:"files"`
}

// Default returns the options used when nothing is configured.
func Default() Options {
	return Options{AutoStopOnStart: true}
}

// Load reads a YAML options file over the defaults.
func Load(path string) (Options, error) {
	opts := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parse config %s: %w", path, err)
	}
	return opts, nil
}

// GroupOptions extracts the grouper configuration.
func (o Options) GroupOptions() tracker.GroupOptions {
	return tracker.GroupOptions{
		AutoStopOnStart:       o.AutoStopOnStart,
		DiscardRedundantStops: o.DiscardRedundantStops,
	}
}

// Filter resolves the filter configuration. now anchors the date
// shorthands; explicit bounds a shorthand implies are overwritten by it.
func (o Options) Filter(now time.Time) (tracker.Filter, error) {
	f := tracker.Filter{
		Labels:             o.Labels,
		ExcludeLabels:      o.ExcludeLabels,
		DiscardEmptyLabels: o.DiscardEmptyLabels,
	}

	var err error
	if f.StartAfter, err = parseBound(o.StartAfter); err != nil {
		return f, fmt.Errorf("start_after: %w", err)
	}
	if f.StartBefore, err = parseBound(o.StartBefore); err != nil {
		return f, fmt.Errorf("start_before: %w", err)
	}
	if f.EndAfter, err = parseBound(o.EndAfter); err != nil {
		return f, fmt.Errorf("end_after: %w", err)
	}
	if f.EndBefore, err = parseBound(o.EndBefore); err != nil {
		return f, fmt.Errorf("end_before: %w", err)
	}

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch {
	case o.Today:
		f.StartAfter = &midnight
	case o.Yesterday:
		dayBefore := midnight.AddDate(0, 0, -1)
		f.EndBefore = &midnight
		f.StartAfter = &dayBefore
	case o.ThisWeek:
		weekAgo := midnight.AddDate(0, 0, -6)
		f.StartAfter = &weekAgo
	}

	return f, nil
}

func parseBound(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(BoundLayout, s, time.UTC)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
