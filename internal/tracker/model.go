package tracker

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Action is the verb recorded on an event line. Start and stop are the
// only verbs that open or close intervals; anything else is carried
// through untouched.
type Action string

const (
	// ActionStart opens an activity.
	ActionStart Action = "start"
	// ActionStop closes an activity.
	ActionStop Action = "stop"
)

// IsStart reports whether the action opens an interval.
func (a Action) IsStart() bool { return a == ActionStart }

// IsStop reports whether the action closes an interval.
func (a Action) IsStop() bool { return a == ActionStop }

// Source pinpoints the file and line an event was read from. It exists
// only to break timestamp ties during sorting; synthetic events carry
// the zero value.
type Source struct {
	File string
	Line int
}

// Event is a single parsed start/stop fact. Events are value types and
// are never mutated after parsing.
type Event struct {
	Time    time.Time
	Action  Action
	Label   string
	Source  Source
	Tags    []string
	Comment string
}

// Timeline is the chronologically ordered event sequence for one label.
type Timeline []Event

// Timespan is a resolved start/stop interval for one label.
type Timespan struct {
	Label    string
	Start    time.Time
	Stop     time.Time
	Duration time.Duration

	// OpenEnded marks a span whose start was never matched with a stop;
	// its Stop is the clock reading taken at build time.
	OpenEnded bool
	// OverlapWarning marks a span whose resolved stop falls after a
	// subsequent start for the same label.
	OverlapWarning bool
}

// NormalizeLabel canonicalizes a label for grouping and comparison so
// that "experiment calculation" and "Experiment Calculation" land in the
// same timeline.
func NormalizeLabel(label string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(label))
}
