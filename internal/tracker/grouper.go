package tracker

import "log/slog"

// GroupOptions configures how the grouper partitions events by label.
type GroupOptions struct {
	// AutoStopOnStart enforces a single-open-activity model: a start for
	// one label implicitly closes every other label that is still open,
	// via a synthetic stop carrying the new start's timestamp.
	AutoStopOnStart bool
	// DiscardRedundantStops drops stop events that have nothing to close
	// (empty timeline, or the last appended event is already a stop).
	DiscardRedundantStops bool
}

// accumulator collects one label's timeline while grouping runs. The
// grouper owns it exclusively; the finished timeline is handed out
// read-only.
type accumulator struct {
	label  string
	events Timeline
}

// open reports whether the label's most recent event leaves an activity
// running.
func (a *accumulator) open() bool {
	return len(a.events) > 0 && a.events[len(a.events)-1].Action.IsStart()
}

// closed reports whether a stop would be redundant for this label.
func (a *accumulator) closed() bool {
	return len(a.events) == 0 || a.events[len(a.events)-1].Action.IsStop()
}

func (a *accumulator) append(event Event) {
	a.events = append(a.events, event)
}

// GroupByLabel partitions sorted events into per-label timelines in a
// single forward pass. Events must already be in the order established
// by SortEvents; determinism follows from that total order.
func GroupByLabel(events []Event, opts GroupOptions) map[string]Timeline {
	accs := make(map[string]*accumulator)
	var order []string // labels in first-seen order, for deterministic synthesis

	acc := func(label string) *accumulator {
		a, ok := accs[label]
		if !ok {
			a = &accumulator{label: label}
			accs[label] = a
			order = append(order, label)
		}
		return a
	}

	for _, event := range events {
		own := acc(event.Label)

		if opts.DiscardRedundantStops && event.Action.IsStop() && own.closed() {
			slog.Debug("dropping redundant stop",
				"label", event.Label, "time", event.Time,
				"file", event.Source.File, "line", event.Source.Line)
			continue
		}

		if opts.AutoStopOnStart && event.Action.IsStart() {
			for _, label := range order {
				other := accs[label]
				if other == own || !other.open() {
					continue
				}
				slog.Debug("synthesizing stop for open activity",
					"label", other.label, "time", event.Time)
				other.append(Event{
					Time:   event.Time,
					Action: ActionStop,
					Label:  other.label,
				})
			}
		}

		own.append(event)
	}

	timelines := make(map[string]Timeline, len(accs))
	for label, a := range accs {
		timelines[label] = a.events
	}
	return timelines
}
