package tracker

import (
	"log/slog"
	"time"
)

// Clock supplies the instant substituted for a missing stop time. It is
// injected rather than read from the system so interval building stays
// deterministic under test.
type Clock func() time.Time

// BuildTimespans pairs each start event in each timeline with the
// nearest subsequent stop, producing one Timespan per start. Timelines
// must already be grouped and ordered; they are read, never modified.
//
// A start with no subsequent stop becomes an open-ended span closed at
// now(). A matched stop that falls after the label's next start flags
// the span with an overlap warning — the anomaly is surfaced, never
// corrected. Spans are listed in the order of their originating starts.
func BuildTimespans(timelines map[string]Timeline, now Clock) map[string][]Timespan {
	spans := make(map[string][]Timespan, len(timelines))
	for label, timeline := range timelines {
		spans[label] = buildLabelSpans(label, timeline, now)
	}
	return spans
}

func buildLabelSpans(label string, timeline Timeline, now Clock) []Timespan {
	var spans []Timespan
	for i, event := range timeline {
		if !event.Action.IsStart() {
			continue
		}

		span := Timespan{Label: label, Start: event.Time}

		nextStop := nextAction(timeline[i+1:], Action.IsStop)
		if nextStop == nil {
			span.Stop = now()
			span.OpenEnded = true
			slog.Warn("no stop recorded for activity, closing at current time",
				"label", label, "start", span.Start, "stop", span.Stop)
		} else {
			span.Stop = nextStop.Time
		}

		if nextStart := nextAction(timeline[i+1:], Action.IsStart); nextStart != nil &&
			nextStop != nil && nextStop.Time.After(nextStart.Time) {
			span.OverlapWarning = true
			slog.Warn("stop time falls after the label's next start",
				"label", label, "start", span.Start,
				"stop", nextStop.Time, "next_start", nextStart.Time)
		}

		span.Duration = span.Stop.Sub(span.Start)
		spans = append(spans, span)
	}
	return spans
}

// nextAction returns the first event in rest whose action satisfies
// match, or nil.
func nextAction(rest Timeline, match func(Action) bool) *Event {
	for i := range rest {
		if match(rest[i].Action) {
			return &rest[i]
		}
	}
	return nil
}
