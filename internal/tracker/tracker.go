// Package tracker reconstructs labeled timespans from discrete
// start/stop events read out of plain-text logs. The pipeline is
// parse, sort, group (with optional auto-stop synthesis), pair into
// timespans, filter. Every stage is a pure transformation; the only
// outside input is the Clock used to close open-ended spans.
package tracker

// Reconstruct runs the full pipeline over already-parsed events and
// returns the filtered spans-by-label mapping. The events slice is
// sorted in place.
func Reconstruct(events []Event, opts GroupOptions, filter Filter, now Clock) map[string][]Timespan {
	SortEvents(events)
	timelines := GroupByLabel(events, opts)
	spans := BuildTimespans(timelines, now)
	return filter.Apply(spans)
}
