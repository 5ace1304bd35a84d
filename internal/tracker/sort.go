package tracker

import "sort"

// SortEvents establishes the total order every later stage depends on.
// The key, most significant first, is (timestamp, source file, line
// number, label, action). Timestamps carry only minute resolution, so
// same-minute events — a stop and the start that follows it within one
// minute, say — are ordered by their original file position, which
// reflects the order the author wrote them in.
func SortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return eventLess(events[i], events[j])
	})
}

func eventLess(a, b Event) bool {
	if !a.Time.Equal(b.Time) {
		return a.Time.Before(b.Time)
	}
	if a.Source.File != b.Source.File {
		return a.Source.File < b.Source.File
	}
	if a.Source.Line != b.Source.Line {
		return a.Source.Line < b.Source.Line
	}
	if a.Label != b.Label {
		return a.Label < b.Label
	}
	return a.Action < b.Action
}
