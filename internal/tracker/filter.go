package tracker

import (
	"log/slog"
	"time"
)

// Filter selects which timespans survive into the final result. All
// fields are optional; a zero Filter passes everything through.
type Filter struct {
	// Labels, when non-empty, is an allow-list: only these labels are
	// retained. Compared after NormalizeLabel.
	Labels []string
	// ExcludeLabels removes any label it names, after the allow-list.
	ExcludeLabels []string

	// Time-window bounds. A span survives only if it satisfies every
	// bound that is set: *After means >= and *Before means <=.
	StartAfter  *time.Time
	StartBefore *time.Time
	EndAfter    *time.Time
	EndBefore   *time.Time

	// DiscardEmptyLabels prunes labels whose span list became empty
	// after the window bounds applied.
	DiscardEmptyLabels bool
}

// Apply runs the filter over the spans-by-label mapping and returns a
// new mapping. The input is never modified.
func (f Filter) Apply(spans map[string][]Timespan) map[string][]Timespan {
	out := filterLabels(spans, f.Labels, f.ExcludeLabels)
	out = f.filterWindows(out)
	if f.DiscardEmptyLabels {
		out = dropEmptyLabels(out)
	}
	return out
}

func filterLabels(spans map[string][]Timespan, allow, deny []string) map[string][]Timespan {
	allowed := normalizeSet(allow)
	denied := normalizeSet(deny)

	out := make(map[string][]Timespan, len(spans))
	for label, list := range spans {
		if allowed != nil && !allowed[label] {
			slog.Debug("label not in allow-list, removing", "label", label)
			continue
		}
		if denied[label] {
			slog.Debug("label excluded, removing", "label", label)
			continue
		}
		out[label] = list
	}
	return out
}

func (f Filter) filterWindows(spans map[string][]Timespan) map[string][]Timespan {
	if f.StartAfter == nil && f.StartBefore == nil && f.EndAfter == nil && f.EndBefore == nil {
		return spans
	}

	out := make(map[string][]Timespan, len(spans))
	for label, list := range spans {
		kept := make([]Timespan, 0, len(list))
		for _, span := range list {
			if f.inWindow(span) {
				kept = append(kept, span)
			}
		}
		out[label] = kept
	}
	return out
}

func (f Filter) inWindow(span Timespan) bool {
	if f.StartAfter != nil && span.Start.Before(*f.StartAfter) {
		return false
	}
	if f.StartBefore != nil && span.Start.After(*f.StartBefore) {
		return false
	}
	if f.EndAfter != nil && span.Stop.Before(*f.EndAfter) {
		return false
	}
	if f.EndBefore != nil && span.Stop.After(*f.EndBefore) {
		return false
	}
	return true
}

func dropEmptyLabels(spans map[string][]Timespan) map[string][]Timespan {
	out := make(map[string][]Timespan, len(spans))
	for label, list := range spans {
		if len(list) == 0 {
			slog.Debug("label has no timespans left, removing", "label", label)
			continue
		}
		out[label] = list
	}
	return out
}

func normalizeSet(labels []string) map[string]bool {
	if len(labels) == 0 {
		return nil
	}
	set := make(map[string]bool, len(labels))
	for _, label := range labels {
		set[NormalizeLabel(label)] = true
	}
	return set
}
