package tracker

import (
	"testing"
	"time"
)

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func TestBuildTimespansPairsStartWithNearestStop(t *testing.T) {
	timelines := map[string]Timeline{
		"A": {
			{Time: at(9, 0), Label: "A", Action: ActionStart},
			{Time: at(9, 30), Label: "A", Action: ActionStop},
		},
	}
	spans := BuildTimespans(timelines, fixedClock(at(23, 0)))

	list := spans["A"]
	if len(list) != 1 {
		t.Fatalf("len(spans[A]) = %d, want 1", len(list))
	}
	span := list[0]
	if span.Duration != 30*time.Minute {
		t.Fatalf("span.Duration = %s, want 30m", span.Duration)
	}
	if span.OpenEnded || span.OverlapWarning {
		t.Fatalf("span flags = %+v, want none", span)
	}
}

func TestBuildTimespansClosesUnterminatedStartAtClock(t *testing.T) {
	now := at(17, 45)
	timelines := map[string]Timeline{
		"B": {
			{Time: at(9, 10), Label: "B", Action: ActionStart},
		},
	}
	spans := BuildTimespans(timelines, fixedClock(now))

	span := spans["B"][0]
	if !span.OpenEnded {
		t.Fatal("span.OpenEnded = false, want true")
	}
	if !span.Stop.Equal(now) {
		t.Fatalf("span.Stop = %s, want clock reading %s", span.Stop, now)
	}
	if span.Duration != now.Sub(at(9, 10)) {
		t.Fatalf("span.Duration = %s, want %s", span.Duration, now.Sub(at(9, 10)))
	}
}

func TestBuildTimespansFlagsOverlap(t *testing.T) {
	// Two starts before a single stop: the first span's stop lands after
	// the next start, which is the anomaly the flag exists for. Both
	// starts resolve to the same nearest stop.
	timelines := map[string]Timeline{
		"A": {
			{Time: at(9, 0), Label: "A", Action: ActionStart},
			{Time: at(9, 10), Label: "A", Action: ActionStart},
			{Time: at(9, 30), Label: "A", Action: ActionStop},
		},
	}
	spans := BuildTimespans(timelines, fixedClock(at(23, 0)))

	list := spans["A"]
	if len(list) != 2 {
		t.Fatalf("len(spans[A]) = %d, want 2", len(list))
	}
	first, second := list[0], list[1]
	if !first.OverlapWarning {
		t.Fatal("first span missing overlap warning")
	}
	if !first.Stop.Equal(at(9, 30)) || !second.Stop.Equal(at(9, 30)) {
		t.Fatalf("stops = %s, %s, want both 09:30", first.Stop, second.Stop)
	}
	if second.OverlapWarning {
		t.Fatal("second span flagged, want clean")
	}
}

func TestBuildTimespansIgnoresNonStartActions(t *testing.T) {
	timelines := map[string]Timeline{
		"A": {
			{Time: at(9, 0), Label: "A", Action: Action("pause")},
			{Time: at(9, 5), Label: "A", Action: ActionStart},
			{Time: at(9, 20), Label: "A", Action: ActionStop},
		},
	}
	spans := BuildTimespans(timelines, fixedClock(at(23, 0)))
	if len(spans["A"]) != 1 {
		t.Fatalf("len(spans[A]) = %d, want 1", len(spans["A"]))
	}
	if spans["A"][0].Duration != 15*time.Minute {
		t.Fatalf("span.Duration = %s, want 15m", spans["A"][0].Duration)
	}
}

func TestBuildTimespansOrderFollowsStarts(t *testing.T) {
	timelines := map[string]Timeline{
		"A": {
			{Time: at(9, 0), Label: "A", Action: ActionStart},
			{Time: at(9, 30), Label: "A", Action: ActionStop},
			{Time: at(10, 0), Label: "A", Action: ActionStart},
			{Time: at(10, 30), Label: "A", Action: ActionStop},
		},
	}
	spans := BuildTimespans(timelines, fixedClock(at(23, 0)))

	list := spans["A"]
	if len(list) != 2 {
		t.Fatalf("len(spans[A]) = %d, want 2", len(list))
	}
	if !list[0].Start.Before(list[1].Start) {
		t.Fatalf("spans out of order: %s before %s", list[0].Start, list[1].Start)
	}
	for _, span := range list {
		if span.Stop.Before(span.Start) {
			t.Fatalf("span %+v has stop before start", span)
		}
	}
}
