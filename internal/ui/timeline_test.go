package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/rsorensen/tracklog/internal/tracker"
)

func TestAxisLayoutBuckets(t *testing.T) {
	cases := []struct {
		total time.Duration
		want  string
	}{
		{8 * 24 * time.Hour, "06/01/02 15h"},
		{36 * time.Hour, "01/02 15:04"},
		{2 * time.Hour, "15:04"},
	}
	for _, c := range cases {
		if got := axisLayout(c.total); got != c.want {
			t.Fatalf("axisLayout(%s) = %q, want %q", c.total, got, c.want)
		}
	}
}

func TestRenderTimelineEmpty(t *testing.T) {
	if got := RenderTimeline(nil, 80); got != "(no timespans)" {
		t.Fatalf("RenderTimeline(nil) = %q", got)
	}
}

func TestRenderTimelineListsEveryLabel(t *testing.T) {
	start := time.Date(2020, time.January, 1, 9, 0, 0, 0, time.UTC)
	spans := map[string][]tracker.Timespan{
		"Reading": {{Label: "Reading", Start: start, Stop: start.Add(30 * time.Minute)}},
		"Email":   {{Label: "Email", Start: start.Add(time.Hour), Stop: start.Add(2 * time.Hour)}},
		"Idle":    {},
	}

	out := RenderTimeline(spans, 80)
	if !strings.Contains(out, "Reading") || !strings.Contains(out, "Email") {
		t.Fatalf("timeline missing labels:\n%s", out)
	}
	if strings.Contains(out, "Idle") {
		t.Fatalf("timeline shows label with no spans:\n%s", out)
	}
	if !strings.Contains(out, "09:00") {
		t.Fatalf("timeline missing axis tick:\n%s", out)
	}
}
