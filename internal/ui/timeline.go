package ui

import (
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rsorensen/tracklog/internal/tracker"
)

const (
	maxLabelWidth = 24
	minBarWidth   = 10
)

// Cycled through per label, one color each.
var palette = []lipgloss.Color{"2", "4", "6", "5", "3", "1"}

var overlapStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellSolid
	cellOpen
	cellOverlap
)

// RenderTimeline draws one row of bars per label, scaled into the given
// terminal width. Open-ended spans render shaded, overlap-flagged spans
// render in the warning color.
func RenderTimeline(spans map[string][]tracker.Timespan, width int) string {
	labels := nonEmptyLabels(spans)
	if len(labels) == 0 {
		return "(no timespans)"
	}

	minStart, maxStop := bounds(spans, labels)
	total := maxStop.Sub(minStart)
	if total <= 0 {
		total = time.Minute
	}

	labelWidth := labelColumnWidth(labels)
	barWidth := width - labelWidth - 1
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}

	var b strings.Builder
	b.WriteString(axisLine(minStart, maxStop, total, labelWidth, barWidth))
	b.WriteString("\n")

	for i, label := range labels {
		cells := make([]cellKind, barWidth)
		for _, span := range spans[label] {
			paintSpan(cells, span, minStart, total, barWidth)
		}

		b.WriteString(padLabel(label, labelWidth))
		b.WriteString(" ")
		b.WriteString(renderCells(cells, palette[i%len(palette)]))
		b.WriteString("\n")
	}

	return b.String()
}

func nonEmptyLabels(spans map[string][]tracker.Timespan) []string {
	var labels []string
	for label, list := range spans {
		if len(list) > 0 {
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)
	return labels
}

func bounds(spans map[string][]tracker.Timespan, labels []string) (time.Time, time.Time) {
	var minStart, maxStop time.Time
	for _, label := range labels {
		for _, span := range spans[label] {
			if minStart.IsZero() || span.Start.Before(minStart) {
				minStart = span.Start
			}
			if span.Stop.After(maxStop) {
				maxStop = span.Stop
			}
		}
	}
	return minStart, maxStop
}

func labelColumnWidth(labels []string) int {
	width := 0
	for _, label := range labels {
		if n := len([]rune(label)); n > width {
			width = n
		}
	}
	if width > maxLabelWidth {
		width = maxLabelWidth
	}
	return width
}

// axisLayout picks a tick format matching the overall extent: dates for
// week-plus timelines, day-and-time for multi-day, clock time otherwise.
func axisLayout(total time.Duration) string {
	switch {
	case total > 7*24*time.Hour:
		return "06/01/02 15h"
	case total > 24*time.Hour:
		return "01/02 15:04"
	default:
		return "15:04"
	}
}

func axisLine(minStart, maxStop time.Time, total time.Duration, labelWidth, barWidth int) string {
	layout := axisLayout(total)
	left := minStart.Format(layout)
	right := maxStop.Format(layout)

	gap := barWidth - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	return strings.Repeat(" ", labelWidth+1) + left + strings.Repeat(" ", gap) + right
}

func paintSpan(cells []cellKind, span tracker.Timespan, minStart time.Time, total time.Duration, barWidth int) {
	from := scale(span.Start.Sub(minStart), total, barWidth)
	to := scale(span.Stop.Sub(minStart), total, barWidth)
	if to <= from {
		to = from + 1 // every span stays visible
	}
	if to > barWidth {
		to = barWidth
	}

	kind := cellSolid
	if span.OpenEnded {
		kind = cellOpen
	}
	if span.OverlapWarning {
		kind = cellOverlap
	}

	for i := from; i < to && i < barWidth; i++ {
		if kind > cells[i] {
			cells[i] = kind
		}
	}
}

func scale(offset, total time.Duration, barWidth int) int {
	if offset < 0 {
		return 0
	}
	return int(int64(offset) * int64(barWidth) / int64(total))
}

func renderCells(cells []cellKind, color lipgloss.Color) string {
	style := lipgloss.NewStyle().Foreground(color)

	var b strings.Builder
	run := func(kind cellKind, count int) {
		if count == 0 {
			return
		}
		switch kind {
		case cellEmpty:
			b.WriteString(strings.Repeat(" ", count))
		case cellSolid:
			b.WriteString(style.Render(strings.Repeat("█", count)))
		case cellOpen:
			b.WriteString(style.Render(strings.Repeat("▒", count)))
		case cellOverlap:
			b.WriteString(overlapStyle.Render(strings.Repeat("█", count)))
		}
	}

	current := cells[0]
	count := 0
	for _, kind := range cells {
		if kind == current {
			count++
			continue
		}
		run(current, count)
		current = kind
		count = 1
	}
	run(current, count)
	return b.String()
}

func padLabel(label string, width int) string {
	runes := []rune(label)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	return label + strings.Repeat(" ", width-len(runes))
}
