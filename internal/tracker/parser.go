package tracker

import (
	"bufio"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"
)

// TimestampLayout is the fixed format every event line must use.
// Hours and minutes are dot-separated, e.g. "2015-06-01 18.52".
const TimestampLayout = "2006-01-02 15.04"

// ParseLine matches a raw line against the event grammar:
//
//	<timestamp> <action> <label> [#tag]* [, comment]
//
// Lexing and validation are separate stages. A line that does not match
// the grammar at all returns ok=false with a nil error; callers skip it.
// A line that matches but carries an unparseable timestamp returns a
// *ParseError, which is fatal for the file being read.
func ParseLine(line string, src Source) (Event, bool, error) {
	fields, ok := lexLine(line)
	if !ok {
		return Event{}, false, nil
	}

	ts, err := time.Parse(TimestampLayout, fields.timestamp)
	if err != nil {
		return Event{}, false, &ParseError{File: src.File, Line: src.Line, Input: line, Err: err}
	}

	return Event{
		Time:    ts,
		Action:  Action(strings.ToLower(fields.action)),
		Label:   NormalizeLabel(fields.label),
		Source:  src,
		Tags:    parseTags(fields.tags),
		Comment: strings.TrimSpace(fields.comment),
	}, true, nil
}

// ParseReader parses every line of r, attributing events to file. Lines
// that do not match the grammar are logged and skipped; a malformed
// timestamp aborts with a *ParseError.
func ParseReader(r io.Reader, file string) ([]Event, error) {
	var events []Event
	scanner := bufio.NewScanner(r)
	for lineno := 0; scanner.Scan(); lineno++ {
		line := strings.TrimSpace(scanner.Text())
		event, ok, err := ParseLine(line, Source{File: file, Line: lineno})
		if err != nil {
			return nil, err
		}
		if !ok {
			if line != "" {
				slog.Info("line did not match event grammar, skipping",
					"file", file, "line", lineno)
			}
			continue
		}
		events = append(events, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

// The label runs until a tag marker ('#'), a comment marker (','), or
// end of line. Tags are '#'-prefixed words; a comment is everything
// after a comma.
var linePattern = regexp.MustCompile(
	`^(?P<datetime>\d[\d.-]*[:\s][\d.:]+)\s+(?P<action>\w+)\s+(?P<label>[^#,]+)` +
		`(?P<tags>(\s*#\w+)*)(,\s*(?P<comment>.+))?$`)

type rawLine struct {
	timestamp string
	action    string
	label     string
	tags      string
	comment   string
}

// lexLine performs the lexical stage only: grammar acceptance and field
// extraction, no semantic checks.
func lexLine(line string) (rawLine, bool) {
	matches := linePattern.FindStringSubmatch(line)
	if matches == nil {
		return rawLine{}, false
	}
	return rawLine{
		timestamp: matches[linePattern.SubexpIndex("datetime")],
		action:    matches[linePattern.SubexpIndex("action")],
		label:     matches[linePattern.SubexpIndex("label")],
		tags:      matches[linePattern.SubexpIndex("tags")],
		comment:   matches[linePattern.SubexpIndex("comment")],
	}, true
}

func parseTags(segment string) []string {
	var tags []string
	for _, field := range strings.Fields(segment) {
		tag := strings.TrimPrefix(field, "#")
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
