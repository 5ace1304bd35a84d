package tracker

import "fmt"

// ParseError reports a line that matched the event grammar but carried a
// timestamp the fixed format could not parse. It aborts processing of
// the file it occurred in.
type ParseError struct {
	File  string
	Line  int
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: malformed timestamp in %q: %v", e.File, e.Line, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
