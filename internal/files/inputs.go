package files

import (
	"fmt"
	"log/slog"
	"path/filepath"
)

// ExpandPatterns turns a list of paths or glob patterns into the
// concrete files they match, preserving pattern order. A pattern that
// matches nothing is dropped with a warning rather than failing the
// run; shells on some platforms pass wildcards through unexpanded, so
// expansion always happens here.
func ExpandPatterns(patterns []string) ([]string, error) {
	var paths []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad file pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			slog.Warn("file pattern does not match any files", "pattern", pattern)
			continue
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

// DefaultPatterns returns the fallback input patterns used when the
// command line names no files: every .txt file under the base path.
func DefaultPatterns() ([]string, error) {
	base, err := ResolveBasePath()
	if err != nil {
		return nil, err
	}
	return []string{filepath.Join(base, "*.txt")}, nil
}
