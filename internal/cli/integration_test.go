package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/rsorensen/tracklog/internal/tracker"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func writeLog(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	out, err := executeCommandErr(cmd, args...)
	if err != nil {
		t.Fatalf("execute %s: %v", cmd.Name(), err)
	}
	return out
}

func executeCommandErr(cmd *cobra.Command, args ...string) (string, error) {
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func assertContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output missing %q:\n%s", want, output)
	}
}

func assertNotContains(t *testing.T, output, notWant string) {
	t.Helper()
	if strings.Contains(output, notWant) {
		t.Fatalf("output unexpectedly contains %q:\n%s", notWant, output)
	}
}

func TestReportSimplePair(t *testing.T) {
	path := writeLog(t, "log.txt", `2020-01-01 09.00 start reading
2020-01-01 09.30 stop reading
`)

	clock := fixedClock(time.Date(2020, 1, 1, 23, 0, 0, 0, time.UTC))
	out := executeCommand(t, newReportCommand(clock), path)

	assertContains(t, out, "Reading")
	assertContains(t, out, "2020-01-01 09:00 - 2020-01-01 09:30")
	assertContains(t, out, "total: 30m")
	assertNotContains(t, out, "still running")
}

func TestReportAutoStopAndOpenEnded(t *testing.T) {
	path := writeLog(t, "log.txt", `2020-01-01 09.00 start writing
2020-01-01 09.10 start email
`)

	now := time.Date(2020, 1, 1, 9, 40, 0, 0, time.UTC)
	out := executeCommand(t, newReportCommand(fixedClock(now)), path)

	// Writing is closed by the synthetic stop at 09:10.
	assertContains(t, out, "2020-01-01 09:00 - 2020-01-01 09:10")
	// Email never stops and closes at the injected clock.
	assertContains(t, out, "2020-01-01 09:10 - 2020-01-01 09:40")
	assertContains(t, out, "still running")
}

func TestReportLabelFilterFlags(t *testing.T) {
	path := writeLog(t, "log.txt", `2020-01-01 09.00 start reading
2020-01-01 09.30 stop reading
2020-01-01 10.00 start email
2020-01-01 10.20 stop email
`)

	clock := fixedClock(time.Date(2020, 1, 1, 23, 0, 0, 0, time.UTC))
	out := executeCommand(t, newReportCommand(clock), "--labels", "reading", path)

	assertContains(t, out, "Reading")
	assertNotContains(t, out, "Email")
}

func TestReportWindowFilterFlags(t *testing.T) {
	path := writeLog(t, "log.txt", `2020-01-01 08.55 start reading
2020-01-01 09.25 stop reading
`)

	clock := fixedClock(time.Date(2020, 1, 1, 23, 0, 0, 0, time.UTC))
	out := executeCommand(t, newReportCommand(clock),
		"--start-after", "2020-01-01 09:00",
		"--discard-empty-labels",
		path)

	assertContains(t, out, "(no timespans)")
}

func TestReportConfigFileMergedUnderFlags(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "log.txt")
	logContent := `2020-01-01 09.00 start reading
2020-01-01 09.30 stop reading
2020-01-01 10.00 start email
2020-01-01 10.20 stop email
`
	if err := os.WriteFile(logPath, []byte(logContent), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	configPath := filepath.Join(dir, "tracklog.yaml")
	configContent := "labels:\n  - email\n"
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	clock := fixedClock(time.Date(2020, 1, 1, 23, 0, 0, 0, time.UTC))

	// Config alone keeps only Email.
	out := executeCommand(t, newReportCommand(clock), "--config", configPath, logPath)
	assertContains(t, out, "Email")
	assertNotContains(t, out, "Reading")

	// A flag overrides the config file's allow-list.
	out = executeCommand(t, newReportCommand(clock),
		"--config", configPath, "--labels", "reading", logPath)
	assertContains(t, out, "Reading")
	assertNotContains(t, out, "Email")
}

func TestReportMalformedTimestampFailsRun(t *testing.T) {
	path := writeLog(t, "broken.txt", `2020-01-01 09.00 start reading
2020-99-99 99.99 stop reading
`)

	clock := fixedClock(time.Date(2020, 1, 1, 23, 0, 0, 0, time.UTC))
	_, err := executeCommandErr(newReportCommand(clock), path)
	if err == nil {
		t.Fatal("report succeeded on a malformed timestamp")
	}
	var parseErr *tracker.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %v, want *tracker.ParseError", err)
	}
	if parseErr.Line != 1 {
		t.Fatalf("ParseError.Line = %d, want 1", parseErr.Line)
	}
}

func TestReportSkipsUnparseableLines(t *testing.T) {
	path := writeLog(t, "log.txt", `# my tracker file
2020-01-01 09.00 start reading

random prose that is not an event
2020-01-01 09.30 stop reading
`)

	clock := fixedClock(time.Date(2020, 1, 1, 23, 0, 0, 0, time.UTC))
	out := executeCommand(t, newReportCommand(clock), path)
	assertContains(t, out, "total: 30m")
}

func TestVersionCommand(t *testing.T) {
	out := executeCommand(t, newVersionCommand())
	assertContains(t, out, "tracklog")
}
