package ledger

import (
	"fmt"
	"regexp"
	"strings"
)

// Line-number-addressed completion. This is the legacy mutation path kept
// for backward compatibility with ledger dialects that omit ID tags: it
// rewrites a single line by checkbox substitution instead of decoding the
// whole plan.

var (
	incompleteRe = regexp.MustCompile(`^\[\s?\]`)
	completedRe  = regexp.MustCompile(`^\[[xX]\]`)
)

// CompleteLine marks the task on the given zero-based line as completed by
// substituting its "[ ]" prefix with "[X]". Marking an already-completed
// line is a no-op, not an error.
func CompleteLine(text string, lineNumber int) (string, error) {
	lines := strings.Split(text, "\n")
	if lineNumber < 0 || lineNumber >= len(lines) {
		return "", fmt.Errorf("line %d out of range (ledger has %d lines)", lineNumber, len(lines))
	}

	line := lines[lineNumber]
	switch {
	case incompleteRe.MatchString(line):
		lines[lineNumber] = incompleteRe.ReplaceAllString(line, "[X]")
	case completedRe.MatchString(line):
		// Already complete.
	default:
		return "", fmt.Errorf("line %d is not a task line", lineNumber)
	}

	return strings.Join(lines, "\n"), nil
}

// CountProgress counts completed and total task lines by checkbox scanning.
// Works on any ledger dialect, tagged or not.
func CountProgress(text string) (completed, total int) {
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case completedRe.MatchString(line):
			completed++
			total++
		case incompleteRe.MatchString(line):
			total++
		}
	}
	return completed, total
}

// Percentage converts a completed/total pair into a percentage. Zero total
// reports 100.0, matching the vacuously-complete empty plan.
func Percentage(completed, total int) float64 {
	if total == 0 {
		return 100.0
	}
	return float64(completed) / float64(total) * 100
}
