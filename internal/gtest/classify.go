package gtest

import (
	"strings"

	"github.com/bgricker/gtest2md/internal/report"
)

// lineBreak stands in for a newline inside a table cell.
const lineBreak = " <br>"

const (
	// StatusRun is the gtest status of an executed case.
	StatusRun = "run"
	// StatusNotRun is the gtest status of a disabled or filtered case.
	StatusNotRun = "notrun"
)

// Classify maps a case's failure count and status to its outcome. The order
// of the checks matters: a "notrun" case is NotExecuted even with failures,
// and any status other than "run" or "notrun" is Failed.
func Classify(failures int, status string) report.Outcome {
	switch {
	case failures == 0 && status == StatusRun:
		return report.OutcomePassed
	case status == StatusNotRun:
		return report.OutcomeNotExecuted
	default:
		return report.OutcomeFailed
	}
}

// TrimFailureMessage keeps the text after the last backslash and replaces
// each newline with an inline line break, as rendered in a case row.
func TrimFailureMessage(msg string) string {
	return strings.ReplaceAll(lastSegment(msg), "\n", lineBreak)
}

// lastSegment drops everything up to and including the last backslash, which
// gtest writes between the source path and the assertion text.
func lastSegment(msg string) string {
	if i := strings.LastIndex(msg, `\`); i >= 0 {
		return msg[i+1:]
	}
	return msg
}
