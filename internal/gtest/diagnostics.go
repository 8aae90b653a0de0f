package gtest

import "fmt"

// Kind classifies a non-fatal diagnostic.
type Kind string

const (
	KindMissingAttribute Kind = "missing-attribute"
	KindNoSuites         Kind = "no-suites"
	KindNoCases          Kind = "no-cases"
)

// Diagnostic is a non-fatal issue found while reading a report.
type Diagnostic struct {
	Kind    Kind
	Message string
}

// Diagnostics collects diagnostics in the order they are raised. A nil
// *Diagnostics discards everything reported to it.
type Diagnostics struct {
	entries []Diagnostic
}

// NewDiagnostics returns an empty collector.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{}
}

// Add records a diagnostic.
func (d *Diagnostics) Add(kind Kind, format string, args ...any) {
	if d == nil {
		return
	}
	d.entries = append(d.entries, Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...)})
}

// Entries returns a copy of the collected diagnostics.
func (d *Diagnostics) Entries() []Diagnostic {
	if d == nil || len(d.entries) == 0 {
		return nil
	}
	return append([]Diagnostic{}, d.entries...)
}

// Len returns the number of collected diagnostics.
func (d *Diagnostics) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Messages returns the diagnostic messages in order.
func (d *Diagnostics) Messages() []string {
	if d.Len() == 0 {
		return nil
	}
	out := make([]string, 0, len(d.entries))
	for _, e := range d.entries {
		out = append(out, e.Message)
	}
	return out
}
