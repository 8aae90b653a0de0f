package report

// Outcome is the classified status of a single test case.
type Outcome int

const (
	// OutcomeFailed covers executed cases with failures and unrecognised statuses.
	OutcomeFailed Outcome = iota
	// OutcomePassed is an executed case without failures.
	OutcomePassed
	// OutcomeNotExecuted is a case reported as not run.
	OutcomeNotExecuted
)

// String returns the JSON and log name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomePassed:
		return "passed"
	case OutcomeNotExecuted:
		return "notrun"
	default:
		return "failed"
	}
}

// MarshalText encodes the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Report is the extracted content of a test report, ready for rendering.
type Report struct {
	Source  string  `json:"source,omitempty"`
	Summary Summary `json:"summary"`
	Suites  []Suite `json:"suites"`
}

// Counts holds the declared test counts of a report or suite.
type Counts struct {
	Tests    int `json:"tests"`
	Failures int `json:"failures"`
	Disabled int `json:"disabled"`
}

// Success derives the passing count. It is negative when the declared counts
// are inconsistent.
func (c Counts) Success() int {
	return c.Tests - c.Failures - c.Disabled
}

// Summary aggregates the root level of the report.
type Summary struct {
	Counts
	Date string `json:"date"`
	Time string `json:"time"`
	// Duration is the execution time exactly as written in the report.
	Duration string `json:"duration"`
}

// Suite is a named group of test cases.
type Suite struct {
	Counts
	Name     string `json:"name"`
	Duration string `json:"duration"`
	Cases    []Case `json:"cases"`
}

// Case is a single test case row.
type Case struct {
	Number   int      `json:"number"`
	Name     string   `json:"name"`
	Duration string   `json:"duration"`
	Status   string   `json:"status"`
	Outcome  Outcome  `json:"outcome"`
	// Failures holds the trimmed failure messages, newlines already
	// replaced by inline line breaks.
	Failures []string `json:"failures,omitempty"`
}
