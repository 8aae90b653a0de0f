package filter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bgricker/gtest2md/internal/report"
)

// Pattern represents a compiled filter condition supporting substring and regex matching.
type Pattern struct {
	raw   string
	regex *regexp.Regexp
	lower string
}

// Compile transforms raw pattern strings into Pattern values.
func Compile(patterns []string) ([]Pattern, error) {
	result := make([]Pattern, 0, len(patterns))
	for _, raw := range patterns {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if strings.HasPrefix(raw, "/") && strings.HasSuffix(raw, "/") && len(raw) >= 2 {
			expr := raw[1 : len(raw)-1]
			re, err := regexp.Compile(expr)
			if err != nil {
				return nil, fmt.Errorf("compile regexp %q: %w", raw, err)
			}
			result = append(result, Pattern{raw: raw, regex: re})
			continue
		}
		result = append(result, Pattern{raw: raw, lower: strings.ToLower(raw)})
	}
	return result, nil
}

// String returns the pattern as written.
func (p Pattern) String() string {
	return p.raw
}

// Match reports whether the pattern matches the supplied string.
func (p Pattern) Match(s string) bool {
	if s == "" {
		return false
	}
	if p.regex != nil {
		return p.regex.MatchString(s)
	}
	return strings.Contains(strings.ToLower(s), p.lower)
}

// Suites keeps the suites matching any of only (all when only is empty) and
// none of skip. Case numbering and the report summary are left untouched.
func Suites(rep report.Report, only, skip []Pattern) report.Report {
	if len(only) == 0 && len(skip) == 0 {
		return rep
	}

	kept := make([]report.Suite, 0, len(rep.Suites))
	for _, suite := range rep.Suites {
		if len(only) > 0 && !matchesAny(suite.Name, only) {
			continue
		}
		if len(skip) > 0 && matchesAny(suite.Name, skip) {
			continue
		}
		kept = append(kept, suite)
	}
	out := rep
	out.Suites = kept
	return out
}

func matchesAny(name string, patterns []Pattern) bool {
	for _, pattern := range patterns {
		if pattern.Match(name) {
			return true
		}
	}
	return false
}
