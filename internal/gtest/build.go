package gtest

import (
	"fmt"

	"github.com/bgricker/gtest2md/internal/report"
	"github.com/bgricker/gtest2md/internal/xmltree"
)

// Tags of the gtest XML report elements.
const (
	RootTag    = "testsuites"
	SuiteTag   = "testsuite"
	CaseTag    = "testcase"
	FailureTag = "failure"
)

// Undefined substitutes absent suite and case attributes.
const Undefined = "-undefined-"

// Option adjusts the report produced by Build and Generate.
type Option func(*options)

type options struct {
	filter func(report.Report) report.Report
}

// WithFilter passes the extracted report through fn before it is returned or
// rendered.
func WithFilter(fn func(report.Report) report.Report) Option {
	return func(o *options) {
		o.filter = fn
	}
}

// Build validates the root of tree and extracts its summary, suites and cases.
// source names the report in errors and diagnostics. Missing attributes are
// defaulted and recorded on diags; structural and conversion errors abort.
func Build(tree *xmltree.Tree, source string, diags *Diagnostics, opts ...Option) (report.Report, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	rep, err := build(tree, source, diags)
	if err != nil {
		return report.Report{}, err
	}
	if o.filter != nil {
		rep = o.filter(rep)
	}
	return rep, nil
}

func build(tree *xmltree.Tree, source string, diags *Diagnostics) (report.Report, error) {
	root := tree.Root()
	if root == nil {
		return report.Report{}, &MissingRootError{Source: source}
	}
	if root.Tag != RootTag {
		return report.Report{}, &RootTagError{Source: source, Found: root.Tag, Expected: RootTag}
	}

	summary, err := buildSummary(root, diags)
	if err != nil {
		return report.Report{}, err
	}
	suites, err := buildSuites(root, source, diags)
	if err != nil {
		return report.Report{}, err
	}

	return report.Report{Source: source, Summary: summary, Suites: suites}, nil
}

func buildCounts(n *xmltree.Node, diags *Diagnostics) (report.Counts, error) {
	var (
		c   report.Counts
		err error
	)
	if c.Tests, err = IntAttr(n, "tests", 0, diags); err != nil {
		return c, err
	}
	if c.Failures, err = IntAttr(n, "failures", 0, diags); err != nil {
		return c, err
	}
	if c.Disabled, err = IntAttr(n, "disabled", 0, diags); err != nil {
		return c, err
	}
	return c, nil
}

// buildSummary reads the root attributes. A missing timestamp defaults to "0",
// which ConvertTimestamp rejects: such reports fail with ErrMalformedTimestamp.
func buildSummary(root *xmltree.Node, diags *Diagnostics) (report.Summary, error) {
	counts, err := buildCounts(root, diags)
	if err != nil {
		return report.Summary{}, err
	}
	duration := StringAttr(root, "time", "0", diags)
	timestamp := StringAttr(root, "timestamp", "0", diags)

	date, clock, err := ConvertTimestamp(timestamp)
	if err != nil {
		return report.Summary{}, err
	}

	return report.Summary{Counts: counts, Date: date, Time: clock, Duration: duration}, nil
}

func buildSuites(root *xmltree.Node, source string, diags *Diagnostics) ([]report.Suite, error) {
	nodes := root.FindAll(SuiteTag)
	if len(nodes) == 0 {
		diags.Add(KindNoSuites, "No nodes %q found in %q. Nothing is listed inside the single test_result listing.", SuiteTag, source)
		return nil, nil
	}

	suites := make([]report.Suite, 0, len(nodes))
	for _, n := range nodes {
		name := StringAttr(n, "name", Undefined, diags)
		counts, err := buildCounts(n, diags)
		if err != nil {
			return nil, fmt.Errorf("testsuite %q: %w", name, err)
		}
		suite := report.Suite{
			Counts:   counts,
			Name:     name,
			Duration: StringAttr(n, "time", Undefined, diags),
		}
		suite.Cases = buildCases(n, name, diags)
		suites = append(suites, suite)
	}
	return suites, nil
}

func buildCases(suite *xmltree.Node, suiteName string, diags *Diagnostics) []report.Case {
	nodes := suite.FindAll(CaseTag)
	if len(nodes) == 0 {
		diags.Add(KindNoCases, "No nodes %q found in testsuite element with name %q.", CaseTag, suiteName)
		return nil
	}

	cases := make([]report.Case, 0, len(nodes))
	for idx, n := range nodes {
		c := report.Case{
			Number:   idx + 1,
			Name:     StringAttr(n, "name", Undefined, diags),
			Duration: StringAttr(n, "time", Undefined, diags),
			Status:   StringAttr(n, "status", Undefined, diags),
		}

		failures := n.FindAll(FailureTag)
		for _, f := range failures {
			c.Failures = append(c.Failures, TrimFailureMessage(StringAttr(f, "message", Undefined, diags)))
		}
		c.Outcome = Classify(len(failures), c.Status)

		cases = append(cases, c)
	}
	return cases
}
