package framework

import (
	"strings"
)

// Results accumulates the outcome of every test case and sub-case that was
// executed, in execution order. Failures holds the same TestResult values as
// Tests, filtered to the ones that failed.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

// TestResult is the recorded outcome of a single test case or sub-case. It is
// appended to Results exactly once per attempt and never modified afterward.
type TestResult struct {
	TestID  TestID
	Failed  bool
	Errors  []error
	Details map[string]interface{}
}

// Message returns the first failure message, or an empty string for a passing result.
func (r TestResult) Message() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Error()
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// SuiteSummary is the aggregate view of a completed run. It is derived once
// from the outcome log; the SuccessRate is a percentage.
type SuiteSummary struct {
	Total       int
	Passed      int
	Failed      int
	SuccessRate float64
}

func (r Results) Summary() SuiteSummary {
	s := SuiteSummary{Total: len(r.Tests), Failed: len(r.Failures)}
	s.Passed = s.Total - s.Failed
	if s.Total > 0 {
		s.SuccessRate = float64(s.Passed) / float64(s.Total) * 100
	}
	return s
}

// TestID identifies a test case, or a sub-case within it, as a path of names.
type TestID struct {
	Path []string
}

func (t TestID) Plus(name string) TestID {
	return TestID{Path: append(append([]string(nil), t.Path...), name)}
}

func (t TestID) String() string {
	return strings.Join(t.Path, " / ")
}
