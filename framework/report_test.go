package framework

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintResultsRendersTotalsAndFailures(t *testing.T) {
	var r Results
	pass := TestResult{TestID: TestID{Path: []string{"API Status Check"}}}
	fail := TestResult{
		TestID: TestID{Path: []string{"Download Functionality"}},
		Failed: true,
		Errors: []error{errors.New("unexpected response status")},
		Details: map[string]interface{}{
			"expected_status": 200,
			"actual_status":   500,
		},
	}
	r.Tests = []TestResult{pass, fail}
	r.Failures = []TestResult{fail}

	var buf bytes.Buffer
	PrintResults(&buf, r)
	out := buf.String()

	assert.Contains(t, out, "API Status Check")
	assert.Contains(t, out, "Download Functionality")
	assert.Contains(t, out, "Total tests: 2")
	assert.Contains(t, out, "Passed:      1")
	assert.Contains(t, out, "Failed:      1")
	assert.Contains(t, out, "Success rate: 50.0%")
	assert.Contains(t, out, "unexpected response status")
	assert.Contains(t, out, "expected_status: 200")
	assert.Contains(t, out, "actual_status: 500")
}

func TestPrintResultsOfAllPassingRun(t *testing.T) {
	var r Results
	r.Tests = []TestResult{{TestID: TestID{Path: []string{"only case"}}}}

	var buf bytes.Buffer
	PrintResults(&buf, r)
	out := buf.String()

	assert.Contains(t, out, "Success rate: 100.0%")
	assert.NotContains(t, out, "FAILED TESTS")
}
