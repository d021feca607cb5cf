// Package apitests contains the conformance test suite for the website
// builder API: the shared suite state, the per-endpoint response checks, and
// the test cases themselves.
package apitests

import (
	"time"

	"github.com/sitegen/api-contract-tests/client"
	"github.com/sitegen/api-contract-tests/framework"
)

// Per-call timeouts. Generation and download may involve heavier backend
// work, so they get longer bounds than the lightweight endpoints.
const (
	quickRequestTimeout = time.Second * 10
	generateTimeout     = time.Second * 45
	downloadTimeout     = time.Second * 30
)

// environment is the state shared across the whole suite run. It holds at
// most one current generation, produced by the simple generation case and
// consumed by the download and listing cases. It is only ever touched by the
// suite's single goroutine.
type environment struct {
	client        *client.Client
	generatedCode string
	generationID  string
}

// T represents a test or subtest in the conformance suite.
//
// It implements the same basic functionality as Go's testing.T, but outside
// of the Go test runner, with debug capture and outcome recording provided by
// the framework package. Assertions from the assert and require packages work
// against a *T as if it were a *testing.T.
type T struct {
	context *framework.Context
	env     *environment
}

// Errorf is called by assertions to log a test failure. It does not cause an
// immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately
// exit. The methods in the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

func (t *T) Failed() bool {
	return t.context.Failed()
}

// Run runs a subtest with its own recorded outcome, sharing the suite
// environment with the parent.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(&T{context: c, env: t.env})
	})
}

// Debug logs debug output for the test. The output is passed to the test
// logger when the test finishes.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// Detail attaches a diagnostic value to the test's recorded outcome.
func (t *T) Detail(key string, value interface{}) {
	t.context.Detail(key, value)
}

// Client returns the API client, with request traces directed into this
// test's captured debug output.
func (t *T) Client() *client.Client {
	return t.env.client.WithLogger(t.context.DebugLogger())
}

// RecordGeneration stores the current generation so that later cases can
// download and look it up. Only one generation is current at a time.
func (t *T) RecordGeneration(id, code string) {
	t.env.generationID = id
	t.env.generatedCode = code
}

// CurrentGeneration returns the generation stored by an earlier case, if any.
func (t *T) CurrentGeneration() (id, code string, ok bool) {
	return t.env.generationID, t.env.generatedCode, t.env.generationID != ""
}
