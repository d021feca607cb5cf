package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context tracks the state of a single test case or sub-case while it runs.
// It is the fault boundary for the suite: a panic inside a case (including
// the FailNow panic used by require assertions) is converted into a failing
// TestResult, and execution continues with the next case.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
	details     map[string]interface{}
}

// Run executes a group of test cases and returns the accumulated results.
// The action normally consists of a series of Context.Run calls; each of
// those records exactly one TestResult per case attempted.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			if c.skipped {
				return
			}
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				// FailNow was called; the failure message is already recorded
				// unless the test bailed out without one.
				if len(c.errors) == 0 {
					addError = errors.New("test failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.env.testLogger.TestError(c.id, addError)
			}
		}
	}()

	action(c)
}

func (c *Context) record() {
	if len(c.id.Path) == 0 {
		return // the root context is only a container for cases
	}
	result := TestResult{TestID: c.id, Failed: c.failed, Errors: c.errors, Details: c.details}
	c.env.results.Tests = append(c.env.results.Tests, result)
	if c.failed {
		c.env.results.Failures = append(c.env.results.Failures, result)
	}
}

func (c *Context) ID() TestID {
	return c.id
}

// Run executes a named case or sub-case in a child context with its own
// fault boundary and its own recorded outcome.
func (c *Context) Run(name string, action func(*Context)) {
	id := c.id.Plus(name)

	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		return
	}
	c.env.testLogger.TestStarted(id)
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
		return
	}
	c1.record()
	c.env.testLogger.TestFinished(id, c1.failed, c1.debugLogger.Output())
	if c1.failed {
		// A case that runs sub-cases fails when any of them fails.
		c.failed = true
		c.errors = append(c.errors, fmt.Errorf("sub-case failed: %s", name))
	}
}

// Errorf records a test failure without stopping the test. It is also what
// the assert package calls through the TestingT interface.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

// FailNow stops the test immediately. The methods in the require package
// call FailNow. The panic is absorbed by this context's fault boundary.
func (c *Context) FailNow() {
	panic(c)
}

func (c *Context) Failed() bool {
	return c.failed
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Detail attaches a named diagnostic value to the test's recorded outcome,
// such as an expected-versus-actual pair for a failed comparison.
func (c *Context) Detail(key string, value interface{}) {
	if c.details == nil {
		c.details = make(map[string]interface{})
	}
	c.details[key] = value
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}
