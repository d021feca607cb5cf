package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sitegen/api-contract-tests/framework"

	"github.com/fatih/color"
)

var (
	passLabel = color.New(color.FgGreen).Sprint("PASS")
	failLabel = color.New(color.FgRed).Sprint("FAIL")
	skipLabel = color.New(color.FgYellow).Sprint("SKIP")
)

// ConsoleTestLogger prints per-case progress as the suite runs.
type ConsoleTestLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {
	fmt.Printf("[%s]\n", id)
}

func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Printf("  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id framework.TestID, failed bool, debugOutput framework.CapturedOutput) {
	if failed {
		fmt.Printf("  %s: %s\n", failLabel, id)
	} else {
		fmt.Printf("  %s: %s\n", passLabel, id)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(os.Stdout, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if reason == "" {
		fmt.Printf("  %s: %s\n", skipLabel, id)
	} else {
		fmt.Printf("  %s: %s (%s)\n", skipLabel, id, reason)
	}
}
