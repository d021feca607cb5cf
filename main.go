package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sitegen/api-contract-tests/apitests"
	"github.com/sitegen/api-contract-tests/client"
	"github.com/sitegen/api-contract-tests/framework"
)

const startupTimeout = time.Second * 10

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	apiClient := client.New(params.baseURL, nil)

	// The reachability probe is the one failure that aborts the whole run:
	// without a responding service there is nothing to test.
	if err := apiClient.WaitForService(startupTimeout, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Website builder service is not accessible at %s: %s\n", apiClient.BaseURL(), err)
		os.Exit(1)
	}

	fmt.Println()
	framework.PrintFilterDescription(params.filters)
	fmt.Println("Running test suite")

	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := apitests.RunTestSuite(apiClient, params.filters.AsFilter, testLogger)

	fmt.Println()
	framework.PrintResults(os.Stdout, results)
	if !results.OK() {
		os.Exit(1)
	}
}
