package apitests

import (
	"github.com/sitegen/api-contract-tests/client"
	"github.com/sitegen/api-contract-tests/framework"
)

// RunTestSuite runs every test case in a fixed order. The order matters:
// the simple generation case populates the shared environment that the
// download and database cases depend on. Each case runs inside its own fault
// boundary, so a defect in one case never prevents the rest from running.
func RunTestSuite(
	apiClient *client.Client,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := &T{
			context: c,
			env:     &environment{client: apiClient},
		}

		t.Run("API Status Check", DoAPIStatusTest)
		t.Run("Simple Website Generation", DoSimpleGenerationTest)
		t.Run("Complex Website Generation", DoComplexGenerationTest)
		t.Run("Website Generation Edge Cases", DoGenerationEdgeCaseTests)
		t.Run("Download Functionality", DoDownloadTest)
		t.Run("Download Edge Cases", DoDownloadEdgeCaseTests)
		t.Run("Database Operations", DoDatabaseOperationsTest)
		t.Run("Status Endpoints", DoStatusEndpointsTest)
		t.Run("Error Handling", DoErrorHandlingTests)
	})
}
