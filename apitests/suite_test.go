package apitests

import (
	"net/http/httptest"
	"testing"

	"github.com/sitegen/api-contract-tests/client"
	"github.com/sitegen/api-contract-tests/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Top-level cases plus the table-driven sub-outcomes (3 generation edge
// rows, 2 download edge rows, 3 error handling rows).
const expectedOutcomeCount = 9 + 3 + 2 + 3

func newMockBuilderService() *mockBuilderService {
	return &mockBuilderService{
		generations:  []mockGeneration{},
		statusChecks: []mockStatusCheck{},
	}
}

func runSuiteAgainst(t *testing.T, service *mockBuilderService) framework.Results {
	t.Helper()
	server := httptest.NewServer(service)
	defer server.Close()
	return RunTestSuite(client.New(server.URL, nil), nil, nil)
}

func failureNames(results framework.Results) []string {
	var names []string
	for _, f := range results.Failures {
		names = append(names, f.TestID.String())
	}
	return names
}

func TestSuitePassesAgainstConformingService(t *testing.T) {
	results := runSuiteAgainst(t, newMockBuilderService())

	assert.True(t, results.OK(), "unexpected failures: %v", failureNames(results))
	assert.Len(t, results.Tests, expectedOutcomeCount)

	s := results.Summary()
	assert.Equal(t, expectedOutcomeCount, s.Total)
	assert.Equal(t, 0, s.Failed)
	assert.InDelta(t, 100.0, s.SuccessRate, 0.001)
}

func TestSuiteRecordsSubOutcomesPerTableRow(t *testing.T) {
	results := runSuiteAgainst(t, newMockBuilderService())

	var names []string
	for _, r := range results.Tests {
		names = append(names, r.TestID.String())
	}
	assert.Contains(t, names, "Website Generation Edge Cases / Empty prompt")
	assert.Contains(t, names, "Website Generation Edge Cases / Null prompt")
	assert.Contains(t, names, "Website Generation Edge Cases / Very long prompt")
	assert.Contains(t, names, "Download Edge Cases / Empty code")
	assert.Contains(t, names, "Download Edge Cases / Null code")
	assert.Contains(t, names, "Error Handling / Non-existent endpoint")
	assert.Contains(t, names, "Error Handling / Invalid request data for generate")
	assert.Contains(t, names, "Error Handling / Missing client_name in status")
}

func TestSuiteIsIdempotentAgainstUnchangedService(t *testing.T) {
	service := newMockBuilderService()
	server := httptest.NewServer(service)
	defer server.Close()
	apiClient := client.New(server.URL, nil)

	first := RunTestSuite(apiClient, nil, nil)
	second := RunTestSuite(apiClient, nil, nil)

	// The persistence listing grows between runs, but verdicts must not change.
	require.Len(t, second.Tests, len(first.Tests))
	for i := range first.Tests {
		assert.Equal(t, first.Tests[i].TestID.String(), second.Tests[i].TestID.String())
		assert.Equal(t, first.Tests[i].Failed, second.Tests[i].Failed,
			"verdict changed between runs for %s", first.Tests[i].TestID)
	}
}

func TestBrokenGenerationIsIsolatedFromOtherCases(t *testing.T) {
	service := newMockBuilderService()
	service.failGenerate = true

	results := runSuiteAgainst(t, service)

	// Every case still runs and records its outcome.
	assert.Len(t, results.Tests, expectedOutcomeCount)
	assert.False(t, results.OK())

	failed := failureNames(results)
	assert.Contains(t, failed, "Simple Website Generation")
	assert.Contains(t, failed, "Complex Website Generation")
	assert.Contains(t, failed, "Website Generation Edge Cases / Very long prompt")
	assert.Contains(t, failed, "Website Generation Edge Cases")
	assert.Contains(t, failed, "Download Functionality")

	// The cases with no dependency on generation still pass.
	assert.NotContains(t, failed, "API Status Check")
	assert.NotContains(t, failed, "Download Edge Cases")
	assert.NotContains(t, failed, "Database Operations")
	assert.NotContains(t, failed, "Status Endpoints")
	assert.NotContains(t, failed, "Error Handling")
}

func TestMissingArchiveEntryFailsOnlyTheDownloadCase(t *testing.T) {
	service := newMockBuilderService()
	service.omitNotes = true

	results := runSuiteAgainst(t, service)

	require.Len(t, results.Failures, 1)
	failure := results.Failures[0]
	assert.Equal(t, "Download Functionality", failure.TestID.String())
	assert.Contains(t, failure.Message(), "required files")
}

func TestCorruptArchiveFailsOnlyTheDownloadCase(t *testing.T) {
	service := newMockBuilderService()
	service.corruptDownload = true

	results := runSuiteAgainst(t, service)

	require.Len(t, results.Failures, 1)
	failure := results.Failures[0]
	assert.Equal(t, "Download Functionality", failure.TestID.String())
	assert.Contains(t, failure.Message(), "archive")
}

func TestFilterRunsSubsetOfCases(t *testing.T) {
	var filters framework.RegexFilters
	require.NoError(t, filters.MustMatch.Set("API Status Check"))

	service := newMockBuilderService()
	server := httptest.NewServer(service)
	defer server.Close()

	results := RunTestSuite(client.New(server.URL, nil), filters.AsFilter, nil)
	require.Len(t, results.Tests, 1)
	assert.Equal(t, "API Status Check", results.Tests[0].TestID.String())
	assert.True(t, results.OK())
}
