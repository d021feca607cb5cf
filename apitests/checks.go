package apitests

import (
	"strings"

	"github.com/sitegen/api-contract-tests/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// The checks in this file are the per-endpoint validation rules. Every check
// reports a failure through the test context rather than returning an error,
// so a mismatch always becomes a recorded outcome with expected/actual
// details attached.

// requireReachable fails the test immediately if the request never produced
// an HTTP response, using the transport error text as the failure message.
func requireReachable(t *T, resp client.Response) {
	if resp.Unreachable() {
		t.Detail("transport_error", resp.Err.Error())
		require.Fail(t, "request failed", "%s", resp.Err)
	}
}

// requireStatus fails the test immediately unless the response has the
// expected status code.
func requireStatus(t *T, resp client.Response, expected int) {
	requireReachable(t, resp)
	if resp.Status != expected {
		t.Detail("expected_status", expected)
		t.Detail("actual_status", resp.Status)
		t.Detail("response_body", string(resp.Body))
		require.Failf(t, "unexpected response status", "expected status %d, got %d", expected, resp.Status)
	}
}

// requireErrorBody verifies the standard failure shape: a JSON body carrying
// an "error" field.
func requireErrorBody(t *T, resp client.Response) {
	_, ok := resp.JSON().TryGetByKey("error")
	if !ok {
		t.Detail("response_body", string(resp.Body))
		require.Fail(t, "missing error message in response")
	}
}

// requireSuccessEnvelope verifies the generation success shape
// {success: true, code: non-empty, id: non-empty} and returns code and id.
func requireSuccessEnvelope(t *T, resp client.Response) (code, id string) {
	body := resp.JSON()
	if !body.GetByKey("success").BoolValue() {
		t.Detail("response_body", string(resp.Body))
		require.Fail(t, "response missing required fields", "success flag was not true")
	}
	code = body.GetByKey("code").StringValue()
	id = body.GetByKey("id").StringValue()
	require.NotEmpty(t, code, "response had no generated code")
	require.NotEmpty(t, id, "response had no generation id")
	return code, id
}

// htmlStructureMarkers are the structural elements every generated page must
// contain, matched case-insensitively.
var htmlStructureMarkers = []string{"<html", "<head", "<body", "<title"}

// checkHTMLStructure verifies that the generated code has all of the
// essential HTML elements. Each missing marker is reported separately.
func checkHTMLStructure(t *T, code string) {
	lower := strings.ToLower(code)
	for _, marker := range htmlStructureMarkers {
		present := strings.Contains(lower, marker)
		t.Detail("has_"+strings.TrimPrefix(marker, "<"), present)
		if !present {
			assert.Failf(t, "generated code missing essential HTML element", "no %s element found", marker)
		}
	}
}

// containsAnyFold reports whether s contains at least one of the substrings,
// ignoring case.
func containsAnyFold(s string, substrings ...string) bool {
	lower := strings.ToLower(s)
	for _, sub := range substrings {
		if strings.Contains(lower, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}

const (
	archiveContentType = "application/zip"
	archiveDisposition = "attachment"
	pageSourceEntry    = "index.html"
	notesEntry         = "README.md"
	minPageSourceChars = 100
)

// requireArchive verifies the download success shape: archive headers, an
// uncorrupted ZIP payload, exactly the two required entries, and a page
// source entry long enough to show it was not truncated.
func requireArchive(t *T, resp client.Response) {
	contentType := resp.Header.Get("Content-Type")
	contentDisposition := resp.Header.Get("Content-Disposition")
	if !strings.Contains(contentType, archiveContentType) || !strings.Contains(contentDisposition, archiveDisposition) {
		t.Detail("content_type", contentType)
		t.Detail("content_disposition", contentDisposition)
		require.Fail(t, "response headers indicate non-ZIP content")
	}

	archive, err := client.OpenArchive(resp.Body)
	require.NoError(t, err, "could not open download payload as an archive")

	t.Detail("files", archive.EntryNames())
	t.Detail("zip_size", len(resp.Body))

	pageSource, hasPageSource := archive.Entry(pageSourceEntry)
	_, hasNotes := archive.Entry(notesEntry)
	if !hasPageSource || !hasNotes || archive.Len() != 2 {
		require.Failf(t, "archive does not contain the required files",
			"expected exactly %q and %q, got %v", pageSourceEntry, notesEntry, archive.EntryNames())
	}
	if len(pageSource) <= minPageSourceChars {
		t.Detail("page_source_length", len(pageSource))
		require.Failf(t, "page source entry too short",
			"%s has %d characters, expected more than %d", pageSourceEntry, len(pageSource), minPageSourceChars)
	}
}

// findGenerationID scans a listing response for a record with the given id.
func findGenerationID(listing ldvalue.Value, id string) bool {
	for i := 0; i < listing.Count(); i++ {
		if listing.GetByIndex(i).GetByKey("id").StringValue() == id {
			return true
		}
	}
	return false
}
