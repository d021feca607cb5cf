package apitests

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/stretchr/testify/require"
)

const statusClientName = "backend_test_client"

type statusRequest struct {
	ClientName string `json:"client_name"`
}

// DoStatusEndpointsTest round-trips a status record: a POST must echo the
// client name and assign an id, and a subsequent GET must return an
// enumerable listing. Existence of the new record in the listing is not
// required, only that the listing mechanism works.
func DoStatusEndpointsTest(t *T) {
	resp := t.Client().Post("/status", statusRequest{ClientName: statusClientName}, quickRequestTimeout)
	requireStatus(t, resp, 200)

	body := resp.JSON()
	echoed := body.GetByKey("client_name").StringValue()
	id := body.GetByKey("id").StringValue()
	t.Detail("post_response", string(resp.Body))
	if echoed != statusClientName || id == "" {
		require.Failf(t, "POST status response missing required fields",
			"expected client_name %q and an id, got client_name %q, id %q", statusClientName, echoed, id)
	}

	getResp := t.Client().Get("/status", quickRequestTimeout)
	requireStatus(t, getResp, 200)
	listing := getResp.JSON()
	if listing.Type() != ldvalue.ArrayType {
		t.Detail("get_response_body", string(getResp.Body))
		require.Fail(t, "GET status returned non-array response")
	}
	t.Detail("total_status_checks", listing.Count())
	t.Debug("status endpoints working correctly")
}
