package apitests

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/stretchr/testify/require"
)

// DoDatabaseOperationsTest verifies that generations are persisted, by
// listing them and looking for the record created by the earlier generation
// case. When no generation is known (because that case failed), retrieving
// an enumerable listing is the strongest check still available.
func DoDatabaseOperationsTest(t *T) {
	resp := t.Client().Get("/generations", quickRequestTimeout)
	requireStatus(t, resp, 200)

	listing := resp.JSON()
	if listing.Type() != ldvalue.ArrayType {
		t.Detail("response_body", string(resp.Body))
		require.Fail(t, "generations endpoint returned non-array response")
	}
	t.Detail("total_generations", listing.Count())

	id, _, ok := t.CurrentGeneration()
	if !ok {
		t.Debug("no generation id known, listing retrieval alone passes")
		return
	}
	if !findGenerationID(listing, id) {
		t.Detail("generation_id", id)
		require.Failf(t, "our generation not found in database",
			"id %s missing from %d listed generations", id, listing.Count())
	}
	t.Debug("generation successfully stored and retrieved from database")
}
