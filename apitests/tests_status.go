package apitests

import (
	"strings"

	"github.com/stretchr/testify/require"
)

const serviceIdentifier = "AI Website Builder API"

// DoAPIStatusTest verifies that the API root responds and identifies itself.
func DoAPIStatusTest(t *T) {
	resp := t.Client().Get("/", quickRequestTimeout)
	requireStatus(t, resp, 200)

	message := resp.JSON().GetByKey("message").StringValue()
	t.Detail("response", string(resp.Body))
	if !strings.Contains(message, serviceIdentifier) {
		require.Failf(t, "API response format unexpected",
			"message field did not identify the service, got %q", message)
	}
	t.Debug("API is running and responding correctly")
}
