package apitests

import (
	"github.com/sitegen/api-contract-tests/client"
)

// DoErrorHandlingTests probes generic error behavior: unknown paths must
// return 404, and requests missing required fields must return 400 with an
// error body. One sub-outcome is recorded per scenario.
func DoErrorHandlingTests(t *T) {
	cases := []struct {
		description    string
		request        func(t *T) client.Response
		expectedStatus int
	}{
		{
			description: "Non-existent endpoint",
			request: func(t *T) client.Response {
				return t.Client().Get("/nonexistent", quickRequestTimeout)
			},
			expectedStatus: 404,
		},
		{
			description: "Invalid request data for generate",
			request: func(t *T) client.Response {
				return t.Client().Post("/generate", map[string]string{"invalid": "data"}, quickRequestTimeout)
			},
			expectedStatus: 400,
		},
		{
			description: "Missing client_name in status",
			request: func(t *T) client.Response {
				return t.Client().Post("/status", map[string]string{}, quickRequestTimeout)
			},
			expectedStatus: 400,
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.description, func(t *T) {
			resp := c.request(t)
			requireStatus(t, resp, c.expectedStatus)
			if c.expectedStatus == 400 {
				requireErrorBody(t, resp)
			}
			t.Debug("correctly handled error scenario")
		})
	}
}
