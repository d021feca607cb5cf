package apitests

import (
	"github.com/stretchr/testify/require"
)

type downloadRequest struct {
	Code *string `json:"code"`
}

func codeBody(code string) downloadRequest {
	return downloadRequest{Code: &code}
}

// DoDownloadTest packages the code from the earlier generation case and
// validates the returned archive. The dependency on the generation case is
// by convention, not by type: when no generation is available this degrades
// to a failing outcome instead of a fault.
func DoDownloadTest(t *T) {
	_, code, ok := t.CurrentGeneration()
	if !ok {
		require.Fail(t, "no generated code available for download test")
	}

	resp := t.Client().Post("/download", codeBody(code), downloadTimeout)
	requireStatus(t, resp, 200)
	requireArchive(t, resp)
	t.Debug("successfully created valid ZIP file")
}

// DoDownloadEdgeCaseTests drives the download endpoint through invalid
// inputs, recording one sub-outcome per row.
func DoDownloadEdgeCaseTests(t *T) {
	cases := []struct {
		description    string
		body           downloadRequest
		expectedStatus int
	}{
		{"Empty code", codeBody(""), 400},
		{"Null code", downloadRequest{Code: nil}, 400},
	}

	for _, c := range cases {
		c := c
		t.Run(c.description, func(t *T) {
			resp := t.Client().Post("/download", c.body, downloadTimeout)
			requireStatus(t, resp, c.expectedStatus)
			requireErrorBody(t, resp)
			t.Debug("correctly rejected invalid input")
		})
	}
}
