package apitests

import (
	"strings"

	"github.com/stretchr/testify/assert"
)

type generateRequest struct {
	Prompt *string `json:"prompt"`
}

func promptBody(prompt string) generateRequest {
	return generateRequest{Prompt: &prompt}
}

// DoSimpleGenerationTest generates a site from a basic prompt and checks the
// structural validity of the returned HTML. On success it stores the
// generation in the suite environment for the download and database cases.
func DoSimpleGenerationTest(t *T) {
	prompt := "Create a basic portfolio website"
	resp := t.Client().Post("/generate", promptBody(prompt), generateTimeout)
	requireStatus(t, resp, 200)

	code, id := requireSuccessEnvelope(t, resp)
	t.Detail("prompt", prompt)
	t.Detail("code_length", len(code))
	t.Detail("generation_id", id)

	checkHTMLStructure(t, code)
	if !t.Failed() {
		t.RecordGeneration(id, code)
		t.Debug("generated valid HTML structure, id %s", id)
	}
}

// DoComplexGenerationTest asks for a feature-rich site and checks that the
// requested features show up in the generated code. The menu and contact
// keywords are both required; the location and dark-theme signals are
// alternatives, either of which satisfies the remaining requirement.
func DoComplexGenerationTest(t *T) {
	prompt := "Create a modern restaurant website with menu, location, and contact form using dark theme"
	resp := t.Client().Post("/generate", promptBody(prompt), generateTimeout)
	requireStatus(t, resp, 200)

	code, _ := requireSuccessEnvelope(t, resp)

	hasMenu := containsAnyFold(code, "menu")
	hasContact := containsAnyFold(code, "contact")
	hasLocation := containsAnyFold(code, "location", "address")
	hasDarkTheme := containsAnyFold(code, "dark", "black", "bg-gray-900", "bg-black") ||
		strings.Contains(code, "#000")

	t.Detail("prompt", prompt)
	t.Detail("has_menu", hasMenu)
	t.Detail("has_contact", hasContact)
	t.Detail("has_location", hasLocation)
	t.Detail("has_dark_theme", hasDarkTheme)

	if !(hasMenu && hasContact && (hasLocation || hasDarkTheme)) {
		assert.Fail(t, "generated website missing some requested features")
		return
	}
	t.Debug("generated restaurant website with requested features")
}

// DoGenerationEdgeCaseTests drives the generate endpoint through a table of
// boundary inputs, recording one sub-outcome per row.
func DoGenerationEdgeCaseTests(t *T) {
	longPrompt := strings.Repeat("a", 10000)

	cases := []struct {
		description    string
		body           generateRequest
		expectedStatus int
	}{
		{"Empty prompt", promptBody(""), 400},
		{"Null prompt", generateRequest{Prompt: nil}, 400},
		{"Very long prompt", promptBody(longPrompt), 200},
	}

	for _, c := range cases {
		c := c
		t.Run(c.description, func(t *T) {
			resp := t.Client().Post("/generate", c.body, generateTimeout)
			requireStatus(t, resp, c.expectedStatus)

			switch c.expectedStatus {
			case 400:
				requireErrorBody(t, resp)
				t.Debug("correctly rejected invalid input")
			default:
				requireSuccessEnvelope(t, resp)
				t.Debug("handled edge case correctly")
			}
		})
	}
}
