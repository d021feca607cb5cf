package apitests

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// mockBuilderService is an in-process stand-in for the website builder API,
// conforming to the documented contract. Individual behaviors can be broken
// via the fail* fields to exercise the harness's failure reporting.
type mockBuilderService struct {
	generations     []mockGeneration
	statusChecks    []mockStatusCheck
	lastID          int
	failGenerate    bool // generate returns 500
	omitNotes       bool // archive is missing the README entry
	corruptDownload bool // download returns garbage bytes
}

type mockGeneration struct {
	ID        string `json:"id"`
	Prompt    string `json:"prompt"`
	Code      string `json:"code"`
	Timestamp string `json:"timestamp"`
}

type mockStatusCheck struct {
	ID         string `json:"id"`
	ClientName string `json:"client_name"`
	Timestamp  string `json:"timestamp"`
}

const generatedPage = `<!DOCTYPE html>
<html>
<head><title>Generated Site</title></head>
<body class="dark">
<nav><a href="#menu">Menu</a> <a href="#contact">Contact</a></nav>
<section id="menu">Our menu changes with the seasons.</section>
<section id="location">Location: 100 Main Street</section>
<section id="contact">Contact us any time.</section>
</body>
</html>`

func (s *mockBuilderService) nextID(prefix string) string {
	s.lastID++
	return fmt.Sprintf("%s-%d", prefix, s.lastID)
}

func writeJSON(w http.ResponseWriter, status int, value interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func (s *mockBuilderService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/api/" && r.Method == "GET":
		writeJSON(w, 200, map[string]string{"message": "AI Website Builder API is running"})
	case r.URL.Path == "/api/generate" && r.Method == "POST":
		s.handleGenerate(w, r)
	case r.URL.Path == "/api/download" && r.Method == "POST":
		s.handleDownload(w, r)
	case r.URL.Path == "/api/generations" && r.Method == "GET":
		writeJSON(w, 200, s.generations)
	case r.URL.Path == "/api/status" && r.Method == "POST":
		s.handleStatusPost(w, r)
	case r.URL.Path == "/api/status" && r.Method == "GET":
		writeJSON(w, 200, s.statusChecks)
	default:
		writeError(w, 404, "not found")
	}
}

func decodeBody(r *http.Request) map[string]interface{} {
	var body map[string]interface{}
	_ = json.NewDecoder(r.Body).Decode(&body)
	return body
}

func requiredString(body map[string]interface{}, key string) (string, bool) {
	value, ok := body[key].(string)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

func (s *mockBuilderService) handleGenerate(w http.ResponseWriter, r *http.Request) {
	prompt, ok := requiredString(decodeBody(r), "prompt")
	if !ok {
		writeError(w, 400, "prompt is required")
		return
	}
	if s.failGenerate {
		writeError(w, 500, "generation backend unavailable")
		return
	}
	gen := mockGeneration{
		ID:        s.nextID("gen"),
		Prompt:    prompt,
		Code:      generatedPage,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	s.generations = append(s.generations, gen)
	writeJSON(w, 200, map[string]interface{}{"success": true, "code": gen.Code, "id": gen.ID})
}

func (s *mockBuilderService) handleDownload(w http.ResponseWriter, r *http.Request) {
	code, ok := requiredString(decodeBody(r), "code")
	if !ok {
		writeError(w, 400, "code is required")
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="website.zip"`)
	if s.corruptDownload {
		_, _ = w.Write([]byte("definitely not a zip"))
		return
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entry, _ := zw.Create("index.html")
	_, _ = entry.Write([]byte(code))
	if !s.omitNotes {
		notes, _ := zw.Create("README.md")
		_, _ = notes.Write([]byte("# Your Website\n\nOpen index.html in a browser.\n"))
	}
	_ = zw.Close()
	_, _ = w.Write(buf.Bytes())
}

func (s *mockBuilderService) handleStatusPost(w http.ResponseWriter, r *http.Request) {
	clientName, ok := requiredString(decodeBody(r), "client_name")
	if !ok {
		writeError(w, 400, "client_name is required")
		return
	}
	check := mockStatusCheck{
		ID:         s.nextID("status"),
		ClientName: clientName,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	s.statusChecks = append(s.statusChecks, check)
	writeJSON(w, 200, check)
}
