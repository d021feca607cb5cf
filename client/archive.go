package client

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io/ioutil"
	"sort"
)

// Archive holds the decoded contents of a ZIP payload returned by the
// download endpoint: entry names mapped to their text. It exists only for
// the duration of one validation step.
type Archive struct {
	entries map[string]string
}

// OpenArchive parses a ZIP payload. A corrupt or truncated payload is an
// error; so is any entry that cannot be read in full.
func OpenArchive(data []byte) (*Archive, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("response is not a valid ZIP file: %w", err)
	}
	entries := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("could not open archive entry %q: %w", f.Name, err)
		}
		content, err := ioutil.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("could not read archive entry %q: %w", f.Name, err)
		}
		entries[f.Name] = string(content)
	}
	return &Archive{entries: entries}, nil
}

// EntryNames returns the names of all entries, sorted for stable diagnostics.
func (a *Archive) EntryNames() []string {
	names := make([]string, 0, len(a.entries))
	for name := range a.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (a *Archive) Len() int {
	return len(a.entries)
}

// Entry returns the decoded text of a named entry, if present.
func (a *Archive) Entry(name string) (string, bool) {
	content, ok := a.entries[name]
	return content, ok
}
