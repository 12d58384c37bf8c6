// Package output persists the filtered video records as the JSON
// artifact consumed by the site build.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/RolenzGaid/PerformanceDrivenLivingYoutubeAPI/internal/videos"
)

// WriteError wraps a failure to create the output directory or write
// the output file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Write creates the output directory if needed and writes the records
// as pretty-printed JSON with 2-space indentation, overwriting any
// existing file. An empty record list is written as an empty array.
func Write(path string, records []videos.Record) error {
	if records == nil {
		records = []videos.Record{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &WriteError{Path: path, Err: err}
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	return nil
}
