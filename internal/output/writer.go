// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
)

// Supported output formats.
const (
	FormatText   = "text"
	FormatNDJSON = "ndjson"
)

// ValidFormat reports whether format is one NewWriter accepts.
func ValidFormat(format string) bool {
	return format == FormatText || format == FormatNDJSON
}

// Writer writes records line by line in the configured format.
// It is safe for concurrent use.
type Writer struct {
	mu        sync.Mutex
	output    io.Writer
	format    string
	encoder   *json.Encoder
	count     int
	closeFunc func() error
}

// NewWriter creates a writer that writes to the specified output.
func NewWriter(w io.Writer, format string) (*Writer, error) {
	if !ValidFormat(format) {
		return nil, fmt.Errorf("unsupported output format %q", format)
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	return &Writer{
		output:  w,
		format:  format,
		encoder: enc,
	}, nil
}

// NewFileWriter creates a writer that writes to a file.
// The caller must call Close() when done to ensure the file is properly closed.
func NewFileWriter(filename, format string) (*Writer, error) {
	if !ValidFormat(format) {
		return nil, fmt.Errorf("unsupported output format %q", format)
	}

	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	w, _ := NewWriter(file, format)
	w.closeFunc = file.Close
	return w, nil
}

// Write writes a single record followed by a newline.
func (w *Writer) Write(record interface{}) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var err error
	if w.format == FormatNDJSON {
		err = w.encoder.Encode(record)
	} else {
		_, err = fmt.Fprintln(w.output, render(record))
	}
	if err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	w.count++
	return nil
}

func render(record interface{}) string {
	switch r := record.(type) {
	case Liner:
		return r.Line()
	case fmt.Stringer:
		return r.String()
	default:
		return fmt.Sprint(record)
	}
}

// Count returns the number of records written.
func (w *Writer) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// Close closes the underlying writer if it's a file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closeFunc != nil {
		err := w.closeFunc()
		w.closeFunc = nil
		return err
	}
	return nil
}
