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

// Package metadata records what happened during a report run: the resolved
// repository, the HTTP status and envelope shape of the single exchange, and
// how many records were written. The record is saved as an indented JSON
// file so scripts can inspect a run without parsing the report itself.
package metadata

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const (
	// QueryName is the operation name of the query a run sends.
	QueryName = "RepoView"

	// OutcomeSuccess is the outcome of a run that returned no error.
	OutcomeSuccess = "success"
)

// Tracker collects statistics while a report runs. Create one per run.
type Tracker struct {
	startTime    time.Time
	apiCallCount int
	stats        ReportStats
}

// ReportStats holds what the reporter saw in the response.
type ReportStats struct {
	HTTPStatus        int
	ResponseKind      string
	GraphQLErrors     int
	Stars             *int
	IssuesReported    int
	NullIssuesSkipped int
}

// New creates a tracker started at the current time.
func New() *Tracker {
	return &Tracker{
		startTime: time.Now(),
	}
}

// IncrementAPICall records that a request was attempted.
func (t *Tracker) IncrementAPICall() {
	t.apiCallCount++
}

// RecordResponse records the HTTP status and envelope kind of a decoded response.
func (t *Tracker) RecordResponse(status int, kind string) {
	t.stats.HTTPStatus = status
	t.stats.ResponseKind = kind
}

// RecordError counts one GraphQL error written to the report.
func (t *Tracker) RecordError() {
	t.stats.GraphQLErrors++
}

// RecordStars records the star count written in the summary.
func (t *Tracker) RecordStars(n int) {
	t.stats.Stars = &n
}

// RecordIssue counts one issue written to the report.
func (t *Tracker) RecordIssue() {
	t.stats.IssuesReported++
}

// RecordSkippedIssue counts one null issue entry.
func (t *Tracker) RecordSkippedIssue() {
	t.stats.NullIssuesSkipped++
}

// Stats returns a copy of the statistics collected so far.
func (t *Tracker) Stats() ReportStats {
	return t.stats
}

// GenerateMetadata creates the record for the finished run. runErr is the
// error the run ended with, or nil.
func (t *Tracker) GenerateMetadata(version string, params RunParams, runErr error) *RunMetadata {
	completedAt := time.Now()

	outcome := OutcomeSuccess
	if runErr != nil {
		outcome = runErr.Error()
	}

	return &RunMetadata{
		StargazeVersion: version,
		QueryName:       QueryName,
		RunID:           "run-" + uuid.New().String(),
		Parameters:      params,
		Results: RunResults{
			HTTPStatus:        t.stats.HTTPStatus,
			ResponseKind:      t.stats.ResponseKind,
			GraphQLErrors:     t.stats.GraphQLErrors,
			Stars:             t.stats.Stars,
			IssuesReported:    t.stats.IssuesReported,
			NullIssuesSkipped: t.stats.NullIssuesSkipped,
			APICallCount:      t.apiCallCount,
			Outcome:           outcome,
			Duration:          completedAt.Sub(t.startTime).String(),
			StartedAt:         t.startTime,
			CompletedAt:       completedAt,
		},
	}
}

// SaveMetadata writes metadata to path as indented JSON. The file is written
// to a temporary sibling first and renamed into place.
func SaveMetadata(metadata *RunMetadata, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create metadata directory: %w", err)
		}
	}

	tmpFile := path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return fmt.Errorf("failed to create metadata file: %w", err)
	}

	if err := WriteMetadataToWriter(metadata, file); err != nil {
		_ = file.Close()
		_ = os.Remove(tmpFile)
		return fmt.Errorf("failed to write metadata: %w", err)
	}

	if err := file.Close(); err != nil {
		_ = os.Remove(tmpFile)
		return fmt.Errorf("failed to close metadata file: %w", err)
	}

	if err := os.Rename(tmpFile, path); err != nil {
		_ = os.Remove(tmpFile)
		return fmt.Errorf("failed to save metadata file: %w", err)
	}

	return nil
}

// LoadMetadata reads a record previously written by SaveMetadata.
func LoadMetadata(path string) (*RunMetadata, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open metadata file: %w", err)
	}
	defer file.Close()

	var metadata RunMetadata
	if err := json.NewDecoder(file).Decode(&metadata); err != nil {
		return nil, fmt.Errorf("failed to parse metadata: %w", err)
	}
	return &metadata, nil
}

// WriteMetadataToWriter serializes metadata as indented JSON to w.
func WriteMetadataToWriter(metadata *RunMetadata, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(metadata)
}
