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

// Package metadata types define the record written for a single report run.
package metadata

import (
	"time"
)

// RunMetadata is the complete record of one report run: what was asked
// for, what the API answered and how the run ended.
type RunMetadata struct {
	StargazeVersion string     `json:"stargaze_version"`
	QueryName       string     `json:"query"`
	RunID           string     `json:"run_id"`
	Parameters      RunParams  `json:"parameters"`
	Results         RunResults `json:"results"`
}

// RunParams captures the inputs of a run after resolution.
type RunParams struct {
	Requested    string `json:"requested"`
	Owner        string `json:"owner"`
	Name         string `json:"name"`
	UsedFallback bool   `json:"used_fallback"`
	Endpoint     string `json:"endpoint"`
	OutputFormat string `json:"output_format"`
}

// RunResults contains what the run observed. Stars is nil when the response
// never reached the star summary.
type RunResults struct {
	HTTPStatus        int       `json:"http_status,omitempty"`
	ResponseKind      string    `json:"response_kind,omitempty"`
	GraphQLErrors     int       `json:"graphql_errors"`
	Stars             *int      `json:"stars,omitempty"`
	IssuesReported    int       `json:"issues_reported"`
	NullIssuesSkipped int       `json:"null_issues_skipped"`
	APICallCount      int       `json:"api_calls_made"`
	Outcome           string    `json:"outcome"`
	Duration          string    `json:"run_duration"`
	StartedAt         time.Time `json:"started_at"`
	CompletedAt       time.Time `json:"completed_at"`
}
