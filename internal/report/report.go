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

// Package report turns a repo view response into output records: GraphQL
// errors first, then the star summary, then one record per open issue.
package report

import (
	"context"
	"fmt"
	"log/slog"

	apperrors "github.com/sirseerhq/stargaze/internal/errors"
	"github.com/sirseerhq/stargaze/internal/github"
	"github.com/sirseerhq/stargaze/internal/logging"
	"github.com/sirseerhq/stargaze/internal/metadata"
	"github.com/sirseerhq/stargaze/internal/output"
)

// Record types as they appear in NDJSON output.
const (
	TypeError      = "error"
	TypeRepository = "repository"
	TypeIssue      = "issue"
)

// ErrorRecord is one entry of the response's errors list.
type ErrorRecord struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	ErrorType string `json:"error_type,omitempty"`
	Path      []any  `json:"path,omitempty"`

	rendered string
}

// Line implements output.Liner.
func (r ErrorRecord) Line() string {
	return "error: " + r.rendered
}

// SummaryRecord is the star count line.
type SummaryRecord struct {
	Type  string `json:"type"`
	Owner string `json:"owner"`
	Name  string `json:"name"`
	Stars int    `json:"stars"`
}

// Line implements output.Liner.
func (r SummaryRecord) Line() string {
	return fmt.Sprintf("%s/%s - 🌟 %d", r.Owner, r.Name, r.Stars)
}

// IssueRecord is a single open issue.
type IssueRecord struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Comments int    `json:"comments"`
}

// Line implements output.Liner.
func (r IssueRecord) Line() string {
	return fmt.Sprintf("%s, %d", r.Title, r.Comments)
}

// Reporter writes repo view results to an output writer.
type Reporter struct {
	out     output.OutputWriter
	logger  *slog.Logger
	tracker *metadata.Tracker
}

// New creates a Reporter. A nil logger discards diagnostics.
func New(out output.OutputWriter, logger *slog.Logger) *Reporter {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Reporter{out: out, logger: logger, tracker: metadata.New()}
}

// WithTracker replaces the reporter's run statistics tracker.
func (r *Reporter) WithTracker(t *metadata.Tracker) *Reporter {
	r.tracker = t
	return r
}

// Tracker returns the statistics collected by the reporter.
func (r *Reporter) Tracker() *metadata.Tracker {
	return r.tracker
}

// Run performs the single repo view exchange for ref and reports the result.
// Transport and decode failures are returned unchanged and nothing is written.
func (r *Reporter) Run(ctx context.Context, client github.Client, ref github.RepositoryRef) error {
	r.tracker.IncrementAPICall()
	result, err := client.RepoView(ctx, ref)
	if err != nil {
		return err
	}
	return r.Report(ref, result)
}

// Report writes the records for result.
//
// GraphQL errors are written but do not stop the report. A response without
// data, a null repository, or a null issue list is returned as an error; the
// star summary is only written once the repository is known to exist.
func (r *Reporter) Report(ref github.RepositoryRef, result *github.Result) error {
	resp := &result.Response
	r.logger.Debug("reporting response", "repository", ref.String(), "kind", resp.Kind().String())
	r.tracker.RecordResponse(result.StatusCode, resp.Kind().String())

	for _, gqlErr := range resp.Errors {
		rec := ErrorRecord{
			Type:      TypeError,
			Message:   gqlErr.Message,
			ErrorType: gqlErr.Type,
			Path:      gqlErr.Path,
			rendered:  gqlErr.String(),
		}
		if err := r.out.Write(rec); err != nil {
			return err
		}
		r.tracker.RecordError()
	}

	if resp.Data == nil {
		if len(resp.Errors) > 0 {
			return fmt.Errorf("GitHub returned %d error(s) and no data for %s: %w", len(resp.Errors), ref, apperrors.ErrMissingData)
		}
		return fmt.Errorf("GitHub returned neither data nor errors for %s: %w\n%s", ref, apperrors.ErrMissingData, result.Context)
	}

	repo := resp.Data.Repository
	if repo == nil {
		return fmt.Errorf("repository %s was not found or is not accessible with this token: %w", ref, apperrors.ErrMissingRepository)
	}

	summary := SummaryRecord{
		Type:  TypeRepository,
		Owner: ref.Owner,
		Name:  ref.Name,
		Stars: repo.Stargazers.TotalCount,
	}
	if err := r.out.Write(summary); err != nil {
		return err
	}
	r.tracker.RecordStars(summary.Stars)

	if repo.Issues.Nodes == nil {
		return fmt.Errorf("repository %s: %w", ref, apperrors.ErrMissingIssueNodes)
	}

	skipped := 0
	for _, issue := range repo.Issues.Nodes {
		if issue == nil {
			skipped++
			r.tracker.RecordSkippedIssue()
			continue
		}
		rec := IssueRecord{
			Type:     TypeIssue,
			Title:    issue.Title,
			Comments: issue.Comments.TotalCount,
		}
		if err := r.out.Write(rec); err != nil {
			return err
		}
		r.tracker.RecordIssue()
	}
	if skipped > 0 {
		r.logger.Debug("skipped null issue nodes", "count", skipped)
	}

	return nil
}
