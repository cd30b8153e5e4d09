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

package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/shurcooL/graphql"
	apperrors "github.com/sirseerhq/stargaze/internal/errors"
	"github.com/sirseerhq/stargaze/internal/giterror"
	"github.com/sirseerhq/stargaze/internal/logging"
)

// snapshotBodyBytes bounds how much of a body is quoted in diagnostics.
const snapshotBodyBytes = 512

// GraphQLClient implements the GitHub Client interface over HTTP.
//
// RepoView decodes the response envelope itself so that every GraphQL
// error, the HTTP status and the raw response stay visible to the caller.
// Viewer is a plain typed query and goes through shurcooL/graphql.
type GraphQLClient struct {
	endpoint   string
	httpClient *http.Client
	gql        *graphql.Client
	inspector  giterror.Inspector
	logger     *slog.Logger
	timeout    time.Duration
}

// Option configures a GraphQLClient.
type Option func(*GraphQLClient)

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *GraphQLClient) {
		c.logger = logger
	}
}

// WithTimeout bounds each exchange. Zero, the default, relies on the
// transport's own timeouts.
func WithTimeout(d time.Duration) Option {
	return func(c *GraphQLClient) {
		c.timeout = d
	}
}

// NewGraphQLClient creates a client that authenticates with token as a
// bearer credential and posts to endpoint.
func NewGraphQLClient(token, endpoint string, opts ...Option) *GraphQLClient {
	c := &GraphQLClient{
		endpoint:  endpoint,
		inspector: giterror.NewInspector(),
		logger:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.httpClient = newHTTPClient(token, c.timeout)
	c.gql = graphql.NewClient(endpoint, c.httpClient)

	return c
}

// RepoView posts the repo view query for ref. It never retries.
func (c *GraphQLClient) RepoView(ctx context.Context, ref RepositoryRef) (*Result, error) {
	body, err := json.Marshal(NewRepoViewRequest(ref))
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("posting repo view query", "endpoint", c.endpoint, "repository", ref.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w: %w", c.endpoint, apperrors.ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(resp.Body)
	snapshot := responseSnapshot(resp, raw)
	if readErr != nil {
		return nil, &apperrors.DecodeError{Context: snapshot, Err: fmt.Errorf("reading body: %w", readErr)}
	}

	var envelope Response
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &apperrors.DecodeError{Context: snapshot, Err: err}
	}

	c.logger.Debug("received repo view response",
		"status", resp.StatusCode,
		"kind", envelope.Kind().String(),
		"errors", len(envelope.Errors))

	// A failed status with nothing in the envelope is GitHub's REST-style
	// error body ({"message": ...}); classify it instead of reporting it as
	// missing data.
	if envelope.Kind() == KindEmpty && resp.StatusCode >= http.StatusBadRequest {
		return nil, c.mapStatus(resp, raw, snapshot)
	}

	return &Result{
		Response:   envelope,
		StatusCode: resp.StatusCode,
		Context:    snapshot,
	}, nil
}

// Viewer runs a minimal typed query for the authenticated login and quota.
func (c *GraphQLClient) Viewer(ctx context.Context) (*ViewerInfo, error) {
	var query struct {
		Viewer struct {
			Login graphql.String
		}
		RateLimit struct {
			Limit     graphql.Int
			Remaining graphql.Int
			ResetAt   time.Time
		}
	}

	if err := c.gql.Query(ctx, &query, nil); err != nil {
		return nil, c.mapError(err)
	}

	return &ViewerInfo{
		Login:         string(query.Viewer.Login),
		RateLimit:     int(query.RateLimit.Limit),
		RateRemaining: int(query.RateLimit.Remaining),
		RateResetAt:   query.RateLimit.ResetAt,
	}, nil
}

// mapStatus turns a failed HTTP status without a GraphQL envelope into a domain error.
func (c *GraphQLClient) mapStatus(resp *http.Response, raw []byte, snapshot string) error {
	var rest struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(raw, &rest)

	statusErr := fmt.Errorf("%s: %s", resp.Status, rest.Message)
	if c.inspector.IsAuthError(statusErr) {
		return fmt.Errorf("GitHub rejected the token (%s). Check that it is valid and not expired: %w",
			resp.Status, apperrors.ErrInvalidToken)
	}

	if c.inspector.IsNotFoundError(statusErr) {
		return fmt.Errorf("no GraphQL endpoint at %s (%s). Check github.graphql_endpoint: %w\n%s",
			c.endpoint, resp.Status, apperrors.ErrMissingData, snapshot)
	}

	return fmt.Errorf("GitHub returned %s without a GraphQL response: %w\n%s",
		resp.Status, apperrors.ErrMissingData, snapshot)
}

// mapError maps errors from the typed query path to domain errors with actionable messages
func (c *GraphQLClient) mapError(err error) error {
	if err == nil {
		return nil
	}

	// Network errors first: dial errors quote host:port, which can look
	// like a status code to the text matchers below.
	if c.inspector.IsNetworkError(err) {
		return fmt.Errorf("network error connecting to %s: %w: %w", c.endpoint, apperrors.ErrNetworkFailure, err)
	}

	// Rate limit before auth, as 403 can be both
	if c.inspector.IsRateLimitError(err) {
		return fmt.Errorf("GitHub API rate limit exceeded: %w", err)
	}

	if c.inspector.IsAuthError(err) {
		return fmt.Errorf("GitHub API authentication failed: %w", apperrors.ErrInvalidToken)
	}

	return fmt.Errorf("viewer query failed: %w", err)
}

// responseSnapshot renders the response line, content type and the start of
// the body for inclusion in error messages.
func responseSnapshot(resp *http.Response, raw []byte) string {
	body := raw
	truncated := ""
	if len(body) > snapshotBodyBytes {
		body = body[:snapshotBodyBytes]
		truncated = "..."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Response: %s %s", resp.Proto, resp.Status)
	if ct := resp.Header.Get("Content-Type"); ct != "" {
		fmt.Fprintf(&b, ", content-type: %s", ct)
	}
	fmt.Fprintf(&b, ", body: %q%s", body, truncated)
	return b.String()
}
