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
	"context"
	"fmt"
	"time"

	apperrors "github.com/sirseerhq/stargaze/internal/errors"
)

// MockClient is a mock implementation of the GitHub Client interface for testing.
type MockClient struct {
	// Response to return from RepoView
	Response Response

	// ViewerInfo to return from Viewer
	ViewerInfo ViewerInfo

	// Error to return
	Error error

	// Behavior flags
	ShouldFailAuth    bool
	ShouldFailNetwork bool

	// Track calls for verification
	CallCount int
	LastRef   RepositoryRef
}

// NewMockClient creates a new mock client with default test data
func NewMockClient() *MockClient {
	return &MockClient{
		Response: generateTestResponse(),
		ViewerInfo: ViewerInfo{
			Login:         "octocat",
			RateLimit:     5000,
			RateRemaining: 4999,
			RateResetAt:   time.Now().Add(time.Hour).UTC(),
		},
	}
}

// RepoView implements the Client interface
func (m *MockClient) RepoView(ctx context.Context, ref RepositoryRef) (*Result, error) {
	m.CallCount++
	m.LastRef = ref

	if err := m.fail(ctx); err != nil {
		return nil, err
	}

	return &Result{
		Response:   m.Response,
		StatusCode: 200,
		Context:    "Response: HTTP/1.1 200 OK",
	}, nil
}

// Viewer implements the Client interface
func (m *MockClient) Viewer(ctx context.Context) (*ViewerInfo, error) {
	m.CallCount++

	if err := m.fail(ctx); err != nil {
		return nil, err
	}

	info := m.ViewerInfo
	return &info, nil
}

func (m *MockClient) fail(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if m.ShouldFailAuth {
		return fmt.Errorf("authentication failed: %w", apperrors.ErrInvalidToken)
	}

	if m.ShouldFailNetwork {
		return fmt.Errorf("network timeout: %w", apperrors.ErrNetworkFailure)
	}

	return m.Error
}

// generateTestResponse creates a repository with three open issues, one of
// which GitHub returned as null.
func generateTestResponse() Response {
	return Response{
		Data: &ResponseData{
			Repository: &Repository{
				Stargazers: Count{TotalCount: 42},
				Issues: IssueConnection{
					Nodes: []*Issue{
						{Title: "Bug A", Comments: Count{TotalCount: 3}},
						nil,
						{Title: "Bug B", Comments: Count{TotalCount: 0}},
					},
				},
			},
		},
	}
}

// MockClientOption allows configuring the mock client
type MockClientOption func(*MockClient)

// WithResponse sets the envelope returned by RepoView
func WithResponse(resp Response) MockClientOption {
	return func(m *MockClient) {
		m.Response = resp
	}
}

// WithError makes the client return a specific error
func WithError(err error) MockClientOption {
	return func(m *MockClient) {
		m.Error = err
	}
}

// WithAuthFailure makes the client simulate authentication failure
func WithAuthFailure() MockClientOption {
	return func(m *MockClient) {
		m.ShouldFailAuth = true
	}
}

// WithNetworkFailure makes the client simulate a transport failure
func WithNetworkFailure() MockClientOption {
	return func(m *MockClient) {
		m.ShouldFailNetwork = true
	}
}

// NewMockClientWithOptions creates a mock client with options
func NewMockClientWithOptions(opts ...MockClientOption) *MockClient {
	mock := NewMockClient()
	for _, opt := range opts {
		opt(mock)
	}
	return mock
}
