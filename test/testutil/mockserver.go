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

// Package testutil provides common test helpers for stargaze
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
)

// GraphQLRequest is a decoded request body as seen by a mock server.
type GraphQLRequest struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables"`
	OperationName string         `json:"operationName"`
	Header        http.Header    `json:"-"`
}

// MockServer is an httptest server that records the requests it receives.
type MockServer struct {
	*httptest.Server

	requestCount atomic.Int32
	mu           sync.Mutex
	requests     []GraphQLRequest
}

// NewMockServer creates a mock server that records each request and then
// delegates to handler. The server is closed when the test ends.
func NewMockServer(t *testing.T, handler http.HandlerFunc) *MockServer {
	t.Helper()

	m := &MockServer{}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.requestCount.Add(1)

		var req GraphQLRequest
		if body, err := io.ReadAll(r.Body); err == nil {
			_ = json.Unmarshal(body, &req)
		}
		req.Header = r.Header.Clone()

		m.mu.Lock()
		m.requests = append(m.requests, req)
		m.mu.Unlock()

		handler(w, r)
	}))
	t.Cleanup(m.Close)

	return m
}

// NewGraphQLServer creates a mock server that answers every request with
// status and the JSON encoding of body. A string body is written verbatim.
func NewGraphQLServer(t *testing.T, status int, body interface{}) *MockServer {
	t.Helper()

	return NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if s, ok := body.(string); ok {
			_, _ = io.WriteString(w, s)
			return
		}
		_ = json.NewEncoder(w).Encode(body)
	})
}

// NewErrorServer creates a mock server that always returns the specified
// status with its plain-text status line as the body.
func NewErrorServer(t *testing.T, statusCode int) *MockServer {
	t.Helper()

	return NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(http.StatusText(statusCode)))
	})
}

// NewUnreachableEndpoint returns the URL of a server that has already been
// shut down, so connecting to it fails.
func NewUnreachableEndpoint(t *testing.T) string {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()
	return url
}

// RequestCount returns how many requests the server has received.
func (m *MockServer) RequestCount() int {
	return int(m.requestCount.Load())
}

// Requests returns a copy of the recorded requests.
func (m *MockServer) Requests() []GraphQLRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]GraphQLRequest(nil), m.requests...)
}

// AssertRepoViewRequest validates that the server received exactly one repo
// view request for owner/name authenticated with token.
func AssertRepoViewRequest(t *testing.T, m *MockServer, owner, name, token string) {
	t.Helper()

	reqs := m.Requests()
	if len(reqs) != 1 {
		t.Fatalf("expected exactly 1 request, got %d", len(reqs))
	}
	req := reqs[0]

	if got := req.Header.Get("Authorization"); got != "Bearer "+token {
		t.Errorf("Authorization = %q, want %q", got, "Bearer "+token)
	}
	if ct := req.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected Content-Type: application/json, got: %s", ct)
	}
	if req.OperationName != "RepoView" {
		t.Errorf("operationName = %q, want RepoView", req.OperationName)
	}
	if req.Variables["owner"] != owner || req.Variables["name"] != name {
		t.Errorf("variables = %v, want owner=%s name=%s", req.Variables, owner, name)
	}
}
