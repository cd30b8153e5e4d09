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

package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		want     bool
	}{
		{
			name:     "direct missing token error",
			err:      ErrMissingToken,
			sentinel: ErrMissingToken,
			want:     true,
		},
		{
			name:     "wrapped missing repository error",
			err:      fmt.Errorf("repository octocat/nope: %w", ErrMissingRepository),
			sentinel: ErrMissingRepository,
			want:     true,
		},
		{
			name:     "different error type",
			err:      ErrMissingData,
			sentinel: ErrMissingRepository,
			want:     false,
		},
		{
			name:     "wrapped network error",
			err:      fmt.Errorf("connection failed: %w", ErrNetworkFailure),
			sentinel: ErrNetworkFailure,
			want:     true,
		},
		{
			name:     "nil error",
			err:      nil,
			sentinel: ErrInvalidToken,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := errors.Is(tt.err, tt.sentinel)
			if got != tt.want {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.sentinel, got, tt.want)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrMissingToken, "github token not set"},
		{ErrInvalidToken, "invalid github token"},
		{ErrInvalidRepoFormat, "invalid repository format"},
		{ErrNetworkFailure, "network connection failed"},
		{ErrMissingData, "missing response data"},
		{ErrMissingRepository, "missing repository"},
		{ErrMissingIssueNodes, "issue nodes is null"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeError(t *testing.T) {
	var syntaxErr *json.SyntaxError
	cause := json.Unmarshal([]byte("<html>"), &struct{}{})
	if !errors.As(cause, &syntaxErr) {
		t.Fatalf("expected a json syntax error, got %T", cause)
	}

	err := fmt.Errorf("repo view: %w", &DecodeError{
		Context: "Response: HTTP/1.1 502 Bad Gateway",
		Err:     cause,
	})

	if !errors.Is(err, ErrDecode) {
		t.Error("expected errors.Is(err, ErrDecode)")
	}
	if !errors.As(err, &syntaxErr) {
		t.Error("expected underlying json.SyntaxError to be reachable")
	}
	if !strings.Contains(err.Error(), "502 Bad Gateway") {
		t.Errorf("error %q does not carry response context", err.Error())
	}
}
