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

// Package errors defines sentinel errors for consistent error handling across the application.
// These errors map to specific exit codes in the CLI for proper scripting support.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrMissingToken indicates no GitHub token was configured.
	// Maps to exit code 2.
	ErrMissingToken = errors.New("github token not set")

	// ErrInvalidToken indicates GitHub rejected the token.
	// Maps to exit code 2.
	ErrInvalidToken = errors.New("invalid github token")

	// ErrInvalidRepoFormat indicates a repository reference is not of the form owner/name.
	// Maps to exit code 2 when no fallback is applied.
	ErrInvalidRepoFormat = errors.New("invalid repository format")

	// ErrNetworkFailure indicates the request never produced an HTTP response.
	// Maps to exit code 3.
	ErrNetworkFailure = errors.New("network connection failed")

	// ErrDecode indicates the response body is not a GraphQL response envelope.
	// Maps to exit code 4.
	ErrDecode = errors.New("undecodable response")

	// ErrMissingData indicates the response envelope carried no data.
	ErrMissingData = errors.New("missing response data")

	// ErrMissingRepository indicates the response data has a null repository.
	ErrMissingRepository = errors.New("missing repository")

	// ErrMissingIssueNodes indicates the repository's issue node list is null.
	ErrMissingIssueNodes = errors.New("issue nodes is null")
)

// DecodeError reports a response body that could not be decoded. Context
// holds a textual snapshot of the HTTP response for diagnosis.
type DecodeError struct {
	Context string
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %v\n%s", ErrDecode, e.Err, e.Context)
}

// Unwrap exposes both ErrDecode and the underlying decoder error.
func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecode, e.Err}
}
