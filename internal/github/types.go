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
	"fmt"
	"strings"
	"time"
)

// RepositoryRef identifies a GitHub repository by owner and name.
type RepositoryRef struct {
	Owner string
	Name  string
}

// String returns the reference in owner/name form.
func (r RepositoryRef) String() string {
	return r.Owner + "/" + r.Name
}

// Variables are the GraphQL variables bound to the repo view query.
type Variables struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
}

// QueryRequest is the JSON body posted to the GraphQL endpoint.
type QueryRequest struct {
	Query         string    `json:"query"`
	Variables     Variables `json:"variables"`
	OperationName string    `json:"operationName,omitempty"`
}

// ResponseKind classifies an envelope by which of data and errors it carries.
// GraphQL permits every combination, so callers switch on this rather than
// assuming data is present.
type ResponseKind int

const (
	// KindEmpty means neither data nor errors were returned.
	KindEmpty ResponseKind = iota
	// KindData means data without errors.
	KindData
	// KindErrors means errors without data.
	KindErrors
	// KindPartial means data alongside errors.
	KindPartial
)

func (k ResponseKind) String() string {
	switch k {
	case KindData:
		return "data"
	case KindErrors:
		return "errors"
	case KindPartial:
		return "partial"
	default:
		return "empty"
	}
}

// Response is the decoded GraphQL response envelope for the repo view query.
type Response struct {
	Data   *ResponseData  `json:"data"`
	Errors []GraphQLError `json:"errors"`
}

// Kind reports which parts of the envelope are present.
func (r *Response) Kind() ResponseKind {
	hasData := r.Data != nil
	hasErrors := len(r.Errors) > 0
	switch {
	case hasData && hasErrors:
		return KindPartial
	case hasData:
		return KindData
	case hasErrors:
		return KindErrors
	default:
		return KindEmpty
	}
}

// GraphQLError is a single entry of the envelope's errors list.
type GraphQLError struct {
	Message    string         `json:"message"`
	Type       string         `json:"type,omitempty"`
	Path       []any          `json:"path,omitempty"`
	Locations  []Location     `json:"locations,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// Location points into the query document.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// String renders the error on a single line.
func (e GraphQLError) String() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Type != "" {
		fmt.Fprintf(&b, " [%s]", e.Type)
	}
	if len(e.Path) > 0 {
		parts := make([]string, len(e.Path))
		for i, p := range e.Path {
			parts[i] = fmt.Sprint(p)
		}
		fmt.Fprintf(&b, " (path: %s)", strings.Join(parts, "."))
	}
	for _, loc := range e.Locations {
		fmt.Fprintf(&b, " (at %d:%d)", loc.Line, loc.Column)
	}
	return b.String()
}

// ResponseData is the data member of the envelope. A nil Repository means
// GitHub could not resolve the repository or the token cannot see it.
type ResponseData struct {
	Repository *Repository `json:"repository"`
}

// Repository carries the star count and the first page of open issues.
type Repository struct {
	Stargazers Count           `json:"stargazers"`
	Issues     IssueConnection `json:"issues"`
}

// Count is a GraphQL connection reduced to its totalCount.
type Count struct {
	TotalCount int `json:"totalCount"`
}

// IssueConnection holds issue nodes. A nil Nodes slice means the list itself
// was null; nil elements are issues GitHub could not return.
type IssueConnection struct {
	Nodes []*Issue `json:"nodes"`
}

// Issue is a single issue node.
type Issue struct {
	Title    string `json:"title"`
	Comments Count  `json:"comments"`
}

// Result is a decoded response together with the HTTP context it arrived in.
type Result struct {
	Response   Response
	StatusCode int

	// Context is a textual snapshot of the HTTP response, kept for error reports.
	Context string
}

// ViewerInfo describes the authenticated user and the current API quota.
type ViewerInfo struct {
	Login         string
	RateLimit     int
	RateRemaining int
	RateResetAt   time.Time
}
