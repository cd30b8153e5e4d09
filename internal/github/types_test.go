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
	"encoding/json"
	"testing"
)

func TestResponseDecoding(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantKind ResponseKind
		check    func(t *testing.T, r *Response)
	}{
		{
			name:     "data with null issue entry",
			body:     `{"data":{"repository":{"stargazers":{"totalCount":42},"issues":{"nodes":[{"title":"Bug A","comments":{"totalCount":3}},null,{"title":"Bug B","comments":{"totalCount":0}}]}}}}`,
			wantKind: KindData,
			check: func(t *testing.T, r *Response) {
				repo := r.Data.Repository
				if repo == nil {
					t.Fatal("expected repository")
				}
				if repo.Stargazers.TotalCount != 42 {
					t.Errorf("stars = %d, want 42", repo.Stargazers.TotalCount)
				}
				if len(repo.Issues.Nodes) != 3 {
					t.Fatalf("nodes = %d, want 3", len(repo.Issues.Nodes))
				}
				if repo.Issues.Nodes[1] != nil {
					t.Error("expected second node to be nil")
				}
				if repo.Issues.Nodes[0].Comments.TotalCount != 3 {
					t.Errorf("comments = %d, want 3", repo.Issues.Nodes[0].Comments.TotalCount)
				}
			},
		},
		{
			name:     "null repository",
			body:     `{"data":{"repository":null}}`,
			wantKind: KindData,
			check: func(t *testing.T, r *Response) {
				if r.Data.Repository != nil {
					t.Error("expected nil repository")
				}
			},
		},
		{
			name:     "null issue nodes",
			body:     `{"data":{"repository":{"stargazers":{"totalCount":1},"issues":{"nodes":null}}}}`,
			wantKind: KindData,
			check: func(t *testing.T, r *Response) {
				if r.Data.Repository.Issues.Nodes != nil {
					t.Error("expected nil nodes")
				}
			},
		},
		{
			name:     "empty issue nodes",
			body:     `{"data":{"repository":{"stargazers":{"totalCount":1},"issues":{"nodes":[]}}}}`,
			wantKind: KindData,
			check: func(t *testing.T, r *Response) {
				nodes := r.Data.Repository.Issues.Nodes
				if nodes == nil || len(nodes) != 0 {
					t.Errorf("expected empty non-nil nodes, got %#v", nodes)
				}
			},
		},
		{
			name:     "errors only",
			body:     `{"errors":[{"message":"Something went wrong"}]}`,
			wantKind: KindErrors,
		},
		{
			name:     "data and errors",
			body:     `{"data":{"repository":null},"errors":[{"type":"NOT_FOUND","path":["repository"],"message":"Could not resolve to a Repository with the name 'octocat/nope'."}]}`,
			wantKind: KindPartial,
			check: func(t *testing.T, r *Response) {
				if r.Errors[0].Type != "NOT_FOUND" {
					t.Errorf("type = %q, want NOT_FOUND", r.Errors[0].Type)
				}
			},
		},
		{
			name:     "null data",
			body:     `{"data":null}`,
			wantKind: KindEmpty,
		},
		{
			name:     "empty object",
			body:     `{}`,
			wantKind: KindEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Response
			if err := json.Unmarshal([]byte(tt.body), &r); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if got := r.Kind(); got != tt.wantKind {
				t.Errorf("Kind() = %s, want %s", got, tt.wantKind)
			}
			if tt.check != nil {
				tt.check(t, &r)
			}
		})
	}
}

func TestGraphQLErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  GraphQLError
		want string
	}{
		{
			name: "message only",
			err:  GraphQLError{Message: "Something went wrong"},
			want: "Something went wrong",
		},
		{
			name: "typed with path",
			err: GraphQLError{
				Message: "Could not resolve to a Repository with the name 'octocat/nope'.",
				Type:    "NOT_FOUND",
				Path:    []any{"repository"},
			},
			want: "Could not resolve to a Repository with the name 'octocat/nope'. [NOT_FOUND] (path: repository)",
		},
		{
			name: "numeric path and location",
			err: GraphQLError{
				Message:   "bad node",
				Path:      []any{"repository", "issues", "nodes", float64(1)},
				Locations: []Location{{Line: 7, Column: 9}},
			},
			want: "bad node (path: repository.issues.nodes.1) (at 7:9)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResponseKindString(t *testing.T) {
	kinds := map[ResponseKind]string{
		KindEmpty:   "empty",
		KindData:    "data",
		KindErrors:  "errors",
		KindPartial: "partial",
	}
	for kind, want := range kinds {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", kind, got, want)
		}
	}
}
