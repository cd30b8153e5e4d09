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

package testutil

// RepoViewResponseBuilder builds repo view response bodies for mock servers.
type RepoViewResponseBuilder struct {
	stars          *int
	issues         []interface{}
	nullNodes      bool
	nullRepository bool
	nullData       bool
	errors         []map[string]interface{}
}

// NewRepoViewResponseBuilder creates a builder for a repository with no
// stars and an empty issue list.
func NewRepoViewResponseBuilder() *RepoViewResponseBuilder {
	return &RepoViewResponseBuilder{
		issues: []interface{}{},
	}
}

// WithStars sets the stargazer total count.
func (b *RepoViewResponseBuilder) WithStars(n int) *RepoViewResponseBuilder {
	b.stars = &n
	return b
}

// WithIssue appends an issue node.
func (b *RepoViewResponseBuilder) WithIssue(title string, comments int) *RepoViewResponseBuilder {
	b.issues = append(b.issues, map[string]interface{}{
		"title": title,
		"comments": map[string]interface{}{
			"totalCount": comments,
		},
	})
	return b
}

// WithNullIssue appends a null issue node.
func (b *RepoViewResponseBuilder) WithNullIssue() *RepoViewResponseBuilder {
	b.issues = append(b.issues, nil)
	return b
}

// WithNullNodes makes the issue node list null.
func (b *RepoViewResponseBuilder) WithNullNodes() *RepoViewResponseBuilder {
	b.nullNodes = true
	return b
}

// WithNullRepository makes data.repository null.
func (b *RepoViewResponseBuilder) WithNullRepository() *RepoViewResponseBuilder {
	b.nullRepository = true
	return b
}

// WithoutData omits the data member entirely.
func (b *RepoViewResponseBuilder) WithoutData() *RepoViewResponseBuilder {
	b.nullData = true
	return b
}

// WithError adds an entry to the errors list.
func (b *RepoViewResponseBuilder) WithError(errType, message string) *RepoViewResponseBuilder {
	e := map[string]interface{}{
		"message": message,
	}
	if errType != "" {
		e["type"] = errType
	}
	b.errors = append(b.errors, e)
	return b
}

// Build returns the response body.
func (b *RepoViewResponseBuilder) Build() map[string]interface{} {
	resp := map[string]interface{}{}

	if len(b.errors) > 0 {
		resp["errors"] = b.errors
	}
	if b.nullData {
		return resp
	}

	if b.nullRepository {
		resp["data"] = map[string]interface{}{"repository": nil}
		return resp
	}

	repo := map[string]interface{}{}
	if b.stars != nil {
		repo["stargazers"] = map[string]interface{}{"totalCount": *b.stars}
	}
	var nodes interface{} = b.issues
	if b.nullNodes {
		nodes = nil
	}
	repo["issues"] = map[string]interface{}{"nodes": nodes}

	resp["data"] = map[string]interface{}{"repository": repo}
	return resp
}
