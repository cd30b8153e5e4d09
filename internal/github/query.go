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

import _ "embed"

// repoViewQuery is the fixed query document. Only the first page of open
// issues is requested; there is no pagination.
//
//go:embed repo_view.graphql
var repoViewQuery string

const repoViewOperation = "RepoView"

// NewRepoViewRequest binds the repo view query to ref.
func NewRepoViewRequest(ref RepositoryRef) QueryRequest {
	return QueryRequest{
		Query: repoViewQuery,
		Variables: Variables{
			Owner: ref.Owner,
			Name:  ref.Name,
		},
		OperationName: repoViewOperation,
	}
}
