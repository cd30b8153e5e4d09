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
	"strings"
	"testing"
)

func TestNewRepoViewRequest(t *testing.T) {
	req := NewRepoViewRequest(RepositoryRef{Owner: "facebook", Name: "graphql"})

	if !strings.HasPrefix(req.Query, "query RepoView($owner: String!, $name: String!)") {
		t.Errorf("unexpected query document: %q", req.Query)
	}
	for _, field := range []string{"stargazers", "issues(first: 20, states: OPEN)", "comments"} {
		if !strings.Contains(req.Query, field) {
			t.Errorf("query does not select %s", field)
		}
	}

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	vars, ok := body["variables"].(map[string]any)
	if !ok {
		t.Fatalf("variables missing from body: %s", data)
	}
	if vars["owner"] != "facebook" || vars["name"] != "graphql" {
		t.Errorf("variables = %v, want owner=facebook name=graphql", vars)
	}
	if body["operationName"] != "RepoView" {
		t.Errorf("operationName = %v, want RepoView", body["operationName"])
	}
}
