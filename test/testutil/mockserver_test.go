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

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestRepoViewResponseBuilder(t *testing.T) {
	tests := []struct {
		name    string
		builder *RepoViewResponseBuilder
		want    string
	}{
		{
			name: "stars and issues",
			builder: NewRepoViewResponseBuilder().
				WithStars(42).
				WithIssue("Bug A", 3).
				WithNullIssue().
				WithIssue("Bug B", 0),
			want: `{"data":{"repository":{"issues":{"nodes":[{"comments":{"totalCount":3},"title":"Bug A"},null,{"comments":{"totalCount":0},"title":"Bug B"}]},"stargazers":{"totalCount":42}}}}`,
		},
		{
			name:    "null repository with error",
			builder: NewRepoViewResponseBuilder().WithNullRepository().WithError("NOT_FOUND", "Could not resolve to a Repository"),
			want:    `{"data":{"repository":null},"errors":[{"message":"Could not resolve to a Repository","type":"NOT_FOUND"}]}`,
		},
		{
			name:    "null nodes",
			builder: NewRepoViewResponseBuilder().WithStars(1).WithNullNodes(),
			want:    `{"data":{"repository":{"issues":{"nodes":null},"stargazers":{"totalCount":1}}}}`,
		},
		{
			name:    "errors only",
			builder: NewRepoViewResponseBuilder().WithoutData().WithError("", "boom"),
			want:    `{"errors":[{"message":"boom"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.builder.Build())
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Build() =\n%s\nwant\n%s", data, tt.want)
			}
		})
	}
}

func TestMockServer(t *testing.T) {
	server := NewGraphQLServer(t, http.StatusOK, NewRepoViewResponseBuilder().WithStars(5).Build())

	body := `{"query":"query RepoView { x }","variables":{"owner":"o","name":"n"},"operationName":"RepoView"}`
	req, err := http.NewRequest(http.MethodPost, server.URL, strings.NewReader(body))
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer tok")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	got, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(got), `"totalCount":5`) {
		t.Errorf("unexpected body %s", got)
	}

	if server.RequestCount() != 1 {
		t.Errorf("RequestCount = %d, want 1", server.RequestCount())
	}
	AssertRepoViewRequest(t, server, "o", "n", "tok")
}

func TestNewErrorServer(t *testing.T) {
	server := NewErrorServer(t, http.StatusBadGateway)

	resp, err := http.Post(server.URL, "application/json", strings.NewReader("{}"))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", resp.StatusCode)
	}
}

func TestNewUnreachableEndpoint(t *testing.T) {
	url := NewUnreachableEndpoint(t)

	resp, err := http.Post(url, "application/json", strings.NewReader("{}"))
	if err == nil {
		resp.Body.Close()
		t.Fatal("expected connection failure")
	}
}
