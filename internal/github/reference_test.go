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
	"errors"
	"testing"

	apperrors "github.com/sirseerhq/stargaze/internal/errors"
)

func TestParseRepository(t *testing.T) {
	tests := []struct {
		input     string
		wantOwner string
		wantName  string
		wantErr   bool
	}{
		{
			input:     "facebook/graphql",
			wantOwner: "facebook",
			wantName:  "graphql",
		},
		{
			input:     "graphql-rust/graphql-client",
			wantOwner: "graphql-rust",
			wantName:  "graphql-client",
		},
		{
			input:     "a/b/c",
			wantOwner: "a",
			wantName:  "b",
		},
		{
			input:     "owner/",
			wantOwner: "owner",
			wantName:  "",
		},
		{
			input:     "/name",
			wantOwner: "",
			wantName:  "name",
		},
		{
			input:   "invalid",
			wantErr: true,
		},
		{
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		ref, err := ParseRepository(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRepository(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			if !errors.Is(err, apperrors.ErrInvalidRepoFormat) {
				t.Errorf("ParseRepository(%q) error = %v, want ErrInvalidRepoFormat", tt.input, err)
			}
			continue
		}
		if ref.Owner != tt.wantOwner {
			t.Errorf("ParseRepository(%q) owner = %q, want %q", tt.input, ref.Owner, tt.wantOwner)
		}
		if ref.Name != tt.wantName {
			t.Errorf("ParseRepository(%q) name = %q, want %q", tt.input, ref.Name, tt.wantName)
		}
	}
}

func TestParseRepositoryErrorMessage(t *testing.T) {
	_, err := ParseRepository("graphql")
	if err == nil {
		t.Fatal("expected error")
	}
	want := `wrong format for the repository name param "graphql" (we expect something like facebook/graphql): invalid repository format`
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestResolveRepository(t *testing.T) {
	fallback := RepositoryRef{Owner: "tomhoule", Name: "graphql-client"}

	tests := []struct {
		input        string
		want         RepositoryRef
		wantFallback bool
	}{
		{"facebook/graphql", RepositoryRef{Owner: "facebook", Name: "graphql"}, false},
		{"a/b/c", RepositoryRef{Owner: "a", Name: "b"}, false},
		{"noslash", fallback, true},
		{"", fallback, true},
	}

	for _, tt := range tests {
		got, usedFallback := ResolveRepository(tt.input, fallback)
		if got != tt.want {
			t.Errorf("ResolveRepository(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if usedFallback != tt.wantFallback {
			t.Errorf("ResolveRepository(%q) fallback = %v, want %v", tt.input, usedFallback, tt.wantFallback)
		}
	}
}

func TestRepositoryRefString(t *testing.T) {
	ref := RepositoryRef{Owner: "owner", Name: "name"}
	if got := ref.String(); got != "owner/name" {
		t.Errorf("String() = %q, want owner/name", got)
	}
}
