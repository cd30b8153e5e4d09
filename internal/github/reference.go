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

	apperrors "github.com/sirseerhq/stargaze/internal/errors"
)

// ParseRepository splits an owner/name string on '/'. Only the first two
// segments are used, so "a/b/c" yields owner "a" and name "b". Segments may
// be empty; the only failure is an input without any '/'.
func ParseRepository(s string) (RepositoryRef, error) {
	parts := strings.Split(s, "/")
	if len(parts) < 2 {
		return RepositoryRef{}, fmt.Errorf("wrong format for the repository name param %q (we expect something like facebook/graphql): %w",
			s, apperrors.ErrInvalidRepoFormat)
	}
	return RepositoryRef{Owner: parts[0], Name: parts[1]}, nil
}

// ResolveRepository parses s and returns fallback when s is malformed.
// The second return value reports whether the fallback was used.
func ResolveRepository(s string, fallback RepositoryRef) (RepositoryRef, bool) {
	ref, err := ParseRepository(s)
	if err != nil {
		return fallback, true
	}
	return ref, false
}
