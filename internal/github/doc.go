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

// Package github talks to the GitHub GraphQL API on behalf of stargaze.
//
// The package includes:
//   - Repository reference parsing with an optional fallback
//   - The fixed repo view query and its request body
//   - A Client interface with an HTTP implementation and a mock
//   - Types for the response envelope, which may carry data, errors, both, or neither
//
// Basic usage:
//
//	client := github.NewGraphQLClient(token, "https://api.github.com/graphql")
//	result, err := client.RepoView(ctx, github.RepositoryRef{Owner: "facebook", Name: "graphql"})
//	if err != nil {
//	    // transport or decode failure
//	}
//	switch result.Response.Kind() {
//	case github.KindData, github.KindPartial:
//	    // read result.Response.Data
//	}
package github
