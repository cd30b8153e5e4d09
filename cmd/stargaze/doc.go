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

// Package main implements the stargaze command-line interface.
// stargaze asks the GitHub GraphQL API for a repository's star count and
// its first page of open issues, and prints them one per line.
//
// Usage:
//
//	stargaze [<owner>/<name>] [flags]
//	stargaze doctor
//
// Example:
//
//	export GITHUB_API_TOKEN=your_token
//	stargaze facebook/graphql
//	stargaze facebook/graphql --format ndjson --metadata run.json
//
// A malformed repository argument falls back to tomhoule/graphql-client
// unless --no-fallback is given.
//
// Exit codes:
//   - 0: Success
//   - 1: General error, or a response missing data, repository or issues
//   - 2: Configuration or authentication error
//   - 3: Network error
//   - 4: Response could not be decoded
package main
