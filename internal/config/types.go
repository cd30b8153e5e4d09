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

// Package config types define the configuration structures used throughout
// stargaze. These types represent settings that can be loaded from
// YAML configuration files, environment variables, or command-line flags.
package config

import (
	"time"

	"github.com/sirseerhq/stargaze/internal/output"
)

// Output formats understood by the report command.
const (
	FormatText   = output.FormatText
	FormatNDJSON = output.FormatNDJSON
)

// Config represents the complete configuration for stargaze.
type Config struct {
	GitHub   GitHubConfig   `yaml:"github"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// GitHubConfig contains the GraphQL endpoint and authentication settings.
// Pointing GraphQLEndpoint at a GitHub Enterprise host is the usual reason
// to override it.
type GitHubConfig struct {
	GraphQLEndpoint string `yaml:"graphql_endpoint"`
	TokenEnv        string `yaml:"token_env"`

	// Timeout bounds the whole exchange. Zero leaves it to the transport.
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultsConfig contains the report defaults used when the command line
// does not say otherwise.
type DefaultsConfig struct {
	Repository         string `yaml:"repository"`
	FallbackRepository string `yaml:"fallback_repository"`
	OutputFormat       string `yaml:"output_format"`
	LogLevel           string `yaml:"log_level"`
}

// DefaultConfig returns a Config targeting public GitHub.com.
func DefaultConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			GraphQLEndpoint: "https://api.github.com/graphql",
			TokenEnv:        "GITHUB_API_TOKEN",
		},
		Defaults: DefaultsConfig{
			Repository:         "graphql-rust/graphql-client",
			FallbackRepository: "tomhoule/graphql-client",
			OutputFormat:       FormatText,
			LogLevel:           "warn",
		},
	}
}
