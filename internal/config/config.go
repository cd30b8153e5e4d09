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

// Package config provides configuration management for stargaze with
// support for multiple configuration sources and a well-defined precedence
// order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Configuration file
//  4. Built-in defaults
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirseerhq/stargaze/internal/output"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from multiple sources and applies them in
// the correct precedence order. If configPath is provided, it loads from
// that specific file. Otherwise, it searches standard locations:
//   - .stargaze.yaml (current directory)
//   - .stargaze.yml (current directory)
//   - ~/.stargaze/config.yaml
//   - ~/.stargaze/config.yml
//
// Environment variables are applied after loading the config file, allowing
// runtime overrides.
//
// Returns an error if the specified config file cannot be loaded, but will
// succeed with defaults if no config file is found in standard locations.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		for _, path := range defaultPaths() {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultPaths() []string {
	paths := []string{
		".stargaze.yaml",
		".stargaze.yml",
	}
	if home := homeDir(); home != "" {
		paths = append(paths,
			filepath.Join(home, ".stargaze", "config.yaml"),
			filepath.Join(home, ".stargaze", "config.yml"),
		)
	}
	return paths
}

func homeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	return os.Getenv("USERPROFILE") // Windows
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) error {
	if endpoint := os.Getenv("GITHUB_GRAPHQL_ENDPOINT"); endpoint != "" {
		cfg.GitHub.GraphQLEndpoint = endpoint
	}
	if timeout := os.Getenv("STARGAZE_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid STARGAZE_TIMEOUT %q: %w", timeout, err)
		}
		cfg.GitHub.Timeout = d
	}
	if format := os.Getenv("STARGAZE_OUTPUT_FORMAT"); format != "" {
		cfg.Defaults.OutputFormat = strings.ToLower(strings.TrimSpace(format))
	}
	if level := os.Getenv("STARGAZE_LOG_LEVEL"); level != "" {
		cfg.Defaults.LogLevel = strings.ToLower(strings.TrimSpace(level))
	}
	return nil
}

// Token returns the GitHub token from the environment variable named by
// TokenEnv. An empty result means no token is configured.
func (c *Config) Token() string {
	if c.GitHub.TokenEnv == "" {
		return ""
	}
	return os.Getenv(c.GitHub.TokenEnv)
}

// Validate checks if the configuration contains valid values. This should
// be called after loading configuration and applying flag overrides.
func (c *Config) Validate() error {
	if c.GitHub.GraphQLEndpoint == "" {
		return fmt.Errorf("GitHub GraphQL endpoint cannot be empty")
	}
	u, err := url.Parse(c.GitHub.GraphQLEndpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("GitHub GraphQL endpoint %q is not an absolute URL", c.GitHub.GraphQLEndpoint)
	}
	if c.GitHub.TokenEnv == "" {
		return fmt.Errorf("token environment variable name cannot be empty")
	}
	if c.GitHub.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got: %s", c.GitHub.Timeout)
	}
	if !output.ValidFormat(c.Defaults.OutputFormat) {
		return fmt.Errorf("unknown output format %q (want %s or %s)", c.Defaults.OutputFormat, FormatText, FormatNDJSON)
	}
	if !strings.Contains(c.Defaults.FallbackRepository, "/") {
		return fmt.Errorf("fallback repository %q must be of the form owner/name", c.Defaults.FallbackRepository)
	}
	return nil
}
