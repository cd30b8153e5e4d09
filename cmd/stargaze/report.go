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

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/sirseerhq/stargaze/internal/config"
	apperrors "github.com/sirseerhq/stargaze/internal/errors"
	"github.com/sirseerhq/stargaze/internal/github"
	"github.com/sirseerhq/stargaze/internal/logging"
	"github.com/sirseerhq/stargaze/internal/metadata"
	"github.com/sirseerhq/stargaze/internal/output"
	"github.com/sirseerhq/stargaze/internal/report"
	"github.com/sirseerhq/stargaze/pkg/version"
	"github.com/spf13/cobra"
)

// globalOptions are the flags shared by every command.
type globalOptions struct {
	configPath string
	token      string
	endpoint   string
	logLevel   string
}

// reportOptions are the flags of the root report command.
type reportOptions struct {
	globalOptions
	format       string
	outputFile   string
	metadataFile string
	noFallback   bool
}

func newRootCommand() *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "stargaze [<owner>/<name>]",
		Short: "Show a GitHub repository's stars and open issues",
		Long: `stargaze queries the GitHub GraphQL API once for a repository's star count
and its first page of open issues, then prints one line per result.

The repository defaults to graphql-rust/graphql-client. A malformed argument
falls back to tomhoule/graphql-client unless --no-fallback is given.

Authentication is required via GitHub token:
  - Use --token flag to provide token directly
  - Or set GITHUB_API_TOKEN environment variable`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version.Version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
		RunE: func(cmd *cobra.Command, args []string) error {
			repoArg := ""
			if len(args) == 1 {
				repoArg = args[0]
			}
			return runReport(cmd.Context(), opts, repoArg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to config file (default: .stargaze.yaml or ~/.stargaze/config.yaml)")
	flags.StringVar(&opts.token, "token", "", "GitHub personal access token (overrides GITHUB_API_TOKEN env var)")
	flags.StringVar(&opts.endpoint, "endpoint", "", "GitHub GraphQL endpoint (default: https://api.github.com/graphql)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")

	cmd.Flags().StringVar(&opts.format, "format", "", "Output format: text or ndjson")
	cmd.Flags().StringVar(&opts.outputFile, "output", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&opts.metadataFile, "metadata", "", "Write a JSON record of the run to this file")
	cmd.Flags().BoolVar(&opts.noFallback, "no-fallback", false, "Fail on a malformed repository instead of using the fallback")

	cmd.AddCommand(newDoctorCommand(&opts.globalOptions))

	return cmd
}

// loadConfig loads configuration and applies flag overrides on top of it.
func loadConfig(opts *globalOptions) (*config.Config, error) {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}

	if opts.endpoint != "" {
		cfg.GitHub.GraphQLEndpoint = opts.endpoint
	}
	if opts.logLevel != "" {
		cfg.Defaults.LogLevel = opts.logLevel
	}

	return cfg, nil
}

// resolveToken returns the token from the flag or the configured environment variable.
func resolveToken(opts *globalOptions, cfg *config.Config) (string, error) {
	if opts.token != "" {
		return opts.token, nil
	}
	if token := cfg.Token(); token != "" {
		return token, nil
	}
	env := cfg.GitHub.TokenEnv
	return "", fmt.Errorf("%s is not set. Suggestion: set %s or use --token flag: %w", env, env, apperrors.ErrMissingToken)
}

// newClient builds the GitHub client for cfg.
func newClient(token string, cfg *config.Config, logger *slog.Logger) github.Client {
	return github.NewGraphQLClient(token, cfg.GitHub.GraphQLEndpoint,
		github.WithLogger(logger),
		github.WithTimeout(cfg.GitHub.Timeout))
}

// runReport executes the report command
func runReport(ctx context.Context, opts *reportOptions, repoArg string, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(&opts.globalOptions)
	if err != nil {
		return err
	}
	if opts.format != "" {
		cfg.Defaults.OutputFormat = opts.format
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := logging.New(stderr, cfg.Defaults.LogLevel)

	token, err := resolveToken(&opts.globalOptions, cfg)
	if err != nil {
		return err
	}

	requested := repoArg
	if requested == "" {
		requested = cfg.Defaults.Repository
	}
	ref, usedFallback, err := resolveRepository(requested, cfg, opts.noFallback, logger)
	if err != nil {
		return err
	}

	var writer *output.Writer
	if opts.outputFile == "" {
		writer, err = output.NewWriter(stdout, cfg.Defaults.OutputFormat)
	} else {
		writer, err = output.NewFileWriter(opts.outputFile, cfg.Defaults.OutputFormat)
	}
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer writer.Close()

	client := newClient(token, cfg, logger)

	tracker := metadata.New()
	runErr := report.New(writer, logger).WithTracker(tracker).Run(ctx, client, ref)

	if opts.metadataFile != "" {
		meta := tracker.GenerateMetadata(version.Version, metadata.RunParams{
			Requested:    requested,
			Owner:        ref.Owner,
			Name:         ref.Name,
			UsedFallback: usedFallback,
			Endpoint:     cfg.GitHub.GraphQLEndpoint,
			OutputFormat: cfg.Defaults.OutputFormat,
		}, runErr)
		if err := metadata.SaveMetadata(meta, opts.metadataFile); err != nil {
			logger.Warn("failed to save run metadata", "path", opts.metadataFile, "error", err)
		}
	}

	if runErr != nil {
		return runErr
	}

	logger.Info("report complete", "repository", ref.String(), "records", writer.Count())
	return writer.Close()
}

// resolveRepository picks the repository to report on. An empty argument
// means the configured default. The boolean reports whether the fallback
// replaced a malformed argument.
func resolveRepository(repoArg string, cfg *config.Config, noFallback bool, logger *slog.Logger) (github.RepositoryRef, bool, error) {
	if repoArg == "" {
		repoArg = cfg.Defaults.Repository
	}

	if noFallback {
		ref, err := github.ParseRepository(repoArg)
		return ref, false, err
	}

	fallback, err := github.ParseRepository(cfg.Defaults.FallbackRepository)
	if err != nil {
		return github.RepositoryRef{}, false, fmt.Errorf("invalid fallback repository: %w", err)
	}

	ref, usedFallback := github.ResolveRepository(repoArg, fallback)
	if usedFallback {
		logger.Info("malformed repository, using fallback", "input", repoArg, "fallback", fallback.String())
	}
	return ref, usedFallback, nil
}
