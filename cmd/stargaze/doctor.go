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
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirseerhq/stargaze/internal/logging"
	"github.com/spf13/cobra"
)

// doctorTimeout bounds the live viewer query.
const doctorTimeout = 15 * time.Second

var errChecksFailed = errors.New("some checks failed")

func newDoctorCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration, token and connectivity to the GitHub GraphQL API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), doctorTimeout)
			defer cancel()

			return runDoctor(ctx, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func runDoctor(ctx context.Context, opts *globalOptions, stdout, stderr io.Writer) error {
	allOK := true

	check := func(label string, ok bool, hint string) {
		if ok {
			fmt.Fprintf(stdout, "✅ %s\n", label)
		} else {
			fmt.Fprintf(stdout, "❌ %s: %s\n", label, hint)
			allOK = false
		}
	}

	finish := func() error {
		fmt.Fprintln(stdout)
		if allOK {
			fmt.Fprintln(stdout, "All checks passed.")
			return nil
		}
		fmt.Fprintln(stdout, "Some checks failed. Fix the issues above and run doctor again.")
		return errChecksFailed
	}

	cfg, err := loadConfig(opts)
	check("config loadable", err == nil, fmt.Sprintf("fix config: %v", err))
	if err != nil {
		return finish()
	}

	validateErr := cfg.Validate()
	check("config valid", validateErr == nil, fmt.Sprintf("%v", validateErr))
	if validateErr != nil {
		return finish()
	}

	token, tokenErr := resolveToken(opts, cfg)
	check(cfg.GitHub.TokenEnv+" set", tokenErr == nil, fmt.Sprintf("set environment variable %s or use --token", cfg.GitHub.TokenEnv))
	if tokenErr != nil {
		return finish()
	}

	logger := logging.New(stderr, cfg.Defaults.LogLevel)
	client := newClient(token, cfg, logger)

	info, err := client.Viewer(ctx)
	check("GitHub API reachable at "+cfg.GitHub.GraphQLEndpoint, err == nil, fmt.Sprintf("%v", err))
	if err != nil {
		return finish()
	}

	check("authenticated as "+info.Login, info.Login != "", "the token is not associated with a user")
	check(fmt.Sprintf("rate limit %d/%d remaining", info.RateRemaining, info.RateLimit),
		info.RateRemaining > 0,
		fmt.Sprintf("quota exhausted, resets at %s", info.RateResetAt.Local().Format(time.Kitchen)))

	return finish()
}
