// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/enumfix/cmd/enumfix/commands"
	"github.com/walteh/enumfix/cmd/enumfix/opts"
	"github.com/walteh/enumfix/pkg/config"
	"github.com/walteh/enumfix/pkg/log"
)

const defaultConfigFile = ".enumfix.yaml"

// newRootCmd builds the command tree. The root command itself runs the rewrite.
func newRootCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enumfix",
		Short: "Convert BattlecryTargetType string literals into enum references",
		Long: `enumfix rewrites one TypeScript source file in place, replacing quoted
targetType values such as targetType: "any" with the matching enum member
targetType: BattlecryTargetType.ANY.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd, o)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, o); err != nil {
				return err
			}
			return commands.RunRewrite(o)(cmd, args)
		},
	}

	addRootFlags(cmd, o)

	cmd.AddCommand(
		commands.NewRulesCmd(o),
		commands.NewVersionCmd(FormatVersion),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", defaultConfigFile, "config file path")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
	cmd.Flags().StringVarP(&o.Target, "target", "t", "", "file to rewrite (overrides config)")
	cmd.Flags().BoolVar(&o.DryRun, "dry-run", false, "print the diff instead of writing the file")
}

// setupLogging places both loggers in the command context
func setupLogging(cmd *cobra.Command, o *opts.RootOpts) {
	level := zerolog.InfoLevel
	if o.IsDebug() {
		level = zerolog.DebugLevel
	}

	zlog := newZerolog(o, level)
	ctx := zlog.WithContext(cmd.Context())
	ctx = log.NewContext(ctx, log.New(o.Stdout, zlog))
	cmd.SetContext(ctx)
}

// loadConfig reads the config file for the rewrite. Only the root command
// needs it, so subcommands never fail on a bad config.
func loadConfig(cmd *cobra.Command, o *opts.RootOpts) error {
	ctx := cmd.Context()

	var (
		cfg *config.Config
		err error
	)
	if cmd.Flag("config").Changed {
		cfg, err = config.Load(ctx, o.Fs, o.ConfigFile)
	} else {
		cfg, err = config.LoadOrDefault(ctx, o.Fs, o.ConfigFile)
	}
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}
	o.Config = cfg

	// debug may be switched on by the file alone
	if cfg.Debug && !o.Debug {
		setupLogging(cmd, o)
	}

	zerolog.Ctx(cmd.Context()).Debug().Str("config", cfg.String()).Msg("configuration loaded")
	return nil
}

// newZerolog writes human-readable structured logs to stderr
func newZerolog(o *opts.RootOpts, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: o.Stderr}).Level(level).With().Timestamp().Logger()
}
