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
	"context"
	"io"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/aow3name/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// app carries the streams and flags shared by every command
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	// Flags
	configFile string
	debug      bool
	dryRun     bool
	noWait     bool
}

// reportedError marks a failure the command already showed to the operator
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error { return e.error }

func newApp(in io.Reader, out, errOut io.Writer) *app {
	return &app{in: in, out: out, errOut: errOut}
}

// execute runs the command tree and reports any failure that was not
// already shown.
func (a *app) execute(ctx context.Context, args []string) error {
	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	err := root.ExecuteContext(ctx)
	if err != nil {
		var reported reportedError
		if !errors.As(err, &reported) {
			pterm.Error.WithWriter(a.errOut).Println(err.Error())
		}
	}
	return err
}

func (a *app) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aow3name",
		Short: "Rename the hero stored in an AoW3 profile",
		Long: `aow3name asks for a profile file and the current and new first and
second names, warns about anything that could damage the profile, and then
rewrites the names in place. The previous file is kept next to the profile
with the backup suffix.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogging(a.errOut, a.debug)
			cmd.SetContext(logger.WithContext(cmd.Context()))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			return a.runReplace(cmd.Context(), cfg)
		},
	}

	a.addRootFlags(cmd)

	cmd.AddCommand(
		a.newCountCmd(),
		a.newFindCmd(),
		a.newVersionCmd(),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func (a *app) addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", config.DefaultPath, "config file path")
	cmd.PersistentFlags().BoolVarP(&a.debug, "debug", "d", false, "enable debug logging")
	cmd.Flags().BoolVar(&a.dryRun, "dry-run", false, "show the byte changes without writing")
	cmd.Flags().BoolVar(&a.noWait, "no-wait", false, "exit without waiting for a final keypress")
}

// loadConfig reads the config file. Only a file named with --config has to exist.
func (a *app) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	explicit := cmd.Flags().Changed("config")
	cfg, err := config.LoadOrDefault(cmd.Context(), a.configFile, explicit)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// setupLogging builds the diagnostics logger; operator output never goes through it
func setupLogging(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: color.NoColor}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
