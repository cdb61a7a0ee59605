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
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/walteh/aow3name/pkg/text"
	"gitlab.com/tozd/go/errors"
)

func (a *app) newCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count <file> <name>...",
		Short: "Count where each name appears in a profile",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			c, err := cfg.Codec()
			if err != nil {
				return errors.Errorf("creating codec: %w", err)
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Errorf("reading profile: %w", err)
			}

			matcher := text.NewMatcher(c)
			for _, name := range args[1:] {
				n, err := matcher.Count(data, name)
				if err != nil {
					return errors.Errorf("counting %q: %w", name, err)
				}
				fmt.Fprintf(a.out, "[%s] found at %d location(s)\n", name, n)
			}
			return nil
		},
	}
}
