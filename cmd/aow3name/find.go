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
	"io/fs"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

func (a *app) newFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find [dir]",
		Short: "List profile files below a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}

			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			pattern := "**/*" + foldGlob(cfg.Extension)
			zerolog.Ctx(cmd.Context()).Debug().Str("dir", dir).Str("pattern", pattern).Msg("searching for profiles")

			rows := [][]string{{"Profile", "Bytes"}}
			err = doublestar.GlobWalk(os.DirFS(dir), pattern, func(path string, d fs.DirEntry) error {
				if d.IsDir() {
					return nil
				}
				info, err := d.Info()
				if err != nil {
					return errors.Errorf("reading %s: %w", path, err)
				}
				rows = append(rows, []string{path, strconv.FormatInt(info.Size(), 10)})
				return nil
			})
			if err != nil {
				return errors.Errorf("searching %s: %w", dir, err)
			}

			if len(rows) == 1 {
				pterm.Info.WithWriter(a.out).Printfln("No %s files below %s", cfg.Extension, dir)
				return nil
			}

			return pterm.DefaultTable.
				WithHasHeader().
				WithWriter(a.out).
				WithData(rows).
				Render()
		},
	}
}

// foldGlob turns an extension into a glob that matches it in any letter case
func foldGlob(ext string) string {
	var sb strings.Builder
	for _, r := range ext {
		lower, upper := unicode.ToLower(r), unicode.ToUpper(r)
		switch {
		case lower != upper:
			sb.WriteString("[" + string(lower) + string(upper) + "]")
		case strings.ContainsRune(`*?[]{}\`, r):
			sb.WriteString(`\` + string(r))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
