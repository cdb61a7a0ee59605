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
	"fmt"

	"github.com/rs/zerolog"
	"github.com/walteh/aow3name/pkg/config"
	"github.com/walteh/aow3name/pkg/console"
	"github.com/walteh/aow3name/pkg/log"
	"github.com/walteh/aow3name/pkg/operation"
	"github.com/walteh/aow3name/pkg/request"
	"github.com/walteh/aow3name/pkg/text"
	"github.com/walteh/aow3name/pkg/transaction"
	"github.com/walteh/aow3name/pkg/warning"
	"gitlab.com/tozd/go/errors"
)

const title = "AoW3 Name Replacer"

// runReplace drives one interactive rename from title to "Done."
func (a *app) runReplace(ctx context.Context, cfg *config.Config) error {
	c, err := cfg.Codec()
	if err != nil {
		return errors.Errorf("creating codec: %w", err)
	}

	matcher := text.NewMatcher(c)
	engine := warning.NewEngine(matcher, cfg.Limits())
	mgr, err := transaction.New(transaction.Options{
		Engine:        engine,
		Matcher:       matcher,
		Files:         transaction.NewOSFileManager(),
		BackupSuffix:  cfg.BackupSuffix,
		PendingSuffix: cfg.PendingSuffix,
	})
	if err != nil {
		return errors.Errorf("creating transaction manager: %w", err)
	}

	con := console.New(ctx, a.in, a.out)
	con.ShowTitle(title)

	req := request.New(cfg.Extension)
	ops := []operation.Operation{
		operation.NewAcquireOperation(operation.NewAcquirer(con, engine), req),
	}
	if a.dryRun {
		ops = append(ops, operation.NewPreviewOperation(mgr, req, a.out))
	} else {
		ops = append(ops, operation.NewCommitOperation(mgr, req, func(res *transaction.Result) {
			zerolog.Ctx(ctx).Info().
				Str("path", res.Path).
				Str("backup", res.BackupPath).
				Ints("rule_counts", res.Replacement.RuleCounts).
				Int("size_before", len(res.Replacement.OriginalContent)).
				Int("size_after", len(res.Replacement.ModifiedContent)).
				Msg("names replaced")

			report := log.New(ctx, a.out)
			report.LogFileOperation(ctx, log.FileOperation{
				Path:         res.Path,
				Role:         log.RoleProfile,
				Status:       fmt.Sprintf("%d replaced", res.Replacement.ReplacementCount),
				IsModified:   res.Replacement.WasModified,
				Replacements: res.Replacement.ReplacementCount,
			})
			report.LogFileOperation(ctx, log.FileOperation{
				Path:   res.BackupPath,
				Role:   log.RoleBackup,
				Status: "previous",
				IsNew:  true,
			})
			report.LogNewline()
		}))
	}

	if err := operation.NewRunner(zerolog.Ctx(ctx)).Run(ctx, ops...); err != nil {
		if errors.Is(err, console.ErrNoInput) {
			con.ReportError("Input ended before the names were replaced.", nil)
		} else {
			con.ReportError("Failed to replace names.", err)
		}
		return reportedError{err}
	}

	con.ShowMessage("Done.")
	if !a.noWait {
		con.Wait()
	}
	return nil
}
