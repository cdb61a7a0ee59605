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

// Package transaction builds the rewritten profile and swaps it into place,
// keeping the previous file as a backup.
package transaction

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/aow3name/pkg/request"
	"github.com/walteh/aow3name/pkg/text"
	"github.com/walteh/aow3name/pkg/warning"
	"gitlab.com/tozd/go/errors"
)

// ErrBlocked is returned when a request is committed while it is incomplete
// or still carries blocking warnings.
var ErrBlocked = errors.Base("request is not ready to commit")

// 🔧 Options configures a Manager
type Options struct {
	Engine        *warning.Engine
	Matcher       *text.Matcher
	Files         FileManager
	BackupSuffix  string
	PendingSuffix string
}

// 🎯 Manager performs the final substitution and the file swap
type Manager struct {
	engine        *warning.Engine
	matcher       *text.Matcher
	files         FileManager
	backupSuffix  string
	pendingSuffix string
}

// 🏭 New creates a manager with the given options
func New(opts Options) (*Manager, error) {
	if opts.Engine == nil {
		return nil, errors.Errorf("warning engine is required")
	}
	if opts.Matcher == nil {
		return nil, errors.Errorf("matcher is required")
	}
	if opts.Files == nil {
		return nil, errors.Errorf("file manager is required")
	}
	if opts.BackupSuffix == "" || opts.PendingSuffix == "" {
		return nil, errors.Errorf("backup and pending suffixes are required")
	}
	if opts.BackupSuffix == opts.PendingSuffix {
		return nil, errors.Errorf("backup and pending suffixes must differ")
	}
	return &Manager{
		engine:        opts.Engine,
		matcher:       opts.Matcher,
		files:         opts.Files,
		backupSuffix:  opts.BackupSuffix,
		pendingSuffix: opts.PendingSuffix,
	}, nil
}

// 📦 Result describes a finished commit
type Result struct {
	Path        string
	BackupPath  string
	PendingPath string
	Replacement *text.ReplacementResult
}

// BackupPath returns where the previous contents of path are kept.
func (m *Manager) BackupPath(path string) string {
	return path + m.backupSuffix
}

// PendingPath returns where the rewritten contents of path are staged.
func (m *Manager) PendingPath(path string) string {
	return path + m.pendingSuffix
}

// Rules returns the substitutions for r. The second name goes first; the
// containment warning relies on this order.
func (m *Manager) Rules(r *request.Request) []text.ReplacementRule {
	limits := m.engine.Limits()
	return []text.ReplacementRule{
		{
			FromText: r.OldSecondName(),
			ToText:   r.NewSecondName(),
			Width:    limits.MaxLength(request.FieldNewSecondName),
		},
		{
			FromText: r.OldFirstName(),
			ToText:   r.NewFirstName(),
			Width:    limits.MaxLength(request.FieldNewFirstName),
		},
	}
}

// Build returns the rewritten profile for r without touching the disk.
func (m *Manager) Build(ctx context.Context, r *request.Request) (*text.ReplacementResult, error) {
	if !r.Complete() {
		return nil, errors.Errorf("building replacement: %w", ErrBlocked)
	}

	warnings, err := m.engine.Evaluate(ctx, r)
	if err != nil {
		return nil, errors.Errorf("evaluating request: %w", err)
	}
	if blocking := warning.Filter(warnings, warning.Blocking); len(blocking) > 0 {
		return nil, errors.Errorf("%s: %s: %w", blocking[0].Field, blocking[0].Message, ErrBlocked)
	}

	contents, err := r.Contents(ctx)
	if err != nil {
		return nil, errors.Errorf("loading profile: %w", err)
	}

	result, err := m.matcher.ReplaceAll(ctx, contents, m.Rules(r))
	if err != nil {
		return nil, errors.Errorf("replacing names: %w", err)
	}
	return result, nil
}

// Commit writes the rewritten profile next to the original, moves the
// original to the backup path and moves the rewritten file into place.
// A failure after the staged write leaves the files as they were at that
// point; nothing is rolled back.
func (m *Manager) Commit(ctx context.Context, r *request.Request) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	replacement, err := m.Build(ctx, r)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Path:        r.FilePath(),
		BackupPath:  m.BackupPath(r.FilePath()),
		PendingPath: m.PendingPath(r.FilePath()),
		Replacement: replacement,
	}

	if err := m.files.WriteFile(ctx, res.PendingPath, replacement.ModifiedContent); err != nil {
		return nil, errors.Errorf("staging %s: %w", res.PendingPath, err)
	}
	logger.Debug().Str("path", res.PendingPath).Int("size", len(replacement.ModifiedContent)).Msg("staged replacement")

	exists, err := m.files.FileExists(ctx, res.BackupPath)
	if err != nil {
		return nil, errors.Errorf("checking backup %s: %w", res.BackupPath, err)
	}
	if exists {
		if err := m.files.DeleteFile(ctx, res.BackupPath); err != nil {
			return nil, errors.Errorf("removing old backup %s: %w", res.BackupPath, err)
		}
		logger.Debug().Str("path", res.BackupPath).Msg("removed old backup")
	}

	if err := m.files.RenameFile(ctx, res.Path, res.BackupPath); err != nil {
		return nil, errors.Errorf("backing up %s: %w", res.Path, err)
	}

	if err := m.files.RenameFile(ctx, res.PendingPath, res.Path); err != nil {
		return nil, errors.Errorf("moving %s into place: %w", res.PendingPath, err)
	}

	logger.Info().
		Str("path", res.Path).
		Str("backup", res.BackupPath).
		Int("replacements", replacement.ReplacementCount).
		Msg("profile rewritten")

	return res, nil
}
