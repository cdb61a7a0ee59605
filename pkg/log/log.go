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

// Package log prints what a run did to the files on disk, for the operator,
// while mirroring each entry to the diagnostics logger.
package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // Base width for filename
	roleWidth   = 10 // Width for file role
	statusWidth = 15 // Width for status text
)

// File roles
const (
	RoleProfile = "profile"
	RoleBackup  = "backup"
	RoleStaging = "staging"
)

// 🎯 FileOperation represents a file touched by a run
type FileOperation struct {
	Path         string // File path
	Role         string // profile/backup/staging
	Status       string // Operation status
	IsNew        bool   // Whether the file was created
	IsModified   bool   // Whether the file was rewritten
	IsRemoved    bool   // Whether the file was removed
	Replacements int    // Number of replacements made
}

// 🎯 Logger prints file operations to the console
type Logger struct {
	zlog       zerolog.Logger
	console    io.Writer
	mu         sync.Mutex
	operations []FileOperation
}

// 🏭 New creates a new logger writing to console. Entries are also sent to
// the logger stored in ctx.
func New(ctx context.Context, console io.Writer) *Logger {
	return &Logger{
		zlog:    *zerolog.Ctx(ctx),
		console: console,
	}
}

// 📝 formatFileOperation formats a file operation for display
func (l *Logger) formatFileOperation(op FileOperation) string {
	var symbol rune
	var symbolColor color.Attribute
	switch {
	case op.IsRemoved:
		symbol = '✗'
		symbolColor = color.FgRed
	case op.IsNew:
		symbol = '✓'
		symbolColor = color.FgGreen
	case op.IsModified:
		symbol = '⟳'
		symbolColor = color.FgBlue
	default:
		symbol = '-'
		symbolColor = color.FgYellow
	}

	var roleColor color.Attribute
	switch op.Role {
	case RoleProfile:
		roleColor = color.FgCyan
	case RoleBackup:
		roleColor = color.FgYellow
	default:
		roleColor = color.FgBlue
	}

	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, op.Path),
		color.New(roleColor).Sprint(fmt.Sprintf("%-*s", roleWidth, op.Role)),
		fmt.Sprintf("%-*s", statusWidth, op.Status))
}

// 📝 LogFileOperation prints a file operation
func (l *Logger) LogFileOperation(ctx context.Context, op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.operations = append(l.operations, op)

	fmt.Fprintln(l.console, l.formatFileOperation(op))

	l.zlog.Info().
		Str("file", op.Path).
		Str("role", op.Role).
		Str("status", op.Status).
		Bool("is_new", op.IsNew).
		Bool("is_modified", op.IsModified).
		Bool("is_removed", op.IsRemoved).
		Int("replacements", op.Replacements).
		Msg("file operation")
}

// Operations returns the operations printed so far.
func (l *Logger) Operations() []FileOperation {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]FileOperation(nil), l.operations...)
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}
