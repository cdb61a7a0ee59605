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

package log

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "modified_profile",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileOperation(context.Background(), FileOperation{
					Path:         "hero.apd",
					Role:         RoleProfile,
					Status:       "2 replaced",
					IsModified:   true,
					Replacements: 2,
				})
			},
			wantLogs: []string{
				"    ⟳ hero.apd                            profile    2 replaced     ",
			},
		},
		{
			name: "new_backup",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileOperation(context.Background(), FileOperation{
					Path:   "hero.apd.backup",
					Role:   RoleBackup,
					Status: "previous",
					IsNew:  true,
				})
			},
			wantLogs: []string{
				"    ✓ hero.apd.backup                     backup     previous       ",
			},
		},
		{
			name: "removed_wins_over_new",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileOperation(context.Background(), FileOperation{
					Path:      "hero.apd.replaced",
					Role:      RoleStaging,
					Status:    "moved",
					IsNew:     true,
					IsRemoved: true,
				})
			},
			wantLogs: []string{
				"    ✗ hero.apd.replaced                   staging    moved          ",
			},
		},
		{
			name: "untouched_with_newline",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileOperation(context.Background(), FileOperation{Path: "a", Role: RoleProfile, Status: "unchanged"})
				logger.LogNewline()
			},
			wantLogs: []string{
				"    - a                                   profile    unchanged      ",
				"",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
			logger := New(ctx, &buf)

			tt.op(t, logger)

			got := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			require.Len(t, got, len(tt.wantLogs), "output: %q", buf.String())
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, got[i], "line %d should match", i)
			}
		})
	}
}

func TestLogger_Operations(t *testing.T) {
	var buf bytes.Buffer
	logger := New(context.Background(), &buf)

	logger.LogFileOperation(context.Background(), FileOperation{Path: "a", Role: RoleProfile})
	logger.LogFileOperation(context.Background(), FileOperation{Path: "b", Role: RoleBackup})

	ops := logger.Operations()
	require.Len(t, ops, 2)
	assert.Equal(t, "a", ops[0].Path)
	assert.Equal(t, "b", ops[1].Path)

	ops[0].Path = "changed"
	assert.Equal(t, "a", logger.Operations()[0].Path, "returned slice should be a copy")
}
