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

package text

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/aow3name/pkg/codec"
)

func enc(t *testing.T, s string) []byte {
	t.Helper()
	b, err := codec.Default().Encode(s)
	require.NoError(t, err)
	return b
}

func zeros(n int) []byte {
	return make([]byte, n)
}

func join(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

var marker = []byte{0xff, 0xfe}

func TestMatcher_Count(t *testing.T) {
	tests := []struct {
		name  string
		buf   func(t *testing.T) []byte
		value string
		want  int
	}{
		{
			name:  "no_match",
			buf:   func(t *testing.T) []byte { return join(marker, enc(t, "Smith"), marker) },
			value: "Alice",
			want:  0,
		},
		{
			name:  "single_match",
			buf:   func(t *testing.T) []byte { return join(marker, enc(t, "Alice"), marker) },
			value: "Alice",
			want:  1,
		},
		{
			name: "three_matches",
			buf: func(t *testing.T) []byte {
				return join(enc(t, "Alice"), marker, enc(t, "Alice"), zeros(4), enc(t, "Alice"))
			},
			value: "Alice",
			want:  3,
		},
		{
			name:  "overlapping_matches_counted_once",
			buf:   func(t *testing.T) []byte { return enc(t, "aaa") },
			value: "aa",
			want:  1,
		},
		{
			name:  "match_at_odd_offset",
			buf:   func(t *testing.T) []byte { return join([]byte{0x01}, enc(t, "Bob")) },
			value: "Bob",
			want:  1,
		},
		{
			name:  "single_byte_text_is_not_encoded",
			buf:   func(t *testing.T) []byte { return []byte("Alice Alice") },
			value: "Alice",
			want:  0,
		},
		{
			name:  "empty_value",
			buf:   func(t *testing.T) []byte { return enc(t, "Alice") },
			value: "",
			want:  0,
		},
		{
			name:  "empty_buffer",
			buf:   func(t *testing.T) []byte { return nil },
			value: "Alice",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(codec.Default())
			got, err := m.Count(tt.buf(t), tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatcher_Replace(t *testing.T) {
	tests := []struct {
		name     string
		buf      func(t *testing.T) []byte
		oldValue string
		newValue string
		width    int
		want     func(t *testing.T) []byte
	}{
		{
			name:     "no_match_is_unchanged",
			buf:      func(t *testing.T) []byte { return join(marker, enc(t, "Smith"), marker) },
			oldValue: "Alice",
			newValue: "Bob",
			width:    10,
			want:     func(t *testing.T) []byte { return join(marker, enc(t, "Smith"), marker) },
		},
		{
			name:     "same_length",
			buf:      func(t *testing.T) []byte { return join(marker, enc(t, "Smith"), marker) },
			oldValue: "Smith",
			newValue: "Jones",
			width:    19,
			want:     func(t *testing.T) []byte { return join(marker, enc(t, "Jones"), marker) },
		},
		{
			name:     "shorter_pads_to_old_length",
			buf:      func(t *testing.T) []byte { return join(marker, enc(t, "Alice"), marker) },
			oldValue: "Alice",
			newValue: "Bob",
			width:    10,
			want:     func(t *testing.T) []byte { return join(marker, enc(t, "Bob"), zeros(4), marker) },
		},
		{
			name:     "shorter_keeps_padded_slot",
			buf:      func(t *testing.T) []byte { return join(marker, enc(t, "Alice"), zeros(10), marker) },
			oldValue: "Alice",
			newValue: "Bob",
			width:    10,
			want:     func(t *testing.T) []byte { return join(marker, enc(t, "Bob"), zeros(14), marker) },
		},
		{
			name:     "longer_fills_padded_slot",
			buf:      func(t *testing.T) []byte { return join(marker, enc(t, "Bob"), zeros(14), marker) },
			oldValue: "Bob",
			newValue: "Alice",
			width:    10,
			want:     func(t *testing.T) []byte { return join(marker, enc(t, "Alice"), zeros(10), marker) },
		},
		{
			name:     "longer_without_padding_grows",
			buf:      func(t *testing.T) []byte { return join(marker, enc(t, "Bob"), marker) },
			oldValue: "Bob",
			newValue: "Alice",
			width:    10,
			want:     func(t *testing.T) []byte { return join(marker, enc(t, "Alice"), marker) },
		},
		{
			name:     "padding_beyond_width_is_kept",
			buf:      func(t *testing.T) []byte { return join(enc(t, "Bob"), zeros(30), marker) },
			oldValue: "Bob",
			newValue: "Alice",
			width:    10,
			want:     func(t *testing.T) []byte { return join(enc(t, "Alice"), zeros(10), zeros(16), marker) },
		},
		{
			name:     "zero_width_ignores_padding",
			buf:      func(t *testing.T) []byte { return join(enc(t, "Bob"), zeros(4), marker) },
			oldValue: "Bob",
			newValue: "Alice",
			width:    0,
			want:     func(t *testing.T) []byte { return join(enc(t, "Alice"), zeros(4), marker) },
		},
		{
			name:     "half_zero_unit_is_not_padding",
			buf:      func(t *testing.T) []byte { return join(enc(t, "Bob"), []byte{0x00, 0x01}) },
			oldValue: "Bob",
			newValue: "Alice",
			width:    10,
			want:     func(t *testing.T) []byte { return join(enc(t, "Alice"), []byte{0x00, 0x01}) },
		},
		{
			name:     "every_occurrence",
			buf:      func(t *testing.T) []byte { return join(enc(t, "Smith"), marker, enc(t, "Smith")) },
			oldValue: "Smith",
			newValue: "Jones",
			width:    19,
			want:     func(t *testing.T) []byte { return join(enc(t, "Jones"), marker, enc(t, "Jones")) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(codec.Default())
			buf := tt.buf(t)
			before := bytes.Clone(buf)

			got, err := m.Replace(buf, tt.oldValue, tt.newValue, tt.width)
			require.NoError(t, err)
			assert.Equal(t, tt.want(t), got, "replaced buffer should match")
			assert.Equal(t, before, buf, "input buffer must not be mutated")
		})
	}
}

func TestMatcher_ReplaceSameValueIsIdentity(t *testing.T) {
	m := NewMatcher(codec.Default())
	buffers := [][]byte{
		join(marker, enc(t, "Alice"), marker),
		join(marker, enc(t, "Alice"), zeros(10), marker),
		join(enc(t, "Alice"), zeros(40)),
		join(enc(t, "AliceAlice"), marker),
	}
	for _, buf := range buffers {
		got, err := m.Replace(buf, "Alice", "Alice", 10)
		require.NoError(t, err)
		assert.Equal(t, buf, got)
	}
}

func TestMatcher_ReplaceAll(t *testing.T) {
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	m := NewMatcher(codec.Default())

	t.Run("applies_rules_in_order", func(t *testing.T) {
		content := join(marker, enc(t, "Alice"), zeros(10), marker, enc(t, "Smith"), zeros(28), marker)
		result, err := m.ReplaceAll(ctx, content, []ReplacementRule{
			{FromText: "Smith", ToText: "Jones", Width: 19},
			{FromText: "Alice", ToText: "Bob", Width: 10},
		})
		require.NoError(t, err)

		want := join(marker, enc(t, "Bob"), zeros(14), marker, enc(t, "Jones"), zeros(28), marker)
		assert.Equal(t, want, result.ModifiedContent)
		assert.Equal(t, content, result.OriginalContent)
		assert.Equal(t, []int{1, 1}, result.RuleCounts)
		assert.Equal(t, 2, result.ReplacementCount)
		assert.True(t, result.WasModified)
	})

	t.Run("earlier_rule_consumes_later_target", func(t *testing.T) {
		content := join(marker, enc(t, "MaryAnn"), marker)
		result, err := m.ReplaceAll(ctx, content, []ReplacementRule{
			{FromText: "Ann", ToText: "Lee", Width: 19},
			{FromText: "MaryAnn", ToText: "Jane", Width: 10},
		})
		require.NoError(t, err)

		assert.Equal(t, join(marker, enc(t, "MaryLee"), marker), result.ModifiedContent)
		assert.Equal(t, []int{1, 0}, result.RuleCounts)
	})

	t.Run("no_rules", func(t *testing.T) {
		content := enc(t, "Alice")
		result, err := m.ReplaceAll(ctx, content, nil)
		require.NoError(t, err)
		assert.Equal(t, content, result.ModifiedContent)
		assert.Zero(t, result.ReplacementCount)
		assert.False(t, result.WasModified)
	})

	t.Run("invalid_rule", func(t *testing.T) {
		_, err := m.ReplaceAll(ctx, enc(t, "Alice"), []ReplacementRule{{ToText: "Bob"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rule 0: from_text is required")
	})
}

func TestMatcher_ValidateRules(t *testing.T) {
	tests := []struct {
		name      string
		rules     []ReplacementRule
		wantError string
	}{
		{
			name:  "valid_rules",
			rules: []ReplacementRule{{FromText: "Alice", ToText: "Bob", Width: 10}},
		},
		{
			name:      "missing_from_text",
			rules:     []ReplacementRule{{FromText: "Alice", ToText: "Bob"}, {ToText: "Bob"}},
			wantError: "rule 1: from_text is required",
		},
		{
			name:      "negative_width",
			rules:     []ReplacementRule{{FromText: "Alice", Width: -1}},
			wantError: "rule 0: width must not be negative",
		},
		{
			name:  "empty_rules",
			rules: []ReplacementRule{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewMatcher(codec.Default()).ValidateRules(tt.rules)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}
}
