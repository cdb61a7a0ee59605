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

	"github.com/rs/zerolog"
	"github.com/walteh/aow3name/pkg/codec"
	"gitlab.com/tozd/go/errors"
)

// 🔄 ReplacementRule describes one name substitution
type ReplacementRule struct {
	FromText string // Value currently stored in the file
	ToText   string // Value to store instead
	Width    int    // Field width in characters, zero disables slot padding
}

// 📦 ReplacementResult is the outcome of applying a list of rules
type ReplacementResult struct {
	OriginalContent  []byte // Buffer the rules were applied to
	ModifiedContent  []byte // Buffer after every rule
	ReplacementCount int    // Total occurrences replaced
	RuleCounts       []int  // Occurrences replaced, per rule
	WasModified      bool   // Whether any byte changed
}

// 🎯 Matcher counts and substitutes encoded values inside a byte buffer
type Matcher struct {
	codec *codec.Codec
}

// 🏭 NewMatcher creates a matcher encoding values with c
func NewMatcher(c *codec.Codec) *Matcher {
	return &Matcher{codec: c}
}

// Codec returns the codec values are encoded with.
func (m *Matcher) Codec() *codec.Codec {
	return m.codec
}

// Count returns the number of non-overlapping occurrences of the encoded
// value in buf. The scan resumes right after each match.
func (m *Matcher) Count(buf []byte, value string) (int, error) {
	encoded, err := m.codec.Encode(value)
	if err != nil {
		return 0, err
	}
	if len(encoded) == 0 {
		return 0, nil
	}
	return bytes.Count(buf, encoded), nil
}

// Replace substitutes every non-overlapping occurrence of oldValue in buf
// with newValue and returns the result in a new buffer. buf is not modified.
//
// A match followed by zero code units is treated as a slot of up to width
// characters: the zero units are consumed and the replacement is padded back
// to the slot length. A replacement longer than its slot grows the buffer.
func (m *Matcher) Replace(buf []byte, oldValue, newValue string, width int) ([]byte, error) {
	out, _, err := m.replace(buf, oldValue, newValue, width)
	return out, err
}

func (m *Matcher) replace(buf []byte, oldValue, newValue string, width int) ([]byte, int, error) {
	from, err := m.codec.Encode(oldValue)
	if err != nil {
		return nil, 0, err
	}
	to, err := m.codec.Encode(newValue)
	if err != nil {
		return nil, 0, err
	}

	if len(from) == 0 {
		return bytes.Clone(buf), 0, nil
	}

	slotMax := width * codec.UnitSize

	var out bytes.Buffer
	out.Grow(len(buf))

	count := 0
	pos := 0
	for {
		idx := bytes.Index(buf[pos:], from)
		if idx < 0 {
			break
		}
		start := pos + idx
		end := start + len(from)

		// absorb the zero padding that belongs to this slot
		for end-start+codec.UnitSize <= slotMax && end+codec.UnitSize <= len(buf) && isZeroUnit(buf[end:end+codec.UnitSize]) {
			end += codec.UnitSize
		}

		out.Write(buf[pos:start])
		out.Write(to)
		if pad := (end - start) - len(to); pad > 0 {
			out.Write(make([]byte, pad))
		}

		pos = end
		count++
	}
	out.Write(buf[pos:])

	return out.Bytes(), count, nil
}

func isZeroUnit(unit []byte) bool {
	for _, b := range unit {
		if b != 0 {
			return false
		}
	}
	return true
}

// ReplaceAll applies rules to content in order, each rule operating on the
// output of the previous one.
func (m *Matcher) ReplaceAll(ctx context.Context, content []byte, rules []ReplacementRule) (*ReplacementResult, error) {
	logger := zerolog.Ctx(ctx)

	if err := m.ValidateRules(rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	result := &ReplacementResult{
		OriginalContent: content,
		ModifiedContent: content,
		RuleCounts:      make([]int, len(rules)),
	}

	current := content
	for i, rule := range rules {
		next, n, err := m.replace(current, rule.FromText, rule.ToText, rule.Width)
		if err != nil {
			return nil, errors.Errorf("rule %d: %w", i, err)
		}

		logger.Debug().
			Int("rule", i).
			Str("from", rule.FromText).
			Str("to", rule.ToText).
			Int("width", rule.Width).
			Int("replacements", n).
			Msg("applied replacement rule")

		result.RuleCounts[i] = n
		result.ReplacementCount += n
		current = next
	}

	result.ModifiedContent = current
	result.WasModified = !bytes.Equal(content, current)
	return result, nil
}

// ValidateRules checks that every rule has something to search for.
func (m *Matcher) ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.FromText == "" {
			return errors.Errorf("rule %d: from_text is required", i)
		}
		if rule.Width < 0 {
			return errors.Errorf("rule %d: width must not be negative", i)
		}
	}
	return nil
}
