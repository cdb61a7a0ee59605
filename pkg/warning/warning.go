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

// Package warning evaluates a replacement request and reports every reason
// the substitution should not, or should not silently, go ahead.
package warning

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/aow3name/pkg/codec"
	"github.com/walteh/aow3name/pkg/request"
	"github.com/walteh/aow3name/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🚦 Severity classifies how a warning gates progress
type Severity int

const (
	// Blocking warnings force the field to be entered again.
	Blocking Severity = iota
	// Advisory warnings must be confirmed by the operator.
	Advisory
)

func (s Severity) String() string {
	switch s {
	case Blocking:
		return "blocking"
	case Advisory:
		return "advisory"
	default:
		return "unknown"
	}
}

// ⚠️ Warning is one problem tied to the field that caused it
type Warning struct {
	Field    request.Field
	Severity Severity
	Message  string
}

// 🎯 Engine derives warnings from the current state of a request
type Engine struct {
	matcher *text.Matcher
	limits  request.Limits
}

// 🏭 NewEngine creates an engine that counts occurrences with m and checks
// name lengths against limits
func NewEngine(m *text.Matcher, limits request.Limits) *Engine {
	return &Engine{matcher: m, limits: limits}
}

// Limits returns the field widths the engine checks against.
func (e *Engine) Limits() request.Limits {
	return e.limits
}

// Evaluate returns the warnings for every field of r. Rules whose inputs are
// not available yet produce nothing. The file is loaded through r on the
// first evaluation that finds a usable path.
func (e *Engine) Evaluate(ctx context.Context, r *request.Request) ([]Warning, error) {
	var warnings []Warning

	warnings = append(warnings, e.pathWarnings(r)...)

	for _, f := range request.Fields[1:] {
		warnings = append(warnings, e.lengthWarnings(r, f)...)
	}

	contents, err := r.Contents(ctx)
	if err != nil {
		return nil, errors.Errorf("loading profile: %w", err)
	}

	if contents != nil {
		blocked := blockedFields(warnings)
		for _, f := range []request.Field{request.FieldOldFirstName, request.FieldOldSecondName} {
			if blocked[f] {
				continue
			}
			ws, err := e.occurrenceWarnings(r, contents, f)
			if err != nil {
				return nil, err
			}
			warnings = append(warnings, ws...)
		}

		ws, err := e.containmentWarnings(r, contents)
		if err != nil {
			return nil, err
		}
		warnings = append(warnings, ws...)
	}

	for _, f := range request.Fields[1:] {
		warnings = append(warnings, e.lengthChangeWarnings(r, f)...)
	}

	warnings = dropAdvisoriesOnBlocked(warnings)

	zerolog.Ctx(ctx).Debug().
		Int("warnings", len(warnings)).
		Int("blocking", len(Filter(warnings, Blocking))).
		Msg("evaluated request")

	return warnings, nil
}

func (e *Engine) pathWarnings(r *request.Request) []Warning {
	if !r.Supplied(request.FieldFilePath) {
		return nil
	}
	switch r.CheckPath() {
	case request.PathMissing:
		return []Warning{{
			Field:    request.FieldFilePath,
			Severity: Blocking,
			Message:  "The file does not exist.",
		}}
	case request.PathWrongExtension:
		return []Warning{{
			Field:    request.FieldFilePath,
			Severity: Blocking,
			Message:  fmt.Sprintf("The file extension is not %s.", strings.ToUpper(strings.TrimPrefix(r.Extension(), "."))),
		}}
	}
	return nil
}

func (e *Engine) lengthWarnings(r *request.Request, f request.Field) []Warning {
	if !r.Supplied(f) {
		return nil
	}
	n := codec.Units(r.Value(f))
	if limit := e.limits.MaxLength(f); n > limit {
		return []Warning{{
			Field:    f,
			Severity: Blocking,
			Message:  fmt.Sprintf("It must be a string of %d characters or less.", limit),
		}}
	}
	if n < request.MinLength {
		return []Warning{{
			Field:    f,
			Severity: Blocking,
			Message:  "It must be a string of at least one character.",
		}}
	}
	return nil
}

func (e *Engine) occurrenceWarnings(r *request.Request, contents []byte, f request.Field) ([]Warning, error) {
	if !r.Supplied(f) {
		return nil, nil
	}
	value := r.Value(f)
	count, err := e.matcher.Count(contents, value)
	if err != nil {
		return nil, errors.Errorf("counting %s: %w", f, err)
	}
	switch {
	case count == 0:
		return []Warning{{
			Field:    f,
			Severity: Advisory,
			Message: fmt.Sprintf("The target file does not contain [%s], it was found at 0 location(s).\n"+
				"Nothing will be replaced for this name.", value),
		}}, nil
	case count > 1:
		return []Warning{{
			Field:    f,
			Severity: Advisory,
			Message: fmt.Sprintf("[%s] is an expression found at %d location(s) in the target file.\n"+
				"Continuing the process may result in file corruption.", value, count),
		}}, nil
	}
	return nil, nil
}

// containmentWarnings flags old name pairs where the second name, which is
// replaced first, recurs inside the first name's own encoding.
func (e *Engine) containmentWarnings(r *request.Request, contents []byte) ([]Warning, error) {
	first, second := r.OldFirstName(), r.OldSecondName()
	if first == "" || second == "" {
		return nil, nil
	}

	encodedFirst, err := e.matcher.Codec().Encode(first)
	if err != nil {
		return nil, errors.Errorf("encoding first name: %w", err)
	}
	inFirst, err := e.matcher.Count(encodedFirst, second)
	if err != nil {
		return nil, errors.Errorf("counting second name: %w", err)
	}
	inFile, err := e.matcher.Count(contents, first)
	if err != nil {
		return nil, errors.Errorf("counting first name: %w", err)
	}
	if inFirst <= 1 || inFile == 0 {
		return nil, nil
	}

	const msg = "The current first name contains the second one.\n" +
		"The result of the name change may be unintended."
	return []Warning{
		{Field: request.FieldOldFirstName, Severity: Advisory, Message: msg},
		{Field: request.FieldOldSecondName, Severity: Advisory, Message: msg},
	}, nil
}

func (e *Engine) lengthChangeWarnings(r *request.Request, f request.Field) []Warning {
	a, b := r.Value(f), r.Value(f.Pair())
	if a == "" || b == "" {
		return nil
	}
	if codec.Units(a) == codec.Units(b) {
		return nil
	}
	return []Warning{{
		Field:    f,
		Severity: Advisory,
		Message: "The number of characters in the name before and after changing is different.\n" +
			"The changed name may be garbled.",
	}}
}

func blockedFields(warnings []Warning) map[request.Field]bool {
	blocked := map[request.Field]bool{}
	for _, w := range warnings {
		if w.Severity == Blocking {
			blocked[w.Field] = true
		}
	}
	return blocked
}

func dropAdvisoriesOnBlocked(warnings []Warning) []Warning {
	blocked := blockedFields(warnings)
	out := warnings[:0]
	for _, w := range warnings {
		if w.Severity == Advisory && blocked[w.Field] {
			continue
		}
		out = append(out, w)
	}
	return out
}

// ForField returns the warnings targeting f, in evaluation order.
func ForField(warnings []Warning, f request.Field) []Warning {
	var out []Warning
	for _, w := range warnings {
		if w.Field == f {
			out = append(out, w)
		}
	}
	return out
}

// Filter returns the warnings with the given severity, in evaluation order.
func Filter(warnings []Warning, s Severity) []Warning {
	var out []Warning
	for _, w := range warnings {
		if w.Severity == s {
			out = append(out, w)
		}
	}
	return out
}
