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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/aow3name/pkg/console"
	"github.com/walteh/aow3name/pkg/request"
	"github.com/walteh/aow3name/pkg/warning"
	"gitlab.com/tozd/go/errors"
)

// 🚦 stateKind is the phase the acquisition loop is in
type stateKind int

const (
	statePrompting stateKind = iota
	stateValidating
	stateConfirming
	stateAdvancing
	stateDone
)

func (k stateKind) String() string {
	switch k {
	case statePrompting:
		return "prompting"
	case stateValidating:
		return "validating"
	case stateConfirming:
		return "confirming"
	case stateAdvancing:
		return "advancing"
	case stateDone:
		return "done"
	default:
		return "unknown"
	}
}

// state is one node of the acquisition state machine. remaining holds the
// advisory warnings still awaiting confirmation.
type state struct {
	kind      stateKind
	index     int
	remaining []warning.Warning
}

// 🎯 Acquirer asks the operator for every field of a request in order and
// only moves on once the field is free of blocking warnings and every
// advisory warning has been confirmed
type Acquirer struct {
	prompter console.Prompter
	engine   *warning.Engine
	fields   []request.Field
}

// 🏭 NewAcquirer creates an acquirer asking p for values checked by engine
func NewAcquirer(p console.Prompter, engine *warning.Engine) *Acquirer {
	return &Acquirer{
		prompter: p,
		engine:   engine,
		fields:   request.Fields,
	}
}

// Acquire fills every field of r. It returns when the last field is
// accepted, the prompter fails or ctx is done.
func (a *Acquirer) Acquire(ctx context.Context, r *request.Request) error {
	st := state{kind: statePrompting}
	for st.kind != stateDone {
		if err := ctx.Err(); err != nil {
			return errors.Errorf("acquisition cancelled: %w", err)
		}

		next, err := a.step(ctx, r, st)
		if err != nil {
			return err
		}

		zerolog.Ctx(ctx).Trace().
			Stringer("from", st.kind).
			Stringer("to", next.kind).
			Int("field", next.index).
			Msg("acquisition transition")

		st = next
	}
	return nil
}

func (a *Acquirer) step(ctx context.Context, r *request.Request, st state) (state, error) {
	switch st.kind {
	case statePrompting:
		field := a.fields[st.index]
		value, err := a.prompter.RequestValue(ctx, field.Label())
		if err != nil {
			return st, errors.Errorf("requesting %s: %w", field, err)
		}
		r.Set(field, value)
		return state{kind: stateValidating, index: st.index}, nil

	case stateValidating:
		field := a.fields[st.index]
		all, err := a.engine.Evaluate(ctx, r)
		if err != nil {
			return st, errors.Errorf("evaluating %s: %w", field, err)
		}
		warnings := warning.ForField(all, field)

		if blocking := warning.Filter(warnings, warning.Blocking); len(blocking) > 0 {
			zerolog.Ctx(ctx).Debug().Stringer("field", field).Str("reason", blocking[0].Message).Msg("value rejected")
			a.prompter.ShowWarning(blocking[0].Message)
			return state{kind: statePrompting, index: st.index}, nil
		}
		if advisory := warning.Filter(warnings, warning.Advisory); len(advisory) > 0 {
			return state{kind: stateConfirming, index: st.index, remaining: advisory}, nil
		}
		return state{kind: stateAdvancing, index: st.index}, nil

	case stateConfirming:
		ok, err := a.prompter.Confirm(ctx, st.remaining[0].Message)
		if err != nil {
			return st, errors.Errorf("confirming %s: %w", a.fields[st.index], err)
		}
		if !ok {
			zerolog.Ctx(ctx).Debug().Stringer("field", a.fields[st.index]).Msg("warning declined")
			return state{kind: statePrompting, index: st.index}, nil
		}
		if len(st.remaining) == 1 {
			return state{kind: stateAdvancing, index: st.index}, nil
		}
		return state{kind: stateConfirming, index: st.index, remaining: st.remaining[1:]}, nil

	case stateAdvancing:
		zerolog.Ctx(ctx).Debug().Stringer("field", a.fields[st.index]).Msg("value accepted")
		if st.index+1 >= len(a.fields) {
			return state{kind: stateDone, index: st.index}, nil
		}
		return state{kind: statePrompting, index: st.index + 1}, nil
	}

	return st, errors.Errorf("unexpected acquisition state %s", st.kind)
}
