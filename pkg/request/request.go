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

// Package request holds the values an operator supplies for one name
// replacement run, together with the profile bytes they refer to.
package request

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🏷️ Field identifies one operator-supplied value
type Field int

const (
	FieldFilePath Field = iota
	FieldOldFirstName
	FieldNewFirstName
	FieldOldSecondName
	FieldNewSecondName
)

// Fields is the order values are acquired in.
var Fields = []Field{
	FieldFilePath,
	FieldOldFirstName,
	FieldNewFirstName,
	FieldOldSecondName,
	FieldNewSecondName,
}

// String returns the identifier used in logs
func (f Field) String() string {
	switch f {
	case FieldFilePath:
		return "file_path"
	case FieldOldFirstName:
		return "old_first_name"
	case FieldNewFirstName:
		return "new_first_name"
	case FieldOldSecondName:
		return "old_second_name"
	case FieldNewSecondName:
		return "new_second_name"
	default:
		return "unknown"
	}
}

// Label returns the prompt shown to the operator
func (f Field) Label() string {
	switch f {
	case FieldFilePath:
		return "File path"
	case FieldOldFirstName:
		return "Current first name"
	case FieldNewFirstName:
		return "New first name"
	case FieldOldSecondName:
		return "Current second name"
	case FieldNewSecondName:
		return "New second name"
	default:
		return "Unknown"
	}
}

// IsName reports whether the field holds a name value.
func (f Field) IsName() bool {
	return f >= FieldOldFirstName && f <= FieldNewSecondName
}

// IsFirstName reports whether the field belongs to the first-name pair.
func (f Field) IsFirstName() bool {
	return f == FieldOldFirstName || f == FieldNewFirstName
}

// Pair returns the other member of the field's old/new pair.
func (f Field) Pair() Field {
	switch f {
	case FieldOldFirstName:
		return FieldNewFirstName
	case FieldNewFirstName:
		return FieldOldFirstName
	case FieldOldSecondName:
		return FieldNewSecondName
	case FieldNewSecondName:
		return FieldOldSecondName
	default:
		return f
	}
}

// 📏 Limits are the slot widths of the name fields, in characters
type Limits struct {
	FirstName  int
	SecondName int
}

// DefaultLimits returns the widths profile files use.
func DefaultLimits() Limits {
	return Limits{FirstName: 10, SecondName: 19}
}

// MinLength is the shortest accepted name.
const MinLength = 1

// MaxLength returns the width of the slot the field is written to, zero for
// non-name fields.
func (l Limits) MaxLength(f Field) int {
	switch {
	case f.IsFirstName():
		return l.FirstName
	case f.IsName():
		return l.SecondName
	default:
		return 0
	}
}

// 📦 Request is one replacement run. Values are filled in field by field;
// the file contents are read at most once and kept for the life of the
// request.
type Request struct {
	extension string
	values    map[Field]string

	contents []byte
	loaded   bool
}

// 🏭 New creates an empty request accepting files with the given extension
func New(extension string) *Request {
	return &Request{
		extension: extension,
		values:    make(map[Field]string, len(Fields)),
	}
}

// Set stores the value for a field and marks it as supplied.
// It also works on a zero Request, which has no extension to accept.
func (r *Request) Set(f Field, value string) {
	if r.values == nil {
		r.values = make(map[Field]string, len(Fields))
	}
	r.values[f] = value
}

// Value returns the stored value of a field, or "" when unsupplied.
func (r *Request) Value(f Field) string {
	return r.values[f]
}

// Supplied reports whether a value was ever set for the field.
func (r *Request) Supplied(f Field) bool {
	_, ok := r.values[f]
	return ok
}

// Complete reports whether every field has been supplied.
func (r *Request) Complete() bool {
	for _, f := range Fields {
		if !r.Supplied(f) {
			return false
		}
	}
	return true
}

func (r *Request) FilePath() string      { return r.Value(FieldFilePath) }
func (r *Request) OldFirstName() string  { return r.Value(FieldOldFirstName) }
func (r *Request) NewFirstName() string  { return r.Value(FieldNewFirstName) }
func (r *Request) OldSecondName() string { return r.Value(FieldOldSecondName) }
func (r *Request) NewSecondName() string { return r.Value(FieldNewSecondName) }

// Extension returns the file extension the request accepts.
func (r *Request) Extension() string {
	return r.extension
}

// 🔍 PathProblem describes why a file path cannot be used
type PathProblem int

const (
	PathOK PathProblem = iota
	PathMissing
	PathWrongExtension
)

// CheckPath inspects the current file path. A directory counts as missing.
func (r *Request) CheckPath() PathProblem {
	path := r.FilePath()
	info, err := os.Stat(path)
	if path == "" || err != nil || info.IsDir() {
		return PathMissing
	}
	if !strings.EqualFold(filepath.Ext(path), r.extension) {
		return PathWrongExtension
	}
	return PathOK
}

// Contents returns the bytes of the referenced file. It returns nil while
// the file path is unusable and reads the file only on the first call that
// finds a usable path. Callers must not modify the returned slice.
func (r *Request) Contents(ctx context.Context) ([]byte, error) {
	if r.loaded {
		return r.contents, nil
	}
	if r.CheckPath() != PathOK {
		return nil, nil
	}

	data, err := os.ReadFile(r.FilePath())
	if err != nil {
		return nil, errors.Errorf("reading profile %s: %w", r.FilePath(), err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", r.FilePath()).
		Int("size", len(data)).
		Msg("loaded profile")

	r.contents = data
	r.loaded = true
	return r.contents, nil
}

// Loaded reports whether the file contents have been read.
func (r *Request) Loaded() bool {
	return r.loaded
}
