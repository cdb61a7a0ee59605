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
	"fmt"
	"io"

	"github.com/walteh/aow3name/pkg/preview"
	"github.com/walteh/aow3name/pkg/request"
	"github.com/walteh/aow3name/pkg/transaction"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is one step of a run
type Operation interface {
	Name() string
	Execute(ctx context.Context) error
}

// 📝 NewAcquireOperation fills r through a
func NewAcquireOperation(a *Acquirer, r *request.Request) Operation {
	return &acquireOperation{acquirer: a, req: r}
}

type acquireOperation struct {
	acquirer *Acquirer
	req      *request.Request
}

func (op *acquireOperation) Name() string { return "acquire" }

func (op *acquireOperation) Execute(ctx context.Context) error {
	return op.acquirer.Acquire(ctx, op.req)
}

// 💾 NewCommitOperation rewrites the profile of r through mgr. done, when
// set, receives the commit result.
func NewCommitOperation(mgr *transaction.Manager, r *request.Request, done func(*transaction.Result)) Operation {
	return &commitOperation{manager: mgr, req: r, done: done}
}

type commitOperation struct {
	manager *transaction.Manager
	req     *request.Request
	done    func(*transaction.Result)
}

func (op *commitOperation) Name() string { return "commit" }

func (op *commitOperation) Execute(ctx context.Context) error {
	res, err := op.manager.Commit(ctx, op.req)
	if err != nil {
		return err
	}
	if op.done != nil {
		op.done(res)
	}
	return nil
}

// 🔍 NewPreviewOperation writes the diff the commit of r would produce to w
// without touching any file.
func NewPreviewOperation(mgr *transaction.Manager, r *request.Request, w io.Writer) Operation {
	return &previewOperation{manager: mgr, req: r, out: w}
}

type previewOperation struct {
	manager *transaction.Manager
	req     *request.Request
	out     io.Writer
}

func (op *previewOperation) Name() string { return "preview" }

func (op *previewOperation) Execute(ctx context.Context) error {
	result, err := op.manager.Build(ctx, op.req)
	if err != nil {
		return err
	}

	report := preview.Diff(result.OriginalContent, result.ModifiedContent)
	if report.Identical() {
		_, err = fmt.Fprintln(op.out, "No bytes would change.")
	} else {
		_, err = fmt.Fprintf(op.out, "%d replacement(s), %d -> %d bytes\n%s",
			result.ReplacementCount, len(result.OriginalContent), len(result.ModifiedContent), report.Text)
	}
	if err != nil {
		return errors.Errorf("writing preview: %w", err)
	}
	return nil
}
