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

// Package console talks to the operator: it asks for values, prints
// warnings and collects confirmations.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ErrNoInput is returned when the input stream ends while an answer is
// still required.
var ErrNoInput = errors.Base("no more input")

// 🎨 Display configuration
const (
	warningHead      = "[# Warning !] "
	confirmationHead = "[# Confirmation !] "
	confirmQuestion  = "Do you continue this process? (Y/N)"
)

// 🔌 Prompter is everything the acquisition flow needs from an operator
type Prompter interface {
	// RequestValue asks for the value labelled label
	RequestValue(ctx context.Context, label string) (string, error)
	// ShowMessage prints an informational message
	ShowMessage(msg string)
	// ShowWarning prints a warning that needs no answer
	ShowWarning(msg string)
	// Confirm prints msg and reports whether the operator wants to continue
	Confirm(ctx context.Context, msg string) (bool, error)
}

// 🎯 Console is a Prompter reading answers line by line from a stream
type Console struct {
	in   *bufio.Reader
	out  io.Writer
	zlog zerolog.Logger
}

var _ Prompter = (*Console)(nil)

// 🏭 New creates a console reading from in and writing to out. Diagnostics
// go to the logger stored in ctx.
func New(ctx context.Context, in io.Reader, out io.Writer) *Console {
	return &Console{
		in:   bufio.NewReader(in),
		out:  out,
		zlog: *zerolog.Ctx(ctx),
	}
}

// ShowTitle prints the tool banner.
func (c *Console) ShowTitle(title string) {
	fmt.Fprintln(c.out, color.New(color.Bold, color.FgCyan).Sprint("# "+title))
	fmt.Fprintln(c.out)
}

// ShowMessage prints msg followed by a blank line.
func (c *Console) ShowMessage(msg string) {
	fmt.Fprintln(c.out, msg)
	fmt.Fprintln(c.out)
}

// ShowWarning prints msg behind the warning marker.
func (c *Console) ShowWarning(msg string) {
	c.printMarked(warningHead, color.FgYellow, msg)
	fmt.Fprintln(c.out)
	c.zlog.Debug().Str("message", msg).Msg("warning shown")
}

// RequestValue prints the label and returns the next input line without its
// line terminator.
func (c *Console) RequestValue(ctx context.Context, label string) (string, error) {
	fmt.Fprintf(c.out, "%s:\n", label)
	line, err := c.readLine()
	if err != nil {
		return "", errors.Errorf("reading %s: %w", strings.ToLower(label), err)
	}
	fmt.Fprintln(c.out)

	zerolog.Ctx(ctx).Debug().Str("label", label).Str("value", line).Msg("value entered")
	return line, nil
}

// Confirm prints msg behind the confirmation marker followed by a yes/no
// question. Answers starting with "y" or "Y" continue; anything else,
// including an empty line, does not.
func (c *Console) Confirm(ctx context.Context, msg string) (bool, error) {
	c.printMarked(confirmationHead, color.FgMagenta, msg)
	fmt.Fprintln(c.out, confirmQuestion)

	answer, err := c.readLine()
	if err != nil {
		return false, errors.Errorf("reading confirmation: %w", err)
	}
	fmt.Fprintln(c.out)

	ok := IsAffirmative(answer)
	zerolog.Ctx(ctx).Debug().Str("message", msg).Bool("confirmed", ok).Msg("confirmation answered")
	return ok, nil
}

// Wait blocks until the operator presses enter or the input ends.
func (c *Console) Wait() {
	_, _ = c.in.ReadString('\n')
}

// ReportError prints err the way failed commands are reported.
func (c *Console) ReportError(description string, err error) {
	pterm.Error.WithWriter(c.out).Println(description)
	if err != nil {
		pterm.Error.WithWriter(c.out).Println(err)
		c.zlog.Error().Err(err).Msg(description)
		return
	}
	c.zlog.Error().Msg(description)
}

// IsAffirmative reports whether an answer means yes.
func IsAffirmative(answer string) bool {
	answer = strings.TrimSpace(answer)
	return answer != "" && (answer[0] == 'y' || answer[0] == 'Y')
}

// printMarked writes msg line by line, the first line behind head and the
// rest indented to align with it.
func (c *Console) printMarked(head string, attr color.Attribute, msg string) {
	indent := strings.Repeat(" ", len(head))
	for i, line := range strings.Split(msg, "\n") {
		if i == 0 {
			fmt.Fprintln(c.out, color.New(attr, color.Bold).Sprint(head)+line)
			continue
		}
		fmt.Fprintln(c.out, indent+line)
	}
}

func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", errors.WithStack(ErrNoInput)
		}
		return "", errors.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
