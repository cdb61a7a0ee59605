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

// Package preview renders the difference between two profile buffers as a
// line diff of their hex dumps.
package preview

import (
	"encoding/hex"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// 📊 Report summarizes a buffer diff
type Report struct {
	Added   int    // Dump lines only present after the change
	Removed int    // Dump lines only present before the change
	Text    string // Changed dump lines prefixed with "+ " or "- "
}

// Identical reports whether both buffers dumped the same.
func (r *Report) Identical() bool {
	return r.Added == 0 && r.Removed == 0
}

// Diff compares the hex dumps of before and after line by line.
func Diff(before, after []byte) *Report {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(hex.Dump(before), hex.Dump(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	report := &Report{}
	var sb strings.Builder
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			if d.Type == diffmatchpatch.DiffInsert {
				report.Added++
			} else {
				report.Removed++
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteString("\n")
			}
		}
	}
	report.Text = sb.String()
	return report
}
