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

package config_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/walteh/aow3name/pkg/config"
)

func ExampleLoad() {
	ctx := context.Background()

	dir, err := os.MkdirTemp("", "aow3name-config")
	if err != nil {
		fmt.Printf("Error creating dir: %v\n", err)
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("byte_order: big\nfirst_name_width: 8\n"), 0644); err != nil {
		fmt.Printf("Error writing config: %v\n", err)
		return
	}

	cfg, err := config.Load(ctx, path)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return
	}

	fmt.Printf("Byte order: %s\n", cfg.ByteOrder)
	fmt.Printf("Widths: %d/%d\n", cfg.FirstNameWidth, cfg.SecondNameWidth)
	fmt.Printf("Backup: hero%s%s\n", cfg.Extension, cfg.BackupSuffix)

	// Output:
	// Byte order: big
	// Widths: 8/19
	// Backup: hero.apd.backup
}
