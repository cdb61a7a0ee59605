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

package transaction

import (
	"context"
	"os"

	"gitlab.com/tozd/go/errors"
)

// 💾 FileManager is the file system surface a commit needs
type FileManager interface {
	WriteFile(ctx context.Context, path string, content []byte) error
	FileExists(ctx context.Context, path string) (bool, error)
	DeleteFile(ctx context.Context, path string) error
	RenameFile(ctx context.Context, from, to string) error
}

// 🔧 OSFileManager implements FileManager on the local file system
type OSFileManager struct{}

var _ FileManager = (*OSFileManager)(nil)

// 🏭 NewOSFileManager creates a file manager backed by package os
func NewOSFileManager() *OSFileManager {
	return &OSFileManager{}
}

func (m *OSFileManager) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := os.WriteFile(path, content, 0644); err != nil {
		return errors.Errorf("writing file: %w", err)
	}
	return nil
}

func (m *OSFileManager) FileExists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Errorf("checking file existence: %w", err)
}

func (m *OSFileManager) DeleteFile(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil {
		return errors.Errorf("deleting file: %w", err)
	}
	return nil
}

func (m *OSFileManager) RenameFile(ctx context.Context, from, to string) error {
	if err := os.Rename(from, to); err != nil {
		return errors.Errorf("renaming file: %w", err)
	}
	return nil
}
