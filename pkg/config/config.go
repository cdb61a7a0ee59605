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

package config

import (
	"strings"

	"github.com/walteh/aow3name/pkg/codec"
	"github.com/walteh/aow3name/pkg/request"
	"gitlab.com/tozd/go/errors"
)

const (
	// DefaultPath is where the CLI looks for a config file when none is given.
	DefaultPath = ".aow3name.yaml"

	DefaultExtension       = ".apd"
	DefaultBackupSuffix    = ".backup"
	DefaultPendingSuffix   = ".replaced"
	DefaultFirstNameWidth  = 10
	DefaultSecondNameWidth = 19
)

// 📦 Config holds the settings that shape a replacement run
type Config struct {
	Extension       string `json:"extension,omitempty" yaml:"extension,omitempty" hcl:"extension,optional"`
	BackupSuffix    string `json:"backup_suffix,omitempty" yaml:"backup_suffix,omitempty" hcl:"backup_suffix,optional"`
	PendingSuffix   string `json:"pending_suffix,omitempty" yaml:"pending_suffix,omitempty" hcl:"pending_suffix,optional"`
	ByteOrder       string `json:"byte_order,omitempty" yaml:"byte_order,omitempty" hcl:"byte_order,optional"`
	FirstNameWidth  int    `json:"first_name_width,omitempty" yaml:"first_name_width,omitempty" hcl:"first_name_width,optional"`
	SecondNameWidth int    `json:"second_name_width,omitempty" yaml:"second_name_width,omitempty" hcl:"second_name_width,optional"`

	location string
}

// 🏭 Default returns the built-in settings
func Default() *Config {
	return &Config{
		Extension:       DefaultExtension,
		BackupSuffix:    DefaultBackupSuffix,
		PendingSuffix:   DefaultPendingSuffix,
		ByteOrder:       string(codec.LittleEndian),
		FirstNameWidth:  DefaultFirstNameWidth,
		SecondNameWidth: DefaultSecondNameWidth,
	}
}

// Location returns the file the config was read from, or "" for defaults.
func (c *Config) Location() string {
	return c.location
}

// ✅ Validate fills unset values with defaults and rejects the rest
func (c *Config) Validate() error {
	def := Default()

	if c.Extension == "" {
		c.Extension = def.Extension
	}
	if !strings.HasPrefix(c.Extension, ".") {
		c.Extension = "." + c.Extension
	}
	if c.BackupSuffix == "" {
		c.BackupSuffix = def.BackupSuffix
	}
	if c.PendingSuffix == "" {
		c.PendingSuffix = def.PendingSuffix
	}
	if c.ByteOrder == "" {
		c.ByteOrder = def.ByteOrder
	}
	if c.FirstNameWidth == 0 {
		c.FirstNameWidth = def.FirstNameWidth
	}
	if c.SecondNameWidth == 0 {
		c.SecondNameWidth = def.SecondNameWidth
	}

	if c.FirstNameWidth < request.MinLength {
		return errors.Errorf("first_name_width must be at least %d, got %d", request.MinLength, c.FirstNameWidth)
	}
	if c.SecondNameWidth < request.MinLength {
		return errors.Errorf("second_name_width must be at least %d, got %d", request.MinLength, c.SecondNameWidth)
	}
	if _, err := codec.New(codec.ByteOrder(c.ByteOrder)); err != nil {
		return errors.Errorf("byte_order: %w", err)
	}
	if c.BackupSuffix == c.PendingSuffix {
		return errors.Errorf("backup_suffix and pending_suffix must differ, both are %q", c.BackupSuffix)
	}
	if c.BackupSuffix == c.Extension || c.PendingSuffix == c.Extension {
		return errors.Errorf("suffixes must differ from the profile extension %q", c.Extension)
	}

	return nil
}

// Limits returns the name limits the config describes.
func (c *Config) Limits() request.Limits {
	return request.Limits{
		FirstName:  c.FirstNameWidth,
		SecondName: c.SecondNameWidth,
	}
}

// Codec returns the encoder for the configured byte order.
func (c *Config) Codec() (*codec.Codec, error) {
	return codec.New(codec.ByteOrder(c.ByteOrder))
}
