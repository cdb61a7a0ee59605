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
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Load reads and validates the config at path.
// The format is picked from the file extension. A file without a known
// extension is tried as YAML and then as HCL.
func Load(ctx context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	cfg, err := parse(ctx, path, data)
	if err != nil {
		return nil, err
	}

	cfg.location = path
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Str("extension", cfg.Extension).
		Str("byte_order", cfg.ByteOrder).
		Msg("config loaded")

	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields the defaults
// unless the caller asked for that file explicitly.
func LoadOrDefault(ctx context.Context, path string, explicit bool) (*Config, error) {
	cfg, err := Load(ctx, path)
	if err == nil {
		return cfg, nil
	}
	if !explicit && errors.Is(err, os.ErrNotExist) {
		zerolog.Ctx(ctx).Debug().Str("path", path).Msg("no config file, using defaults")
		return Default(), nil
	}
	return nil, err
}

func parse(ctx context.Context, path string, data []byte) (*Config, error) {
	if p := GetParser(filepath.Base(path)); p != nil {
		return p.Parse(ctx, data)
	}

	cfg, yamlErr := (&YAMLParser{}).Parse(ctx, data)
	if yamlErr == nil {
		return cfg, nil
	}
	cfg, hclErr := (&HCLParser{}).Parse(ctx, data)
	if hclErr == nil {
		return cfg, nil
	}

	return nil, errors.Errorf("failed to parse %s as YAML (%v) or HCL: %w", path, yamlErr, hclErr)
}
