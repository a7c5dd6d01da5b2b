// SPDX-License-Identifier: MIT
// Package: edmindex/params
//
// load.go — reading Parameters from YAML or JSON files.

package params

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/edmindex"
)

// maxFileSize bounds parameter files.
const maxFileSize = 1 << 20

// Load reads Parameters from a .yaml, .yml or .json file. Fields absent from
// the file keep their Default values. Load does not validate; call Validate.
//
// Decode errors keep their cause. An error that already carries an
// edmindex class, such as ErrUnknownMethod from a bad method name, keeps
// that class; any other decode failure is classed as ErrFormat.
func Load(path string) (Parameters, error) {
	cleanPath := filepath.Clean(path)
	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" && ext != ".json" {
		return Parameters{}, fmt.Errorf("parameter file must have .yaml, .yml or .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return Parameters{}, fmt.Errorf("failed to stat parameter file: %w", err)
	}
	if info.Size() > maxFileSize {
		return Parameters{}, fmt.Errorf("parameter file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return Parameters{}, fmt.Errorf("failed to read parameter file: %w", err)
	}

	p := Default()
	if ext == ".json" {
		err = json.Unmarshal(data, &p)
	} else {
		err = yaml.Unmarshal(data, &p)
	}
	if err != nil {
		name := filepath.Base(cleanPath)
		if edmindex.KindOf(err) != edmindex.KindUnknown {
			return Parameters{}, fmt.Errorf("parse %s: %w", name, err)
		}
		return Parameters{}, fmt.Errorf("%w: parse %s: %w", edmindex.ErrFormat, name, err)
	}

	return p, nil
}
