package spec

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"
)

// ErrEmptySpec is returned for documents without any content.
var ErrEmptySpec = errors.New("empty video spec")

// Load reads a VideoSpec from a YAML file and applies defaults.
// The result is not validated; call Validate before building a timeline.
func Load(path string) (*VideoSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spec %s: %w", path, err)
	}
	v, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse spec %s: %w", path, err)
	}
	return v, nil
}

// Parse decodes a YAML document into a VideoSpec with defaults applied.
func Parse(data []byte) (*VideoSpec, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptySpec
	}

	v := Default()
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Marshal encodes a VideoSpec as YAML.
func Marshal(v *VideoSpec) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes a VideoSpec to path, creating parent directories.
func Save(v *VideoSpec, path string) error {
	data, err := Marshal(v)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return renameio.WriteFile(path, data, 0644)
}
