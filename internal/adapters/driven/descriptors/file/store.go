// Package file implements the DescriptorStore port over the local
// filesystem.
package file

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/plugsite/plugsite-cli/internal/core/domain"
	"github.com/plugsite/plugsite-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.DescriptorStore = (*Store)(nil)

// Store reads plugin descriptor files from a directory.
type Store struct{}

// NewStore creates a new filesystem descriptor store.
func NewStore() *Store {
	return &Store{}
}

// List returns the *.json files in dir, in lexical order.
func (s *Store) List(_ context.Context, dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotDirectory, dir)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("globbing %s: %w", dir, err)
	}

	sort.Strings(matches)
	return matches, nil
}

// Load reads and decodes a single descriptor file. Numbers are decoded
// as json.Number so the schema's integer check is exact. Trailing
// garbage after the JSON value is an error.
func (s *Store) Load(_ context.Context, path string) (any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var data any
	if err := dec.Decode(&data); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after JSON value", domain.ErrInvalidInput)
	}

	return data, nil
}
