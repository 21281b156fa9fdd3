// Package metaio persists experiment metadata records with atomic writes.
// This file provides the JSON read/write helpers using the temp-file, fsync,
// rename pattern so a crash or concurrent reader never observes a partially
// written document. See docs/ARCHITECTURE.md § Metadata Store.
package metaio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/expbox/pkg/types"
)

// Write serializes meta to path atomically. The document is written to a
// temporary file in the destination directory, synced, and renamed over the
// destination. On any failure the previous content of path is intact.
func Write(meta *types.Meta, path string) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding metadata: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".meta-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing metadata: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// Read parses the metadata record at path. Returns an error wrapping
// ErrCorruptMetadata when the file is missing, unreadable, or fails
// required-field validation.
func Read(path string) (*types.Meta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", types.ErrCorruptMetadata, path, err)
	}

	var meta types.Meta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", types.ErrCorruptMetadata, path, err)
	}
	if meta.Extra == nil {
		meta.Extra = map[string]any{}
	}
	if err := meta.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &meta, nil
}

// Update applies mutate to the record at path and writes the result back
// atomically. Read-modify-write without a cross-process lock; concurrent
// writers are last-write-wins under the single-writer convention.
func Update(path string, mutate func(*types.Meta)) (*types.Meta, error) {
	meta, err := Read(path)
	if err != nil {
		return nil, err
	}
	mutate(meta)
	if err := Write(meta, path); err != nil {
		return nil, err
	}
	return meta, nil
}
