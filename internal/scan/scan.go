// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan lists conversion candidates in an asset directory and
// resolves their output paths.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// List returns the paths of all regular files directly inside dir whose
// extension equals ext (without leading dot, compared case-insensitively).
// Symlinks are followed, so a symlink to a regular file is included.
// Subdirectories and extensionless files are skipped silently. The order
// is directory enumeration order; callers must not rely on it.
func List(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !hasExtension(entry.Name(), ext) {
			continue
		}
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, path)
	}
	return files, nil
}

// hasExtension reports whether name carries the given extension, compared
// without regard to case. ext is given without the leading dot.
func hasExtension(name, ext string) bool {
	got := strings.TrimPrefix(filepath.Ext(name), ".")
	return got != "" && strings.EqualFold(got, ext)
}
