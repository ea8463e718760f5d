package fs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands a leading ~ to the user's home directory.
func (f *realFS) ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := f.GetHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHomeDirectory, err)
	}

	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}

// IsDirectoryReadable checks if the entries of a directory can be listed.
func (f *realFS) IsDirectoryReadable(path string) (bool, error) {
	dir, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer func() { _ = dir.Close() }()

	if _, err := dir.Readdirnames(1); err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	return true, nil
}

// IsDirectoryWritable checks if a directory is writable by creating and removing a probe file.
func (f *realFS) IsDirectoryWritable(path string) (bool, error) {
	file, err := os.CreateTemp(path, ".gw_write_test*")
	if err != nil {
		return false, err
	}
	name := file.Name()
	_ = file.Close()

	if err := os.Remove(name); err != nil {
		return false, err
	}
	return true, nil
}
