package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// WriteFileAtomic writes data to a file atomically using a temporary file and rename.
func (f *realFS) WriteFileAtomic(filename string, data []byte, perm os.FileMode) (err error) {
	tmpFile, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".tmp")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err = tmpFile.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpPath, perm); err != nil {
		return err
	}

	return os.Rename(tmpPath, filename)
}

// FileLock acquires an exclusive lock on filename + ".lock" and returns an unlock function.
// The lock is not blocking: a lock held by another process is reported as ErrFileLock.
func (f *realFS) FileLock(filename string) (func(), error) {
	lockPath := filename + ".lock"
	if err := os.MkdirAll(filepath.Dir(lockPath), 0755); err != nil {
		return nil, err
	}

	fl := flock.New(lockPath)
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileLock, err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s is held by another process", ErrFileLock, lockPath)
	}

	return func() {
		_ = fl.Unlock()
		_ = os.Remove(lockPath)
	}, nil
}

// CreateFileIfNotExists creates a file with initial content if it doesn't exist.
// Parent directories are created as needed and the check-then-write runs under FileLock.
func (f *realFS) CreateFileIfNotExists(filename string, initialContent []byte, perm os.FileMode) error {
	if err := f.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}

	unlock, err := f.FileLock(filename)
	if err != nil {
		return err
	}
	defer unlock()

	exists, err := f.Exists(filename)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return f.WriteFileAtomic(filename, initialContent, perm)
}
