package fs

import "errors"

// Error definitions for fs package.
var (
	// ErrFileLock is returned when a lock file cannot be acquired.
	ErrFileLock = errors.New("lock")

	// ErrHomeDirectory is returned when the home directory cannot be determined.
	ErrHomeDirectory = errors.New("failed to determine home directory")
)
