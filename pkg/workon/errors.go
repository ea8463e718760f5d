package workon

import "errors"

// Error definitions for workon package.
var (
	// Start errors.
	ErrNoSources        = errors.New("no source configured")
	ErrAllSourcesFailed = errors.New("tried all configured sources")

	// Project errors.
	ErrProjectNotFound = errors.New("project not found")

	// Done errors.
	ErrWorkingDirectoryAccess  = errors.New("can't access working directory")
	ErrSomeProjectsNotFinished = errors.New("some projects were not finished")

	// ErrUnexpected wraps a panic recovered while running an operation.
	ErrUnexpected = errors.New("unexpected error")
)
