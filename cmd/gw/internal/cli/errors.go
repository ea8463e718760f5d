package cli

import "errors"

// Error definitions for the gw command line.
var (
	// Option errors.
	ErrDirectoryNotSpecified = errors.New("working directory is not specified, use -d or set \"dir\" in the configuration")
	ErrSourceNotSpecified    = errors.New("git source is not specified, use -s or set \"source\" in the configuration")

	// Working directory errors.
	ErrWorkingDirectoryCreate = errors.New("failed to create working directory")
)
