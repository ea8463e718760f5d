package project

import "errors"

// ErrInvalidProjectName is returned when a project name cannot designate a working directory entry.
var ErrInvalidProjectName = errors.New("invalid project name")
