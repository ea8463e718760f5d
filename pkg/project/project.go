// Package project identifies the projects living in the working directory.
package project

import (
	"fmt"
	"path/filepath"
	"strings"
)

// nameCutset is trimmed from both ends of a project name.
const nameCutset = "/ \t\n\r"

// Ref identifies a project directory inside the working directory.
type Ref struct {
	// Name is the normalized project name, never containing a path separator.
	Name string
	// Path is the project directory: the working directory joined with Name.
	Path string
}

// NormalizeName trims surrounding slashes and whitespace from a project name.
func NormalizeName(name string) (string, error) {
	normalized := strings.Trim(name, nameCutset)

	switch {
	case normalized == "", normalized == ".", normalized == "..":
		return "", fmt.Errorf("%w: %q", ErrInvalidProjectName, name)
	case strings.ContainsAny(normalized, `/\`):
		return "", fmt.Errorf("%w: %q contains a path separator", ErrInvalidProjectName, name)
	}

	return normalized, nil
}

// NewRef builds the reference of the project name inside directory.
func NewRef(directory, name string) (Ref, error) {
	normalized, err := NormalizeName(name)
	if err != nil {
		return Ref{}, err
	}
	return Ref{Name: normalized, Path: filepath.Join(directory, normalized)}, nil
}

// CloneURL builds the URL of the project on a source: the source without
// trailing slashes, then "/<name>.git".
func (r Ref) CloneURL(source string) string {
	return strings.TrimRight(source, "/") + "/" + r.Name + ".git"
}
