package cli

import (
	"fmt"

	"github.com/lerenn/workon/pkg/config"
	"github.com/lerenn/workon/pkg/fs"
	"github.com/lerenn/workon/pkg/workon"
)

// ResolveDirectory picks the working directory from the flag, then the configuration.
// The directory is created if missing and must be readable and writable.
func ResolveDirectory(fsys fs.FS, directory string, cfg config.Config) (string, error) {
	if directory == "" {
		directory = cfg.Dir
	}
	if directory == "" {
		return "", ErrDirectoryNotSpecified
	}

	expanded, err := fsys.ExpandPath(directory)
	if err != nil {
		return "", err
	}

	if err := fsys.MkdirAll(expanded, 0755); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWorkingDirectoryCreate, err)
	}

	readable, err := fsys.IsDirectoryReadable(expanded)
	if err != nil || !readable {
		return "", fmt.Errorf("%w: %q is not readable", workon.ErrWorkingDirectoryAccess, expanded)
	}
	writable, err := fsys.IsDirectoryWritable(expanded)
	if err != nil || !writable {
		return "", fmt.Errorf("%w: %q is not writable", workon.ErrWorkingDirectoryAccess, expanded)
	}

	return expanded, nil
}

// ResolveSources appends the configured sources after the ones given on the command line.
func ResolveSources(sources []string, cfg config.Config) ([]string, error) {
	resolved := make([]string, 0, len(sources)+len(cfg.Source))
	resolved = append(resolved, sources...)
	resolved = append(resolved, cfg.Source...)

	if len(resolved) == 0 {
		return nil, ErrSourceNotSpecified
	}
	return resolved, nil
}

// ResolveEditor picks the editor from the flag, then the configuration.
func ResolveEditor(editor string, cfg config.Config) string {
	if editor != "" {
		return editor
	}
	return cfg.Editor
}
