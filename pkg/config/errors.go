package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse       = errors.New("failed to parse config file")
	ErrUnsupportedConfigType = errors.New("unsupported config file extension")

	// Configuration validation errors.
	ErrInvalidConfig = errors.New("invalid config")

	// Configuration initialization errors.
	ErrConfigInit = errors.New("failed to initialize configuration file")
)
