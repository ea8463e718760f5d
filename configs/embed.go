// Package configs provides the embedded configuration templates of the gw application.
package configs

import _ "embed"

// DefaultConfigYAML contains the default YAML configuration file content.
//
//go:embed default.yaml
var DefaultConfigYAML []byte

// DefaultConfigJSON contains the default JSON configuration file content.
//
//go:embed default.json
var DefaultConfigJSON []byte

// DefaultConfigTOML contains the default TOML configuration file content.
//
//go:embed default.toml
var DefaultConfigTOML []byte
