// Package config provides configuration management functionality for the gw application.
package config

import (
	"fmt"
	"strings"
)

// Config represents the user configuration merged into the command line defaults.
type Config struct {
	// Dir is the working directory where projects are cloned.
	Dir string `yaml:"dir" json:"dir" toml:"dir"`
	// Editor is the editor used to open projects and the configuration file.
	Editor string `yaml:"editor" json:"editor" toml:"editor"`
	// Source lists the git sources tried in order when cloning.
	Source []string `yaml:"source" json:"source" toml:"source"`
	// LogFile is an optional rotated log file.
	LogFile string `yaml:"log_file" json:"log_file" toml:"log_file"`
	// Teardown tunes the safety checks of "done".
	Teardown TeardownConfig `yaml:"teardown" json:"teardown" toml:"teardown"`
}

// TeardownConfig tunes the checks run before a project directory is removed.
type TeardownConfig struct {
	// ReportAll runs every check and reports all blocking reasons at once.
	ReportAll bool `yaml:"report_all" json:"report_all" toml:"report_all"`
	// TagCheckFailureBlocks makes a failed unpushed-tags query block the removal. Defaults to true.
	TagCheckFailureBlocks *bool `yaml:"tag_check_failure_blocks" json:"tag_check_failure_blocks" toml:"tag_check_failure_blocks"`
}

// BlockOnTagCheckFailure reports whether a failed unpushed-tags query blocks the removal.
func (t TeardownConfig) BlockOnTagCheckFailure() bool {
	if t.TagCheckFailureBlocks == nil {
		return true
	}
	return *t.TagCheckFailureBlocks
}

// Validate validates the configuration values.
func (c Config) Validate() error {
	for i, source := range c.Source {
		if strings.TrimSpace(source) == "" {
			return fmt.Errorf("%w: \"source\" entry %d is empty", ErrInvalidConfig, i)
		}
	}
	return nil
}
