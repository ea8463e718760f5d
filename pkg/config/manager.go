package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/lerenn/workon/pkg/fs"
	"github.com/lerenn/workon/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// Default configuration location, relative to the user configuration directory.
const (
	DefaultConfigDirName  = "git_workon"
	DefaultConfigFileName = "config.yaml"
)

// Manager interface provides configuration management for a single config file path.
type Manager interface {
	// GetConfig loads the configuration. A missing or unreadable file is not an error:
	// it is logged as a warning and an empty configuration is returned.
	GetConfig() (Config, error)
	// InitConfig creates the configuration file from the embedded template if it does not exist.
	InitConfig() error
	// GetConfigPath returns the configuration file path.
	GetConfigPath() string
}

// NewManagerParams contains parameters for creating a new Manager instance.
type NewManagerParams struct {
	ConfigPath string
	FS         fs.FS
	Logger     logger.Logger
}

type realManager struct {
	configPath string
	fs         fs.FS
	logger     logger.Logger
}

// NewManager creates a new Manager instance with the specified config path.
func NewManager(params NewManagerParams) Manager {
	m := &realManager{
		configPath: params.ConfigPath,
		fs:         params.FS,
		logger:     params.Logger,
	}
	if m.fs == nil {
		m.fs = fs.NewFS()
	}
	if m.logger == nil {
		m.logger = logger.NewNoopLogger()
	}
	return m
}

// DefaultConfigPath returns <user config dir>/git_workon/config.yaml.
func DefaultConfigPath(fsys fs.FS) string {
	configDir, err := fsys.GetConfigDir()
	if err != nil {
		homeDir, herr := fsys.GetHomeDir()
		if herr != nil {
			homeDir = "."
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, DefaultConfigDirName, DefaultConfigFileName)
}

// GetConfig loads configuration from the embedded config path.
func (c *realManager) GetConfig() (Config, error) {
	format, err := formatFor(c.configPath)
	if err != nil {
		return Config{}, err
	}

	data, err := c.fs.ReadFile(c.configPath)
	if err != nil {
		c.logger.Warnf("Failed to load user configuration file: %v. Skipping", err)
		return Config{}, nil
	}

	var cfg Config
	if err := format.decode(data, &cfg); err != nil {
		if errors.Is(err, ErrInvalidConfig) {
			return Config{}, err
		}
		c.logger.Warnf("Failed to load user config file: %v. Skipping", err)
		return Config{}, nil
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	c.logger.Debugf("Loaded %s configuration from %q", format.name, c.configPath)
	return cfg, nil
}

// InitConfig creates the config file from the template matching its extension.
func (c *realManager) InitConfig() error {
	format, err := formatFor(c.configPath)
	if err != nil {
		return err
	}

	exists, err := c.fs.Exists(c.configPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfigInit, err)
	}
	if exists {
		return nil
	}

	c.logger.Debugf("Copying config template to %q", c.configPath)
	if err := c.fs.CreateFileIfNotExists(c.configPath, format.template, 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigInit, err)
	}
	return nil
}

func (c *realManager) GetConfigPath() string {
	return c.configPath
}
