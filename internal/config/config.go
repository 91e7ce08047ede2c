package config

import (
	"fmt"
	"os"
	"path/filepath"

	"dotserve/internal/logging"
	"dotserve/pkg/fileops"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const APP_NAME = "dotserve" // application name used for config directory

// Config holds the repository location for dotserve. Both paths are resolved
// once at startup and passed down by reference; nothing mutates them after
// Load returns.
type Config struct {
	// GitDir is the git metadata directory of the dotfiles bare repository.
	GitDir string `yaml:"git_dir"`
	// WorkTree is the directory whose files the repository tracks.
	WorkTree string `yaml:"work_tree"`
}

// ConfigPath returns the standard config file path for the current platform
func ConfigPath() string {
	configPath := filepath.Join(xdg.ConfigHome, APP_NAME, "config.yaml")
	logging.Debug("Determined config path", "path", configPath)
	return configPath
}

// DefaultConfig returns the conventional dotfiles layout: a bare repository
// at ~/.cfg with the home directory as its work tree.
func DefaultConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine home directory: %w", err)
	}

	return &Config{
		GitDir:   filepath.Join(home, ".cfg"),
		WorkTree: home,
	}, nil
}

// Load resolves the repository location. When no config file exists the
// conventional defaults apply; a config file may override either path.
func Load() (*Config, error) {
	cfg, err := DefaultConfig()
	if err != nil {
		return nil, err
	}

	configPath := ConfigPath()
	if _, err := os.Stat(configPath); err != nil {
		logging.Debug("No config file found, using conventional defaults",
			"git_dir", cfg.GitDir, "work_tree", cfg.WorkTree)
		return cfg, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads config from a specific path, filling unset fields with
// the conventional defaults.
func LoadFrom(path string) (*Config, error) {
	cfg, err := DefaultConfig()
	if err != nil {
		return nil, err
	}

	logging.Debug("Reading config file", "path", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	var fileCfg Config
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if fileCfg.GitDir != "" {
		cfg.GitDir = fileops.ExpandPath(fileCfg.GitDir)
	}
	if fileCfg.WorkTree != "" {
		cfg.WorkTree = fileops.ExpandPath(fileCfg.WorkTree)
	}

	return cfg, nil
}
