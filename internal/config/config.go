// Package config loads gitstart settings. A global gitstart.yaml under
// the user config directory customises defaults; a per-project
// gitstart.yaml records the linked repository so later sessions can
// show it. Both files are optional.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	appDirName = "gitstart"
	fileName   = "gitstart"
)

// Settings is the global configuration.
type Settings struct {
	// DefaultBranch is the branch name used when pushing. Defaults to main.
	DefaultBranch string `mapstructure:"default_branch"`

	// Remote is the name used when linking a remote. Defaults to origin.
	Remote string `mapstructure:"remote"`

	// Templates adds ignore templates beyond the built-in set.
	// A built-in key overrides the built-in patterns. Pattern lists may
	// be given as a YAML sequence or a comma-separated string.
	Templates map[string][]string `mapstructure:"templates"`
}

// Project records the setup of a single workspace.
type Project struct {
	RepositoryURL string `mapstructure:"repository_url" yaml:"repository_url"`
	DefaultBranch string `mapstructure:"default_branch" yaml:"default_branch"`
}

// GlobalConfigDir returns the directory holding the global config file.
func GlobalConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// LoadSettings loads the global configuration. A missing file yields
// the defaults; a malformed file is an error.
func LoadSettings() (*Settings, error) {
	configDir, err := GlobalConfigDir()
	if err != nil {
		return nil, err
	}
	return loadSettingsFrom(configDir)
}

func loadSettingsFrom(configDir string) (*Settings, error) {
	v := viper.New()

	v.SetConfigName(fileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	v.SetDefault("default_branch", "main")
	v.SetDefault("remote", "origin")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings, viper.DecodeHook(
		mapstructure.StringToSliceHookFunc(","),
	)); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &settings, nil
}

// LoadProject loads the project record from dir. A missing file is not
// an error and returns nil.
func LoadProject(dir string) (*Project, error) {
	v := viper.New()

	v.SetConfigName(fileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, nil
		}
		return nil, fmt.Errorf("reading project config: %w", err)
	}

	var project Project
	if err := v.Unmarshal(&project); err != nil {
		return nil, fmt.Errorf("parsing project config: %w", err)
	}

	return &project, nil
}

// SaveProject writes the project record to gitstart.yaml in dir.
func SaveProject(dir string, project *Project) error {
	content, err := yaml.Marshal(project)
	if err != nil {
		return fmt.Errorf("encoding project config: %w", err)
	}

	path := filepath.Join(dir, fileName+".yaml")
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("writing project config: %w", err)
	}
	return nil
}
