// Package config handles the optional user config file with catalog
// location and signal-table extensions.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/mchmarny/agentctl/pkg/infer"
)

const (
	configFileName = "config.yaml"
	dirMode        = 0700
	fileMode       = 0600

	defaultCatalogDir = "agents"
)

// Config represents the app config file.
type Config struct {
	// CatalogDir is the default agent descriptor directory.
	CatalogDir string `yaml:"catalog"`

	// Languages and Frameworks add extra tag-to-label mappings on top
	// of the built-in tables.
	Languages  map[string]string `yaml:"languages,omitempty"`
	Frameworks map[string]string `yaml:"frameworks,omitempty"`

	// Categories adds extra tag families per known category.
	Categories map[string][]string `yaml:"categories,omitempty"`
}

func getDefaultConfig() *Config {
	return &Config{
		CatalogDir: defaultCatalogDir,
	}
}

// Apply merges the file's table extensions into the signal tables.
func (c *Config) Apply(tables *infer.Config) error {
	if tables == nil {
		return errors.New("signal tables required")
	}

	for tag, lang := range c.Languages {
		tables.AddTagLanguage(tag, strings.ToLower(lang))
	}
	for tag, fw := range c.Frameworks {
		tables.AddTagFramework(tag, strings.ToLower(fw))
	}
	for category, tags := range c.Categories {
		if err := tables.AddCategoryTags(category, tags...); err != nil {
			return errors.Wrap(err, "invalid category override")
		}
	}
	return nil
}

// Save writes the config file into the given directory.
func Save(dirPath string, c *Config) error {
	if dirPath == "" {
		return errors.New("config directory required")
	}
	if c == nil {
		return errors.New("config required")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	path := filepath.Join(dirPath, configFileName)
	if err := os.WriteFile(path, b, fileMode); err != nil {
		return errors.Wrapf(err, "failed to write config file: %s", configFileName)
	}
	return nil
}

// ReadOrCreate reads app config from directory or creates a new one.
func ReadOrCreate(dirPath string) (*Config, error) {
	if dirPath == "" {
		return nil, errors.New("config directory required")
	}

	if _, err := os.Stat(dirPath); errors.Is(err, os.ErrNotExist) {
		if err := os.Mkdir(dirPath, dirMode); err != nil {
			return nil, errors.Wrapf(err, "failed to create dir: %s", dirPath)
		}
	}

	path := filepath.Join(dirPath, configFileName)

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := Save(dirPath, getDefaultConfig()); err != nil {
			return nil, errors.Wrap(err, "failed to create default config")
		}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading config file: %s", path)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, errors.Wrapf(err, "error unmarshalling config file: %s", path)
	}
	return &c, nil
}

// GetOrCreateHomeDir returns the app home directory for the current
// user, creating it on first use.
func GetOrCreateHomeDir(name string) (string, error) {
	if name == "" {
		return "", errors.New("name cannot be empty")
	}

	if !strings.HasPrefix(name, ".") {
		name = "." + name
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user home dir")
	}

	dir := filepath.Join(home, name)
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		log.Debugf("creating dir: %s", dir)
		if err := os.Mkdir(dir, dirMode); err != nil {
			return "", errors.Wrapf(err, "failed to create dir: %s", dir)
		}
	}
	return dir, nil
}
