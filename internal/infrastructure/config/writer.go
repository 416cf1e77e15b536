package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultHeader is prepended to the file written by WriteDefault.
const defaultHeader = `# Jackut Configuration
#
# storage.driver: sqlite (single database file) or file (one JSON file per collection)
# storage.path and log.file are relative to the .jackut directory unless absolute.
# Environment overrides: JACKUT_STORAGE_DRIVER, JACKUT_STORAGE_PATH, JACKUT_LOG_LEVEL.

`

// WriteDefault creates the .jackut directory and writes Default() to a new
// config file. An existing file is left alone.
func WriteDefault(basePath string) error {
	return writeConfig(basePath, Default(), defaultHeader, os.O_EXCL)
}

// Write writes cfg to the config file, replacing any previous content.
func Write(basePath string, cfg *Config) error {
	return writeConfig(basePath, cfg, "", os.O_TRUNC)
}

func writeConfig(basePath string, cfg *Config, header string, mode int) (err error) {
	if err := os.MkdirAll(ConfigDir(basePath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := ConfigFilePath(basePath)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|mode, 0644)
	if os.IsExist(err) {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err != nil {
		return fmt.Errorf("opening config file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing config file: %w", cerr)
		}
	}()

	if _, err := f.WriteString(header); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Exists checks if a jackut config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
