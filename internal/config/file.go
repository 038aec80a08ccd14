package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"task-manager/internal/logging"
)

// ConfigFileName is the TOML file read from the data directory
const ConfigFileName = "config.toml"

// fileConfig is the on-disk shape. Durations and permissions are strings so
// the file stays readable ("5s", "0755").
type fileConfig struct {
	Storage     fileStorage     `toml:"storage"`
	Validation  fileValidation  `toml:"validation"`
	Display     fileDisplay     `toml:"display"`
	Application fileApplication `toml:"application"`
	Commands    fileCommands    `toml:"commands"`
	Keys        fileKeys        `toml:"keys"`
}

type fileStorage struct {
	Filename       string `toml:"filename"`
	UsersKey       string `toml:"users_key"`
	SessionKey     string `toml:"session_key"`
	QueryTimeout   string `toml:"query_timeout"`
	DirPermissions string `toml:"dir_permissions"`
}

type fileValidation struct {
	PasswordMinLength int `toml:"password_min_length"`
	TitleMaxLength    int `toml:"title_max_length"`
}

type fileDisplay struct {
	DateFormat string `toml:"date_format"`
	Dark       bool   `toml:"dark"`
	Plain      bool   `toml:"plain"`
}

type fileApplication struct {
	Timeout string `toml:"timeout"`
	Verbose bool   `toml:"verbose"`
}

type fileCommands struct {
	DefaultSort   string `toml:"default_sort"`
	DefaultStatus string `toml:"default_status"`
}

type fileKeys struct {
	Quit          string `toml:"quit"`
	Add           string `toml:"add"`
	Toggle        string `toml:"toggle"`
	Edit          string `toml:"edit"`
	Delete        string `toml:"delete"`
	Search        string `toml:"search"`
	CycleSort     string `toml:"cycle_sort"`
	CycleStatus   string `toml:"cycle_status"`
	CyclePriority string `toml:"cycle_priority"`
	Dark          string `toml:"dark"`
	Logout        string `toml:"logout"`
}

func toFileConfig(c *Config) fileConfig {
	return fileConfig{
		Storage: fileStorage{
			Filename:       c.Storage.Filename,
			UsersKey:       c.Storage.UsersKey,
			SessionKey:     c.Storage.SessionKey,
			QueryTimeout:   c.Storage.QueryTimeout.String(),
			DirPermissions: fmt.Sprintf("%04o", c.Storage.DirPermissions),
		},
		Validation: fileValidation{
			PasswordMinLength: c.Validation.PasswordMinLength,
			TitleMaxLength:    c.Validation.TitleMaxLength,
		},
		Display: fileDisplay{
			DateFormat: c.Display.DateFormat,
			Dark:       c.Display.Dark,
			Plain:      c.Display.Plain,
		},
		Application: fileApplication{
			Timeout: c.Application.Timeout.String(),
			Verbose: c.Application.Verbose,
		},
		Commands: fileCommands{
			DefaultSort:   c.Commands.DefaultSort,
			DefaultStatus: c.Commands.DefaultStatus,
		},
		Keys: fileKeys(c.Keys),
	}
}

func (f fileConfig) applyTo(c *Config) {
	c.Storage.Filename = f.Storage.Filename
	c.Storage.UsersKey = f.Storage.UsersKey
	c.Storage.SessionKey = f.Storage.SessionKey
	c.Storage.QueryTimeout = ParseDurationWithFallback(f.Storage.QueryTimeout, c.Storage.QueryTimeout)
	c.Storage.DirPermissions = ParseUint32WithFallback(f.Storage.DirPermissions, 8, c.Storage.DirPermissions)

	c.Validation.PasswordMinLength = f.Validation.PasswordMinLength
	c.Validation.TitleMaxLength = f.Validation.TitleMaxLength

	c.Display.DateFormat = f.Display.DateFormat
	c.Display.Dark = f.Display.Dark
	c.Display.Plain = f.Display.Plain

	c.Application.Timeout = ParseDurationWithFallback(f.Application.Timeout, c.Application.Timeout)
	c.Application.Verbose = f.Application.Verbose

	c.Commands.DefaultSort = f.Commands.DefaultSort
	c.Commands.DefaultStatus = f.Commands.DefaultStatus

	c.Keys = KeysConfig(f.Keys)
}

// LoadFromFile merges the TOML file at path into c. Keys missing from the
// file keep their current values. A missing file is created from c.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if stderrors.Is(err, os.ErrNotExist) {
		logging.Debugf("config file %s not found, writing defaults\n", path)
		return c.WriteFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	fc := toFileConfig(c)
	if err := toml.Unmarshal(data, &fc); err != nil {
		return &ConfigError{Field: "file", Message: fmt.Sprintf("cannot parse %s: %v", path, err)}
	}
	fc.applyTo(c)
	return nil
}

// WriteFile serializes c as TOML, creating the data directory if needed
func (c *Config) WriteFile(path string) error {
	data, err := toml.Marshal(toFileConfig(c))
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), os.FileMode(c.Storage.DirPermissions)); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
