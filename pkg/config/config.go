package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mdslide/mdslide/internal/core/domain"
	"github.com/mdslide/mdslide/pkg/logging"
	"github.com/mdslide/mdslide/pkg/workspace"
)

const (
	DefaultFontSize   = 14
	DefaultFontFamily = "JetBrains Mono"
)

// AppConfig is the editor settings record, always saved and loaded whole
type AppConfig struct {
	WorkspacePath        string `json:"workspace_path" yaml:"workspace_path"`
	AutoSaveEnabled      bool   `json:"auto_save_enabled" yaml:"auto_save_enabled"`
	FontSize             int    `json:"font_size" yaml:"font_size"`
	FontFamily           string `json:"font_family" yaml:"font_family"`
	ConfirmDelete        bool   `json:"confirm_delete" yaml:"confirm_delete"`
	NotificationsEnabled bool   `json:"notifications_enabled" yaml:"notifications_enabled"`
}

// Keys lists the JSON field names in file order. Every one is required on load.
var Keys = []string{
	"workspace_path",
	"auto_save_enabled",
	"font_size",
	"font_family",
	"confirm_delete",
	"notifications_enabled",
}

// DefaultConfig returns the first-run record with the workspace under home
func DefaultConfig(home string) *AppConfig {
	return &AppConfig{
		WorkspacePath:        filepath.Join(home, workspace.DefaultWorkspaceDir),
		AutoSaveEnabled:      false,
		FontSize:             DefaultFontSize,
		FontFamily:           DefaultFontFamily,
		ConfirmDelete:        true,
		NotificationsEnabled: true,
	}
}

// Load reads the config file at path.
// A missing file yields DefaultConfig(home); an unreadable or malformed one is an error.
func Load(path string, home string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Debug("Config", "no config at %s, using defaults", path)
			return DefaultConfig(home), nil
		}
		return nil, domain.Config("read config", path, err)
	}

	cfg, err := parse(data)
	if err != nil {
		return nil, domain.Config("parse config", path, err)
	}

	logging.Debug("Config", "loaded config from %s", path)
	return cfg, nil
}

// parse decodes data, requiring every key and ignoring unknown ones.
// The result must pass Validate.
func parse(data []byte) (*AppConfig, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	// null leaves the zero value behind, so it counts as missing
	var missing []string
	for _, key := range Keys {
		value, ok := raw[key]
		if !ok || bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing field(s): %s", strings.Join(missing, ", "))
	}

	cfg := &AppConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the invariants a saved record must hold
func (c *AppConfig) Validate() error {
	if strings.TrimSpace(c.WorkspacePath) == "" {
		return fmt.Errorf("workspace_path cannot be empty")
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("font_size must be positive, got %d", c.FontSize)
	}
	if strings.TrimSpace(c.FontFamily) == "" {
		return fmt.Errorf("font_family cannot be empty")
	}
	return nil
}

// Save replaces the file at path with the pretty-printed record.
// The bytes go to a temp file in the same directory first and are renamed
// into place, so readers never observe a partial write.
func (c *AppConfig) Save(path string) error {
	if err := c.Validate(); err != nil {
		return domain.Config("serialize config", path, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return domain.Config("serialize config", path, err)
	}
	data = append(data, '\n')

	if err := writeFileReplace(path, data); err != nil {
		return domain.Config("write config", path, err)
	}

	logging.Debug("Config", "saved config to %s", path)
	return nil
}

func writeFileReplace(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// Set assigns the field named by its JSON key from a string value
func (c *AppConfig) Set(key, value string) error {
	switch key {
	case "workspace_path":
		c.WorkspacePath = value
	case "font_family":
		c.FontFamily = value
	case "font_size":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("font_size must be an integer: %w", err)
		}
		c.FontSize = n
	case "auto_save_enabled", "confirm_delete", "notifications_enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false: %w", key, err)
		}
		switch key {
		case "auto_save_enabled":
			c.AutoSaveEnabled = b
		case "confirm_delete":
			c.ConfirmDelete = b
		default:
			c.NotificationsEnabled = b
		}
	default:
		return fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(Keys, ", "))
	}
	return nil
}

// Get returns the field named by its JSON key rendered as a string
func (c *AppConfig) Get(key string) (string, error) {
	switch key {
	case "workspace_path":
		return c.WorkspacePath, nil
	case "auto_save_enabled":
		return strconv.FormatBool(c.AutoSaveEnabled), nil
	case "font_size":
		return strconv.Itoa(c.FontSize), nil
	case "font_family":
		return c.FontFamily, nil
	case "confirm_delete":
		return strconv.FormatBool(c.ConfirmDelete), nil
	case "notifications_enabled":
		return strconv.FormatBool(c.NotificationsEnabled), nil
	}
	return "", fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(Keys, ", "))
}

// YAML renders the record for display
func (c *AppConfig) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
