package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/danieljhkim/stack-select/internal/selection"
	"github.com/danieljhkim/stack-select/internal/stacks"
	"github.com/danieljhkim/stack-select/internal/util"
)

// Settings holds persisted user-configurable settings.
type Settings struct {
	BaseDir      string `json:"base-dir"`
	Stack        string `json:"stack"`
	Catalog      string `json:"catalog,omitempty"`
	StackVersion string `json:"stack-version,omitempty"`
}

// SettingKeys lists the keys accepted by Set, in display order.
var SettingKeys = []string{"stack", "catalog", "stack-version"}

// SettingsManager handles settings persistence.
type SettingsManager struct {
	paths *Paths
}

// NewSettingsManager creates a settings manager.
func NewSettingsManager(paths *Paths) *SettingsManager {
	return &SettingsManager{paths: paths}
}

// Path returns the settings file path.
func (sm *SettingsManager) Path() string {
	return sm.paths.SettingsFile()
}

// Load reads settings from disk.
func (sm *SettingsManager) Load() (*Settings, error) {
	data, err := os.ReadFile(sm.Path())
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := sm.sanitize(&settings); err != nil {
		return nil, err
	}
	// base-dir is static and derived from runtime paths.
	settings.BaseDir = sm.paths.BaseDir

	return &settings, nil
}

// Save writes settings to disk.
func (sm *SettingsManager) Save(settings *Settings) error {
	if settings == nil {
		return fmt.Errorf("settings required")
	}
	// base-dir is static and derived from runtime paths.
	settings.BaseDir = sm.paths.BaseDir
	if err := sm.sanitize(settings); err != nil {
		return err
	}

	if err := util.MkdirAll(sm.paths.SettingsDir()); err != nil {
		return err
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	return os.WriteFile(sm.Path(), append(data, '\n'), 0644)
}

// LoadOrDefault reads settings if available, otherwise returns runtime defaults.
func (sm *SettingsManager) LoadOrDefault() (*Settings, error) {
	settings, err := sm.Load()
	if err == nil {
		return settings, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	return &Settings{
		BaseDir: sm.paths.BaseDir,
		Stack:   stacks.DefaultStack,
	}, nil
}

// Set updates a single setting by key after validating the value.
func (s *Settings) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "stack":
		if value == "" {
			value = stacks.DefaultStack
		}
		if !stacks.NewRegistry().Has(value) {
			return fmt.Errorf("unknown stack %q (available: %s)", value, strings.Join(stacks.NewRegistry().List(), ", "))
		}
		s.Stack = value
	case "catalog":
		s.Catalog = value
	case "stack-version":
		if value != "" {
			if _, err := selection.ParseStackVersion(value); err != nil {
				return err
			}
		}
		s.StackVersion = value
	case "base-dir":
		return fmt.Errorf("base-dir is static and cannot be changed via 'stack-select setting set'")
	default:
		return fmt.Errorf("unknown setting key %q (supported: %s)", key, strings.Join(SettingKeys, ", "))
	}
	return nil
}

// Get returns the value of a setting by key.
func (s *Settings) Get(key string) string {
	switch key {
	case "base-dir":
		return s.BaseDir
	case "stack":
		return s.Stack
	case "catalog":
		return s.Catalog
	case "stack-version":
		return s.StackVersion
	default:
		return ""
	}
}

func (sm *SettingsManager) sanitize(settings *Settings) error {
	if settings == nil {
		return fmt.Errorf("settings required")
	}

	settings.Stack = strings.TrimSpace(settings.Stack)
	if settings.Stack == "" {
		settings.Stack = stacks.DefaultStack
	}
	if !stacks.NewRegistry().Has(settings.Stack) {
		return fmt.Errorf("unknown stack %q in settings", settings.Stack)
	}

	settings.Catalog = strings.TrimSpace(settings.Catalog)
	settings.StackVersion = strings.TrimSpace(settings.StackVersion)
	if settings.StackVersion != "" {
		if _, err := selection.ParseStackVersion(settings.StackVersion); err != nil {
			return fmt.Errorf("invalid settings: %w", err)
		}
	}
	return nil
}
