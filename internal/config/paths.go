package config

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/stack-select/internal/util"
)

// BaseDirEnv overrides the default base directory.
const BaseDirEnv = "STACK_SELECT_HOME"

// Paths holds the standard path locations for stack-select
type Paths struct {
	BaseDir string // Base directory for settings ($BASE_DIR)
}

// NewPaths creates a new Paths instance
// baseDir: base directory (empty string uses default)
func NewPaths(baseDir string) *Paths {
	if baseDir == "" {
		baseDir = DefaultBaseDir()
	}
	return &Paths{
		BaseDir: baseDir,
	}
}

// DefaultBaseDir returns the default base directory:
// ${STACK_SELECT_HOME:-$HOME/stack-select}
func DefaultBaseDir() string {
	if dir := strings.TrimSpace(os.Getenv(BaseDirEnv)); dir != "" {
		return dir
	}

	home := os.Getenv("HOME")
	if home == "" {
		// Fallback to user.Current if HOME not set
		if currentUser, err := user.Current(); err == nil {
			home = currentUser.HomeDir
		}
	}

	return filepath.Join(home, "stack-select")
}

// SettingsDir returns the settings directory: $BASE_DIR/settings
func (p *Paths) SettingsDir() string {
	return filepath.Join(p.BaseDir, "settings")
}

// SettingsFile returns the settings file path: $BASE_DIR/settings/setting.json
func (p *Paths) SettingsFile() string {
	return filepath.Join(p.SettingsDir(), "setting.json")
}

// CatalogsDir returns the directory for user catalogs: $BASE_DIR/catalogs
// Relative catalog paths in settings resolve against it.
func (p *Paths) CatalogsDir() string {
	return filepath.Join(p.BaseDir, "catalogs")
}

// ResolveCatalog returns an absolute catalog path. Absolute paths and paths
// that exist relative to the working directory are returned unchanged.
func (p *Paths) ResolveCatalog(path string) string {
	path = strings.TrimSpace(path)
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if util.FileExists(path) {
		return path
	}
	return filepath.Join(p.CatalogsDir(), path)
}
