package setting

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danieljhkim/stack-select/internal/config"
)

func executeCommand(t *testing.T, paths *config.Paths, cmdArgs ...string) (string, string, error) {
	t.Helper()

	if paths == nil {
		paths = config.NewPaths(t.TempDir())
	}

	cmd := NewSettingCmd(func() *config.Paths { return paths })
	out := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errBuf)
	cmd.SetArgs(cmdArgs)

	err := cmd.Execute()
	return out.String(), errBuf.String(), err
}

func TestSettingList_PrintsAllConfigurableKeys(t *testing.T) {
	out, _, err := executeCommand(t, nil, "list")
	if err != nil {
		t.Fatalf("setting list returned error: %v", err)
	}

	for _, want := range []string{"base-dir=", "stack=HDP-2.0", "catalog=", "stack-version="} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSettingSet_UpdatesValueInSettingsFile(t *testing.T) {
	paths := config.NewPaths(t.TempDir())

	out, _, err := executeCommand(t, paths, "set", "stack", "HDP-1.3")
	if err != nil {
		t.Fatalf("setting set returned error: %v", err)
	}
	if !strings.Contains(out, "Updated stack in") {
		t.Fatalf("unexpected output: %s", out)
	}

	settings, err := config.NewSettingsManager(paths).Load()
	if err != nil {
		t.Fatalf("failed to load settings: %v", err)
	}
	if settings.Stack != "HDP-1.3" {
		t.Fatalf("Stack = %q", settings.Stack)
	}
}

func TestSettingSet_RejectsUnknownKey(t *testing.T) {
	_, _, err := executeCommand(t, nil, "set", "unknown", "value")
	if err == nil || !strings.Contains(err.Error(), "unknown setting key") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSettingSet_BaseDirIsNotEditable(t *testing.T) {
	_, _, err := executeCommand(t, nil, "set", "base-dir", "/elsewhere")
	if err == nil || !strings.Contains(err.Error(), "base-dir is static and cannot be changed") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSettingSet_CatalogMissingWarns(t *testing.T) {
	paths := config.NewPaths(t.TempDir())

	_, errOut, err := executeCommand(t, paths, "set", "catalog", "later.yaml")
	if err != nil {
		t.Fatalf("setting set returned error: %v", err)
	}
	if !strings.Contains(errOut, "does not exist yet") {
		t.Fatalf("expected missing catalog warning, got: %s", errOut)
	}
}

func TestSettingSet_InvalidCatalogRejected(t *testing.T) {
	paths := config.NewPaths(t.TempDir())
	if err := os.MkdirAll(paths.CatalogsDir(), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	bad := filepath.Join(paths.CatalogsDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("name: x\nversion: trunk\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, errOut, err := executeCommand(t, paths, "set", "catalog", bad)
	if err == nil || !strings.Contains(err.Error(), "valid stack catalog") {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(errOut, "WARN:") {
		t.Fatalf("expected warning, got: %s", errOut)
	}
	if _, err := config.NewSettingsManager(paths).Load(); !os.IsNotExist(err) {
		t.Fatalf("settings should not be saved, Load() error = %v", err)
	}
}

func TestSettingSet_CatalogDirectoryRejected(t *testing.T) {
	paths := config.NewPaths(t.TempDir())

	_, _, err := executeCommand(t, paths, "set", "catalog", t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "is a directory") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSettingSet_FlavoredStackVersion(t *testing.T) {
	paths := config.NewPaths(t.TempDir())

	if _, _, err := executeCommand(t, paths, "set", "stack-version", "2.0.6.GlusterFS"); err != nil {
		t.Fatalf("setting set returned error: %v", err)
	}

	settings, err := config.NewSettingsManager(paths).Load()
	if err != nil {
		t.Fatalf("failed to load settings: %v", err)
	}
	if settings.StackVersion != "2.0.6.GlusterFS" {
		t.Fatalf("StackVersion = %q", settings.StackVersion)
	}
}
