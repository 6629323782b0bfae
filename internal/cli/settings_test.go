package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/matzehuels/archviz/pkg/errors"
)

// isolateSettings points the settings directory at an empty temp dir and
// clears ARCHVIZ_* overrides.
func isolateSettings(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, k := range []string{"ARCHVIZ_FORMAT", "ARCHVIZ_ENGINE", "ARCHVIZ_DOT_PATH", "ARCHVIZ_VERBOSE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	isolateSettings(t)

	s, err := loadSettings(viper.New(), "")
	if err != nil {
		t.Fatalf("loadSettings() error: %v", err)
	}
	if s.Format != "png" || s.Engine != "dot" || s.DotPath != "" || s.Verbose {
		t.Errorf("loadSettings() = %+v, want defaults", s)
	}
	if s.File != "" {
		t.Errorf("File = %q, want empty when no settings file exists", s.File)
	}
}

func TestLoadSettingsDefaultFile(t *testing.T) {
	dir := isolateSettings(t)
	path := filepath.Join(dir, appName, "config.yaml")
	writeFile(t, path, "format: svg\nengine: builtin\n")

	s, err := loadSettings(viper.New(), "")
	if err != nil {
		t.Fatalf("loadSettings() error: %v", err)
	}
	if s.Format != "svg" || s.Engine != "builtin" {
		t.Errorf("loadSettings() = %+v, want svg/builtin", s)
	}
	if s.File != path {
		t.Errorf("File = %q, want %q", s.File, path)
	}
}

func TestLoadSettingsExplicitFile(t *testing.T) {
	isolateSettings(t)
	path := filepath.Join(t.TempDir(), "archviz.yaml")
	writeFile(t, path, "dot_path: /opt/graphviz/bin/dot\nverbose: true\n")

	s, err := loadSettings(viper.New(), path)
	if err != nil {
		t.Fatalf("loadSettings() error: %v", err)
	}
	if s.DotPath != "/opt/graphviz/bin/dot" {
		t.Errorf("DotPath = %q", s.DotPath)
	}
	if !s.Verbose {
		t.Error("Verbose should be true")
	}
}

func TestLoadSettingsEnv(t *testing.T) {
	dir := isolateSettings(t)
	writeFile(t, filepath.Join(dir, appName, "config.yaml"), "format: svg\n")
	t.Setenv("ARCHVIZ_FORMAT", "pdf")
	t.Setenv("ARCHVIZ_DOT_PATH", "/usr/local/bin/dot")

	s, err := loadSettings(viper.New(), "")
	if err != nil {
		t.Fatalf("loadSettings() error: %v", err)
	}
	if s.Format != "pdf" {
		t.Errorf("Format = %q, environment should win over the file", s.Format)
	}
	if s.DotPath != "/usr/local/bin/dot" {
		t.Errorf("DotPath = %q", s.DotPath)
	}
}

func TestLoadSettingsErrors(t *testing.T) {
	isolateSettings(t)

	tests := []struct {
		name  string
		setup func(t *testing.T) string
	}{
		{
			name:  "missing explicit file",
			setup: func(t *testing.T) string { return filepath.Join(t.TempDir(), "none.yaml") },
		},
		{
			name: "malformed yaml",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "bad.yaml")
				writeFile(t, path, "format: [svg\n")
				return path
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadSettings(viper.New(), tt.setup(t))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("loadSettings() error = %v, want %s", err, errors.ErrCodeInvalidConfig)
			}
		})
	}
}
