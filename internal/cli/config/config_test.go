package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Store.Provider != "sqlite" {
		t.Errorf("Store.Provider = %q, want sqlite", cfg.Store.Provider)
	}
	if !strings.HasSuffix(cfg.Store.DSN, filepath.Join(".vmadmin", "vmadmin.db")) {
		t.Errorf("Store.DSN = %q", cfg.Store.DSN)
	}
	if cfg.Shell.Prompt != "=>" || cfg.Shell.EmptyLine != "ignore" || cfg.Shell.CaseSensitive {
		t.Errorf("Shell = %+v", cfg.Shell)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestDefaultPath(t *testing.T) {
	path := DefaultPath()

	if !filepath.IsAbs(path) {
		t.Errorf("DefaultPath() = %q, want absolute path", path)
	}
	if !strings.HasSuffix(path, filepath.Join(".vmadmin", "config.yaml")) {
		t.Errorf("DefaultPath() = %q", path)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"unknown provider", func(c *Config) { c.Store.Provider = "mysql" }, "store.provider"},
		{"missing dsn", func(c *Config) { c.Store.DSN = "" }, "store.dsn"},
		{"unknown log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"unknown output format", func(c *Config) { c.Output.Format = "csv" }, "output.format"},
		{"unknown empty line policy", func(c *Config) { c.Shell.EmptyLine = "shrug" }, "shell.empty_line"},
		{"negative history size", func(c *Config) { c.Shell.HistorySize = -1 }, "shell.history_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want error about %s", err, tt.want)
			}
		})
	}
}

func TestValidate_MemoryWithoutDSN(t *testing.T) {
	cfg := Default()
	cfg.Store.Provider = "MEMORY"
	cfg.Store.DSN = ""

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoad_NoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Store.Provider != Default().Store.Provider {
		t.Errorf("Store.Provider = %q, want default", cfg.Store.Provider)
	}
	if Exists(path) {
		t.Error("Exists() = true for a missing file")
	}
}

func TestLoad_Layers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
store:
  provider: badger
  dsn: /var/lib/vmadmin
shell:
  prompt: "vm>"
  history_size: 50
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("VMADMIN_SHELL_EMPTY_LINE", "exit")
	t.Setenv("VMADMIN_OUTPUT_COLOR", "false")

	cfg, err := Load(path, map[string]any{"store.dsn": "/tmp/flag"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Store.Provider != "badger" {
		t.Errorf("Store.Provider = %q, want badger from file", cfg.Store.Provider)
	}
	if cfg.Store.DSN != "/tmp/flag" {
		t.Errorf("Store.DSN = %q, want override", cfg.Store.DSN)
	}
	if cfg.Shell.Prompt != "vm>" || cfg.Shell.HistorySize != 50 {
		t.Errorf("Shell = %+v", cfg.Shell)
	}
	if cfg.Shell.EmptyLine != "exit" {
		t.Errorf("Shell.EmptyLine = %q, want exit from env", cfg.Shell.EmptyLine)
	}
	if cfg.Output.Color {
		t.Error("Output.Color should be false from env")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want default", cfg.Log.Level)
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("store:\n  provider: mysql\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path, nil); err == nil {
		t.Error("Load() should reject an unknown provider")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Store.Provider = "memory"
	cfg.Metrics.Textfile = "/tmp/vmadmin.prom"

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file mode = %o, want 600", perm)
	}
	if !Exists(path) {
		t.Error("Exists() = false after Save")
	}

	loaded, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Store.Provider != "memory" || loaded.Metrics.Textfile != "/tmp/vmadmin.prom" {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("store:\n  provider: mysql\n"), 0600); err != nil {
		t.Fatal(err)
	}

	settings, err := Settings(path, map[string]any{"shell.prompt": "vm>"})
	if err != nil {
		t.Fatalf("Settings() error = %v", err)
	}

	got := make(map[string]string)
	for i, s := range settings {
		if i > 0 && settings[i-1].Key >= s.Key {
			t.Errorf("settings not sorted: %q before %q", settings[i-1].Key, s.Key)
		}
		got[s.Key] = s.Value
	}
	want := map[string]string{
		"store.provider":     "mysql",
		"shell.prompt":       "vm>",
		"shell.history_size": "1000",
		"output.color":       "true",
		"log.level":          "warn",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %q, want %q", k, got[k], v)
		}
	}
}
