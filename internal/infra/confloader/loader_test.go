package confloader

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

type testConfig struct {
	Store struct {
		Provider string `koanf:"provider"`
		DSN      string `koanf:"dsn"`
	} `koanf:"store"`
	Shell struct {
		HistoryFile string `koanf:"history_file"`
		HistorySize int    `koanf:"history_size"`
		Color       bool   `koanf:"color"`
	} `koanf:"shell"`
}

const testPrefix = "VMTEST_"

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestNewLoader(t *testing.T) {
	l := NewLoader()
	if l.envPrefix != DefaultEnvPrefix {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, DefaultEnvPrefix)
	}

	l = NewLoader(WithEnvPrefix("TEST_"), WithConfigFile("/path/to/config.yaml"))
	if l.envPrefix != "TEST_" {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, "TEST_")
	}
	if l.filePath != "/path/to/config.yaml" {
		t.Errorf("filePath = %q, want %q", l.filePath, "/path/to/config.yaml")
	}
}

func TestLoader_LoadFile(t *testing.T) {
	path := writeConfig(t, `
store:
  provider: badger
  dsn: /var/lib/vmadmin
`)

	l := NewLoader()
	if err := l.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if got := l.GetString("store.provider"); got != "badger" {
		t.Errorf("store.provider = %q, want %q", got, "badger")
	}
}

func TestLoader_LoadFile_NotFound(t *testing.T) {
	l := NewLoader()
	if err := l.LoadFile("/nonexistent/config.yaml"); err == nil {
		t.Error("LoadFile() should return error for nonexistent file")
	}
}

func TestLoader_LoadFile_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "store: [unclosed")

	l := NewLoader()
	if err := l.LoadFile(path); err == nil {
		t.Error("LoadFile() should return error for invalid YAML")
	}
}

func TestLoader_EnvKey(t *testing.T) {
	l := NewLoader(WithEnvPrefix(testPrefix))

	tests := []struct {
		env  string
		want string
	}{
		{"VMTEST_STORE_PROVIDER", "store.provider"},
		{"VMTEST_SHELL_HISTORY_FILE", "shell.history_file"},
		{"VMTEST_DEBUG", "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			if got := l.envKey(tt.env); got != tt.want {
				t.Errorf("envKey(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestLoader_LoadMap(t *testing.T) {
	l := NewLoader()

	if err := l.LoadMap(map[string]any{"store.dsn": "vm.db", "shell.history_size": 5}); err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}

	var cfg testConfig
	if err := l.Load(&cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Store.DSN != "vm.db" || cfg.Shell.HistorySize != 5 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoader_Load_Priority(t *testing.T) {
	path := writeConfig(t, `
store:
  provider: from-file
  dsn: file.db
shell:
  history_file: /tmp/file-history
`)
	t.Setenv("VMTEST_STORE_PROVIDER", "from-env")
	t.Setenv("VMTEST_SHELL_HISTORY_SIZE", "42")
	t.Setenv("VMTEST_SHELL_COLOR", "true")

	l := NewLoader(
		WithEnvPrefix(testPrefix),
		WithConfigFile(path),
		WithDefaults(map[string]any{
			"store.provider":     "default",
			"store.dsn":          "default.db",
			"shell.history_file": "/tmp/default-history",
			"shell.history_size": 1000,
		}),
		WithOverrides(map[string]any{"store.dsn": "flag.db"}),
	)

	var cfg testConfig
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Store.Provider != "from-env" {
		t.Errorf("Provider = %q, want env to override file", cfg.Store.Provider)
	}
	if cfg.Store.DSN != "flag.db" {
		t.Errorf("DSN = %q, want override to win", cfg.Store.DSN)
	}
	if cfg.Shell.HistoryFile != "/tmp/file-history" {
		t.Errorf("HistoryFile = %q, want file to override default", cfg.Shell.HistoryFile)
	}
	if cfg.Shell.HistorySize != 42 {
		t.Errorf("HistorySize = %d, want 42 from env", cfg.Shell.HistorySize)
	}
	if !cfg.Shell.Color {
		t.Error("Color should be true from env")
	}
}

func TestLoader_Keys(t *testing.T) {
	l := NewLoader()
	l.LoadMap(map[string]any{"store.provider": "memory", "log.level": "debug"})

	keys := l.Keys()
	sort.Strings(keys)
	if len(keys) != 2 || keys[0] != "log.level" || keys[1] != "store.provider" {
		t.Errorf("Keys() = %v", keys)
	}
}

func TestMapProvider_ReadBytes(t *testing.T) {
	if _, err := (mapProvider{}).ReadBytes(); err != ErrReadBytesNotSupported {
		t.Errorf("ReadBytes() error = %v, want ErrReadBytesNotSupported", err)
	}
}
