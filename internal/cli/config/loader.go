package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/yndnr/vmadmin-go/internal/infra/confloader"
)

// Exists reports whether a config file is present at path.
func Exists(path string) bool {
	if path == "" {
		path = DefaultPath()
	}
	_, err := os.Stat(path)
	return err == nil
}

// Load builds the configuration from defaults, the YAML file at path (if
// present), VMADMIN_* environment variables and overrides, in increasing
// priority. overrides are keyed by dotted path, e.g. "store.dsn". The
// result is validated.
func Load(path string, overrides map[string]any) (*Config, error) {
	cfg, _, err := load(path, overrides)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Setting is one effective configuration value.
type Setting struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Settings loads the configuration like Load, without validating it, and
// returns every effective key sorted by name.
func Settings(path string, overrides map[string]any) ([]Setting, error) {
	_, l, err := load(path, overrides)
	if err != nil {
		return nil, err
	}
	keys := l.Keys()
	sort.Strings(keys)

	settings := make([]Setting, 0, len(keys))
	for _, key := range keys {
		settings = append(settings, Setting{Key: key, Value: l.GetString(key)})
	}
	return settings, nil
}

func load(path string, overrides map[string]any) (*Config, *confloader.Loader, error) {
	if path == "" {
		path = DefaultPath()
	}

	opts := []confloader.Option{
		confloader.WithDefaults(Default().flatten()),
		confloader.WithOverrides(overrides),
	}
	if _, err := os.Stat(path); err == nil {
		opts = append(opts, confloader.WithConfigFile(path))
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, nil, fmt.Errorf("config: %w", err)
	}

	cfg := &Config{}
	l := confloader.NewLoader(opts...)
	if err := l.Load(cfg); err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}
	return cfg, l, nil
}

// Save writes cfg as YAML, readable by the owner only.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// flatten returns cfg keyed by dotted path.
func (c *Config) flatten() map[string]any {
	return map[string]any{
		"store.provider":       c.Store.Provider,
		"store.dsn":            c.Store.DSN,
		"log.level":            c.Log.Level,
		"log.format":           c.Log.Format,
		"log.file":             c.Log.File,
		"output.format":        c.Output.Format,
		"output.color":         c.Output.Color,
		"shell.prompt":         c.Shell.Prompt,
		"shell.history_file":   c.Shell.HistoryFile,
		"shell.history_size":   c.Shell.HistorySize,
		"shell.empty_line":     c.Shell.EmptyLine,
		"shell.case_sensitive": c.Shell.CaseSensitive,
		"metrics.textfile":     c.Metrics.Textfile,
	}
}
