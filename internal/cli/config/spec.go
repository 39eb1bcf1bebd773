package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yndnr/vmadmin-go/internal/cli/output"
	"github.com/yndnr/vmadmin-go/internal/cli/repl"
	"github.com/yndnr/vmadmin-go/internal/storage"
	"github.com/yndnr/vmadmin-go/internal/telemetry/logger"
)

// Config is the vmadmin configuration.
type Config struct {
	Store   StoreConfig   `koanf:"store" yaml:"store"`
	Log     LogConfig     `koanf:"log" yaml:"log"`
	Output  OutputConfig  `koanf:"output" yaml:"output"`
	Shell   ShellConfig   `koanf:"shell" yaml:"shell"`
	Metrics MetricsConfig `koanf:"metrics" yaml:"metrics"`
}

// StoreConfig selects the storage backend.
type StoreConfig struct {
	Provider string `koanf:"provider" yaml:"provider"` // sqlite, badger, memory
	DSN      string `koanf:"dsn" yaml:"dsn"`           // sqlite file or badger directory
}

// LogConfig configures the audit log.
type LogConfig struct {
	Level  string `koanf:"level" yaml:"level"`
	Format string `koanf:"format" yaml:"format"` // text, json
	File   string `koanf:"file" yaml:"file"`     // empty means stderr
}

// OutputConfig configures user-visible output.
type OutputConfig struct {
	Format string `koanf:"format" yaml:"format"` // table, json, yaml
	Color  bool   `koanf:"color" yaml:"color"`
}

// ShellConfig configures the interactive shell.
type ShellConfig struct {
	Prompt        string `koanf:"prompt" yaml:"prompt"`
	HistoryFile   string `koanf:"history_file" yaml:"history_file"`
	HistorySize   int    `koanf:"history_size" yaml:"history_size"`
	EmptyLine     string `koanf:"empty_line" yaml:"empty_line"` // ignore, exit
	CaseSensitive bool   `koanf:"case_sensitive" yaml:"case_sensitive"`
}

// MetricsConfig configures the Prometheus textfile written at exit.
type MetricsConfig struct {
	Textfile string `koanf:"textfile" yaml:"textfile"`
}

// Dir returns ~/.vmadmin.
func Dir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".vmadmin")
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Provider: storage.ProviderSQLite,
			DSN:      filepath.Join(Dir(), "vmadmin.db"),
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Output: OutputConfig{
			Format: string(output.FormatTable),
			Color:  true,
		},
		Shell: ShellConfig{
			Prompt:      repl.DefaultPrompt,
			HistoryFile: filepath.Join(Dir(), "history"),
			HistorySize: repl.DefaultHistorySize,
			EmptyLine:   string(repl.EmptyLineIgnore),
		},
	}
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if !storage.ValidProvider(c.Store.Provider) {
		errs = append(errs, fmt.Errorf("store.provider: unknown provider %q", c.Store.Provider))
	}
	if c.Store.DSN == "" && !strings.EqualFold(c.Store.Provider, storage.ProviderMemory) {
		errs = append(errs, errors.New("store.dsn: required"))
	}
	if !logger.ValidLevel(c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}
	if f := strings.ToLower(c.Log.Format); f != "text" && f != "json" {
		errs = append(errs, fmt.Errorf("log.format: unknown format %q (want text or json)", c.Log.Format))
	}
	if _, err := output.ParseFormat(c.Output.Format); err != nil {
		errs = append(errs, fmt.Errorf("output.format: %w", err))
	}
	if _, err := repl.ParseEmptyLinePolicy(c.Shell.EmptyLine); err != nil {
		errs = append(errs, fmt.Errorf("shell.empty_line: %w", err))
	}
	if c.Shell.HistorySize < 0 {
		errs = append(errs, fmt.Errorf("shell.history_size: must not be negative, got %d", c.Shell.HistorySize))
	}
	return errors.Join(errs...)
}
