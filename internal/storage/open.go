package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/yndnr/vmadmin-go/internal/storage/kvstore"
	"github.com/yndnr/vmadmin-go/internal/storage/memory"
	"github.com/yndnr/vmadmin-go/internal/storage/sqlstore"
	"github.com/yndnr/vmadmin-go/internal/telemetry/logger"
)

// Supported providers.
const (
	ProviderSQLite = "sqlite"
	ProviderBadger = "badger"
	ProviderMemory = "memory"
)

// Providers lists the supported provider names.
var Providers = []string{ProviderSQLite, ProviderBadger, ProviderMemory}

// Config selects and configures a backend.
type Config struct {
	// Provider is one of Providers.
	Provider string

	// DSN is the SQLite database path (or ":memory:") for sqlite and the
	// data directory for badger. Unused for memory.
	DSN string

	// AutoMigrate creates missing tables right after opening.
	AutoMigrate bool

	// Metrics, when set, receives backend collectors.
	Metrics prometheus.Registerer
}

// ValidProvider reports whether name is a supported provider.
func ValidProvider(name string) bool {
	for _, p := range Providers {
		if p == strings.ToLower(name) {
			return true
		}
	}
	return false
}

// Open builds a DAL for cfg.
func Open(ctx context.Context, cfg Config, log logger.Logger) (*DAL, error) {
	if log == nil {
		log = logger.Discard()
	}

	var (
		dal *DAL
		err error
	)
	switch strings.ToLower(cfg.Provider) {
	case ProviderSQLite:
		dal, err = openSQLite(ctx, cfg, log)
	case ProviderBadger:
		dal, err = openBadger(cfg, log)
	case ProviderMemory:
		dal = NewMemory(memory.New())
	default:
		return nil, fmt.Errorf("unknown store provider %q (want one of %s)",
			cfg.Provider, strings.Join(Providers, ", "))
	}
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if _, err := dal.CreateTables(ctx); err != nil {
			dal.Close()
			return nil, fmt.Errorf("creating tables: %w", err)
		}
	}

	log.Debug("store opened", "provider", dal.Provider())
	return dal, nil
}

// NewMemory wraps an in-memory store in a DAL.
func NewMemory(s *memory.Store) *DAL {
	return &DAL{
		Context:  s.Contexts(),
		Folder:   s.Folders(),
		Mailbox:  s.Mailboxes(),
		Message:  s.Messages(),
		provider: ProviderMemory,
		tables:   s,
		close:    s.Close,
	}
}

func openSQLite(ctx context.Context, cfg Config, log logger.Logger) (*DAL, error) {
	s, err := sqlstore.Open(ctx, cfg.DSN, log)
	if err != nil {
		return nil, err
	}
	return &DAL{
		Context:  s.Contexts(),
		Folder:   s.Folders(),
		Mailbox:  s.Mailboxes(),
		Message:  s.Messages(),
		provider: ProviderSQLite,
		tables:   s,
		close:    s.Close,
	}, nil
}

func openBadger(cfg Config, log logger.Logger) (*DAL, error) {
	s, err := kvstore.Open(kvstore.DefaultConfig(cfg.DSN), log)
	if err != nil {
		return nil, err
	}
	if cfg.Metrics != nil {
		if err := s.RegisterMetrics(cfg.Metrics); err != nil {
			s.Close()
			return nil, err
		}
	}
	return &DAL{
		Context:  s.Contexts(),
		Folder:   s.Folders(),
		Mailbox:  s.Mailboxes(),
		Message:  s.Messages(),
		provider: ProviderBadger,
		tables:   s,
		close:    s.Close,
	}, nil
}
