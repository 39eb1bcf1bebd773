package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v3"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/yndnr/vmadmin-go/internal/core/domain"
	"github.com/yndnr/vmadmin-go/internal/telemetry/logger"
)

// Config contains Badger tuning parameters.
type Config struct {
	// Dir is the storage directory. Ignored when InMemory is set.
	Dir string

	// InMemory keeps all data in memory. Used by tests.
	InMemory bool

	// SyncWrites fsyncs after each write.
	// Default: true (the tool writes rarely and exits often)
	SyncWrites bool

	// CacheSize is the block cache size in bytes.
	// Default: 16MB
	CacheSize int64

	// ValueLogFileSize is the max value log file size in bytes.
	// Default: 64MB
	ValueLogFileSize int64

	// GCThreshold is the discard ratio passed to value log GC on Close.
	// Default: 0.5
	GCThreshold float64
}

// DefaultConfig returns the default configuration for dir.
func DefaultConfig(dir string) Config {
	return Config{
		Dir:              dir,
		SyncWrites:       true,
		CacheSize:        16 << 20,
		ValueLogFileSize: 64 << 20,
		GCThreshold:      0.5,
	}
}

// ID sequences lease this many numbers at a time.
const seqBandwidth = 16

// Store is a Badger-backed DAL.
type Store struct {
	db  *badger.DB
	cfg Config
	log logger.Logger

	contexts  *table[domain.Context]
	folders   *table[domain.Folder]
	mailboxes *table[domain.Mailbox]
	messages  *table[domain.Message]
}

// Open opens the Badger database described by cfg.
func Open(cfg Config, log logger.Logger) (*Store, error) {
	if cfg.Dir == "" && !cfg.InMemory {
		return nil, errors.New("badger: dir is required")
	}
	if log == nil {
		log = logger.Discard()
	}

	opts := badger.DefaultOptions(cfg.Dir)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.Logger = &badgerLogger{log: log}
	opts.SyncWrites = cfg.SyncWrites
	if cfg.CacheSize > 0 {
		opts.BlockCacheSize = cfg.CacheSize
	}
	if cfg.ValueLogFileSize > 0 {
		opts.ValueLogFileSize = cfg.ValueLogFileSize
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badger: open db: %w", err)
	}

	s := &Store{db: db, cfg: cfg, log: log}
	if err := s.openTables(); err != nil {
		db.Close()
		return nil, err
	}

	log.Debug("badger store opened", "dir", cfg.Dir, "in_memory", cfg.InMemory)
	return s, nil
}

func (s *Store) openTables() error {
	var err error
	if s.contexts, err = newTable[domain.Context](s.db, "context"); err != nil {
		return err
	}
	if s.folders, err = newTable[domain.Folder](s.db, "folder"); err != nil {
		return err
	}
	if s.mailboxes, err = newTable[domain.Mailbox](s.db, "mailbox"); err != nil {
		return err
	}
	s.messages, err = newTable[domain.Message](s.db, "message")
	return err
}

// CreateTables is a no-op; Badger keys need no schema.
func (s *Store) CreateTables(context.Context) ([]string, error) {
	return nil, nil
}

// GC runs value log garbage collection until nothing is left to rewrite.
func (s *Store) GC() error {
	if s.cfg.InMemory {
		return nil
	}
	for {
		err := s.db.RunValueLogGC(s.cfg.GCThreshold)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrRejected) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("badger: gc: %w", err)
		}
	}
}

// Close releases the ID sequences, runs GC and closes the database.
func (s *Store) Close() error {
	var errs []error
	for _, t := range []interface{ release() error }{s.contexts, s.folders, s.mailboxes, s.messages} {
		errs = append(errs, t.release())
	}
	if err := s.GC(); err != nil {
		s.log.Warn("badger gc failed", "error", err)
	}
	if err := s.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("badger: close db: %w", err))
	}
	return errors.Join(errs...)
}

// RegisterMetrics exports the on-disk size of the store.
func (s *Store) RegisterMetrics(reg prometheus.Registerer) error {
	lsm := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "vmadmin",
		Subsystem: "badger",
		Name:      "lsm_size_bytes",
		Help:      "Badger LSM tree size in bytes",
	}, func() float64 {
		lsm, _ := s.db.Size()
		return float64(lsm)
	})
	vlog := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "vmadmin",
		Subsystem: "badger",
		Name:      "value_log_size_bytes",
		Help:      "Badger value log size in bytes",
	}, func() float64 {
		_, vlog := s.db.Size()
		return float64(vlog)
	})

	for _, c := range []prometheus.Collector{lsm, vlog} {
		if err := reg.Register(c); err != nil {
			return fmt.Errorf("badger: register metrics: %w", err)
		}
	}
	return nil
}

// Contexts returns the context repository.
func (s *Store) Contexts() *ContextRepo { return &ContextRepo{t: s.contexts} }

// Folders returns the folder repository.
func (s *Store) Folders() *FolderRepo { return &FolderRepo{t: s.folders} }

// Mailboxes returns the mailbox repository.
func (s *Store) Mailboxes() *MailboxRepo { return &MailboxRepo{t: s.mailboxes} }

// Messages returns the message repository.
func (s *Store) Messages() *MessageRepo { return &MessageRepo{t: s.messages} }

// badgerLogger adapts Logger to Badger's Logger interface. Badger is chatty
// at info level, so its info lines are logged at debug.
type badgerLogger struct {
	log logger.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.log.Debug(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug(fmt.Sprintf(format, args...))
}
