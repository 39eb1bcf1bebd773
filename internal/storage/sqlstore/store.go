package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/yndnr/vmadmin-go/internal/core/domain"
	"github.com/yndnr/vmadmin-go/internal/telemetry/logger"
)

// Store is a SQLite-backed DAL.
type Store struct {
	db  *sqlx.DB
	log logger.Logger
}

// Open opens (or creates) the SQLite database at dsn. ":memory:" gives a
// private in-memory database. Tables are not created; call CreateTables.
func Open(ctx context.Context, dsn string, log logger.Logger) (*Store, error) {
	if dsn == "" {
		return nil, errors.New("sqlstore: dsn is required")
	}
	if log == nil {
		log = logger.Discard()
	}

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// One connection keeps an in-memory database alive and serializes the
	// writes of a single-operator tool.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	log.Debug("sqlite store opened", "dsn", dsn)
	return &Store{db: db, log: log}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateTables applies every pending migration and returns the names of the
// tables it created. An up-to-date database yields no names.
func (s *Store) CreateTables(ctx context.Context) ([]string, error) {
	return s.migrate(ctx, migrations)
}

func (s *Store) migrate(ctx context.Context, steps []migration) ([]string, error) {
	current, err := s.schemaVersion(ctx)
	if err != nil {
		return nil, err
	}

	var created []string
	for _, m := range steps {
		if m.version <= current {
			continue
		}
		if err := s.applyMigration(ctx, m); err != nil {
			return created, err
		}
		s.log.Info("applied migration", "version", m.version)
		created = append(created, m.tables...)
	}
	return created, nil
}

// applyMigration runs one migration in a transaction, so a failing step
// leaves neither tables nor a schema_version row behind.
func (s *Store) applyMigration(ctx context.Context, m migration) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning migration v%d: %w", m.version, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, m.sql); err != nil {
		return fmt.Errorf("applying migration v%d: %w", m.version, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing migration v%d: %w", m.version, err)
	}
	return nil
}

func (s *Store) schemaVersion(ctx context.Context) (int, error) {
	var tableCount int
	err := s.db.GetContext(ctx, &tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'")
	if err != nil {
		return 0, fmt.Errorf("checking schema_version table: %w", err)
	}
	if tableCount == 0 {
		return 0, nil
	}

	var version int
	if err := s.db.GetContext(ctx, &version, "SELECT COALESCE(MAX(version), 0) FROM schema_version"); err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return version, nil
}

// Contexts returns the context repository.
func (s *Store) Contexts() *ContextRepo { return &ContextRepo{db: s.db} }

// Folders returns the folder repository.
func (s *Store) Folders() *FolderRepo { return &FolderRepo{db: s.db} }

// Mailboxes returns the mailbox repository.
func (s *Store) Mailboxes() *MailboxRepo { return &MailboxRepo{db: s.db} }

// Messages returns the message repository.
func (s *Store) Messages() *MessageRepo { return &MessageRepo{db: s.db} }

// getOne runs a single-row query into dest and reports whether a row existed.
func getOne(ctx context.Context, db *sqlx.DB, dest any, query string, args ...any) (bool, error) {
	err := db.GetContext(ctx, dest, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// removeByID deletes row id from table. Table names are constants of this
// package, never user input.
func removeByID(ctx context.Context, db *sqlx.DB, table string, id int64) error {
	if id == 0 {
		return domain.ErrRecordNotSaved
	}
	result, err := db.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting from %s: %w", table, err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrRecordMissing
	}
	return nil
}

// insert runs a named INSERT and returns the new row id.
func insert(ctx context.Context, db *sqlx.DB, query string, arg any) (int64, error) {
	result, err := db.NamedExecContext(ctx, query, arg)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}
