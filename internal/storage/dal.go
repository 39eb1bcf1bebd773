package storage

import (
	"context"

	"github.com/yndnr/vmadmin-go/internal/core/domain"
)

// ContextRepository stores contexts. Get returns nil, nil when no context
// has the domain.
type ContextRepository interface {
	All(ctx context.Context) ([]*domain.Context, error)
	Get(ctx context.Context, name string) (*domain.Context, error)
	// Create builds an unsaved context; it does not touch the store.
	Create(name string) *domain.Context
	// Save inserts an unsaved context (assigning its ID) or updates a saved one.
	Save(ctx context.Context, c *domain.Context) error
	Remove(ctx context.Context, c *domain.Context) error
}

// FolderRepository stores folders. Get returns nil, nil when no folder has
// the name.
type FolderRepository interface {
	All(ctx context.Context) ([]*domain.Folder, error)
	Get(ctx context.Context, name string) (*domain.Folder, error)
	Create(name, dtmf, recording string) *domain.Folder
	Save(ctx context.Context, f *domain.Folder) error
	Remove(ctx context.Context, f *domain.Folder) error
	// FindByNameOrDTMF returns every folder whose name or DTMF matches.
	FindByNameOrDTMF(ctx context.Context, name, dtmf string) ([]*domain.Folder, error)
}

// MailboxRepository stores mailboxes. Get returns nil, nil when the context
// has no mailbox with the number.
type MailboxRepository interface {
	Get(ctx context.Context, number string, c *domain.Context) (*domain.Mailbox, error)
	Create(number string, c *domain.Context) *domain.Mailbox
	Save(ctx context.Context, m *domain.Mailbox) error
	Remove(ctx context.Context, m *domain.Mailbox) error
	FindByContext(ctx context.Context, c *domain.Context) ([]*domain.Mailbox, error)
	CountByContext(ctx context.Context, c *domain.Context) (int, error)
}

// MessageRepository stores message metadata.
type MessageRepository interface {
	// Save inserts or updates a message. Messages are recorded by the
	// voicemail application; vmadmin itself only counts and removes them.
	Save(ctx context.Context, m *domain.Message) error
	CountByMailbox(ctx context.Context, m *domain.Mailbox) (int, error)
	CountByFolder(ctx context.Context, f *domain.Folder) (int, error)
	// RemoveByMailbox deletes every message of the mailbox and returns how
	// many were deleted.
	RemoveByMailbox(ctx context.Context, m *domain.Mailbox) (int, error)
}

// TableCreator creates the backing tables of a store. It must be safe to
// run against an initialized store.
type TableCreator interface {
	CreateTables(ctx context.Context) ([]string, error)
}

// DAL is the data-access layer handed to the command handlers.
type DAL struct {
	Context ContextRepository
	Folder  FolderRepository
	Mailbox MailboxRepository
	Message MessageRepository

	provider string
	tables   TableCreator
	close    func() error
}

// Provider returns the name of the backend behind the DAL.
func (d *DAL) Provider() string {
	return d.provider
}

// CreateTables creates the backend's tables and returns their names in
// creation order. Backends without a schema return no names.
func (d *DAL) CreateTables(ctx context.Context) ([]string, error) {
	if d.tables == nil {
		return nil, nil
	}
	return d.tables.CreateTables(ctx)
}

// Close releases the backend.
func (d *DAL) Close() error {
	if d.close == nil {
		return nil
	}
	return d.close()
}
