package kvstore

import (
	"context"
	"fmt"

	"github.com/yndnr/vmadmin-go/internal/core/domain"
)

// ContextRepo implements the context repository.
type ContextRepo struct{ t *table[domain.Context] }

// All returns every context ordered by ID.
func (r *ContextRepo) All(context.Context) ([]*domain.Context, error) {
	return r.t.scan(nil)
}

// Get returns the context with the domain, or nil.
func (r *ContextRepo) Get(_ context.Context, name string) (*domain.Context, error) {
	return r.t.first(func(c *domain.Context) bool { return c.Domain == name })
}

// Create builds an unsaved context.
func (r *ContextRepo) Create(name string) *domain.Context {
	return &domain.Context{Domain: name}
}

// Save inserts or updates c.
func (r *ContextRepo) Save(_ context.Context, c *domain.Context) error {
	if c.ID == 0 {
		id, err := r.t.nextID()
		if err != nil {
			return err
		}
		c.ID = id
	}
	if err := r.t.put(c.ID, c); err != nil {
		return fmt.Errorf("saving context %s: %w", c.Domain, err)
	}
	return nil
}

// Remove deletes c.
func (r *ContextRepo) Remove(_ context.Context, c *domain.Context) error {
	return r.t.remove(c.ID)
}

// FolderRepo implements the folder repository.
type FolderRepo struct{ t *table[domain.Folder] }

// All returns every folder ordered by ID.
func (r *FolderRepo) All(context.Context) ([]*domain.Folder, error) {
	return r.t.scan(nil)
}

// Get returns the folder with the name, or nil.
func (r *FolderRepo) Get(_ context.Context, name string) (*domain.Folder, error) {
	return r.t.first(func(f *domain.Folder) bool { return f.Name == name })
}

// Create builds an unsaved folder.
func (r *FolderRepo) Create(name, dtmf, recording string) *domain.Folder {
	return &domain.Folder{Name: name, DTMF: dtmf, Recording: recording}
}

// FindByNameOrDTMF returns the folders matching either field.
func (r *FolderRepo) FindByNameOrDTMF(_ context.Context, name, dtmf string) ([]*domain.Folder, error) {
	return r.t.scan(func(f *domain.Folder) bool { return f.Name == name || f.DTMF == dtmf })
}

// Save inserts or updates f.
func (r *FolderRepo) Save(_ context.Context, f *domain.Folder) error {
	if f.ID == 0 {
		id, err := r.t.nextID()
		if err != nil {
			return err
		}
		f.ID = id
	}
	if err := r.t.put(f.ID, f); err != nil {
		return fmt.Errorf("saving folder %s: %w", f.Name, err)
	}
	return nil
}

// Remove deletes f.
func (r *FolderRepo) Remove(_ context.Context, f *domain.Folder) error {
	return r.t.remove(f.ID)
}

// MailboxRepo implements the mailbox repository.
type MailboxRepo struct{ t *table[domain.Mailbox] }

// Get returns mailbox number in context c, or nil.
func (r *MailboxRepo) Get(_ context.Context, number string, c *domain.Context) (*domain.Mailbox, error) {
	return r.t.first(func(m *domain.Mailbox) bool { return m.Number == number && m.ContextID == c.ID })
}

// Create builds an unsaved mailbox in context c.
func (r *MailboxRepo) Create(number string, c *domain.Context) *domain.Mailbox {
	return &domain.Mailbox{Number: number, ContextID: c.ID}
}

// FindByContext returns the mailboxes of context c ordered by ID.
func (r *MailboxRepo) FindByContext(_ context.Context, c *domain.Context) ([]*domain.Mailbox, error) {
	return r.t.scan(func(m *domain.Mailbox) bool { return m.ContextID == c.ID })
}

// CountByContext counts the mailboxes of context c.
func (r *MailboxRepo) CountByContext(ctx context.Context, c *domain.Context) (int, error) {
	boxes, err := r.FindByContext(ctx, c)
	return len(boxes), err
}

// Save inserts or updates m.
func (r *MailboxRepo) Save(_ context.Context, m *domain.Mailbox) error {
	if m.ID == 0 {
		id, err := r.t.nextID()
		if err != nil {
			return err
		}
		m.ID = id
	}
	if err := r.t.put(m.ID, m); err != nil {
		return fmt.Errorf("saving mailbox %s: %w", m.Number, err)
	}
	return nil
}

// Remove deletes m.
func (r *MailboxRepo) Remove(_ context.Context, m *domain.Mailbox) error {
	return r.t.remove(m.ID)
}

// MessageRepo implements the message repository.
type MessageRepo struct{ t *table[domain.Message] }

// Save inserts or updates m.
func (r *MessageRepo) Save(_ context.Context, m *domain.Message) error {
	if m.ID == 0 {
		id, err := r.t.nextID()
		if err != nil {
			return err
		}
		m.ID = id
	}
	if err := r.t.put(m.ID, m); err != nil {
		return fmt.Errorf("saving message: %w", err)
	}
	return nil
}

// CountByMailbox counts the messages of mailbox m.
func (r *MessageRepo) CountByMailbox(_ context.Context, m *domain.Mailbox) (int, error) {
	msgs, err := r.t.scan(func(msg *domain.Message) bool { return msg.MailboxID == m.ID })
	return len(msgs), err
}

// CountByFolder counts the messages filed in folder f.
func (r *MessageRepo) CountByFolder(_ context.Context, f *domain.Folder) (int, error) {
	msgs, err := r.t.scan(func(msg *domain.Message) bool { return msg.FolderID == f.ID })
	return len(msgs), err
}

// RemoveByMailbox deletes the messages of mailbox m.
func (r *MessageRepo) RemoveByMailbox(_ context.Context, m *domain.Mailbox) (int, error) {
	return r.t.deleteWhere(
		func(msg *domain.Message) bool { return msg.MailboxID == m.ID },
		func(msg *domain.Message) int64 { return msg.ID },
	)
}
