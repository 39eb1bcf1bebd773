package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/yndnr/vmadmin-go/internal/core/domain"
)

// ContextRepo implements the context repository.
type ContextRepo struct{ db *sqlx.DB }

// All returns every context ordered by ID.
func (r *ContextRepo) All(ctx context.Context) ([]*domain.Context, error) {
	out := []*domain.Context{}
	if err := r.db.SelectContext(ctx, &out, "SELECT id, domain FROM contexts ORDER BY id"); err != nil {
		return nil, fmt.Errorf("querying contexts: %w", err)
	}
	return out, nil
}

// Get returns the context with the domain, or nil.
func (r *ContextRepo) Get(ctx context.Context, name string) (*domain.Context, error) {
	var c domain.Context
	ok, err := getOne(ctx, r.db, &c, "SELECT id, domain FROM contexts WHERE domain = ?", name)
	if err != nil {
		return nil, fmt.Errorf("getting context %s: %w", name, err)
	}
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// Create builds an unsaved context.
func (r *ContextRepo) Create(name string) *domain.Context {
	return &domain.Context{Domain: name}
}

// Save inserts or updates c.
func (r *ContextRepo) Save(ctx context.Context, c *domain.Context) error {
	if c.ID != 0 {
		if _, err := r.db.NamedExecContext(ctx, "UPDATE contexts SET domain = :domain WHERE id = :id", c); err != nil {
			return fmt.Errorf("updating context %d: %w", c.ID, err)
		}
		return nil
	}
	id, err := insert(ctx, r.db, "INSERT INTO contexts (domain) VALUES (:domain)", c)
	if err != nil {
		return fmt.Errorf("creating context %s: %w", c.Domain, err)
	}
	c.ID = id
	return nil
}

// Remove deletes c.
func (r *ContextRepo) Remove(ctx context.Context, c *domain.Context) error {
	return removeByID(ctx, r.db, "contexts", c.ID)
}

// FolderRepo implements the folder repository.
type FolderRepo struct{ db *sqlx.DB }

const folderColumns = "id, name, dtmf, recording"

// All returns every folder ordered by ID.
func (r *FolderRepo) All(ctx context.Context) ([]*domain.Folder, error) {
	out := []*domain.Folder{}
	if err := r.db.SelectContext(ctx, &out, "SELECT "+folderColumns+" FROM folders ORDER BY id"); err != nil {
		return nil, fmt.Errorf("querying folders: %w", err)
	}
	return out, nil
}

// Get returns the folder with the name, or nil.
func (r *FolderRepo) Get(ctx context.Context, name string) (*domain.Folder, error) {
	var f domain.Folder
	ok, err := getOne(ctx, r.db, &f, "SELECT "+folderColumns+" FROM folders WHERE name = ?", name)
	if err != nil {
		return nil, fmt.Errorf("getting folder %s: %w", name, err)
	}
	if !ok {
		return nil, nil
	}
	return &f, nil
}

// Create builds an unsaved folder.
func (r *FolderRepo) Create(name, dtmf, recording string) *domain.Folder {
	return &domain.Folder{Name: name, DTMF: dtmf, Recording: recording}
}

// FindByNameOrDTMF returns the folders matching either field.
func (r *FolderRepo) FindByNameOrDTMF(ctx context.Context, name, dtmf string) ([]*domain.Folder, error) {
	out := []*domain.Folder{}
	err := r.db.SelectContext(ctx, &out,
		"SELECT "+folderColumns+" FROM folders WHERE name = ? OR dtmf = ? ORDER BY id", name, dtmf)
	if err != nil {
		return nil, fmt.Errorf("finding folders: %w", err)
	}
	return out, nil
}

// Save inserts or updates f.
func (r *FolderRepo) Save(ctx context.Context, f *domain.Folder) error {
	if f.ID != 0 {
		_, err := r.db.NamedExecContext(ctx, `
			UPDATE folders SET name = :name, dtmf = :dtmf, recording = :recording
			WHERE id = :id`, f)
		if err != nil {
			return fmt.Errorf("updating folder %d: %w", f.ID, err)
		}
		return nil
	}
	id, err := insert(ctx, r.db,
		"INSERT INTO folders (name, dtmf, recording) VALUES (:name, :dtmf, :recording)", f)
	if err != nil {
		return fmt.Errorf("creating folder %s: %w", f.Name, err)
	}
	f.ID = id
	return nil
}

// Remove deletes f.
func (r *FolderRepo) Remove(ctx context.Context, f *domain.Folder) error {
	return removeByID(ctx, r.db, "folders", f.ID)
}

// MailboxRepo implements the mailbox repository.
type MailboxRepo struct{ db *sqlx.DB }

const mailboxColumns = `id, mailbox_number, context_id, mailbox_name, password, name, email,
	read, unread, greeting_busy, greeting_away, greeting_name`

// Get returns mailbox number in context c, or nil.
func (r *MailboxRepo) Get(ctx context.Context, number string, c *domain.Context) (*domain.Mailbox, error) {
	var m domain.Mailbox
	ok, err := getOne(ctx, r.db, &m,
		"SELECT "+mailboxColumns+" FROM mailboxes WHERE mailbox_number = ? AND context_id = ?",
		number, c.ID)
	if err != nil {
		return nil, fmt.Errorf("getting mailbox %s@%s: %w", number, c.Domain, err)
	}
	if !ok {
		return nil, nil
	}
	return &m, nil
}

// Create builds an unsaved mailbox in context c.
func (r *MailboxRepo) Create(number string, c *domain.Context) *domain.Mailbox {
	return &domain.Mailbox{Number: number, ContextID: c.ID}
}

// FindByContext returns the mailboxes of context c ordered by ID.
func (r *MailboxRepo) FindByContext(ctx context.Context, c *domain.Context) ([]*domain.Mailbox, error) {
	out := []*domain.Mailbox{}
	err := r.db.SelectContext(ctx, &out,
		"SELECT "+mailboxColumns+" FROM mailboxes WHERE context_id = ? ORDER BY id", c.ID)
	if err != nil {
		return nil, fmt.Errorf("querying mailboxes of %s: %w", c.Domain, err)
	}
	return out, nil
}

// CountByContext counts the mailboxes of context c.
func (r *MailboxRepo) CountByContext(ctx context.Context, c *domain.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM mailboxes WHERE context_id = ?", c.ID); err != nil {
		return 0, fmt.Errorf("counting mailboxes of %s: %w", c.Domain, err)
	}
	return n, nil
}

// Save inserts or updates m.
func (r *MailboxRepo) Save(ctx context.Context, m *domain.Mailbox) error {
	if m.ID != 0 {
		_, err := r.db.NamedExecContext(ctx, `
			UPDATE mailboxes SET
				mailbox_number = :mailbox_number, context_id = :context_id,
				mailbox_name = :mailbox_name, password = :password,
				name = :name, email = :email, read = :read, unread = :unread,
				greeting_busy = :greeting_busy, greeting_away = :greeting_away,
				greeting_name = :greeting_name
			WHERE id = :id`, m)
		if err != nil {
			return fmt.Errorf("updating mailbox %d: %w", m.ID, err)
		}
		return nil
	}
	id, err := insert(ctx, r.db, `
		INSERT INTO mailboxes (
			mailbox_number, context_id, mailbox_name, password, name, email,
			read, unread, greeting_busy, greeting_away, greeting_name
		) VALUES (
			:mailbox_number, :context_id, :mailbox_name, :password, :name, :email,
			:read, :unread, :greeting_busy, :greeting_away, :greeting_name
		)`, m)
	if err != nil {
		return fmt.Errorf("creating mailbox %s: %w", m.Number, err)
	}
	m.ID = id
	return nil
}

// Remove deletes m.
func (r *MailboxRepo) Remove(ctx context.Context, m *domain.Mailbox) error {
	return removeByID(ctx, r.db, "mailboxes", m.ID)
}

// MessageRepo implements the message repository.
type MessageRepo struct{ db *sqlx.DB }

// Save inserts or updates m.
func (r *MessageRepo) Save(ctx context.Context, m *domain.Message) error {
	if m.ID != 0 {
		_, err := r.db.NamedExecContext(ctx, `
			UPDATE messages SET
				mailbox_id = :mailbox_id, folder_id = :folder_id, date = :date,
				read = :read, original_mailbox = :original_mailbox,
				caller_id = :caller_id, duration = :duration, recording = :recording
			WHERE id = :id`, m)
		if err != nil {
			return fmt.Errorf("updating message %d: %w", m.ID, err)
		}
		return nil
	}
	id, err := insert(ctx, r.db, `
		INSERT INTO messages (
			mailbox_id, folder_id, date, read, original_mailbox,
			caller_id, duration, recording
		) VALUES (
			:mailbox_id, :folder_id, :date, :read, :original_mailbox,
			:caller_id, :duration, :recording
		)`, m)
	if err != nil {
		return fmt.Errorf("creating message: %w", err)
	}
	m.ID = id
	return nil
}

// CountByMailbox counts the messages of mailbox m.
func (r *MessageRepo) CountByMailbox(ctx context.Context, m *domain.Mailbox) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM messages WHERE mailbox_id = ?", m.ID); err != nil {
		return 0, fmt.Errorf("counting messages of mailbox %d: %w", m.ID, err)
	}
	return n, nil
}

// CountByFolder counts the messages filed in folder f.
func (r *MessageRepo) CountByFolder(ctx context.Context, f *domain.Folder) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM messages WHERE folder_id = ?", f.ID); err != nil {
		return 0, fmt.Errorf("counting messages of folder %s: %w", f.Name, err)
	}
	return n, nil
}

// RemoveByMailbox deletes the messages of mailbox m.
func (r *MessageRepo) RemoveByMailbox(ctx context.Context, m *domain.Mailbox) (int, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM messages WHERE mailbox_id = ?", m.ID)
	if err != nil {
		return 0, fmt.Errorf("deleting messages of mailbox %d: %w", m.ID, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted messages: %w", err)
	}
	return int(n), nil
}
