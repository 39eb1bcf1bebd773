package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/yndnr/vmadmin-go/internal/core/domain"
)

// Store holds the four voicemail tables in memory.
type Store struct {
	mu sync.RWMutex

	contexts  map[int64]domain.Context
	folders   map[int64]domain.Folder
	mailboxes map[int64]domain.Mailbox
	messages  map[int64]domain.Message

	nextContextID int64
	nextFolderID  int64
	nextMailboxID int64
	nextMessageID int64
}

// New creates an empty store.
func New() *Store {
	s := &Store{}
	s.reset()
	return s
}

func (s *Store) reset() {
	s.contexts = make(map[int64]domain.Context)
	s.folders = make(map[int64]domain.Folder)
	s.mailboxes = make(map[int64]domain.Mailbox)
	s.messages = make(map[int64]domain.Message)
	s.nextContextID = 1
	s.nextFolderID = 1
	s.nextMailboxID = 1
	s.nextMessageID = 1
}

// Reset drops every record and restarts ID assignment.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

// Contexts returns the context repository.
func (s *Store) Contexts() *ContextRepo { return &ContextRepo{s: s} }

// Folders returns the folder repository.
func (s *Store) Folders() *FolderRepo { return &FolderRepo{s: s} }

// Mailboxes returns the mailbox repository.
func (s *Store) Mailboxes() *MailboxRepo { return &MailboxRepo{s: s} }

// Messages returns the message repository.
func (s *Store) Messages() *MessageRepo { return &MessageRepo{s: s} }

// CreateTables is a no-op; maps need no schema.
func (s *Store) CreateTables(context.Context) ([]string, error) {
	return nil, nil
}

// Close drops every record, like the end of the process would.
func (s *Store) Close() error {
	s.Reset()
	return nil
}

func sortedIDs[V any](m map[int64]V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ContextRepo implements the context repository.
type ContextRepo struct{ s *Store }

// All returns every context ordered by ID.
func (r *ContextRepo) All(_ context.Context) ([]*domain.Context, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*domain.Context, 0, len(r.s.contexts))
	for _, id := range sortedIDs(r.s.contexts) {
		c := r.s.contexts[id]
		out = append(out, &c)
	}
	return out, nil
}

// Get returns the context with the domain, or nil.
func (r *ContextRepo) Get(_ context.Context, name string) (*domain.Context, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, id := range sortedIDs(r.s.contexts) {
		if c := r.s.contexts[id]; c.Domain == name {
			return &c, nil
		}
	}
	return nil, nil
}

// Create builds an unsaved context.
func (r *ContextRepo) Create(name string) *domain.Context {
	return &domain.Context{Domain: name}
}

// Save inserts or updates c.
func (r *ContextRepo) Save(_ context.Context, c *domain.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if c.ID == 0 {
		c.ID = r.s.nextContextID
		r.s.nextContextID++
	}
	r.s.contexts[c.ID] = *c
	return nil
}

// Remove deletes c.
func (r *ContextRepo) Remove(_ context.Context, c *domain.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if c.ID == 0 {
		return domain.ErrRecordNotSaved
	}
	if _, ok := r.s.contexts[c.ID]; !ok {
		return domain.ErrRecordMissing
	}
	delete(r.s.contexts, c.ID)
	return nil
}

// FolderRepo implements the folder repository.
type FolderRepo struct{ s *Store }

// All returns every folder ordered by ID.
func (r *FolderRepo) All(_ context.Context) ([]*domain.Folder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*domain.Folder, 0, len(r.s.folders))
	for _, id := range sortedIDs(r.s.folders) {
		f := r.s.folders[id]
		out = append(out, &f)
	}
	return out, nil
}

// Get returns the folder with the name, or nil.
func (r *FolderRepo) Get(_ context.Context, name string) (*domain.Folder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, id := range sortedIDs(r.s.folders) {
		if f := r.s.folders[id]; f.Name == name {
			return &f, nil
		}
	}
	return nil, nil
}

// Create builds an unsaved folder.
func (r *FolderRepo) Create(name, dtmf, recording string) *domain.Folder {
	return &domain.Folder{Name: name, DTMF: dtmf, Recording: recording}
}

// FindByNameOrDTMF returns the folders matching either field.
func (r *FolderRepo) FindByNameOrDTMF(_ context.Context, name, dtmf string) ([]*domain.Folder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []*domain.Folder
	for _, id := range sortedIDs(r.s.folders) {
		if f := r.s.folders[id]; f.Name == name || f.DTMF == dtmf {
			out = append(out, &f)
		}
	}
	return out, nil
}

// Save inserts or updates f.
func (r *FolderRepo) Save(_ context.Context, f *domain.Folder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if f.ID == 0 {
		f.ID = r.s.nextFolderID
		r.s.nextFolderID++
	}
	r.s.folders[f.ID] = *f
	return nil
}

// Remove deletes f.
func (r *FolderRepo) Remove(_ context.Context, f *domain.Folder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if f.ID == 0 {
		return domain.ErrRecordNotSaved
	}
	if _, ok := r.s.folders[f.ID]; !ok {
		return domain.ErrRecordMissing
	}
	delete(r.s.folders, f.ID)
	return nil
}

// MailboxRepo implements the mailbox repository.
type MailboxRepo struct{ s *Store }

// Get returns mailbox number in context c, or nil.
func (r *MailboxRepo) Get(_ context.Context, number string, c *domain.Context) (*domain.Mailbox, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, id := range sortedIDs(r.s.mailboxes) {
		if m := r.s.mailboxes[id]; m.Number == number && m.ContextID == c.ID {
			return &m, nil
		}
	}
	return nil, nil
}

// Create builds an unsaved mailbox in context c.
func (r *MailboxRepo) Create(number string, c *domain.Context) *domain.Mailbox {
	return &domain.Mailbox{Number: number, ContextID: c.ID}
}

// FindByContext returns the mailboxes of context c ordered by ID.
func (r *MailboxRepo) FindByContext(_ context.Context, c *domain.Context) ([]*domain.Mailbox, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []*domain.Mailbox{}
	for _, id := range sortedIDs(r.s.mailboxes) {
		if m := r.s.mailboxes[id]; m.ContextID == c.ID {
			out = append(out, &m)
		}
	}
	return out, nil
}

// CountByContext counts the mailboxes of context c.
func (r *MailboxRepo) CountByContext(_ context.Context, c *domain.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n := 0
	for _, m := range r.s.mailboxes {
		if m.ContextID == c.ID {
			n++
		}
	}
	return n, nil
}

// Save inserts or updates m.
func (r *MailboxRepo) Save(_ context.Context, m *domain.Mailbox) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if m.ID == 0 {
		m.ID = r.s.nextMailboxID
		r.s.nextMailboxID++
	}
	r.s.mailboxes[m.ID] = *m
	return nil
}

// Remove deletes m.
func (r *MailboxRepo) Remove(_ context.Context, m *domain.Mailbox) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if m.ID == 0 {
		return domain.ErrRecordNotSaved
	}
	if _, ok := r.s.mailboxes[m.ID]; !ok {
		return domain.ErrRecordMissing
	}
	delete(r.s.mailboxes, m.ID)
	return nil
}

// MessageRepo implements the message repository.
type MessageRepo struct{ s *Store }

// Save inserts or updates m.
func (r *MessageRepo) Save(_ context.Context, m *domain.Message) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if m.ID == 0 {
		m.ID = r.s.nextMessageID
		r.s.nextMessageID++
	}
	r.s.messages[m.ID] = *m
	return nil
}

// CountByMailbox counts the messages of mailbox m.
func (r *MessageRepo) CountByMailbox(_ context.Context, m *domain.Mailbox) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n := 0
	for _, msg := range r.s.messages {
		if msg.MailboxID == m.ID {
			n++
		}
	}
	return n, nil
}

// CountByFolder counts the messages filed in folder f.
func (r *MessageRepo) CountByFolder(_ context.Context, f *domain.Folder) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n := 0
	for _, msg := range r.s.messages {
		if msg.FolderID == f.ID {
			n++
		}
	}
	return n, nil
}

// RemoveByMailbox deletes the messages of mailbox m.
func (r *MessageRepo) RemoveByMailbox(_ context.Context, m *domain.Mailbox) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	n := 0
	for id, msg := range r.s.messages {
		if msg.MailboxID == m.ID {
			delete(r.s.messages, id)
			n++
		}
	}
	return n, nil
}
