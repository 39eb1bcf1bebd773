// Package storagetest holds the behaviour every DAL backend must share.
//
// Backend packages call Run from their tests with a constructor returning
// a fresh, table-initialized DAL.
package storagetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yndnr/vmadmin-go/internal/core/domain"
	"github.com/yndnr/vmadmin-go/internal/storage"
)

// Run executes the conformance suite against DALs built by open.
func Run(t *testing.T, open func(t *testing.T) *storage.DAL) {
	t.Helper()

	tests := []struct {
		name string
		fn   func(t *testing.T, dal *storage.DAL)
	}{
		{"ContextLifecycle", testContextLifecycle},
		{"ContextRemoveUnsaved", testContextRemoveUnsaved},
		{"FolderLifecycle", testFolderLifecycle},
		{"FolderFindByNameOrDTMF", testFolderFindByNameOrDTMF},
		{"MailboxLifecycle", testMailboxLifecycle},
		{"MailboxScopedByContext", testMailboxScopedByContext},
		{"MessageCountsAndRemoval", testMessageCountsAndRemoval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fn(t, open(t))
		})
	}
}

func testContextLifecycle(t *testing.T, dal *storage.DAL) {
	ctx := context.Background()

	got, err := dal.Context.Get(ctx, "domain.com")
	if err != nil {
		t.Fatalf("Get on empty store: %v", err)
	}
	if got != nil {
		t.Fatalf("Get on empty store = %+v, want nil", got)
	}

	c := dal.Context.Create("domain.com")
	if c.ID != 0 {
		t.Fatalf("Create assigned ID %d before Save", c.ID)
	}
	if err := dal.Context.Save(ctx, c); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if c.ID == 0 {
		t.Fatal("Save did not assign an ID")
	}

	second := dal.Context.Create("other.com")
	if err := dal.Context.Save(ctx, second); err != nil {
		t.Fatalf("Save second: %v", err)
	}
	if second.ID <= c.ID {
		t.Errorf("IDs not increasing: %d then %d", c.ID, second.ID)
	}

	got, err = dal.Context.Get(ctx, "domain.com")
	if err != nil || got == nil {
		t.Fatalf("Get = %v, %v", got, err)
	}
	if got.ID != c.ID || got.Domain != "domain.com" {
		t.Errorf("Get = %+v, want %+v", got, c)
	}

	got.Domain = "renamed.com"
	if err := dal.Context.Save(ctx, got); err != nil {
		t.Fatalf("Save rename: %v", err)
	}
	if old, _ := dal.Context.Get(ctx, "domain.com"); old != nil {
		t.Error("old domain still present after rename")
	}
	renamed, _ := dal.Context.Get(ctx, "renamed.com")
	if renamed == nil || renamed.ID != c.ID {
		t.Fatalf("renamed context = %+v, want ID %d", renamed, c.ID)
	}

	all, err := dal.Context.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len(All) = %d, want 2", len(all))
	}

	if err := dal.Context.Remove(ctx, renamed); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if gone, _ := dal.Context.Get(ctx, "renamed.com"); gone != nil {
		t.Error("context still present after Remove")
	}
	if err := dal.Context.Remove(ctx, renamed); !errors.Is(err, domain.ErrStorage) {
		t.Errorf("second Remove = %v, want storage error", err)
	}
}

func testContextRemoveUnsaved(t *testing.T, dal *storage.DAL) {
	err := dal.Context.Remove(context.Background(), dal.Context.Create("x.com"))
	if !errors.Is(err, domain.ErrRecordNotSaved) {
		t.Errorf("Remove unsaved = %v, want ErrRecordNotSaved", err)
	}
}

func testFolderLifecycle(t *testing.T, dal *storage.DAL) {
	ctx := context.Background()

	f := dal.Folder.Create("INBOX", "0", "vm-INBOX")
	if err := dal.Folder.Save(ctx, f); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := dal.Folder.Get(ctx, "INBOX")
	if err != nil || got == nil {
		t.Fatalf("Get = %v, %v", got, err)
	}
	if *got != *f {
		t.Errorf("Get = %+v, want %+v", got, f)
	}

	got.Recording = "vm-Inbox"
	if err := dal.Folder.Save(ctx, got); err != nil {
		t.Fatalf("Save update: %v", err)
	}
	again, _ := dal.Folder.Get(ctx, "INBOX")
	if again.Recording != "vm-Inbox" || again.DTMF != "0" {
		t.Errorf("after update = %+v", again)
	}

	if missing, _ := dal.Folder.Get(ctx, "Old"); missing != nil {
		t.Errorf("Get(Old) = %+v, want nil", missing)
	}

	if err := dal.Folder.Remove(ctx, again); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	all, _ := dal.Folder.All(ctx)
	if len(all) != 0 {
		t.Errorf("len(All) = %d after Remove, want 0", len(all))
	}
}

func testFolderFindByNameOrDTMF(t *testing.T, dal *storage.DAL) {
	ctx := context.Background()

	for _, f := range []*domain.Folder{
		dal.Folder.Create("INBOX", "0", "vm-INBOX"),
		dal.Folder.Create("Old", "1", "vm-Old"),
		dal.Folder.Create("Work", "2", "vm-Work"),
	} {
		if err := dal.Folder.Save(ctx, f); err != nil {
			t.Fatalf("Save %s: %v", f.Name, err)
		}
	}

	found, err := dal.Folder.FindByNameOrDTMF(ctx, "INBOX", "2")
	if err != nil {
		t.Fatalf("FindByNameOrDTMF: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("found %d folders, want 2", len(found))
	}
	names := map[string]bool{}
	for _, f := range found {
		names[f.Name] = true
	}
	if !names["INBOX"] || !names["Work"] {
		t.Errorf("found = %v, want INBOX and Work", names)
	}

	none, err := dal.Folder.FindByNameOrDTMF(ctx, "Family", "9")
	if err != nil {
		t.Fatalf("FindByNameOrDTMF: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("found %d folders, want 0", len(none))
	}
}

func saveContext(t *testing.T, dal *storage.DAL, name string) *domain.Context {
	t.Helper()
	c := dal.Context.Create(name)
	if err := dal.Context.Save(context.Background(), c); err != nil {
		t.Fatalf("save context %s: %v", name, err)
	}
	return c
}

func testMailboxLifecycle(t *testing.T, dal *storage.DAL) {
	ctx := context.Background()
	c := saveContext(t, dal, "domain.com")

	m := dal.Mailbox.Create("1000", c)
	if m.ContextID != c.ID {
		t.Fatalf("Create ContextID = %d, want %d", m.ContextID, c.ID)
	}
	m.Password = "1111"
	m.Name = "Test Mailbox"
	m.Email = "test@digium.com"
	if err := dal.Mailbox.Save(ctx, m); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := dal.Mailbox.Get(ctx, "1000", c)
	if err != nil || got == nil {
		t.Fatalf("Get = %v, %v", got, err)
	}
	if *got != *m {
		t.Errorf("Get = %+v, want %+v", got, m)
	}

	got.Password = "2222"
	if err := dal.Mailbox.Save(ctx, got); err != nil {
		t.Fatalf("Save update: %v", err)
	}
	updated, _ := dal.Mailbox.Get(ctx, "1000", c)
	if updated.Password != "2222" || updated.Name != "Test Mailbox" || updated.Email != "test@digium.com" {
		t.Errorf("after update = %+v", updated)
	}

	n, err := dal.Mailbox.CountByContext(ctx, c)
	if err != nil || n != 1 {
		t.Fatalf("CountByContext = %d, %v; want 1", n, err)
	}

	if err := dal.Mailbox.Remove(ctx, updated); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	n, _ = dal.Mailbox.CountByContext(ctx, c)
	if n != 0 {
		t.Errorf("CountByContext after Remove = %d, want 0", n)
	}
}

func testMailboxScopedByContext(t *testing.T, dal *storage.DAL) {
	ctx := context.Background()
	a := saveContext(t, dal, "a.com")
	b := saveContext(t, dal, "b.com")

	for _, m := range []*domain.Mailbox{
		dal.Mailbox.Create("1000", a),
		dal.Mailbox.Create("1001", a),
		dal.Mailbox.Create("1000", b),
	} {
		if err := dal.Mailbox.Save(ctx, m); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	inA, err := dal.Mailbox.FindByContext(ctx, a)
	if err != nil {
		t.Fatalf("FindByContext: %v", err)
	}
	if len(inA) != 2 {
		t.Errorf("len(FindByContext(a)) = %d, want 2", len(inA))
	}

	inB, _ := dal.Mailbox.Get(ctx, "1000", b)
	if inB == nil || inB.ContextID != b.ID {
		t.Errorf("Get(1000, b) = %+v", inB)
	}
	if none, _ := dal.Mailbox.Get(ctx, "1001", b); none != nil {
		t.Errorf("Get(1001, b) = %+v, want nil", none)
	}
}

func testMessageCountsAndRemoval(t *testing.T, dal *storage.DAL) {
	ctx := context.Background()
	c := saveContext(t, dal, "domain.com")

	inbox := dal.Folder.Create("INBOX", "0", "vm-INBOX")
	old := dal.Folder.Create("Old", "1", "vm-Old")
	for _, f := range []*domain.Folder{inbox, old} {
		if err := dal.Folder.Save(ctx, f); err != nil {
			t.Fatalf("save folder: %v", err)
		}
	}

	box := dal.Mailbox.Create("1000", c)
	other := dal.Mailbox.Create("1001", c)
	for _, m := range []*domain.Mailbox{box, other} {
		if err := dal.Mailbox.Save(ctx, m); err != nil {
			t.Fatalf("save mailbox: %v", err)
		}
	}

	date := time.Date(2015, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, msg := range []*domain.Message{
		{MailboxID: box.ID, FolderID: inbox.ID, Date: date, CallerID: "\"Alice\" <100>", Duration: 12},
		{MailboxID: box.ID, FolderID: inbox.ID, Date: date},
		{MailboxID: box.ID, FolderID: old.ID, Date: date, Read: true},
		{MailboxID: other.ID, FolderID: inbox.ID, Date: date},
	} {
		if err := dal.Message.Save(ctx, msg); err != nil {
			t.Fatalf("save message: %v", err)
		}
		if msg.ID == 0 {
			t.Fatal("message Save did not assign an ID")
		}
	}

	if n, err := dal.Message.CountByMailbox(ctx, box); err != nil || n != 3 {
		t.Errorf("CountByMailbox(box) = %d, %v; want 3", n, err)
	}
	if n, err := dal.Message.CountByFolder(ctx, inbox); err != nil || n != 3 {
		t.Errorf("CountByFolder(inbox) = %d, %v; want 3", n, err)
	}

	removed, err := dal.Message.RemoveByMailbox(ctx, box)
	if err != nil {
		t.Fatalf("RemoveByMailbox: %v", err)
	}
	if removed != 3 {
		t.Errorf("RemoveByMailbox = %d, want 3", removed)
	}
	if n, _ := dal.Message.CountByMailbox(ctx, box); n != 0 {
		t.Errorf("CountByMailbox after remove = %d, want 0", n)
	}
	if n, _ := dal.Message.CountByMailbox(ctx, other); n != 1 {
		t.Errorf("other mailbox lost messages: %d, want 1", n)
	}
}
