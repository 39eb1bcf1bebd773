package handler

import (
	"context"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/yndnr/vmadmin-go/internal/cli/output"
	"github.com/yndnr/vmadmin-go/internal/core/domain"
)

func TestShowMailbox(t *testing.T) {
	h := newHarness(t, output.FormatJSON)
	c := h.seedContext("example.com")
	h.seedMailbox("100", c)

	h.mustRun("show mailbox 100@example.com")

	var view MailboxView
	if err := json.Unmarshal(h.out.Bytes(), &view); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, h.out.String())
	}
	if view.Number != "100" || view.Context != "example.com" || view.Email != "100@example.com" {
		t.Errorf("view = %+v", view)
	}
}

func TestShowMailbox_Errors(t *testing.T) {
	tests := []struct {
		line string
		kind error
		msg  string
	}{
		{"show mailbox 100", domain.ErrInvalidSyntax, ""},
		{"show mailbox @example.com", domain.ErrInvalidSyntax, ""},
		{"show mailbox 100@a@b", domain.ErrInvalidSyntax, ""},
		{"show mailbox 100@nowhere.com", domain.ErrNotFound, "Mailbox '100@nowhere.com' not found."},
		{"show mailbox 999@example.com", domain.ErrNotFound, "Mailbox '999@example.com' not found."},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			h := newHarness(t, output.FormatTable)
			c := h.seedContext("example.com")
			h.seedMailbox("100", c)

			h.expectErr(tt.line, tt.kind, tt.msg)
		})
	}
}

func TestShowMailboxes(t *testing.T) {
	h := newHarness(t, output.FormatTable)
	c := h.seedContext("example.com")
	other := h.seedContext("example.org")
	h.seedMailbox("100", c)
	h.seedMailbox("101", c)
	h.seedMailbox("200", other)

	h.mustRun("show mailboxes example.com")

	lines := strings.Split(strings.TrimSpace(h.out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), h.out.String())
	}
	if got := strings.Join(strings.Fields(lines[0]), " "); got != "number email name" {
		t.Errorf("header = %q", lines[0])
	}
	if got := strings.Fields(lines[1])[0]; got != "100@example.com" {
		t.Errorf("first row number = %q, want %q", got, "100@example.com")
	}
	if strings.Contains(h.out.String(), "200") {
		t.Error("listing includes a mailbox of another context")
	}

	h.expectErr("show mailboxes nowhere.com", domain.ErrNotFound, "Context 'nowhere.com' not found.")
}

func TestCreateMailbox(t *testing.T) {
	h := newHarness(t, output.FormatTable)
	c := h.seedContext("example.com")

	h.mustRun(`create mailbox 100@example.com 1234 "Test Mailbox" test@example.com`)

	if got := strings.TrimSpace(h.out.String()); got != "Successfully created mailbox '100@example.com'." {
		t.Errorf("output = %q", got)
	}
	m := h.mailbox("100", c)
	if m == nil {
		t.Fatal("mailbox was not saved")
	}
	if m.Password != "1234" || m.Name != "Test Mailbox" || m.Email != "test@example.com" || m.ContextID != c.ID {
		t.Errorf("mailbox = %+v", m)
	}
}

func TestCreateMailbox_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
		kind error
		msg  string
	}{
		{
			name: "unknown context",
			line: "create mailbox 100@nowhere.com 1234 Test test@example.com",
			kind: domain.ErrNotFound,
			msg:  "Context 'nowhere.com' requested for '100@nowhere.com' does not exist.",
		},
		{
			name: "existing mailbox",
			line: "create mailbox 100@example.com 1234 Test test@example.com",
			kind: domain.ErrConflict,
			msg:  "Requested mailbox '100@example.com' already exists.",
		},
		{
			name: "unquoted name",
			line: "create mailbox 101@example.com 1234 Test Mailbox test@example.com",
			kind: domain.ErrInvalidSyntax,
			msg:  "Invalid Syntax for 'create mailbox'. Usage: create mailbox <mailboxNumber>@<mailboxContext> <password> <name> <email>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, output.FormatTable)
			c := h.seedContext("example.com")
			h.seedMailbox("100", c)

			h.expectErr(tt.line, tt.kind, tt.msg)

			if h.mailbox("101", c) != nil {
				t.Error("mailbox was created")
			}
			if got := h.mailbox("100", c).Password; got != "1234" {
				t.Errorf("existing mailbox was modified: password %q", got)
			}
		})
	}
}

func TestEditMailbox(t *testing.T) {
	tests := []struct {
		line   string
		change func(m *domain.Mailbox)
	}{
		{"edit mailbox 100@example.com mailboxName Sales", func(m *domain.Mailbox) { m.MailboxName = "Sales" }},
		{"edit mailbox 100@example.com MAILBOXNAME Sales", func(m *domain.Mailbox) { m.MailboxName = "Sales" }},
		{"edit mailbox 100@example.com password 9876", func(m *domain.Mailbox) { m.Password = "9876" }},
		{`edit mailbox 100@example.com name "Jane Doe"`, func(m *domain.Mailbox) { m.Name = "Jane Doe" }},
		{"edit mailbox 100@example.com Email jane@example.com", func(m *domain.Mailbox) { m.Email = "jane@example.com" }},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			h := newHarness(t, output.FormatTable)
			c := h.seedContext("example.com")
			seeded := h.seedMailbox("100", c)
			seeded.GreetingBusy = "busy.wav"
			seeded.Unread = 3
			if err := h.dal.Mailbox.Save(context.Background(), seeded); err != nil {
				t.Fatal(err)
			}
			want := *h.mailbox("100", c)
			tt.change(&want)

			h.mustRun(tt.line)

			if got := strings.TrimSpace(h.out.String()); got != "Mailbox '100@example.com' updated" {
				t.Errorf("output = %q", got)
			}
			if got := h.mailbox("100", c); !reflect.DeepEqual(*got, want) {
				t.Errorf("mailbox = %+v, want %+v", *got, want)
			}
		})
	}
}

func TestEditMailbox_Errors(t *testing.T) {
	h := newHarness(t, output.FormatTable)
	c := h.seedContext("example.com")
	h.seedMailbox("100", c)

	h.expectErr("edit mailbox 100@example.com read 5", domain.ErrInvalidSyntax,
		"'read' is not an editable property of mailboxes.")
	h.expectErr("edit mailbox 999@example.com color blue", domain.ErrInvalidSyntax,
		"'color' is not an editable property of mailboxes.")
	h.expectErr("edit mailbox 999@example.com name Jane", domain.ErrNotFound,
		"Mailbox '999@example.com' not found.")
	h.expectErr("edit mailbox 100@example.com name", domain.ErrInvalidSyntax, "")

	if m := h.mailbox("100", c); m.Read != 0 || m.Name != "Owner 100" {
		t.Errorf("mailbox was modified: %+v", m)
	}
}

func TestDeleteMailbox(t *testing.T) {
	h := newHarness(t, output.FormatTable)
	c := h.seedContext("example.com")
	full := h.seedMailbox("100", c)
	h.seedMailbox("101", c)
	inbox := h.seedFolder("INBOX", "0")
	h.seedMessage(full, inbox)
	h.seedMessage(full, inbox)

	h.expectErr("delete mailbox 100@example.com", domain.ErrDependentRecords,
		"Mailbox '100@example.com' has 2 messages in it that must be deleted first.")
	h.expectErr("delete mailbox 999@example.com", domain.ErrNotFound,
		"Mailbox '999@example.com' not found.")

	h.mustRun("delete mailbox 101@example.com")

	if got := strings.TrimSpace(h.out.String()); got != "Deleted mailbox '101@example.com'" {
		t.Errorf("output = %q", got)
	}
	if h.mailbox("101", c) != nil {
		t.Error("mailbox still present")
	}
	if h.mailbox("100", c) == nil {
		t.Error("mailbox with messages was deleted")
	}
}

func TestDeleteMessages_EmptyMailboxMutatesNothing(t *testing.T) {
	h := newHarness(t, output.FormatTable)
	c := h.seedContext("example.com")
	h.seedMailbox("100", c)
	clear(h.calls)

	h.mustRun("delete messages 100@example.com")

	if got := strings.TrimSpace(h.out.String()); got != "Deleted 0 messages" {
		t.Errorf("output = %q", got)
	}
	if n := h.calls.mutations(); n != 0 {
		t.Errorf("made %d mutating DAL calls: %v", n, h.calls)
	}
	if n := h.calls["message.CountByMailbox"]; n != 1 {
		t.Errorf("CountByMailbox called %d times, want 1", n)
	}
}

func TestDeleteMessages(t *testing.T) {
	h := newHarness(t, output.FormatTable)
	c := h.seedContext("example.com")
	full := h.seedMailbox("100", c)
	other := h.seedMailbox("101", c)
	inbox := h.seedFolder("INBOX", "0")
	h.seedMessage(full, inbox)
	h.seedMessage(full, inbox)
	h.seedMessage(other, inbox)

	h.mustRun("delete messages 100@example.com")
	h.mustRun("delete messages 100@example.com")
	h.mustRun("delete mailbox 100@example.com")

	want := "Deleted 2 messages\nDeleted 0 messages\nDeleted mailbox '100@example.com'\n"
	if n := h.calls["message.RemoveByMailbox"]; n != 1 {
		t.Errorf("RemoveByMailbox called %d times, want 1", n)
	}
	if h.out.String() != want {
		t.Errorf("output = %q, want %q", h.out.String(), want)
	}
	h.expectErr("delete folder INBOX", domain.ErrDependentRecords,
		"Folder 'INBOX' has 1 messages in it that must be deleted first.")
	h.expectErr("delete messages 999@example.com", domain.ErrNotFound,
		"Mailbox '999@example.com' not found.")
}
