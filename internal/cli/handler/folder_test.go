package handler

import (
	"context"
	"strings"
	"testing"

	"github.com/yndnr/vmadmin-go/internal/cli/output"
	"github.com/yndnr/vmadmin-go/internal/core/domain"
)

func TestShowFolders(t *testing.T) {
	h := newHarness(t, output.FormatTable)
	h.seedFolder("INBOX", "0")
	h.seedFolder("Old", "1")

	h.mustRun("show folders")

	lines := strings.Split(strings.TrimSpace(h.out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), h.out.String())
	}
	if got := strings.Fields(lines[0]); strings.Join(got, " ") != "name dtmf recording" {
		t.Errorf("header = %q", lines[0])
	}
	if got := strings.Fields(lines[2]); strings.Join(got, " ") != "Old 1 Old.wav" {
		t.Errorf("row = %q", lines[2])
	}
}

func TestShowFolder(t *testing.T) {
	h := newHarness(t, output.FormatTable)
	h.seedFolder("INBOX", "0")

	h.mustRun("show folder INBOX")

	for _, want := range []string{"name:", "INBOX", "dtmf:", "recording:", "INBOX.wav"} {
		if !strings.Contains(h.out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, h.out.String())
		}
	}

	h.expectErr("show folder Missing", domain.ErrNotFound, "Folder 'Missing' not found.")
}

func TestShowFolder_YAML(t *testing.T) {
	h := newHarness(t, output.FormatYAML)
	h.seedFolder("INBOX", "0")

	h.mustRun("show folder INBOX")

	if !strings.Contains(h.out.String(), `dtmf: "0"`) {
		t.Errorf("unexpected output:\n%s", h.out.String())
	}
}

func TestCreateFolder(t *testing.T) {
	h := newHarness(t, output.FormatTable)

	h.mustRun(`create folder Work 5 "work folder.wav"`)

	if got := strings.TrimSpace(h.out.String()); got != "Successfully created folder 'Work'" {
		t.Errorf("output = %q", got)
	}
	f := h.folder("Work")
	if f == nil {
		t.Fatal("folder was not saved")
	}
	if f.DTMF != "5" || f.Recording != "work folder.wav" {
		t.Errorf("folder = %+v", f)
	}
}

func TestCreateFolder_Conflict(t *testing.T) {
	h := newHarness(t, output.FormatTable)
	h.seedFolder("INBOX", "0")
	h.seedFolder("Old", "1")

	h.expectErr("create folder INBOX 1 x.wav", domain.ErrConflict,
		"Requested folder conflicts with existing folders: INBOX (dtmf: 0), Old (dtmf: 1)")
	h.expectErr("create folder Work 0 x.wav", domain.ErrConflict,
		"Requested folder conflicts with existing folders: INBOX (dtmf: 0)")
	h.expectErr("create folder Work 5", domain.ErrInvalidSyntax,
		"Invalid Syntax for 'create folder'. Usage: create folder <name> <dtmf> <recording>")

	all, _ := h.dal.Folder.All(context.Background())
	if len(all) != 2 {
		t.Errorf("got %d folders, want 2", len(all))
	}
}

func TestEditFolder(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		output string
		check  func(t *testing.T, h *harness)
	}{
		{
			name:   "rename",
			line:   "edit folder Old name Archive",
			output: "Folder 'Old' changed to 'Archive'",
			check: func(t *testing.T, h *harness) {
				if h.folder("Old") != nil || h.folder("Archive") == nil {
					t.Error("folder was not renamed")
				}
			},
		},
		{
			name:   "dtmf",
			line:   "edit folder Old dtmf 7",
			output: "Folder 'Old' updated",
			check: func(t *testing.T, h *harness) {
				if got := h.folder("Old").DTMF; got != "7" {
					t.Errorf("dtmf = %q, want 7", got)
				}
			},
		},
		{
			name:   "same dtmf is not a conflict",
			line:   "edit folder Old dtmf 1",
			output: "Folder 'Old' updated",
		},
		{
			name:   "recording with upper case field",
			line:   `edit folder Old RECORDING "old messages.wav"`,
			output: "Folder 'Old' updated",
			check: func(t *testing.T, h *harness) {
				if got := h.folder("Old").Recording; got != "old messages.wav" {
					t.Errorf("recording = %q", got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, output.FormatTable)
			h.seedFolder("INBOX", "0")
			h.seedFolder("Old", "1")

			h.mustRun(tt.line)

			if got := strings.TrimSpace(h.out.String()); got != tt.output {
				t.Errorf("output = %q, want %q", got, tt.output)
			}
			if tt.check != nil {
				tt.check(t, h)
			}
		})
	}
}

func TestEditFolder_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
		kind error
		msg  string
	}{
		{
			name: "unknown field",
			line: "edit folder Old color blue",
			kind: domain.ErrInvalidSyntax,
			msg:  "'color' is not an editable property of folders.",
		},
		{
			name: "unknown field on missing folder",
			line: "edit folder Missing color blue",
			kind: domain.ErrInvalidSyntax,
			msg:  "'color' is not an editable property of folders.",
		},
		{
			name: "empty value",
			line: `edit folder Old name ""`,
			kind: domain.ErrInvalidSyntax,
			msg:  "Invalid Syntax for 'edit folder'. Usage: edit folder <name> <field> <value>",
		},
		{
			name: "rename onto existing",
			line: "edit folder Old name INBOX",
			kind: domain.ErrConflict,
			msg:  "Folder with name 'INBOX' already exists.",
		},
		{
			name: "rename missing",
			line: "edit folder Missing name Archive",
			kind: domain.ErrNotFound,
			msg:  "Folder 'Missing' not found.",
		},
		{
			name: "dtmf in use",
			line: "edit folder Old dtmf 0",
			kind: domain.ErrConflict,
			msg:  "DTMF '0' is already used by folder 'INBOX'.",
		},
		{
			name: "recording of missing folder",
			line: "edit folder Missing recording x.wav",
			kind: domain.ErrNotFound,
			msg:  "Folder 'Missing' not found.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, output.FormatTable)
			h.seedFolder("INBOX", "0")
			h.seedFolder("Old", "1")

			h.expectErr(tt.line, tt.kind, tt.msg)

			old := h.folder("Old")
			if old == nil || old.DTMF != "1" || old.Recording != "Old.wav" {
				t.Errorf("folder was modified: %+v", old)
			}
		})
	}
}

func TestDeleteFolder(t *testing.T) {
	h := newHarness(t, output.FormatTable)
	c := h.seedContext("example.com")
	m := h.seedMailbox("100", c)
	inbox := h.seedFolder("INBOX", "0")
	h.seedFolder("Old", "1")
	h.seedMessage(m, inbox)

	h.expectErr("delete folder INBOX", domain.ErrDependentRecords,
		"Folder 'INBOX' has 1 messages in it that must be deleted first.")
	h.expectErr("delete folder Missing", domain.ErrNotFound, "Folder 'Missing' not found.")

	h.mustRun("delete folder Old")

	if got := strings.TrimSpace(h.out.String()); got != "Deleted folder 'Old'" {
		t.Errorf("output = %q", got)
	}
	if h.folder("Old") != nil {
		t.Error("folder still present")
	}
	if h.folder("INBOX") == nil {
		t.Error("folder with messages was deleted")
	}
}
