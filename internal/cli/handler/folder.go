package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/yndnr/vmadmin-go/internal/cli/output"
	"github.com/yndnr/vmadmin-go/internal/cli/repl"
	"github.com/yndnr/vmadmin-go/internal/core/domain"
)

// Editable folder fields.
const (
	folderFieldName      = "name"
	folderFieldDTMF      = "dtmf"
	folderFieldRecording = "recording"
)

func (s *Set) showFolders(ctx context.Context, cmd repl.ResolvedCommand) error {
	if err := expectTokens(cmd, 2); err != nil {
		return err
	}
	folders, err := s.dal.Folder.All(ctx)
	if err != nil {
		return s.storageErr(ctx, err)
	}
	table := output.NewTable("name", "dtmf", "recording")
	views := make([]FolderView, 0, len(folders))
	for _, f := range folders {
		table.AddRow(f.Name, f.DTMF, f.Recording)
		views = append(views, newFolderView(f))
	}
	return s.console.Listing(table, views)
}

func (s *Set) showFolder(ctx context.Context, cmd repl.ResolvedCommand) error {
	if err := expectTokens(cmd, 3); err != nil {
		return err
	}
	f, err := s.requireFolder(ctx, cmd.Tokens[2])
	if err != nil {
		return err
	}
	return s.console.Record(newFolderView(f))
}

func (s *Set) createFolder(ctx context.Context, cmd repl.ResolvedCommand) error {
	if err := expectTokens(cmd, 5); err != nil {
		return err
	}
	name, dtmf, recording := cmd.Tokens[2], cmd.Tokens[3], cmd.Tokens[4]
	conflicts, err := s.dal.Folder.FindByNameOrDTMF(ctx, name, dtmf)
	if err != nil {
		return s.storageErr(ctx, err)
	}
	if len(conflicts) > 0 {
		described := make([]string, len(conflicts))
		for i, f := range conflicts {
			described[i] = fmt.Sprintf("%s (dtmf: %s)", f.Name, f.DTMF)
		}
		return domain.ErrConflict.Detailf(
			"Requested folder conflicts with existing folders: %s", strings.Join(described, ", "))
	}
	if err := s.dal.Folder.Save(ctx, s.dal.Folder.Create(name, dtmf, recording)); err != nil {
		return s.storageErr(ctx, err)
	}
	s.console.Success("Successfully created folder '%s'", name)
	return nil
}

func (s *Set) editFolder(ctx context.Context, cmd repl.ResolvedCommand) error {
	if err := expectTokens(cmd, 5); err != nil {
		return err
	}
	name, field, value := cmd.Tokens[2], cmd.Tokens[3], cmd.Tokens[4]
	if value == "" {
		return invalidSyntax(cmd)
	}

	switch strings.ToLower(field) {
	case folderFieldName:
		return s.renameFolder(ctx, name, value)
	case folderFieldDTMF:
		f, err := s.requireFolder(ctx, name)
		if err != nil {
			return err
		}
		if err := s.checkDTMFFree(ctx, f, value); err != nil {
			return err
		}
		f.DTMF = value
		return s.saveFolder(ctx, f)
	case folderFieldRecording:
		f, err := s.requireFolder(ctx, name)
		if err != nil {
			return err
		}
		f.Recording = value
		return s.saveFolder(ctx, f)
	default:
		return domain.ErrInvalidSyntax.Detailf("'%s' is not an editable property of folders.", field)
	}
}

func (s *Set) renameFolder(ctx context.Context, oldName, newName string) error {
	taken, err := s.dal.Folder.Get(ctx, newName)
	if err != nil {
		return s.storageErr(ctx, err)
	}
	if taken != nil {
		return domain.ErrConflict.Detailf("Folder with name '%s' already exists.", newName)
	}
	f, err := s.requireFolder(ctx, oldName)
	if err != nil {
		return err
	}
	f.Name = newName
	if err := s.dal.Folder.Save(ctx, f); err != nil {
		return s.storageErr(ctx, err)
	}
	s.console.Success("Folder '%s' changed to '%s'", oldName, newName)
	return nil
}

// checkDTMFFree fails when a folder other than f already uses dtmf.
func (s *Set) checkDTMFFree(ctx context.Context, f *domain.Folder, dtmf string) error {
	folders, err := s.dal.Folder.All(ctx)
	if err != nil {
		return s.storageErr(ctx, err)
	}
	for _, other := range folders {
		if other.ID != f.ID && other.DTMF == dtmf {
			return domain.ErrConflict.Detailf("DTMF '%s' is already used by folder '%s'.", dtmf, other.Name)
		}
	}
	return nil
}

func (s *Set) saveFolder(ctx context.Context, f *domain.Folder) error {
	if err := s.dal.Folder.Save(ctx, f); err != nil {
		return s.storageErr(ctx, err)
	}
	s.console.Success("Folder '%s' updated", f.Name)
	return nil
}

func (s *Set) deleteFolder(ctx context.Context, cmd repl.ResolvedCommand) error {
	if err := expectTokens(cmd, 3); err != nil {
		return err
	}
	name := cmd.Tokens[2]
	f, err := s.requireFolder(ctx, name)
	if err != nil {
		return err
	}
	n, err := s.dal.Message.CountByFolder(ctx, f)
	if err != nil {
		return s.storageErr(ctx, err)
	}
	if n > 0 {
		return domain.ErrDependentRecords.Detailf(
			"Folder '%s' has %d messages in it that must be deleted first.", name, n)
	}
	if err := s.dal.Folder.Remove(ctx, f); err != nil {
		return s.storageErr(ctx, err)
	}
	s.console.Success("Deleted folder '%s'", name)
	return nil
}

// requireFolder returns the folder with the name or ErrNotFound.
func (s *Set) requireFolder(ctx context.Context, name string) (*domain.Folder, error) {
	f, err := s.dal.Folder.Get(ctx, name)
	if err != nil {
		return nil, s.storageErr(ctx, err)
	}
	if f == nil {
		return nil, domain.ErrNotFound.Detailf("Folder '%s' not found.", name)
	}
	return f, nil
}
