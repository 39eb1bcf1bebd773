package handler

import (
	"context"

	"github.com/yndnr/vmadmin-go/internal/cli/output"
	"github.com/yndnr/vmadmin-go/internal/cli/repl"
	"github.com/yndnr/vmadmin-go/internal/core/domain"
)

func (s *Set) showContexts(ctx context.Context, cmd repl.ResolvedCommand) error {
	if err := expectTokens(cmd, 2); err != nil {
		return err
	}
	contexts, err := s.dal.Context.All(ctx)
	if err != nil {
		return s.storageErr(ctx, err)
	}
	table := output.NewTable("domain")
	views := make([]ContextView, 0, len(contexts))
	for _, c := range contexts {
		table.AddRow(c.Domain)
		views = append(views, newContextView(c))
	}
	return s.console.Listing(table, views)
}

func (s *Set) createContext(ctx context.Context, cmd repl.ResolvedCommand) error {
	if err := expectTokens(cmd, 3); err != nil {
		return err
	}
	name := cmd.Tokens[2]
	existing, err := s.dal.Context.Get(ctx, name)
	if err != nil {
		return s.storageErr(ctx, err)
	}
	if existing != nil {
		return domain.ErrConflict.Detailf("Context with domain '%s' already exists.", name)
	}
	if err := s.dal.Context.Save(ctx, s.dal.Context.Create(name)); err != nil {
		return s.storageErr(ctx, err)
	}
	s.console.Success("Successfully created context '%s'", name)
	return nil
}

func (s *Set) editContext(ctx context.Context, cmd repl.ResolvedCommand) error {
	if err := expectTokens(cmd, 4); err != nil {
		return err
	}
	oldName, newName := cmd.Tokens[2], cmd.Tokens[3]
	if newName == "" {
		return invalidSyntax(cmd)
	}
	taken, err := s.dal.Context.Get(ctx, newName)
	if err != nil {
		return s.storageErr(ctx, err)
	}
	if taken != nil {
		return domain.ErrConflict.Detailf("Context with domain '%s' already exists.", newName)
	}
	c, err := s.requireContext(ctx, oldName)
	if err != nil {
		return err
	}
	c.Domain = newName
	if err := s.dal.Context.Save(ctx, c); err != nil {
		return s.storageErr(ctx, err)
	}
	s.console.Success("Context '%s' changed to '%s'", oldName, newName)
	return nil
}

func (s *Set) deleteContext(ctx context.Context, cmd repl.ResolvedCommand) error {
	if err := expectTokens(cmd, 3); err != nil {
		return err
	}
	name := cmd.Tokens[2]
	c, err := s.requireContext(ctx, name)
	if err != nil {
		return err
	}
	n, err := s.dal.Mailbox.CountByContext(ctx, c)
	if err != nil {
		return s.storageErr(ctx, err)
	}
	if n > 0 {
		return domain.ErrDependentRecords.Detailf(
			"Context '%s' contains %d mailbox(es) that must be deleted first.", name, n)
	}
	if err := s.dal.Context.Remove(ctx, c); err != nil {
		return s.storageErr(ctx, err)
	}
	s.console.Success("Deleted context '%s'", name)
	return nil
}

// requireContext returns the context with the domain name or ErrNotFound.
func (s *Set) requireContext(ctx context.Context, name string) (*domain.Context, error) {
	c, err := s.dal.Context.Get(ctx, name)
	if err != nil {
		return nil, s.storageErr(ctx, err)
	}
	if c == nil {
		return nil, domain.ErrNotFound.Detailf("Context '%s' not found.", name)
	}
	return c, nil
}
