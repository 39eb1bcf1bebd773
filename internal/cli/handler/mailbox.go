package handler

import (
	"context"
	"strings"

	"github.com/yndnr/vmadmin-go/internal/cli/output"
	"github.com/yndnr/vmadmin-go/internal/cli/repl"
	"github.com/yndnr/vmadmin-go/internal/core/domain"
)

// mailboxSetters holds the editable mailbox fields, keyed by lower-cased
// field name.
var mailboxSetters = map[string]func(*domain.Mailbox, string){
	"mailboxname": func(m *domain.Mailbox, v string) { m.MailboxName = v },
	"password":    func(m *domain.Mailbox, v string) { m.Password = v },
	"name":        func(m *domain.Mailbox, v string) { m.Name = v },
	"email":       func(m *domain.Mailbox, v string) { m.Email = v },
}

func (s *Set) showMailbox(ctx context.Context, cmd repl.ResolvedCommand) error {
	if err := expectTokens(cmd, 3); err != nil {
		return err
	}
	key, err := mailboxKey(cmd, 2)
	if err != nil {
		return err
	}
	m, c, err := s.requireMailbox(ctx, key)
	if err != nil {
		return err
	}
	return s.console.Record(newMailboxView(m, c))
}

func (s *Set) showMailboxes(ctx context.Context, cmd repl.ResolvedCommand) error {
	if err := expectTokens(cmd, 3); err != nil {
		return err
	}
	c, err := s.requireContext(ctx, cmd.Tokens[2])
	if err != nil {
		return err
	}
	mailboxes, err := s.dal.Mailbox.FindByContext(ctx, c)
	if err != nil {
		return s.storageErr(ctx, err)
	}
	table := output.NewTable("number", "email", "name")
	rows := make([]MailboxSummary, 0, len(mailboxes))
	for _, m := range mailboxes {
		table.AddRow(m.Number+"@"+c.Domain, m.Email, m.Name)
		rows = append(rows, MailboxSummary{Number: m.Number, Email: m.Email, Name: m.Name})
	}
	return s.console.Listing(table, rows)
}

func (s *Set) createMailbox(ctx context.Context, cmd repl.ResolvedCommand) error {
	if err := expectTokens(cmd, 6); err != nil {
		return err
	}
	key, err := mailboxKey(cmd, 2)
	if err != nil {
		return err
	}
	c, err := s.dal.Context.Get(ctx, key.Domain)
	if err != nil {
		return s.storageErr(ctx, err)
	}
	if c == nil {
		return domain.ErrNotFound.Detailf("Context '%s' requested for '%s' does not exist.", key.Domain, key)
	}
	existing, err := s.dal.Mailbox.Get(ctx, key.Number, c)
	if err != nil {
		return s.storageErr(ctx, err)
	}
	if existing != nil {
		return domain.ErrConflict.Detailf("Requested mailbox '%s' already exists.", key)
	}

	m := s.dal.Mailbox.Create(key.Number, c)
	m.Password = cmd.Tokens[3]
	m.Name = cmd.Tokens[4]
	m.Email = cmd.Tokens[5]
	if err := s.dal.Mailbox.Save(ctx, m); err != nil {
		return s.storageErr(ctx, err)
	}
	s.console.Success("Successfully created mailbox '%s'.", key)
	return nil
}

func (s *Set) editMailbox(ctx context.Context, cmd repl.ResolvedCommand) error {
	if err := expectTokens(cmd, 5); err != nil {
		return err
	}
	key, err := mailboxKey(cmd, 2)
	if err != nil {
		return err
	}
	field, value := cmd.Tokens[3], cmd.Tokens[4]
	set, ok := mailboxSetters[strings.ToLower(field)]
	if !ok {
		return domain.ErrInvalidSyntax.Detailf("'%s' is not an editable property of mailboxes.", field)
	}
	m, _, err := s.requireMailbox(ctx, key)
	if err != nil {
		return err
	}
	set(m, value)
	if err := s.dal.Mailbox.Save(ctx, m); err != nil {
		return s.storageErr(ctx, err)
	}
	s.console.Success("Mailbox '%s' updated", key)
	return nil
}

func (s *Set) deleteMailbox(ctx context.Context, cmd repl.ResolvedCommand) error {
	if err := expectTokens(cmd, 3); err != nil {
		return err
	}
	key, err := mailboxKey(cmd, 2)
	if err != nil {
		return err
	}
	m, _, err := s.requireMailbox(ctx, key)
	if err != nil {
		return err
	}
	n, err := s.dal.Message.CountByMailbox(ctx, m)
	if err != nil {
		return s.storageErr(ctx, err)
	}
	if n > 0 {
		return domain.ErrDependentRecords.Detailf(
			"Mailbox '%s' has %d messages in it that must be deleted first.", key, n)
	}
	if err := s.dal.Mailbox.Remove(ctx, m); err != nil {
		return s.storageErr(ctx, err)
	}
	s.console.Success("Deleted mailbox '%s'", key)
	return nil
}

func (s *Set) deleteMessages(ctx context.Context, cmd repl.ResolvedCommand) error {
	if err := expectTokens(cmd, 3); err != nil {
		return err
	}
	key, err := mailboxKey(cmd, 2)
	if err != nil {
		return err
	}
	m, _, err := s.requireMailbox(ctx, key)
	if err != nil {
		return err
	}
	n, err := s.dal.Message.CountByMailbox(ctx, m)
	if err != nil {
		return s.storageErr(ctx, err)
	}
	if n > 0 {
		if n, err = s.dal.Message.RemoveByMailbox(ctx, m); err != nil {
			return s.storageErr(ctx, err)
		}
	}
	s.console.Success("Deleted %d messages", n)
	return nil
}

// requireMailbox returns the mailbox named by key and its context. A
// missing context is reported like a missing mailbox.
func (s *Set) requireMailbox(ctx context.Context, key domain.MailboxKey) (*domain.Mailbox, *domain.Context, error) {
	notFound := domain.ErrNotFound.Detailf("Mailbox '%s' not found.", key)
	c, err := s.dal.Context.Get(ctx, key.Domain)
	if err != nil {
		return nil, nil, s.storageErr(ctx, err)
	}
	if c == nil {
		return nil, nil, notFound
	}
	m, err := s.dal.Mailbox.Get(ctx, key.Number, c)
	if err != nil {
		return nil, nil, s.storageErr(ctx, err)
	}
	if m == nil {
		return nil, nil, notFound
	}
	return m, c, nil
}
