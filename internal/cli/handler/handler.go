package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/yndnr/vmadmin-go/internal/cli/menu"
	"github.com/yndnr/vmadmin-go/internal/cli/output"
	"github.com/yndnr/vmadmin-go/internal/cli/repl"
	"github.com/yndnr/vmadmin-go/internal/core/domain"
	"github.com/yndnr/vmadmin-go/internal/storage"
	"github.com/yndnr/vmadmin-go/internal/telemetry/logger"
)

// Handler runs one resolved command.
type Handler func(ctx context.Context, cmd repl.ResolvedCommand) (repl.Outcome, error)

// Deps are the collaborators of the handlers.
type Deps struct {
	DAL      *storage.DAL
	Console  *output.Console
	Registry *menu.Registry
	Logger   logger.Logger
}

// Set maps every menu action to its handler.
type Set struct {
	dal      *storage.DAL
	console  *output.Console
	registry *menu.Registry
	log      logger.Logger
	handlers map[menu.Action]Handler
}

// NewSet builds the handler set. It fails when a dependency is missing or a
// registry action has no handler.
func NewSet(deps Deps) (*Set, error) {
	s, err := newSet(deps)
	if err != nil {
		return nil, err
	}
	s.handlers = map[menu.Action]Handler{
		menu.ActionShowHelp:       s.showHelp,
		menu.ActionExit:           s.exit,
		menu.ActionShowContexts:   continuing(s.showContexts),
		menu.ActionCreateContext:  continuing(s.createContext),
		menu.ActionEditContext:    continuing(s.editContext),
		menu.ActionDeleteContext:  continuing(s.deleteContext),
		menu.ActionShowFolders:    continuing(s.showFolders),
		menu.ActionShowFolder:     continuing(s.showFolder),
		menu.ActionCreateFolder:   continuing(s.createFolder),
		menu.ActionEditFolder:     continuing(s.editFolder),
		menu.ActionDeleteFolder:   continuing(s.deleteFolder),
		menu.ActionShowMailbox:    continuing(s.showMailbox),
		menu.ActionShowMailboxes:  continuing(s.showMailboxes),
		menu.ActionCreateMailbox:  continuing(s.createMailbox),
		menu.ActionEditMailbox:    continuing(s.editMailbox),
		menu.ActionDeleteMailbox:  continuing(s.deleteMailbox),
		menu.ActionDeleteMessages: continuing(s.deleteMessages),
	}
	if err := s.checkCoverage(); err != nil {
		return nil, err
	}
	return s, nil
}

func newSet(deps Deps) (*Set, error) {
	switch {
	case deps.DAL == nil:
		return nil, errors.New("handler: DAL is required")
	case deps.Console == nil:
		return nil, errors.New("handler: console is required")
	case deps.Registry == nil:
		return nil, errors.New("handler: registry is required")
	}
	if deps.Logger == nil {
		deps.Logger = logger.Discard()
	}
	return &Set{
		dal:      deps.DAL,
		console:  deps.Console,
		registry: deps.Registry,
		log:      deps.Logger,
	}, nil
}

// checkCoverage fails when a registry command has no handler.
func (s *Set) checkCoverage() error {
	for _, spec := range s.registry.Commands() {
		if _, ok := s.handlers[spec.Action]; !ok {
			return fmt.Errorf("handler: %w", domain.ErrMisconfiguredCommand.Detailf(
				"command '%s' uses action '%s', which has no handler", spec.Name, spec.Action))
		}
	}
	return nil
}

// Handler returns the handler of action.
func (s *Set) Handler(action menu.Action) (Handler, bool) {
	h, ok := s.handlers[action]
	return h, ok
}

// continuing adapts a handler that never ends the shell.
func continuing(fn func(context.Context, repl.ResolvedCommand) error) Handler {
	return func(ctx context.Context, cmd repl.ResolvedCommand) (repl.Outcome, error) {
		return repl.Continue, fn(ctx, cmd)
	}
}

// expectTokens fails with ErrInvalidSyntax unless the line has exactly n
// tokens, command words included.
func expectTokens(cmd repl.ResolvedCommand, n int) error {
	if len(cmd.Tokens) != n {
		return invalidSyntax(cmd)
	}
	return nil
}

func invalidSyntax(cmd repl.ResolvedCommand) error {
	return domain.ErrInvalidSyntax.Detailf("Invalid Syntax for '%s'. Usage: %s", cmd.Spec.Name, cmd.Spec.Usage)
}

// mailboxKey parses the <number>@<domain> token at index i.
func mailboxKey(cmd repl.ResolvedCommand, i int) (domain.MailboxKey, error) {
	key, ok := domain.ParseMailboxKey(cmd.Tokens[i])
	if !ok {
		return domain.MailboxKey{}, domain.ErrInvalidSyntax.Detailf(
			"'%s' is not a mailbox. Usage: %s", cmd.Tokens[i], cmd.Spec.Usage)
	}
	return key, nil
}

// storageErr logs an infrastructure failure of the DAL and wraps it.
func (s *Set) storageErr(ctx context.Context, err error) error {
	s.logFor(ctx).Error("storage failure", "error", err)
	return domain.ErrStorage.WithCause(err)
}

// logFor returns the command-scoped logger of ctx, or the set's own logger
// when the handler runs outside a dispatched command.
func (s *Set) logFor(ctx context.Context) logger.Logger {
	if logger.CommandIDFromContext(ctx) == "" {
		return s.log
	}
	return logger.L(ctx)
}
