package handler

import (
	"context"
	"strings"

	"github.com/yndnr/vmadmin-go/internal/cli/repl"
	"github.com/yndnr/vmadmin-go/internal/core/domain"
)

// showHelp lists every command, or describes the command named by the
// arguments.
func (s *Set) showHelp(_ context.Context, cmd repl.ResolvedCommand) (repl.Outcome, error) {
	args := cmd.Args()
	if len(args) == 0 {
		s.console.Header("Command List:")
		for _, spec := range s.registry.Commands() {
			s.console.Command(spec.Name, spec.Description)
		}
		return repl.Continue, nil
	}

	name := strings.Join(args, " ")
	spec, ok := s.registry.Lookup(strings.ToLower(name))
	if !ok {
		return repl.Continue, domain.ErrNotFound.Detailf("Command '%s' does not exist.", name)
	}
	s.console.Usage(spec.Usage)
	s.console.Info("%s", spec.Description)
	for _, line := range spec.Details {
		s.console.Info("  %s", line)
	}
	return repl.Continue, nil
}

func (s *Set) exit(context.Context, repl.ResolvedCommand) (repl.Outcome, error) {
	s.console.Farewell()
	return repl.Terminate, nil
}
