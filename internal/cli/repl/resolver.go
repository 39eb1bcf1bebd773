package repl

import (
	"strings"

	"github.com/yndnr/vmadmin-go/internal/cli/menu"
	"github.com/yndnr/vmadmin-go/internal/core/domain"
)

// ResolvedCommand is a tokenized line matched to its command.
type ResolvedCommand struct {
	Spec menu.CommandSpec
	// Key is the command key as looked up (after case folding).
	Key string
	// Tokens holds every token of the line, command words included.
	Tokens []string
	// Line is the raw input line.
	Line string
}

// Args returns the tokens after the command words.
func (c ResolvedCommand) Args() []string {
	n := c.Spec.Words()
	if n > len(c.Tokens) {
		return nil
	}
	return c.Tokens[n:]
}

// Resolver matches tokens to registry commands.
type Resolver struct {
	registry      *menu.Registry
	single        map[string]bool
	caseSensitive bool
}

// NewResolver creates a resolver over reg. The one-word commands are taken
// from the registry. Unless caseSensitive is set, keys are lower-cased
// before lookup.
func NewResolver(reg *menu.Registry, caseSensitive bool) *Resolver {
	single := make(map[string]bool)
	for _, name := range reg.SingleWord() {
		single[name] = true
	}
	return &Resolver{registry: reg, single: single, caseSensitive: caseSensitive}
}

func (r *Resolver) fold(s string) string {
	if r.caseSensitive {
		return s
	}
	return strings.ToLower(s)
}

// Key returns the command key of tokens: the first token when it is the
// only one or names a one-word command, else the first two joined by a
// space. tokens must not be empty.
func (r *Resolver) Key(tokens []string) string {
	first := r.fold(tokens[0])
	if len(tokens) == 1 || r.single[first] {
		return first
	}
	return first + " " + r.fold(tokens[1])
}

// Resolve matches tokens (taken from line) to a command. An unmatched key
// fails with ErrUnknownCommand naming the raw line.
func (r *Resolver) Resolve(line string, tokens []string) (ResolvedCommand, error) {
	if len(tokens) == 0 {
		return ResolvedCommand{}, domain.ErrUnknownCommand.Detailf("Unknown command '%s'", line)
	}

	key := r.Key(tokens)
	spec, ok := r.registry.Lookup(key)
	if !ok {
		return ResolvedCommand{}, domain.ErrUnknownCommand.Detailf("Unknown command '%s'", line)
	}
	return ResolvedCommand{Spec: spec, Key: key, Tokens: tokens, Line: line}, nil
}

// Lookup returns the command with the given name, folding case like Resolve.
func (r *Resolver) Lookup(name string) (menu.CommandSpec, bool) {
	return r.registry.Lookup(r.fold(name))
}
