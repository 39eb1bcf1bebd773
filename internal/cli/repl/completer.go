package repl

import (
	"strings"

	"github.com/yndnr/vmadmin-go/internal/cli/menu"
)

// Completer suggests command names.
type Completer struct {
	commands []string
}

// NewCompleter creates a completer over the registry's command names.
func NewCompleter(reg *menu.Registry) *Completer {
	return &Completer{commands: reg.Names()}
}

// Complete returns the commands starting with prefix, in menu order.
func (c *Completer) Complete(prefix string) []string {
	prefix = strings.ToLower(prefix)
	var suggestions []string
	for _, cmd := range c.commands {
		if strings.HasPrefix(cmd, prefix) {
			suggestions = append(suggestions, cmd)
		}
	}
	return suggestions
}

// Suggest returns candidates for an unknown command: the commands sharing
// its first word, or failing that, those starting with the first word.
func (c *Completer) Suggest(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	first := strings.ToLower(tokens[0])

	var sameVerb []string
	for _, cmd := range c.commands {
		if verb, _, _ := strings.Cut(cmd, " "); verb == first {
			sameVerb = append(sameVerb, cmd)
		}
	}
	if len(sameVerb) > 0 {
		return sameVerb
	}
	return c.Complete(first)
}
