package menu

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed menu.yaml
var defaultMenu []byte

// CommandSpec describes one command.
type CommandSpec struct {
	Name        string   `yaml:"name"`
	Action      Action   `yaml:"action"`
	Usage       string   `yaml:"usage"`
	Description string   `yaml:"description"`
	Details     []string `yaml:"details"`
	// Redact lists token positions hidden from audit logs.
	Redact []int `yaml:"redact"`
}

// Words returns the number of tokens the command key occupies.
func (s CommandSpec) Words() int {
	return len(strings.Fields(s.Name))
}

// Registry is the read-only set of commands.
type Registry struct {
	specs  []CommandSpec
	byName map[string]int
}

type menuFile struct {
	Commands []CommandSpec `yaml:"commands"`
}

// Default loads the embedded menu.
func Default() (*Registry, error) {
	return Load(defaultMenu)
}

// MustDefault is like Default but panics on error. The embedded menu is
// covered by tests, so failure means a broken build.
func MustDefault() *Registry {
	r, err := Default()
	if err != nil {
		panic(err)
	}
	return r
}

// Load parses a menu document.
func Load(data []byte) (*Registry, error) {
	var f menuFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing menu: %w", err)
	}
	return New(f.Commands)
}

// New builds a registry from specs, keeping their order.
func New(specs []CommandSpec) (*Registry, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("menu has no commands")
	}

	r := &Registry{
		specs:  make([]CommandSpec, 0, len(specs)),
		byName: make(map[string]int, len(specs)),
	}
	for i, spec := range specs {
		if err := validate(spec); err != nil {
			return nil, fmt.Errorf("command %d (%q): %w", i, spec.Name, err)
		}
		if _, dup := r.byName[spec.Name]; dup {
			return nil, fmt.Errorf("duplicate command %q", spec.Name)
		}
		spec.Details = append([]string(nil), spec.Details...)
		spec.Redact = append([]int(nil), spec.Redact...)
		r.byName[spec.Name] = len(r.specs)
		r.specs = append(r.specs, spec)
	}
	return r, nil
}

func validate(spec CommandSpec) error {
	words := strings.Fields(spec.Name)
	switch {
	case len(words) == 0:
		return fmt.Errorf("empty name")
	case len(words) > 2:
		return fmt.Errorf("name has more than two words")
	case strings.Join(words, " ") != spec.Name:
		return fmt.Errorf("name must use single spaces")
	case strings.ToLower(spec.Name) != spec.Name:
		return fmt.Errorf("name must be lower case")
	case !spec.Action.Valid():
		return fmt.Errorf("missing or invalid action")
	case spec.Usage == "":
		return fmt.Errorf("empty usage")
	}
	for _, pos := range spec.Redact {
		if pos < len(words) {
			return fmt.Errorf("redact position %d is part of the command name", pos)
		}
	}
	return nil
}

// Lookup returns the command with the exact name.
func (r *Registry) Lookup(name string) (CommandSpec, bool) {
	i, ok := r.byName[name]
	if !ok {
		return CommandSpec{}, false
	}
	return r.specs[i], true
}

// Commands returns every command in menu order.
func (r *Registry) Commands() []CommandSpec {
	return append([]CommandSpec(nil), r.specs...)
}

// Names returns every command name in menu order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.specs))
	for i, s := range r.specs {
		names[i] = s.Name
	}
	return names
}

// SingleWord returns the names of one-word commands.
func (r *Registry) SingleWord() []string {
	var names []string
	for _, s := range r.specs {
		if s.Words() == 1 {
			names = append(names, s.Name)
		}
	}
	return names
}

