package menu

import "fmt"

// Action identifies the handler that runs a command.
type Action int

// Actions. New values must also be added to actionNames.
const (
	ActionInvalid Action = iota
	ActionShowHelp
	ActionExit
	ActionShowContexts
	ActionCreateContext
	ActionEditContext
	ActionDeleteContext
	ActionShowFolders
	ActionShowFolder
	ActionCreateFolder
	ActionEditFolder
	ActionDeleteFolder
	ActionShowMailbox
	ActionShowMailboxes
	ActionCreateMailbox
	ActionEditMailbox
	ActionDeleteMailbox
	ActionDeleteMessages
)

var actionNames = map[Action]string{
	ActionShowHelp:       "showHelp",
	ActionExit:           "exit",
	ActionShowContexts:   "showContexts",
	ActionCreateContext:  "createContext",
	ActionEditContext:    "editContext",
	ActionDeleteContext:  "deleteContext",
	ActionShowFolders:    "showFolders",
	ActionShowFolder:     "showFolder",
	ActionCreateFolder:   "createFolder",
	ActionEditFolder:     "editFolder",
	ActionDeleteFolder:   "deleteFolder",
	ActionShowMailbox:    "showMailbox",
	ActionShowMailboxes:  "showMailboxes",
	ActionCreateMailbox:  "createMailbox",
	ActionEditMailbox:    "editMailbox",
	ActionDeleteMailbox:  "deleteMailbox",
	ActionDeleteMessages: "deleteMessages",
}

// AllActions returns every valid action in declaration order.
func AllActions() []Action {
	out := make([]Action, 0, len(actionNames))
	for a := ActionShowHelp; a <= ActionDeleteMessages; a++ {
		out = append(out, a)
	}
	return out
}

// String returns the name used in menu.yaml.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Valid reports whether a names a handler.
func (a Action) Valid() bool {
	_, ok := actionNames[a]
	return ok
}

// MarshalText implements encoding.TextMarshaler.
func (a Action) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("invalid action %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Action) UnmarshalText(text []byte) error {
	for _, action := range AllActions() {
		if action.String() == string(text) {
			*a = action
			return nil
		}
	}
	return fmt.Errorf("unknown action %q", text)
}
