// Package menu holds the command registry of the interactive shell.
//
// The registry is loaded once from the embedded menu.yaml. Each entry maps
// a command key ("create context", "exit") to an Action and the help text
// shown for it. Unknown action names, duplicate keys and malformed keys are
// rejected at load time.
package menu
