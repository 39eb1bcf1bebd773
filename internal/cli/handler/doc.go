// Package handler runs shell commands.
//
// Set holds one Handler per menu action and refuses to build when the menu
// names an action it cannot run. Dispatcher is the single entry point the
// REPL calls: it tags the command with a ULID, runs the handler, turns a
// panic into an error, and records metrics and an audit log line.
//
// Every domain handler checks its arity first, then the existence and
// conflict rules of its command, and only then writes. A failed command
// leaves the store unchanged.
package handler
