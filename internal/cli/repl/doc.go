// Package repl implements the interactive shell of vmadmin.
//
//   - tokenize.go: quote-aware splitting of an input line
//   - resolver.go: command key resolution against the menu registry
//   - repl.go: the read-resolve-dispatch loop
//   - completer.go: prefix completion and "did you mean" suggestions
//   - history.go: command history persistence
//
// The loop is strictly serial. A line is read, resolved and dispatched to
// completion before the next prompt is printed.
package repl
