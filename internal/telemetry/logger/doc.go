// Package logger provides structured audit logging for vmadmin.
//
// The package wraps log/slog:
//
//   - logger.go: Logger interface, configuration and construction
//   - context.go: context propagation of the logger and the command ID
//   - redact.go: masking of password-like attributes
//
// Audit output is separate from what the operator sees at the prompt;
// the shell prints through the output package, never through a Logger.
package logger
