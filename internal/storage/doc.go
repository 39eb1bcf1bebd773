// Package storage defines the voicemail data-access layer (DAL).
//
// The DAL is four repositories (contexts, folders, mailboxes, messages)
// behind interfaces, so the command handlers never see the backend. Open
// builds a DAL for one of the providers:
//
//   - sqlite: SQLite file via sqlx (package sqlstore)
//   - badger: Badger key-value directory (package kvstore)
//   - memory: process-local maps (package memory), lost on exit
//
// Lookups report a missing record as nil with a nil error; a non-nil error
// is always an infrastructure failure.
package storage
