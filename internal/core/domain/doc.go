// Package domain defines the voicemail records administered by vmadmin.
//
// Domain models are plain value objects without any IO dependencies or
// framework coupling. This package contains:
//
//   - Context: an administrative domain that groups mailboxes
//   - Folder: a message category addressed by name and DTMF digit
//   - Mailbox: a voicemail box keyed by number within a context
//   - Message: a single recording stored in a mailbox folder
//   - Errors: coded domain errors shared by the command handlers and stores
//
// A record with ID 0 has not been saved yet; stores assign ids on Save.
package domain
