// Package sqlstore implements the voicemail DAL on SQLite.
//
// The driver is modernc.org/sqlite (pure Go, no cgo) accessed through sqlx.
// Tables are created by schema migrations tracked in a schema_version table,
// so CreateTables can be run any number of times.
package sqlstore
