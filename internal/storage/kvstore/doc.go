// Package kvstore implements the voicemail DAL on Badger v3.
//
// Each record is stored as JSON under "<table>/<zero-padded id>", so a
// prefix scan returns a table in ID order. IDs come from one Badger
// sequence per table. Badger has no schema, so CreateTables creates
// nothing.
package kvstore
