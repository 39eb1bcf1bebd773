// Package memory provides the in-memory voicemail store.
//
// Records are kept in maps keyed by ID and handed out as copies, so a
// caller mutating a returned record changes nothing until it calls Save.
// IDs are assigned per entity type starting at 1. The store is used by the
// tests and by the "memory" provider for throwaway sessions.
package memory
