// Package kv is the client's durable key-value store.
//
// Values are opaque byte slices; callers own the encoding. Get returns
// (nil, nil) for an absent key. Multi-key updates go through a Transactor so
// that readers never observe a half-applied change.
//
// Two implementations are provided: SQLiteRepository/SQLiteTransactor over
// the migrated "kv" table, and MemoryStore, which backs tests and the CLI's
// throwaway session when no database path is configured.
package kv
