// Package store provides file-based persistence for player score records.
//
// ProfileFileStore implements domain.ProfileStore by serialising every
// profile into a single JSON document under the configured home directory.
// Writes go through a temp file and an atomic rename. All methods are
// concurrency-safe via internal locking.
//
// A sealed store keeps the same document encrypted under a passphrase: the
// key is derived with scrypt and the payload sealed with ChaCha20-Poly1305.
// A wrong passphrase or a modified file is reported as ErrWrongPassphrase.
package store
