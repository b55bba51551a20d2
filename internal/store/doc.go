// Package store provides file-based persistence for stegcrypt.
//
// It contains concrete implementations of the domain storage interfaces:
//   - PNG carriers (ImageFileStore): decode any PNG into an 8-bit RGB channel
//     buffer plus an alpha plane, and encode it back losslessly
//   - Sealed decryption keys (KeyFileStore): the "<d>-<n>" key text sealed
//     under a passphrase, written with 0600 permissions
//
// Writes go to a temp file in the target directory and are renamed into
// place, so a failed save never leaves a truncated image or key behind.
package store
