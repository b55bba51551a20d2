// Package app wires application dependencies for the CLI.
//
// It builds the concrete stores and the stego codec from Config and exposes
// the file-level hide/extract workflows that commands call.
package app
