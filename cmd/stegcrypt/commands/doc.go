// Package commands defines the stegcrypt CLI and wires dependencies for subcommands.
//
// Commands
//
//   - hide       Encrypt a file with a fresh RSA key and hide it in a PNG
//   - extract    Recover and decrypt a hidden message
//   - capacity   Report how many bytes a PNG can hold at each bit depth
//
// # Implementation
//
// The root command builds the app (stores, stego codec, logger) in
// PersistentPreRunE, so every subcommand sees the --key-bits and --verbose
// settings. --bits and --key-bits are range-checked pflag values, so an
// out-of-range value fails at parse time with the usage text.
package commands
