package app

import (
	"io"
	"log/slog"

	"stegcrypt/internal/crypto"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	PrimeBits int                 // RSA prime size in bits; 0 means rsa.DefaultPrimeBits
	Rand      io.Reader           // key, salt and nonce source; nil means crypto/rand
	Logger    *slog.Logger        // nil discards diagnostics
	Scrypt    crypto.ScryptParams // zero means crypto.DefaultScryptParams
}
