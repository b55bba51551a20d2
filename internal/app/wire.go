package app

import (
	"log/slog"

	"stegcrypt/internal/crypto"
	"stegcrypt/internal/protocol/rsa"
	"stegcrypt/internal/services/stego"
	"stegcrypt/internal/store"
)

// New constructs the dependency graph from cfg.
func New(cfg Config) *App {
	if cfg.PrimeBits == 0 {
		cfg.PrimeBits = rsa.DefaultPrimeBits
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Scrypt == (crypto.ScryptParams{}) {
		cfg.Scrypt = crypto.DefaultScryptParams()
	}

	return &App{
		Images: store.NewImageFileStore(),
		Stego:  stego.New(cfg.Rand, cfg.PrimeBits, cfg.Logger),
		Log:    cfg.Logger,
		cfg:    cfg,
	}
}
