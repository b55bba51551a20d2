package app

import (
	"fmt"
	"log/slog"

	"stegcrypt/internal/domain"
	"stegcrypt/internal/protocol/capacity"
	"stegcrypt/internal/services/stego"
	"stegcrypt/internal/store"
)

// App bundles the stores and services commands use.
type App struct {
	Images domain.ImageStore
	Stego  *stego.Service
	Log    *slog.Logger

	cfg Config
}

// KeyFile returns a sealed key store at path.
func (a *App) KeyFile(path string) domain.KeyStore {
	return store.NewKeyFileStore(path, a.cfg.Rand, a.cfg.Scrypt)
}

// HideResult describes a finished hide.
type HideResult struct {
	Output string
	Key    domain.KeyPair
	Plan   capacity.Plan
}

// HideFile hides the contents of dataPath in the PNG at source and writes
// the result to output (source itself when output is empty). Plan is filled
// in even when the payload does not fit.
func (a *App) HideFile(source, dataPath, output string, k int) (HideResult, error) {
	data, err := store.ReadMessage(dataPath)
	if err != nil {
		return HideResult{}, fmt.Errorf("reading message: %w", err)
	}
	c, err := a.Images.LoadCarrier(source)
	if err != nil {
		return HideResult{}, err
	}

	res := HideResult{Output: output, Plan: a.Stego.Plan(len(data), k, len(c.Pix))}
	if res.Output == "" {
		res.Output = source
	}
	a.Log.Info("image inspected", "source", source, "width", c.Width, "height", c.Height,
		"needed_bits", res.Plan.Needed(), "available_bits", res.Plan.Available())

	if res.Key, err = a.Stego.Hide(data, k, c.Pix); err != nil {
		return res, err
	}
	if err := a.Images.SaveCarrier(res.Output, c); err != nil {
		return res, err
	}
	return res, nil
}

// ExtractFile recovers the message hidden in the PNG at source.
func (a *App) ExtractFile(source string, k int, key domain.PrivateKey) ([]byte, error) {
	c, err := a.Images.LoadCarrier(source)
	if err != nil {
		return nil, err
	}
	return a.Stego.Extract(c.Pix, k, key)
}

// SaveMessage writes an extracted message to path.
func (a *App) SaveMessage(path string, msg []byte) error {
	if err := store.WriteMessage(path, msg); err != nil {
		return fmt.Errorf("writing message: %w", err)
	}
	return nil
}

// Capacities returns the largest plaintext, in bytes, the PNG at source can
// hold for each k in ks.
func (a *App) Capacities(source string, ks []int) (map[int]int, error) {
	c, err := a.Images.LoadCarrier(source)
	if err != nil {
		return nil, err
	}
	out := make(map[int]int, len(ks))
	for _, k := range ks {
		out[k] = a.Stego.Capacity(len(c.Pix), k)
	}
	return out, nil
}
