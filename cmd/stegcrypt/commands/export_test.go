package commands

import "io"

// SetRandSource replaces the key-generation randomness until the returned
// func is called.
func SetRandSource(r io.Reader) (restore func()) {
	prev := randSource
	randSource = r
	return func() { randSource = prev }
}
