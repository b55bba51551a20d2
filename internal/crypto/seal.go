package crypto

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"stegcrypt/internal/util/memzero"
)

const (
	// sealFormatVersion is the current version of the sealed blob format.
	sealFormatVersion = 1

	SaltBytes = 16
)

// ErrWrongPassphrase is returned when the passphrase is incorrect or the
// sealed blob has been modified.
var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted key file")

// ErrScryptParams is returned for a blob whose scrypt cost is out of range.
var ErrScryptParams = errors.New("sealed blob has out-of-range scrypt parameters")

// Upper bounds accepted when opening a blob.
const (
	MaxScryptN = 1 << 20
	MaxScryptR = 32
	MaxScryptP = 16
)

// ScryptParams are the scrypt cost parameters stored alongside a blob.
type ScryptParams struct {
	N, R, P int
}

// Valid reports whether p is within the bounds OpenSecret accepts.
func (p ScryptParams) Valid() bool {
	return p.N > 1 && p.N <= MaxScryptN && p.N&(p.N-1) == 0 &&
		p.R >= 1 && p.R <= MaxScryptR &&
		p.P >= 1 && p.P <= MaxScryptP
}

// DefaultScryptParams are the tunables used for new blobs.
func DefaultScryptParams() ScryptParams { return ScryptParams{N: 1 << 15, R: 8, P: 1} }

// sealed is the JSON structure holding the ciphertext and KDF parameters.
type sealed struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Nonce  []byte `json:"nonce"`
	Cipher []byte `json:"cipher"`
}

// SealSecret encrypts plaintext under a key derived from passphrase and
// returns the JSON blob. A nil random uses crypto/rand.Reader.
func SealSecret(random io.Reader, passphrase string, plaintext []byte, params ScryptParams) ([]byte, error) {
	if random == nil {
		random = rand.Reader
	}
	salt := make([]byte, SaltBytes)
	if _, err := io.ReadFull(random, salt); err != nil {
		return nil, err
	}
	nonce := make([]byte, chacha20poly1305.NonceSize)
	if _, err := io.ReadFull(random, nonce); err != nil {
		return nil, err
	}

	key, err := scrypt.Key([]byte(passphrase), salt, params.N, params.R, params.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	ct := aead.Seal(nil, nonce, plaintext, salt)

	return json.Marshal(sealed{
		V:      sealFormatVersion,
		Salt:   salt,
		N:      params.N,
		R:      params.R,
		P:      params.P,
		Nonce:  nonce,
		Cipher: ct,
	})
}

// OpenSecret decrypts a blob produced by SealSecret.
func OpenSecret(passphrase string, blob []byte) ([]byte, error) {
	var s sealed
	if err := json.Unmarshal(blob, &s); err != nil {
		return nil, fmt.Errorf("decoding sealed blob: %w", err)
	}
	if s.V > sealFormatVersion {
		return nil, fmt.Errorf("unsupported sealed blob version %d", s.V)
	}
	if len(s.Salt) != SaltBytes || len(s.Nonce) != chacha20poly1305.NonceSize {
		return nil, ErrWrongPassphrase
	}
	if !(ScryptParams{N: s.N, R: s.R, P: s.P}).Valid() {
		return nil, fmt.Errorf("%w: N=%d r=%d p=%d", ErrScryptParams, s.N, s.R, s.P)
	}

	key, err := scrypt.Key([]byte(passphrase), s.Salt, s.N, s.R, s.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	pt, err := aead.Open(nil, s.Nonce, s.Cipher, s.Salt)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}
