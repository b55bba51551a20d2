package store

import (
	"fmt"
	"io"
	"sync"

	"stegcrypt/internal/crypto"
	"stegcrypt/internal/domain"
	"stegcrypt/internal/protocol/rsa"
	"stegcrypt/internal/util/memzero"
)

// KeyFileStore keeps one decryption key sealed under a passphrase at path.
type KeyFileStore struct {
	path   string
	random io.Reader
	params crypto.ScryptParams
	mu     sync.Mutex
}

// NewKeyFileStore returns a store for the key file at path. A nil random
// uses crypto/rand.
func NewKeyFileStore(path string, random io.Reader, params crypto.ScryptParams) *KeyFileStore {
	return &KeyFileStore{path: path, random: random, params: params}
}

var _ domain.KeyStore = (*KeyFileStore)(nil)

func (s *KeyFileStore) SaveKey(passphrase string, key domain.PrivateKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw := []byte(rsa.FormatPrivateKey(key))
	defer memzero.Zero(raw)

	blob, err := crypto.SealSecret(s.random, passphrase, raw, s.params)
	if err != nil {
		return fmt.Errorf("sealing key: %w", err)
	}
	return writeFile(s.path, blob, 0o600)
}

func (s *KeyFileStore) LoadKey(passphrase string) (domain.PrivateKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := readFile(s.path)
	if err != nil {
		return domain.PrivateKey{}, err
	}
	raw, err := crypto.OpenSecret(passphrase, blob)
	if err != nil {
		return domain.PrivateKey{}, err
	}
	defer memzero.Zero(raw)

	return rsa.ParsePrivateKey(string(raw))
}
