package rsa

import (
	"math/big"
	"strings"

	"stegcrypt/internal/crypto"
	"stegcrypt/internal/domain"
)

// keySeparator joins the two decimal numbers of a textual key.
const keySeparator = "-"

// FormatPrivateKey renders the decryption key as "<d>-<n>".
func FormatPrivateKey(k domain.PrivateKey) string {
	return k.D.String() + keySeparator + k.N.String()
}

// FormatPublicKey renders the public key as "<e>-<n>".
func FormatPublicKey(k domain.PublicKey) string {
	return k.E.String() + keySeparator + k.N.String()
}

// ParsePrivateKey parses "<d>-<n>" as printed by FormatPrivateKey.
func ParsePrivateKey(s string) (domain.PrivateKey, error) {
	const op = "rsa.ParsePrivateKey"
	ds, ns, ok := strings.Cut(strings.TrimSpace(s), keySeparator)
	if !ok {
		return domain.PrivateKey{}, domain.NewError(domain.KindMalformedKey, op, `key must look like "<d>-<n>"`)
	}
	d, ok := new(big.Int).SetString(ds, 10)
	if !ok || d.Sign() <= 0 {
		return domain.PrivateKey{}, domain.NewError(domain.KindMalformedKey, op, "d is not a positive decimal integer")
	}
	n, ok := new(big.Int).SetString(ns, 10)
	if !ok || n.Sign() <= 0 {
		return domain.PrivateKey{}, domain.NewError(domain.KindMalformedKey, op, "n is not a positive decimal integer")
	}
	if d.Cmp(n) >= 0 {
		return domain.PrivateKey{}, domain.NewError(domain.KindMalformedKey, op, "d must be smaller than n")
	}
	if err := checkModulus(op, n); err != nil {
		return domain.PrivateKey{}, err
	}
	return domain.PrivateKey{D: d, N: n}, nil
}

// Fingerprint returns a short hex fingerprint of the public key.
func Fingerprint(pub domain.PublicKey) string {
	return crypto.Fingerprint("stegcrypt-rsa-pub", []byte(FormatPublicKey(pub)))
}
