// Package crypto exposes the symmetric helpers used around the RSA engine.
//
// Contents
//
//   - Sealing small secrets under a passphrase with scrypt and
//     ChaCha20-Poly1305 (SealSecret, OpenSecret)
//   - Short labelled fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// The sealed form is a versioned JSON blob carrying the scrypt parameters,
// so a blob written with different tunables still opens. Derived keys are
// wiped with memzero once used. The RSA arithmetic itself lives in
// internal/protocol/rsa.
package crypto
