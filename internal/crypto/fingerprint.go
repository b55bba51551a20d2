package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

const fingerprintBytes = 10

// Fingerprint returns a short hex digest of data, domain-separated by label.
//
// It hashes label || 0x00 || data with SHA-256 and truncates to 10 bytes
// (20 hex chars).
func Fingerprint(label string, data []byte) string {
	h := sha256.New()
	_, _ = h.Write([]byte(label))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write(data)
	return hex.EncodeToString(h.Sum(nil)[:fingerprintBytes])
}
