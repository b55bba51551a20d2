package domain

// ImageStore loads and saves PNG carriers.
type ImageStore interface {
	LoadCarrier(path string) (Carrier, error)
	SaveCarrier(path string, c Carrier) error
}

// KeyStore persists a decryption key sealed under a passphrase.
type KeyStore interface {
	SaveKey(passphrase string, key PrivateKey) error
	LoadKey(passphrase string) (PrivateKey, error)
}

// StegoService hides and extracts RSA-encrypted payloads in pixel buffers.
type StegoService interface {
	// Hide encrypts plaintext under a fresh key pair and packs it into buf
	// at k bits per byte. buf is untouched on error.
	Hide(plaintext []byte, k int, buf PixelBuffer) (KeyPair, error)
	// Extract reverses Hide. k == 0 reads k from the frame header.
	Extract(buf PixelBuffer, k int, key PrivateKey) ([]byte, error)
	// Capacity is the largest plaintext, in bytes, that fits a buffer of
	// bufLen bytes at k.
	Capacity(bufLen, k int) int
}
