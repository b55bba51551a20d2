package domain

import "math/big"

// PixelBuffer is the ordered R,G,B channel bytes of a decoded image,
// row-major. Alpha is kept out of it so hidden bits never touch
// transparency.
type PixelBuffer []byte

// Carrier is a decoded PNG as handed to the stego core.
type Carrier struct {
	Width  int
	Height int
	Pix    PixelBuffer // len = Width * Height * 3
	Alpha  []byte      // len = Width * Height
}

// PublicKey is the (e, n) half of a demo-grade RSA key pair.
type PublicKey struct {
	E *big.Int
	N *big.Int
}

// PrivateKey is the (d, n) half. Its textual form is the decryption key
// handed to the user.
type PrivateKey struct {
	D *big.Int
	N *big.Int
}

// KeyPair is generated fresh for every hide and never persisted by the core.
// P and Q are kept so callers can check e·d ≡ 1 (mod φ(n)).
type KeyPair struct {
	Public  PublicKey
	Private PrivateKey
	P, Q    *big.Int
}

// Phi returns (p-1)(q-1).
func (kp KeyPair) Phi() *big.Int {
	one := big.NewInt(1)
	p1 := new(big.Int).Sub(kp.P, one)
	q1 := new(big.Int).Sub(kp.Q, one)
	return p1.Mul(p1, q1)
}

// Frame is the length-prefixed payload laid into a PixelBuffer.
type Frame struct {
	Bits    int    // k, bits per host byte used by the payload
	Length  uint32 // payload length in bytes
	Payload []byte // RSA ciphertext slots
}
