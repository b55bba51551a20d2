package rsa

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/big"

	"stegcrypt/internal/domain"
)

// lengthPrefix is the size of the plaintext length carried inside the
// encrypted stream.
const lengthPrefix = 4

// Encrypt returns m^e mod n. m must lie in [0, n).
func Encrypt(m *big.Int, pub domain.PublicKey) (*big.Int, error) {
	if m.Sign() < 0 || m.Cmp(pub.N) >= 0 {
		return nil, domain.NewError(domain.KindMessageTooLarge, "rsa.Encrypt",
			fmt.Sprintf("message integer must be below n (%d bits)", pub.N.BitLen()))
	}
	return new(big.Int).Exp(m, pub.E, pub.N), nil
}

// Decrypt returns c^d mod n. Any c is accepted; a wrong key or a
// misread stream yields an unrelated value rather than an error.
func Decrypt(c *big.Int, priv domain.PrivateKey) *big.Int {
	return new(big.Int).Exp(c, priv.D, priv.N)
}

// BlockSizes returns the plaintext and ciphertext block widths in bytes for
// a modulus of nBits bits.
func BlockSizes(nBits int) (plain, cipher int) {
	return (nBits - 1) / 8, (nBits + 7) / 8
}

// CiphertextLen is the length EncryptBytes produces for a plaintext of
// plaintextLen bytes under an nBits modulus.
func CiphertextLen(plaintextLen, nBits int) int {
	plainW, cipherW := BlockSizes(nBits)
	if plainW < 1 {
		return 0
	}
	blocks := (plaintextLen + lengthPrefix + plainW - 1) / plainW
	return blocks * cipherW
}

// MaxPlaintextLen is the longest plaintext whose ciphertext fits in
// cipherBytes. It is 0 when no non-empty message fits.
func MaxPlaintextLen(cipherBytes, nBits int) int {
	plainW, cipherW := BlockSizes(nBits)
	if plainW < 1 || cipherBytes < 0 {
		return 0
	}
	if n := (cipherBytes/cipherW)*plainW - lengthPrefix; n > 0 {
		return n
	}
	return 0
}

// EncryptBytes encrypts msg block by block under pub.
func EncryptBytes(msg []byte, pub domain.PublicKey) ([]byte, error) {
	const op = "rsa.EncryptBytes"
	if err := checkModulus(op, pub.N); err != nil {
		return nil, err
	}
	if uint64(len(msg)) > math.MaxUint32 {
		return nil, domain.NewError(domain.KindMessageTooLarge, op, "message longer than 4 GiB")
	}
	plainW, cipherW := BlockSizes(pub.N.BitLen())

	blocks := (len(msg) + lengthPrefix + plainW - 1) / plainW
	framed := make([]byte, blocks*plainW)
	binary.BigEndian.PutUint32(framed, uint32(len(msg)))
	copy(framed[lengthPrefix:], msg)

	out := make([]byte, blocks*cipherW)
	m := new(big.Int)
	for i := 0; i < blocks; i++ {
		m.SetBytes(framed[i*plainW : (i+1)*plainW])
		c, err := Encrypt(m, pub)
		if err != nil {
			return nil, err
		}
		c.FillBytes(out[i*cipherW : (i+1)*cipherW])
	}
	return out, nil
}

// DecryptBytes reverses EncryptBytes.
//
// With the wrong key or bit depth the result is garbage: oversized blocks
// keep their low-order bytes and an oversized length prefix is clamped to
// what was recovered.
func DecryptBytes(ct []byte, priv domain.PrivateKey) ([]byte, error) {
	const op = "rsa.DecryptBytes"
	if err := checkModulus(op, priv.N); err != nil {
		return nil, err
	}
	plainW, cipherW := BlockSizes(priv.N.BitLen())
	if len(ct) == 0 || len(ct)%cipherW != 0 {
		return nil, domain.NewError(domain.KindFrameCorruption, op,
			fmt.Sprintf("ciphertext of %d bytes is not a whole number of %d-byte blocks", len(ct), cipherW))
	}

	blocks := len(ct) / cipherW
	framed := make([]byte, blocks*plainW)
	slot := make([]byte, cipherW)
	c := new(big.Int)
	for i := 0; i < blocks; i++ {
		c.SetBytes(ct[i*cipherW : (i+1)*cipherW])
		Decrypt(c, priv).FillBytes(slot)
		copy(framed[i*plainW:], slot[cipherW-plainW:])
	}
	if len(framed) < lengthPrefix {
		return nil, domain.NewError(domain.KindFrameCorruption, op, "ciphertext too short for a length prefix")
	}

	body := framed[lengthPrefix:]
	size := uint64(binary.BigEndian.Uint32(framed))
	if size > uint64(len(body)) {
		size = uint64(len(body))
	}
	return body[:size], nil
}

func checkModulus(op string, n *big.Int) error {
	if n == nil || n.BitLen() < 2*MinPrimeBits {
		return domain.NewError(domain.KindMalformedKey, op,
			fmt.Sprintf("modulus must have at least %d bits", 2*MinPrimeBits))
	}
	return nil
}
