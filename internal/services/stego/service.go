package stego

import (
	"fmt"
	"io"
	"log/slog"

	"stegcrypt/internal/domain"
	"stegcrypt/internal/protocol/bits"
	"stegcrypt/internal/protocol/capacity"
	"stegcrypt/internal/protocol/frame"
	"stegcrypt/internal/protocol/rsa"
)

// Service is the steganography codec. It holds configuration only.
type Service struct {
	random    io.Reader
	primeBits int
	log       *slog.Logger
}

// New returns a codec that generates primeBits-bit primes from random.
// A nil random uses crypto/rand; a nil logger discards output.
func New(random io.Reader, primeBits int, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{random: random, primeBits: primeBits, log: log}
}

// Hide encrypts plaintext under a fresh key pair and embeds it in buf at k
// bits per byte. The returned pair's Private half is the decryption key.
func (s *Service) Hide(plaintext []byte, k int, buf domain.PixelBuffer) (domain.KeyPair, error) {
	const op = "stego.Hide"
	if !bits.ValidBits(k) {
		return domain.KeyPair{}, domain.NewError(domain.KindInvalidArgument, op,
			fmt.Sprintf("bits per byte must be %d-%d, got %d", bits.MinBits, bits.MaxBits, k))
	}

	kp, err := rsa.GenerateKeyPair(s.random, s.primeBits)
	if err != nil {
		return domain.KeyPair{}, err
	}
	s.log.Debug("key pair generated", "stage", "KeyGenerated",
		"modulus_bits", kp.Public.N.BitLen(), "fingerprint", rsa.Fingerprint(kp.Public))

	ct, err := rsa.EncryptBytes(plaintext, kp.Public)
	if err != nil {
		return domain.KeyPair{}, err
	}
	s.log.Debug("payload encrypted", "stage", "Encrypted", "plaintext_bytes", len(plaintext), "cipher_bytes", len(ct))

	f, err := frame.New(ct, k)
	if err != nil {
		return domain.KeyPair{}, err
	}
	s.log.Debug("payload framed", "stage", "Framed", "bits", k)

	plan := framePlan(len(ct), k, len(buf))
	if !plan.Fits() {
		return domain.KeyPair{}, domain.NewError(domain.KindCapacity, op,
			fmt.Sprintf("need %d bits, %d available (overflow %d bits)", plan.Needed(), plan.Available(), plan.Overflow()))
	}
	if err := frame.Write(f, buf); err != nil {
		return domain.KeyPair{}, err
	}
	s.log.Debug("frame embedded", "stage", "Embedded", "needed_bits", plan.Needed(), "available_bits", plan.Available())

	return kp, nil
}

// Extract recovers the plaintext hidden in buf.
//
// k == 0 takes k from the frame header. Any other k is used as given even
// when the header disagrees; a mismatched k produces garbage, not an error.
func (s *Service) Extract(buf domain.PixelBuffer, k int, key domain.PrivateKey) ([]byte, error) {
	const op = "stego.Extract"
	if k != 0 && !bits.ValidBits(k) {
		return nil, domain.NewError(domain.KindInvalidArgument, op,
			fmt.Sprintf("bits per byte must be 0 (auto) or %d-%d, got %d", bits.MinBits, bits.MaxBits, k))
	}
	if key.D == nil || key.N == nil {
		return nil, domain.NewError(domain.KindMalformedKey, op, "decryption key is empty")
	}

	h, err := frame.ReadHeader(buf)
	if err != nil {
		return nil, err
	}
	s.log.Debug("header read", "stage", "HeaderRead", "length", h.Length, "header_bits", h.Bits)

	switch {
	case k == 0:
		k = h.Bits
	case k != h.Bits:
		s.log.Warn("bits per byte differ from the frame header; output will not match the hidden message",
			"requested", k, "header", h.Bits)
	}

	ct, err := frame.ReadPayload(buf, h, k)
	if err != nil {
		return nil, err
	}
	s.log.Debug("payload read", "stage", "PayloadRead", "bits", k, "cipher_bytes", len(ct))

	pt, err := rsa.DecryptBytes(ct, key)
	if err != nil {
		return nil, err
	}
	s.log.Debug("payload decrypted", "stage", "Decrypted", "plaintext_bytes", len(pt))
	return pt, nil
}

// Plan reports how many bits a plaintext of plaintextLen bytes needs in a
// buffer of bufLen bytes at k, for keys of the configured size.
func (s *Service) Plan(plaintextLen, k, bufLen int) capacity.Plan {
	return framePlan(rsa.CiphertextLen(plaintextLen, s.modulusBits()), k, bufLen)
}

// Capacity is the largest plaintext, in bytes, that fits bufLen bytes at k.
func (s *Service) Capacity(bufLen, k int) int {
	slots := bufLen - frame.HeaderSlots
	if slots <= 0 || !bits.ValidBits(k) {
		return 0
	}
	return rsa.MaxPlaintextLen(slots*k/8, s.modulusBits())
}

// PrimeBits is the prime size used for new key pairs.
func (s *Service) PrimeBits() int { return s.primeBits }

func (s *Service) modulusBits() int { return 2 * s.primeBits }

// framePlan charges the fixed header as HeaderSlots slots at k bits each, so
// the comparison against bufLen*k is exact even though the header itself is
// written at one bit per slot.
func framePlan(cipherLen, k, bufLen int) capacity.Plan {
	return capacity.Plan{
		BufferLen:   bufLen,
		Bits:        k,
		HeaderBits:  frame.HeaderSlots * k,
		PayloadBits: 8 * cipherLen,
	}
}

// Compile-time assertion that Service implements domain.StegoService.
var _ domain.StegoService = (*Service)(nil)
