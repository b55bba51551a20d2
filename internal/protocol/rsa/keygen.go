package rsa

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"stegcrypt/internal/domain"
)

const (
	MinPrimeBits     = 8
	MaxPrimeBits     = 2048
	DefaultPrimeBits = 32

	// MaxPrimeAttempts bounds the candidates drawn for a single prime.
	MaxPrimeAttempts = 10000
	// MaxPairAttempts bounds the redraws of q while it equals p.
	MaxPairAttempts = 16
	// MaxExponentCandidates bounds the odd values tried for e.
	MaxExponentCandidates = 1 << 16

	primalityRounds = 20
)

var (
	one             = big.NewInt(1)
	two             = big.NewInt(2)
	defaultExponent = big.NewInt(65537)
)

// GenerateKeyPair returns a fresh key pair whose modulus has 2*primeBits bits.
// A nil random uses crypto/rand.Reader.
func GenerateKeyPair(random io.Reader, primeBits int) (domain.KeyPair, error) {
	if primeBits < MinPrimeBits || primeBits > MaxPrimeBits {
		return domain.KeyPair{}, domain.NewError(domain.KindInvalidArgument, "rsa.GenerateKeyPair",
			fmt.Sprintf("prime size must be %d-%d bits, got %d", MinPrimeBits, MaxPrimeBits, primeBits))
	}
	if random == nil {
		random = rand.Reader
	}

	p, err := generatePrime(random, primeBits)
	if err != nil {
		return domain.KeyPair{}, err
	}
	var q *big.Int
	for i := 0; ; i++ {
		if i == MaxPairAttempts {
			return domain.KeyPair{}, domain.NewError(domain.KindKeyGeneration, "rsa.GenerateKeyPair",
				"could not draw two distinct primes")
		}
		if q, err = generatePrime(random, primeBits); err != nil {
			return domain.KeyPair{}, err
		}
		if q.Cmp(p) != 0 {
			break
		}
	}

	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))

	e, err := chooseExponent(phi)
	if err != nil {
		return domain.KeyPair{}, err
	}
	d := modInverse(e, phi)

	return domain.KeyPair{
		Public:  domain.PublicKey{E: e, N: n},
		Private: domain.PrivateKey{D: d, N: new(big.Int).Set(n)},
		P:       p,
		Q:       q,
	}, nil
}

// generatePrime draws odd candidates of exactly bits bits with the top two
// bits set until one passes the primality test.
func generatePrime(random io.Reader, bits int) (*big.Int, error) {
	buf := make([]byte, (bits+7)/8)
	excess := uint(len(buf)*8 - bits)
	p := new(big.Int)
	for i := 0; i < MaxPrimeAttempts; i++ {
		if _, err := io.ReadFull(random, buf); err != nil {
			return nil, domain.WrapError(domain.KindKeyGeneration, "rsa.generatePrime", "reading randomness", err)
		}
		buf[0] &= byte(0xFF) >> excess
		p.SetBytes(buf)
		p.SetBit(p, bits-1, 1)
		p.SetBit(p, bits-2, 1)
		p.SetBit(p, 0, 1)
		if p.ProbablyPrime(primalityRounds) {
			return p, nil
		}
	}
	return nil, domain.NewError(domain.KindKeyGeneration, "rsa.generatePrime",
		fmt.Sprintf("no %d-bit prime within %d candidates", bits, MaxPrimeAttempts))
}

// chooseExponent picks the first odd e >= 65537 (or >= 3 for tiny φ) that is
// coprime to phi and below it.
func chooseExponent(phi *big.Int) (*big.Int, error) {
	e := new(big.Int).Set(defaultExponent)
	if e.Cmp(phi) >= 0 {
		e.SetInt64(3)
	}
	g := new(big.Int)
	for i := 0; i < MaxExponentCandidates && e.Cmp(phi) < 0; i++ {
		if g.GCD(nil, nil, e, phi).Cmp(one) == 0 {
			return e, nil
		}
		e.Add(e, two)
	}
	return nil, domain.NewError(domain.KindKeyGeneration, "rsa.chooseExponent",
		fmt.Sprintf("no public exponent coprime to φ=%s", phi))
}

// modInverse returns d with e·d ≡ 1 (mod phi), 0 < d < phi, using the
// extended Euclidean algorithm. e must be coprime to phi.
func modInverse(e, phi *big.Int) *big.Int {
	x := new(big.Int)
	new(big.Int).GCD(x, nil, e, phi)
	return x.Mod(x, phi)
}
