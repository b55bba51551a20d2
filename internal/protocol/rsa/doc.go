// Package rsa implements the demo-grade RSA engine that protects hidden
// payloads.
//
// # Overview
//
// Keys are built from two small random primes. The arithmetic is textbook
// RSA over math/big: no padding scheme and no blinding. It is meant for
// demonstration and is not secure.
//
// # Key generation
//
//  1. Draw primeBits random bits, force the two top bits and the low bit,
//     and test with big.Int.ProbablyPrime (Miller-Rabin plus Baillie-PSW).
//     At most MaxPrimeAttempts candidates are tried per prime.
//  2. Repeat for q until q != p (at most MaxPairAttempts times).
//  3. Start e at 65537 (3 when 65537 >= φ(n)) and step through odd values
//     until gcd(e, φ(n)) == 1, trying at most MaxExponentCandidates.
//  4. d is the Bézout coefficient of e from the extended Euclidean
//     algorithm, reduced mod φ(n).
//
// Because the top two bits of both primes are set, n is exactly
// 2*primeBits bits long, so block widths depend only on primeBits.
//
// # Blocks
//
// EncryptBytes prefixes the message with its 4-byte big-endian length,
// zero-pads it to whole plaintext blocks of (bitlen(n)-1)/8 bytes, and
// encrypts each block into a fixed-width slot of ceil(bitlen(n)/8) bytes.
// Every plaintext block is therefore strictly smaller than n.
//
// # Errors
//
// Failures carry a domain.Kind: KindKeyGeneration when a bounded search is
// exhausted, KindMessageTooLarge when an integer is not below n,
// KindMalformedKey for unparsable key text, and KindFrameCorruption for
// ciphertext that is not a whole number of slots.
package rsa
