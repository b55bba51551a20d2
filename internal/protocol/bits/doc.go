// Package bits packs a byte stream into the low-order bits of host bytes and
// reads it back.
//
// The stream is consumed most-significant-bit first. Each host byte takes
// the next k bits (1 <= k <= 4) in its low-order positions; the high 8-k
// bits of every host byte are left untouched. One host byte is a "slot".
//
// Pack is all-or-nothing: if the destination is too short nothing is
// written.
package bits
