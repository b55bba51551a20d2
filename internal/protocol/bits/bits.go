package bits

import (
	"fmt"

	"stegcrypt/internal/domain"
)

const (
	MinBits = 1
	MaxBits = 4
)

// ValidBits reports whether k is a usable bits-per-slot value.
func ValidBits(k int) bool { return k >= MinBits && k <= MaxBits }

// SlotsFor returns how many host bytes carry bitCount bits at k bits each.
func SlotsFor(bitCount, k int) int {
	return (bitCount + k - 1) / k
}

// Pack writes src into the low k bits of successive dst bytes.
//
// A trailing group shorter than k bits is padded with zero bits on the right.
func Pack(src []byte, k int, dst []byte) error {
	if !ValidBits(k) {
		return domain.NewError(domain.KindInvalidArgument, "bits.Pack",
			fmt.Sprintf("bits per byte must be %d-%d, got %d", MinBits, MaxBits, k))
	}
	total := 8 * len(src)
	slots := SlotsFor(total, k)
	if len(dst) < slots {
		return domain.NewError(domain.KindCapacity, "bits.Pack",
			fmt.Sprintf("need %d host bytes at %d bit(s) each, have %d", slots, k, len(dst)))
	}

	r := reader{data: src}
	mask := byte(1<<k - 1)
	for i := 0; i < slots; i++ {
		var group byte
		for j := 0; j < k; j++ {
			group = group<<1 | r.next()
		}
		dst[i] = dst[i]&^mask | group
	}
	return nil
}

// Unpack reads bitCount bits from the low k bits of successive src bytes.
//
// A bitCount that is not a multiple of 8 leaves the last byte zero-padded.
func Unpack(src []byte, k, bitCount int) ([]byte, error) {
	if !ValidBits(k) {
		return nil, domain.NewError(domain.KindInvalidArgument, "bits.Unpack",
			fmt.Sprintf("bits per byte must be %d-%d, got %d", MinBits, MaxBits, k))
	}
	if bitCount < 0 {
		return nil, domain.NewError(domain.KindInvalidArgument, "bits.Unpack", "negative bit count")
	}
	slots := SlotsFor(bitCount, k)
	if len(src) < slots {
		return nil, domain.NewError(domain.KindFrameCorruption, "bits.Unpack",
			fmt.Sprintf("need %d host bytes at %d bit(s) each, have %d", slots, k, len(src)))
	}

	w := writer{data: make([]byte, (bitCount+7)/8), limit: bitCount}
	for i := 0; i < slots; i++ {
		for j := k - 1; j >= 0; j-- {
			w.put(src[i] >> j & 1)
		}
	}
	return w.data, nil
}

// FromBytes expands b into one bit per element, MSB-first.
func FromBytes(b []byte) []byte {
	r := reader{data: b}
	out := make([]byte, 8*len(b))
	for i := range out {
		out[i] = r.next()
	}
	return out
}

// ToBytes packs one bit per element back into bytes, MSB-first. A trailing
// partial byte is zero-padded. Only the low bit of each element is used.
func ToBytes(stream []byte) []byte {
	w := writer{data: make([]byte, (len(stream)+7)/8), limit: len(stream)}
	for _, bit := range stream {
		w.put(bit & 1)
	}
	return w.data
}

// reader yields the bits of data MSB-first, then zeros once exhausted.
type reader struct {
	data []byte
	pos  int
}

func (r *reader) next() byte {
	i := r.pos / 8
	if i >= len(r.data) {
		return 0
	}
	bit := (r.data[i] >> (7 - r.pos%8)) & 1
	r.pos++
	return bit
}

// writer appends bits MSB-first and drops anything past limit.
type writer struct {
	data  []byte
	pos   int
	limit int
}

func (w *writer) put(bit byte) {
	if w.pos >= w.limit {
		return
	}
	if bit == 1 {
		w.data[w.pos/8] |= 0x80 >> (w.pos % 8)
	}
	w.pos++
}
