// Package frame lays a length-prefixed payload into a pixel buffer.
//
// Layout, in host-byte slots:
//
//	[0, 40)   header, 1 bit per slot: 32-bit big-endian payload length,
//	          then the 8-bit k used for the payload
//	[40, ...) payload, k bits per slot
//
// The header width never depends on k, so a reader can always find it
// before it knows how the rest of the buffer was written.
package frame

import (
	"encoding/binary"
	"fmt"
	"math"

	"stegcrypt/internal/domain"
	"stegcrypt/internal/protocol/bits"
)

const (
	lengthBytes = 4
	headerBytes = lengthBytes + 1

	// HeaderBits is the size of the header in bits.
	HeaderBits = 8 * headerBytes
	// HeaderSlots is the number of host bytes the header occupies.
	HeaderSlots = HeaderBits
)

// PayloadSlots is the number of host bytes a payload of length bytes
// occupies at k bits per slot.
func PayloadSlots(length, k int) int {
	return bits.SlotsFor(8*length, k)
}

// New builds a frame for payload at k bits per slot.
func New(payload []byte, k int) (domain.Frame, error) {
	if !bits.ValidBits(k) {
		return domain.Frame{}, domain.NewError(domain.KindInvalidArgument, "frame.New",
			fmt.Sprintf("bits per byte must be %d-%d, got %d", bits.MinBits, bits.MaxBits, k))
	}
	if uint64(len(payload)) > math.MaxUint32 {
		return domain.Frame{}, domain.NewError(domain.KindCapacity, "frame.New", "payload longer than 4 GiB")
	}
	return domain.Frame{Bits: k, Length: uint32(len(payload)), Payload: payload}, nil
}

// Write packs f into buf. Nothing is written unless the whole frame fits.
func Write(f domain.Frame, buf domain.PixelBuffer) error {
	need := HeaderSlots + PayloadSlots(int(f.Length), f.Bits)
	if len(buf) < need {
		return domain.NewError(domain.KindCapacity, "frame.Write",
			fmt.Sprintf("frame needs %d host bytes, buffer has %d", need, len(buf)))
	}

	header := make([]byte, headerBytes)
	binary.BigEndian.PutUint32(header, f.Length)
	header[lengthBytes] = byte(f.Bits)

	if err := bits.Pack(header, 1, buf[:HeaderSlots]); err != nil {
		return err
	}
	return bits.Pack(f.Payload, f.Bits, buf[HeaderSlots:])
}

// ReadHeader decodes the header at the start of buf. The returned frame has
// no payload yet.
func ReadHeader(buf domain.PixelBuffer) (domain.Frame, error) {
	const op = "frame.ReadHeader"
	if len(buf) < HeaderSlots {
		return domain.Frame{}, domain.NewError(domain.KindFrameCorruption, op,
			fmt.Sprintf("buffer of %d bytes is shorter than the %d-byte header", len(buf), HeaderSlots))
	}
	header, err := bits.Unpack(buf[:HeaderSlots], 1, HeaderBits)
	if err != nil {
		return domain.Frame{}, err
	}
	k := int(header[lengthBytes])
	if !bits.ValidBits(k) {
		return domain.Frame{}, domain.NewError(domain.KindFrameCorruption, op,
			fmt.Sprintf("header records %d bits per byte; image holds no hidden frame", k))
	}
	return domain.Frame{Bits: k, Length: binary.BigEndian.Uint32(header)}, nil
}

// ReadPayload unpacks f.Length bytes from buf at k bits per slot. k may
// differ from f.Bits; the caller decides which one to trust.
func ReadPayload(buf domain.PixelBuffer, f domain.Frame, k int) ([]byte, error) {
	const op = "frame.ReadPayload"
	if !bits.ValidBits(k) {
		return nil, domain.NewError(domain.KindInvalidArgument, op,
			fmt.Sprintf("bits per byte must be %d-%d, got %d", bits.MinBits, bits.MaxBits, k))
	}
	avail := len(buf) - HeaderSlots
	if avail < 0 {
		return nil, domain.NewError(domain.KindFrameCorruption, op, "buffer is shorter than the header")
	}
	need := uint64(f.Length) * 8
	if need > uint64(avail)*uint64(k) {
		return nil, domain.NewError(domain.KindFrameCorruption, op,
			fmt.Sprintf("header claims %d payload bytes but %d host bytes at %d bit(s) hold at most %d",
				f.Length, avail, k, avail*k/8))
	}
	return bits.Unpack(buf[HeaderSlots:], k, int(need))
}
