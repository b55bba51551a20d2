package frame_test

import (
	"bytes"
	"testing"

	"stegcrypt/internal/domain"
	"stegcrypt/internal/protocol/frame"
)

func TestWriteRead_RoundTrip(t *testing.T) {
	payload := []byte("ciphertext bytes")
	for k := 1; k <= 4; k++ {
		f, err := frame.New(payload, k)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		buf := make(domain.PixelBuffer, frame.HeaderSlots+frame.PayloadSlots(len(payload), k))
		if err := frame.Write(f, buf); err != nil {
			t.Fatalf("k=%d Write: %v", k, err)
		}

		h, err := frame.ReadHeader(buf)
		if err != nil {
			t.Fatalf("k=%d ReadHeader: %v", k, err)
		}
		if h.Bits != k || int(h.Length) != len(payload) {
			t.Fatalf("k=%d: header %+v", k, h)
		}
		got, err := frame.ReadPayload(buf, h, h.Bits)
		if err != nil {
			t.Fatalf("k=%d ReadPayload: %v", k, err)
		}
		if !bytes.Equal(got, payload) {
			t.Fatalf("k=%d: got %q", k, got)
		}
	}
}

func TestHeader_IsWrittenAtOneBitPerSlot(t *testing.T) {
	f, err := frame.New([]byte{0xAA}, 4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	buf := bytes.Repeat([]byte{0xF0}, frame.HeaderSlots+2)
	if err := frame.Write(f, buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	for i := 0; i < frame.HeaderSlots; i++ {
		if buf[i]&0xFE != 0xF0 {
			t.Fatalf("header slot %d touched more than the LSB: %08b", i, buf[i])
		}
	}
	// length=1 sits in bit 31 of the length field, k=4 in the last three slots.
	if buf[31] != 0xF1 || buf[37] != 0xF1 || buf[38] != 0xF0 || buf[39] != 0xF0 {
		t.Fatalf("unexpected header bits % x", buf[30:40])
	}
}

func TestWrite_TooSmallLeavesBufferUntouched(t *testing.T) {
	f, err := frame.New(make([]byte, 10), 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	buf := bytes.Repeat([]byte{0x55}, frame.HeaderSlots+79)
	err = frame.Write(f, buf)
	if !domain.IsKind(err, domain.KindCapacity) {
		t.Fatalf("want capacity error, got %v", err)
	}
	if !bytes.Equal(buf, bytes.Repeat([]byte{0x55}, frame.HeaderSlots+79)) {
		t.Fatal("buffer modified on failure")
	}
}

func TestReadHeader_Corruption(t *testing.T) {
	if _, err := frame.ReadHeader(make(domain.PixelBuffer, frame.HeaderSlots-1)); !domain.IsKind(err, domain.KindFrameCorruption) {
		t.Fatalf("short buffer: want frame corruption, got %v", err)
	}
	// All-ones LSBs decode k=255.
	if _, err := frame.ReadHeader(bytes.Repeat([]byte{0x01}, 100)); !domain.IsKind(err, domain.KindFrameCorruption) {
		t.Fatalf("bad k: want frame corruption, got %v", err)
	}
}

func TestReadPayload_LengthBeyondBuffer(t *testing.T) {
	buf := make(domain.PixelBuffer, frame.HeaderSlots+16)
	h := domain.Frame{Bits: 1, Length: 3}
	if _, err := frame.ReadPayload(buf, h, 1); !domain.IsKind(err, domain.KindFrameCorruption) {
		t.Fatalf("want frame corruption, got %v", err)
	}
	if _, err := frame.ReadPayload(buf, domain.Frame{Bits: 1, Length: 2}, 1); err != nil {
		t.Fatalf("exact fit: %v", err)
	}
}

func TestNew_RejectsBadK(t *testing.T) {
	if _, err := frame.New(nil, 5); !domain.IsKind(err, domain.KindInvalidArgument) {
		t.Fatalf("want invalid argument, got %v", err)
	}
}
