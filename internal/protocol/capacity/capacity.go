// Package capacity decides whether a framed payload fits a pixel buffer.
// All checks run before the buffer is touched.
package capacity

// MaxPayloadBits is the number of bits bufferLen host bytes hold at k bits each.
func MaxPayloadBits(bufferLen, k int) int {
	return bufferLen * k
}

// Fits reports whether headerBits+payloadBits fit in bufferLen bytes at k.
func Fits(bufferLen, k, headerBits, payloadBits int) bool {
	return headerBits+payloadBits <= MaxPayloadBits(bufferLen, k)
}

// Plan is a capacity check that can also be reported to the user.
type Plan struct {
	BufferLen   int
	Bits        int
	HeaderBits  int
	PayloadBits int
}

// Needed is the total number of bits the frame occupies.
func (p Plan) Needed() int { return p.HeaderBits + p.PayloadBits }

// Available is the number of bits the buffer can hold.
func (p Plan) Available() int { return MaxPayloadBits(p.BufferLen, p.Bits) }

// Fits reports whether the frame fits in the buffer.
func (p Plan) Fits() bool { return Fits(p.BufferLen, p.Bits, p.HeaderBits, p.PayloadBits) }

// Overflow is how many bits are missing, or 0 when the frame fits.
func (p Plan) Overflow() int {
	if d := p.Needed() - p.Available(); d > 0 {
		return d
	}
	return 0
}
