package wirebin

import "encoding/binary"

// buffer is the growable output region owned by a single encode call. It
// grows geometrically, so appends are amortized O(1). All multi-byte writes
// assume ensure was called first.
type buffer struct {
	buf []byte
	off int
}

func newBuffer() *buffer {
	return &buffer{buf: make([]byte, initialBufferLen)}
}

// ensure guarantees room for n payload bytes plus a type tag, doubling the
// buffer until the requirement is met.
func (b *buffer) ensure(n int) error {
	need := n + tagSize
	for len(b.buf)-b.off < need {
		grownLen := len(b.buf) * 2
		if grownLen <= len(b.buf) {
			return wrapf(ErrAllocationFailure,
				"failed to grow buffer to <%d>, length <%d> offset <%d>",
				grownLen, len(b.buf), b.off)
		}
		grown := make([]byte, grownLen)
		copy(grown, b.buf[:b.off])
		b.buf = grown
	}
	return nil
}

func (b *buffer) putTag(t Tag) {
	binary.BigEndian.PutUint16(b.buf[b.off:], uint16(t))
	b.off += tagSize
}

func (b *buffer) putU32(v uint32) {
	binary.BigEndian.PutUint32(b.buf[b.off:], v)
	b.off += 4
}

func (b *buffer) putU64(v uint64) {
	binary.BigEndian.PutUint64(b.buf[b.off:], v)
	b.off += 8
}

// putU64Native writes v in host byte order. Used only for Float64 payloads,
// which the wire format does not normalize.
func (b *buffer) putU64Native(v uint64) {
	binary.NativeEndian.PutUint64(b.buf[b.off:], v)
	b.off += 8
}

// putBlob writes a tagged, length-prefixed byte sequence: tag, u32 byte
// count, then the bytes.
func (b *buffer) putBlob(t Tag, data []byte) error {
	if err := b.ensure(len(data) + lengthSize); err != nil {
		return err
	}
	b.putTag(t)
	b.putU32(uint32(len(data)))
	copy(b.buf[b.off:], data)
	b.off += len(data)
	return nil
}

// bytes returns a copy of the encoded output. The buffer itself is
// discarded with the encode call that owned it.
func (b *buffer) bytes() []byte {
	out := make([]byte, b.off)
	copy(out, b.buf[:b.off])
	return out
}
