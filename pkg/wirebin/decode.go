package wirebin

import (
	"encoding/binary"
	"math"
	"math/big"
	"unicode/utf8"
)

// decoder reads a value tree from a borrowed, read-only byte slice with an
// explicit cursor. The input is never mutated; variable-length payloads are
// copied out so the returned tree does not alias the caller's buffer.
type decoder struct {
	data  []byte
	off   int
	codec *Codec
	prog  *progress

	// interned canonicalizes repeated ByteString map keys within one
	// decode session to a single shared instance. Only byte string keys
	// are interned; text keys always decode fresh, so identical bytes
	// under the two kinds never conflate. Memory optimization only; no
	// wire effect.
	interned map[string]ByteString
}

// checkSpace verifies at least n bytes remain before the cursor advances.
func (d *decoder) checkSpace(n int) error {
	if len(d.data)-d.off < n {
		return wrapf(ErrInsufficientData, "insufficient data <%d> at <%d> of <%d>",
			n, d.off, len(d.data))
	}
	return nil
}

// size reads a 4-byte big-endian length field and validates it against the
// bytes remaining after it, rejecting lengths that claim more data than
// physically present.
func (d *decoder) size() (int, error) {
	if err := d.checkSpace(lengthSize); err != nil {
		return 0, err
	}
	n := binary.BigEndian.Uint32(d.data[d.off:])
	d.off += lengthSize
	if uint64(n) > uint64(len(d.data)-d.off) {
		return 0, wrapf(ErrOversizedLength, "unreasonable element size <%d> at offset <%d>",
			n, d.off-lengthSize)
	}
	return int(n), nil
}

// blob reads a length-prefixed payload and returns a copy of it.
func (d *decoder) blob() ([]byte, error) {
	n, err := d.size()
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, d.data[d.off:d.off+n])
	d.off += n
	return out, nil
}

// value decodes one value and its subtree. intern is set when decoding in
// map-key position.
func (d *decoder) value(depth int, intern bool) (Value, error) {
	if depth > d.codec.maxDepth {
		return nil, wrapf(ErrRecursionLimit, "max recursion depth <%d> exceeded", d.codec.maxDepth)
	}
	if err := d.prog.check(d.off); err != nil {
		return nil, err
	}

	if err := d.checkSpace(tagSize); err != nil {
		return nil, err
	}
	tag := Tag(binary.BigEndian.Uint16(d.data[d.off:]))
	d.off += tagSize

	switch tag {
	case TagNull:
		return Null{}, nil

	case TagInt32:
		if err := d.checkSpace(4); err != nil {
			return nil, err
		}
		v := int32(binary.BigEndian.Uint32(d.data[d.off:]))
		d.off += 4
		return Int32(v), nil

	case TagInt64:
		if err := d.checkSpace(8); err != nil {
			return nil, err
		}
		v := int64(binary.BigEndian.Uint64(d.data[d.off:]))
		d.off += 8
		return Int64(v), nil

	case TagBigInt:
		n, err := d.size()
		if err != nil {
			return nil, err
		}
		v := bigIntFromBytes(d.data[d.off : d.off+n])
		d.off += n
		return NewBigInt(v), nil

	case TagFloat64:
		if err := d.checkSpace(8); err != nil {
			return nil, err
		}
		// Host byte order, mirroring the encoder's non-normalization.
		bits := binary.NativeEndian.Uint64(d.data[d.off:])
		d.off += 8
		return Float64(math.Float64frombits(bits)), nil

	case TagByteString:
		raw, err := d.blob()
		if err != nil {
			return nil, err
		}
		if intern {
			if seen, ok := d.interned[string(raw)]; ok {
				return seen, nil
			}
			v := ByteString(raw)
			d.intern(string(raw), v)
			return v, nil
		}
		return ByteString(raw), nil

	case TagUTF8:
		raw, err := d.blob()
		if err != nil {
			return nil, err
		}
		if !utf8.Valid(raw) {
			return nil, wrapf(ErrMalformedUTF8, "at offset <%d>", d.off-len(raw))
		}
		return String(raw), nil

	case TagList:
		n, err := d.size()
		if err != nil {
			return nil, err
		}
		out := make(List, 0, n)
		for i := 0; i < n; i++ {
			elem, err := d.value(depth+1, false)
			if err != nil {
				return nil, err
			}
			out = append(out, elem)
		}
		return out, nil

	case TagTuple:
		n, err := d.size()
		if err != nil {
			return nil, err
		}
		out := make(Tuple, 0, n)
		for i := 0; i < n; i++ {
			elem, err := d.value(depth+1, false)
			if err != nil {
				return nil, err
			}
			out = append(out, elem)
		}
		return out, nil

	case TagMap:
		n, err := d.size()
		if err != nil {
			return nil, err
		}
		out := make(Map, 0, n)
		for i := 0; i < n; i++ {
			key, err := d.value(depth+1, true)
			if err != nil {
				return nil, err
			}
			val, err := d.value(depth+1, false)
			if err != nil {
				return nil, err
			}
			out = append(out, MapEntry{Key: key, Value: val})
		}
		return out, nil

	case TagExtension:
		blob, err := d.blob()
		if err != nil {
			return nil, err
		}
		if d.codec.ext == nil {
			return nil, wrapf(ErrUnsupportedType, "extension payload with no extension codec configured")
		}
		// The whitelist is not consulted here; every extension payload
		// reaches the codec's Load. See the package comment.
		obj, err := d.codec.ext.Load(blob)
		if err != nil {
			return nil, wrapf(ErrExtensionCodec, "load: %v", err)
		}
		return Opaque{Obj: obj}, nil

	default:
		return nil, wrapf(ErrUnsupportedType, "unhandled type <%d>", uint16(tag))
	}
}

func (d *decoder) intern(key string, v ByteString) {
	if d.interned == nil {
		d.interned = make(map[string]ByteString)
	}
	d.interned[key] = v
}

// bigIntFromBytes reconstructs an arbitrary-precision integer from its
// big-endian two's-complement byte sequence.
func bigIntFromBytes(data []byte) *big.Int {
	v := new(big.Int).SetBytes(data)
	if len(data) > 0 && data[0]&0x80 != 0 {
		m := new(big.Int).Lsh(big.NewInt(1), uint(8*len(data)))
		v.Sub(v, m)
	}
	return v
}
