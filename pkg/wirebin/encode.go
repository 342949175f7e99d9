package wirebin

import (
	"math"
	"math/big"
)

// encode writes one value and its subtree into b. depth is the node's
// distance from the root; the guard runs before any other work so
// adversarially deep trees fail fast without touching the call stack
// further.
func (c *Codec) encode(v Value, b *buffer, p *progress, depth int) error {
	if depth > c.maxDepth {
		return wrapf(ErrRecursionLimit, "max recursion depth <%d> exceeded", c.maxDepth)
	}
	if err := p.check(b.off); err != nil {
		return err
	}

	switch v := v.(type) {
	case Null:
		if err := b.ensure(0); err != nil {
			return err
		}
		b.putTag(TagNull)
		return nil

	case Int32:
		if err := b.ensure(4); err != nil {
			return err
		}
		b.putTag(TagInt32)
		b.putU32(uint32(int32(v)))
		return nil

	case Int64:
		if err := b.ensure(8); err != nil {
			return err
		}
		b.putTag(TagInt64)
		b.putU64(uint64(int64(v)))
		return nil

	case *BigInt:
		return b.putBlob(TagBigInt, bigIntBytes(v.Int()))

	case Float64:
		if err := b.ensure(8); err != nil {
			return err
		}
		b.putTag(TagFloat64)
		// Host byte order, not normalized. See the package comment.
		b.putU64Native(math.Float64bits(float64(v)))
		return nil

	case ByteString:
		return b.putBlob(TagByteString, v)

	case String:
		tag := TagUTF8
		if !c.utf8 {
			tag = TagByteString
		}
		return b.putBlob(tag, []byte(v))

	case List:
		if err := b.ensure(lengthSize); err != nil {
			return err
		}
		b.putTag(TagList)
		b.putU32(uint32(len(v)))
		for _, elem := range v {
			if err := c.encode(elem, b, p, depth+1); err != nil {
				return err
			}
		}
		return nil

	case Tuple:
		if err := b.ensure(lengthSize); err != nil {
			return err
		}
		b.putTag(TagTuple)
		b.putU32(uint32(len(v)))
		for _, elem := range v {
			if err := c.encode(elem, b, p, depth+1); err != nil {
				return err
			}
		}
		return nil

	case Map:
		if err := b.ensure(lengthSize); err != nil {
			return err
		}
		b.putTag(TagMap)
		b.putU32(uint32(len(v)))
		for _, entry := range v {
			if err := c.encode(entry.Key, b, p, depth+1); err != nil {
				return err
			}
			if err := c.encode(entry.Value, b, p, depth+1); err != nil {
				return err
			}
		}
		return nil

	case Opaque:
		return c.encodeOpaque(v.Obj, b)

	default:
		return wrapf(ErrUnsupportedType, "unhandled value type <%T>", v)
	}
}

// encodeOpaque takes the extension path: ask the bridge for a blob and
// write it as TagExtension, whitelist permitting.
func (c *Codec) encodeOpaque(obj any, b *buffer) error {
	if c.ext == nil {
		return wrapf(ErrUnsupportedType, "unhandled type <%T> and no extension codec configured", obj)
	}
	if c.enforce && !c.whitelist.Allows(obj) {
		return wrapf(ErrWhitelistRejected, "unlisted type <%T>", obj)
	}
	blob, err := c.ext.Dump(obj)
	if err != nil {
		return wrapf(ErrExtensionCodec, "dump of <%T>: %v", obj, err)
	}
	return b.putBlob(TagExtension, blob)
}

// bigIntBytes renders v as its minimal big-endian two's-complement byte
// sequence: the magnitude's bit length plus a sign bit, rounded up to whole
// bytes. Zero renders as a single 0x00 byte.
func bigIntBytes(v *big.Int) []byte {
	size := v.BitLen()/8 + 1
	out := make([]byte, size)
	if v.Sign() >= 0 {
		v.FillBytes(out)
		return out
	}
	// Two's complement for negatives: v + 2^(8*size) is non-negative and
	// fits in size bytes with the sign bit set.
	m := new(big.Int).Lsh(big.NewInt(1), uint(8*size))
	m.Add(m, v)
	m.FillBytes(out)
	return out
}
