package wirebin

import "math/big"

// Value is one node of a wirebin value tree. Concrete types, one per wire
// kind:
//
//   - Null       (TagNull)
//   - Int32      (TagInt32)
//   - Int64      (TagInt64)
//   - *BigInt    (TagBigInt)
//   - Float64    (TagFloat64)
//   - ByteString (TagByteString)
//   - String     (TagUTF8, or TagByteString when UTF-8 tagging is off)
//   - List       (TagList)
//   - Tuple      (TagTuple)
//   - Map        (TagMap)
//   - Opaque     (TagExtension)
//
// A tree is acyclic and exclusively owned by its root; nodes are never
// shared between trees.
type Value interface {
	wireValue() // sealed marker; only types in this package implement Value
}

// Null is the absent value.
type Null struct{}

// Int32 is a signed integer that fits in 32 bits.
type Int32 int32

// Int64 is a signed integer that fits in 64 bits but not 32.
type Int64 int64

// BigInt is a signed integer of arbitrary width, used when a value exceeds
// 64 bits. On the wire it is the minimal big-endian two's-complement byte
// sequence, sign bit included.
type BigInt big.Int

// NewBigInt wraps v as a value tree node. The node aliases v; the caller
// must not mutate v while the tree is in use.
func NewBigInt(v *big.Int) *BigInt { return (*BigInt)(v) }

// Int returns the wrapped arbitrary-precision integer.
func (v *BigInt) Int() *big.Int { return (*big.Int)(v) }

// Float64 is an IEEE-754 double. Its payload bytes are written and read in
// host byte order, so encoded floats do not interchange across endianness.
type Float64 float64

// ByteString is a raw 8-bit byte sequence.
type ByteString []byte

// String is text, stored on the wire as its UTF-8 byte encoding.
type String string

// List is an ordered sequence of values.
type List []Value

// Tuple is an ordered fixed-arity sequence. Structurally identical to List
// but wire-distinct, so peers that treat the two kinds differently can
// round-trip them.
type Tuple []Value

// Map is an ordered sequence of key/value pairs. Pair order is preserved
// through encode and decode, but equivalent maps built from native Go maps
// may serialize their pairs in different orders.
type Map []MapEntry

// MapEntry is one key/value pair of a Map.
type MapEntry struct {
	Key   Value
	Value Value
}

// Opaque is an application object with no native wire representation. The
// encoder hands it to the extension codec (whitelist permitting) and writes
// the resulting blob as TagExtension; the decoder reconstructs Obj through
// the codec's Load.
type Opaque struct {
	Obj any
}

func (Null) wireValue()       {}
func (Int32) wireValue()      {}
func (Int64) wireValue()      {}
func (*BigInt) wireValue()    {}
func (Float64) wireValue()    {}
func (ByteString) wireValue() {}
func (String) wireValue()     {}
func (List) wireValue()       {}
func (Tuple) wireValue()      {}
func (Map) wireValue()        {}
func (Opaque) wireValue()     {}
