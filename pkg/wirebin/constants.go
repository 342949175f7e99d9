package wirebin

import "fmt"

// Tag is the 2-byte big-endian discriminant that opens every encoded unit.
type Tag uint16

const (
	TagNull       Tag = 0x0000 // no payload
	TagInt32      Tag = 0x0001 // 4-byte big-endian two's complement
	TagByteString Tag = 0x0002 // u32 byte count, then raw bytes
	TagList       Tag = 0x0004 // u32 element count, then elements
	TagMap        Tag = 0x0005 // u32 pair count, then key/value pairs
	TagInt64      Tag = 0x0006 // 8-byte big-endian two's complement
	TagUTF8       Tag = 0x0007 // u32 byte count, then UTF-8 bytes
	TagFloat64    Tag = 0x0008 // 8 raw IEEE-754 bytes, host byte order
	TagTuple      Tag = 0x0009 // u32 element count, then elements
	TagBigInt     Tag = 0x000A // u32 byte count, then big-endian two's complement
	TagExtension  Tag = 0x000B // u32 byte count, then an opaque codec blob
)

const (
	tagSize    = 2
	lengthSize = 4

	initialBufferLen = 0x1000

	// DefaultMaxDepth bounds the nesting of a value tree on both the
	// encode and decode paths.
	DefaultMaxDepth = 0x1000

	// DefaultInterval is the number of encoded or decoded bytes between
	// progress callback invocations.
	DefaultInterval = 0x8000
)

// String converts a wire tag to a human-readable name, for diagnostics and
// error messages.
func (t Tag) String() string {
	switch t {
	case TagNull:
		return "Null"
	case TagInt32:
		return "Int32"
	case TagByteString:
		return "ByteString"
	case TagList:
		return "List"
	case TagMap:
		return "Map"
	case TagInt64:
		return "Int64"
	case TagUTF8:
		return "Utf8String"
	case TagFloat64:
		return "Float64"
	case TagTuple:
		return "Tuple"
	case TagBigInt:
		return "BigInt"
	case TagExtension:
		return "Extension"
	default:
		return fmt.Sprintf("UnknownTag(0x%04x)", uint16(t))
	}
}
