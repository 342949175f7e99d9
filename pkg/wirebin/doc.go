// Package wirebin implements a compact, self-describing binary codec for
// dynamically-typed values: integers of arbitrary width, floats, text, byte
// strings, ordered sequences, ordered key/value maps, and an extension
// escape hatch for opaque application objects.
//
// Every encoded unit opens with a 2-byte big-endian type tag. Variable-length
// kinds follow it with a 4-byte big-endian length field (byte count for
// string, bigint and extension kinds; element count for List and Tuple; pair
// count for Map); fixed-size kinds carry their payload directly. The format
// has no schema, no compression, and preserves no object identity: a decoded
// tree is a fresh structure owned by the caller.
//
// Two behaviors are deliberate wire-compatibility quirks, preserved so
// existing peers keep interoperating:
//
//   - Float64 payloads are written and read in host byte order. Encoded
//     floats are silently wrong when moved between machines of different
//     endianness.
//   - The extension whitelist gates only the encode path. On decode, every
//     TagExtension payload is handed to the configured ExtensionCodec's
//     Load regardless of whitelist state, so decoding untrusted bytes can
//     exercise the full object codec.
//
// Malformed and adversarial input is rejected safely: every fixed read is
// bounds-checked, every length field is validated against the remaining
// input before it is trusted, and recursion depth is bounded on both the
// encode and decode paths.
package wirebin
