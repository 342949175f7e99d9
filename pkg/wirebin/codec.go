package wirebin

import (
	"math"

	"github.com/slideinc/wirebin-go/pkg/wirebin/pickle"
)

// Config carries the configuration-time state of a Codec. Start from
// DefaultConfig and adjust; the zero Config has UTF-8 tagging and whitelist
// enforcement off, no whitelist entries, and no extension codec.
type Config struct {
	// UTF8Strings tags text as Utf8String on the wire. When off, text is
	// written as plain ByteString and decodes as bytes.
	UTF8Strings bool

	// EnforceWhitelist requires an opaque object's kind to be on the
	// Whitelist before the extension encode path is taken.
	EnforceWhitelist bool

	// MaxDepth bounds value tree nesting on both paths. Zero or negative
	// means DefaultMaxDepth.
	MaxDepth int

	// Whitelist is the set of kinds eligible for the extension encode
	// path. Nil means an empty whitelist.
	Whitelist *Whitelist

	// Extension is the object codec used for opaque values. Nil disables
	// the extension path entirely: opaque values fail to encode with
	// ErrUnsupportedType and extension payloads fail to decode.
	Extension ExtensionCodec
}

// DefaultConfig returns the stock configuration: UTF-8 tagging on,
// whitelist enforcement on with the built-in decimal entry, the default
// pickle codec, and the default depth bound.
func DefaultConfig() Config {
	return Config{
		UTF8Strings:      true,
		EnforceWhitelist: true,
		MaxDepth:         DefaultMaxDepth,
		Whitelist:        DefaultWhitelist(),
		Extension:        pickle.Default(),
	}
}

// Codec encodes value trees to wirebin bytes and back. Configuration is
// fixed at construction; a Codec is safe for concurrent use because every
// call keeps its state (buffer, cursor, depth) local to the call chain.
type Codec struct {
	utf8      bool
	enforce   bool
	maxDepth  int
	whitelist *Whitelist
	ext       ExtensionCodec
}

// New builds a Codec from cfg.
func New(cfg Config) *Codec {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	if cfg.Whitelist == nil {
		cfg.Whitelist = NewWhitelist()
	}
	return &Codec{
		utf8:      cfg.UTF8Strings,
		enforce:   cfg.EnforceWhitelist,
		maxDepth:  cfg.MaxDepth,
		whitelist: cfg.Whitelist,
		ext:       cfg.Extension,
	}
}

// Serialize encodes v into a self-describing byte stream. v may be a native
// Go value (converted per FromNative) or a prebuilt Value tree. The call
// either returns a complete artifact or a single error; partial output is
// never returned.
func (c *Codec) Serialize(v any, opts ...CallOption) ([]byte, error) {
	p := newProgress(opts)
	b := newBuffer()
	if err := c.encode(FromNative(v), b, p, 0); err != nil {
		return nil, err
	}
	return b.bytes(), nil
}

// Deserialize decodes one value tree from data. The input is borrowed and
// never mutated; the returned tree is owned by the caller and shares no
// memory with data. Bytes past the end of the first complete value are
// ignored. On any error no partial tree is returned.
func (c *Codec) Deserialize(data []byte, opts ...CallOption) (Value, error) {
	p := newProgress(opts)
	d := &decoder{data: data, codec: c, prog: p}
	return d.value(0, false)
}

// std is the process-wide default codec that the package-level entry points
// and the configuration toggles below operate on. The toggles are
// configuration-time switches; during any single call the configuration is
// read-only.
var std = New(DefaultConfig())

// Default returns the process-wide default codec.
func Default() *Codec { return std }

// Serialize encodes v with the default codec.
func Serialize(v any, opts ...CallOption) ([]byte, error) {
	return std.Serialize(v, opts...)
}

// Deserialize decodes data with the default codec.
func Deserialize(data []byte, opts ...CallOption) (Value, error) {
	return std.Deserialize(data, opts...)
}

// EnableUTF8 makes the default codec tag text as Utf8String (the default).
func EnableUTF8() { std.utf8 = true }

// DisableUTF8 makes the default codec write text as plain ByteString.
func DisableUTF8() { std.utf8 = false }

// UTF8Enabled reports whether the default codec tags text as Utf8String.
func UTF8Enabled() bool { return std.utf8 }

// EnableWhitelist turns whitelist enforcement on for the default codec
// (the default).
func EnableWhitelist() { std.enforce = true }

// DisableWhitelist turns whitelist enforcement off for the default codec:
// every opaque kind may take the extension path.
func DisableWhitelist() { std.enforce = false }

// WhitelistEnabled reports whether the default codec enforces the whitelist.
func WhitelistEnabled() bool { return std.enforce }

// MinInt returns the smallest integer encodable as a fixed-size (non-BigInt)
// value.
func MinInt() int64 { return math.MinInt64 }

// MaxInt returns the largest integer encodable as a fixed-size (non-BigInt)
// value.
func MaxInt() int64 { return math.MaxInt64 }
