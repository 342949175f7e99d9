package wirebin

// ExtensionCodec is the bridge to the external object pickler that handles
// value kinds with no native wire representation. The core never interprets
// the blob contents; Dump's output is written verbatim as a TagExtension
// payload and handed back verbatim to Load on decode.
//
// Note the asymmetric trust boundary: the whitelist gates only Dump, on the
// encode path. Decode invokes Load for every TagExtension payload
// regardless of whitelist state, so decoding untrusted bytes exercises the
// full codec.
type ExtensionCodec interface {
	// Dump serializes an opaque application object to bytes.
	Dump(obj any) ([]byte, error)

	// Load reconstructs an object from bytes produced by Dump.
	Load(data []byte) (any, error)
}
