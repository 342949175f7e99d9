// Package pickle is the default extension codec for wirebin: a generic
// object pickler for value kinds the wire format does not natively model.
//
// Objects are serialized in two layers. Each registered kind supplies its
// own marshal/unmarshal pair producing the kind's payload bytes; Dump wraps
// those bytes in a CBOR envelope naming the kind, so Load can dispatch
// without guessing. The envelope uses Core Deterministic Encoding (RFC 8949
// §4.2), so the same object always pickles to identical bytes.
//
// One kind is registered out of the box on the Default codec: "decimal",
// the arbitrary-precision rational *big.Rat, carried as its text form.
package pickle

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder for envelopes, configured with Core
// Deterministic Encoding.
var encMode cbor.EncMode

// decMode is the CBOR decoder for envelopes.
var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("pickle: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("pickle: CBOR decoder initialization failed: " + err.Error())
	}
}

// MarshalFunc serializes one object of a registered kind to its payload
// bytes.
type MarshalFunc func(obj any) ([]byte, error)

// UnmarshalFunc reconstructs an object of a registered kind from its
// payload bytes.
type UnmarshalFunc func(data []byte) (any, error)

// envelope is the self-describing wrapper around a kind's payload.
type envelope struct {
	Kind string `cbor:"kind"`
	Data []byte `cbor:"data"`
}

type kind struct {
	name      string
	typ       reflect.Type
	marshal   MarshalFunc
	unmarshal UnmarshalFunc
}

// Codec is a registry of named kinds implementing wirebin's ExtensionCodec
// interface. Registration is configuration-time state: register kinds
// before use and treat the codec as read-only afterwards.
type Codec struct {
	byName map[string]*kind
	byType map[reflect.Type]*kind
}

// New returns an empty codec with no registered kinds.
func New() *Codec {
	return &Codec{
		byName: make(map[string]*kind),
		byType: make(map[reflect.Type]*kind),
	}
}

// Register adds a named kind. The prototype's dynamic type identifies
// objects of the kind on Dump; the name identifies them on Load. Either
// colliding with an existing registration is an error.
func (c *Codec) Register(name string, prototype any, marshal MarshalFunc, unmarshal UnmarshalFunc) error {
	typ := reflect.TypeOf(prototype)
	if _, ok := c.byName[name]; ok {
		return fmt.Errorf("pickle: kind %q already registered", name)
	}
	if _, ok := c.byType[typ]; ok {
		return fmt.Errorf("pickle: type %v already registered", typ)
	}
	k := &kind{name: name, typ: typ, marshal: marshal, unmarshal: unmarshal}
	c.byName[name] = k
	c.byType[typ] = k
	return nil
}

// Dump serializes obj: the registered kind's payload bytes wrapped in a
// named envelope.
func (c *Codec) Dump(obj any) ([]byte, error) {
	k, ok := c.byType[reflect.TypeOf(obj)]
	if !ok {
		return nil, fmt.Errorf("pickle: no registered kind for type <%T>", obj)
	}
	data, err := k.marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("pickle: marshal %q: %w", k.name, err)
	}
	return encMode.Marshal(envelope{Kind: k.name, Data: data})
}

// Load opens the envelope and dispatches to the named kind's unmarshal.
func (c *Codec) Load(data []byte) (any, error) {
	var env envelope
	if err := decMode.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("pickle: bad envelope: %w", err)
	}
	k, ok := c.byName[env.Kind]
	if !ok {
		return nil, fmt.Errorf("pickle: unknown kind %q", env.Kind)
	}
	obj, err := k.unmarshal(env.Data)
	if err != nil {
		return nil, fmt.Errorf("pickle: unmarshal %q: %w", env.Kind, err)
	}
	return obj, nil
}

// std is the process-wide default codec, populated at init.
var std = New()

func init() {
	err := std.Register("decimal", &big.Rat{},
		func(obj any) ([]byte, error) {
			return obj.(*big.Rat).MarshalText()
		},
		func(data []byte) (any, error) {
			r := new(big.Rat)
			if err := r.UnmarshalText(data); err != nil {
				return nil, err
			}
			return r, nil
		})
	if err != nil {
		panic("pickle: default registration failed: " + err.Error())
	}
}

// Default returns the process-wide default codec, preloaded with the
// decimal kind.
func Default() *Codec { return std }
