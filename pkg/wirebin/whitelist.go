package wirebin

import (
	"math/big"
	"reflect"
)

// Whitelist is the set of kinds eligible for the extension encode path.
// Membership is by dynamic type. It is consulted only by the encoder, and
// only while whitelist enforcement is on; decode never consults it.
//
// A Whitelist is configuration-time state: populate it before use and treat
// it as read-only during encode calls.
type Whitelist struct {
	types map[reflect.Type]struct{}
}

// NewWhitelist builds a whitelist from prototype values: each prototype's
// dynamic type becomes an allowed kind.
func NewWhitelist(prototypes ...any) *Whitelist {
	w := &Whitelist{types: make(map[reflect.Type]struct{})}
	for _, p := range prototypes {
		w.Add(p)
	}
	return w
}

// Add registers the prototype's dynamic type as an allowed kind.
func (w *Whitelist) Add(prototype any) {
	if w.types == nil {
		w.types = make(map[reflect.Type]struct{})
	}
	w.types[reflect.TypeOf(prototype)] = struct{}{}
}

// Allows reports whether obj's dynamic type is a registered kind.
func (w *Whitelist) Allows(obj any) bool {
	if w == nil {
		return false
	}
	_, ok := w.types[reflect.TypeOf(obj)]
	return ok
}

// DefaultWhitelist returns a whitelist with the single built-in entry: the
// decimal kind, modeled as *big.Rat.
func DefaultWhitelist() *Whitelist {
	return NewWhitelist(&big.Rat{})
}
