// Package jsonconv converts between JSON documents and wirebin value trees
// for the command-line tool.
//
// The two models do not line up exactly, so the mapping is lossy in both
// directions: JSON booleans become Int32 0/1 (wirebin has no boolean kind),
// wirebin byte strings render as base64 text, Tuples render as arrays, and
// opaque extension objects are not representable at all.
package jsonconv

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/slideinc/wirebin-go/pkg/wirebin"
)

// Decode parses one JSON document into a value tree. Numbers map to
// Int32/Int64/BigInt when integral (by range) and Float64 otherwise;
// object keys are sorted so output is deterministic.
func Decode(data []byte) (wirebin.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("jsonconv: parse: %w", err)
	}
	return fromJSON(raw)
}

func fromJSON(v any) (wirebin.Value, error) {
	switch v := v.(type) {
	case nil:
		return wirebin.Null{}, nil
	case bool:
		if v {
			return wirebin.Int32(1), nil
		}
		return wirebin.Int32(0), nil
	case string:
		return wirebin.String(v), nil
	case json.Number:
		return fromNumber(v)
	case []any:
		out := make(wirebin.List, len(v))
		for i, elem := range v {
			conv, err := fromJSON(elem)
			if err != nil {
				return nil, err
			}
			out[i] = conv
		}
		return out, nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		out := make(wirebin.Map, 0, len(v))
		for _, key := range keys {
			conv, err := fromJSON(v[key])
			if err != nil {
				return nil, err
			}
			out = append(out, wirebin.MapEntry{Key: wirebin.String(key), Value: conv})
		}
		return out, nil
	default:
		return nil, fmt.Errorf("jsonconv: unhandled JSON value <%T>", v)
	}
}

func fromNumber(n json.Number) (wirebin.Value, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		i, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, fmt.Errorf("jsonconv: bad integer literal %q", s)
		}
		if i.IsInt64() {
			return wirebin.FromNative(i.Int64()), nil
		}
		return wirebin.NewBigInt(i), nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("jsonconv: bad number literal %q: %w", s, err)
	}
	return wirebin.Float64(f), nil
}

// Encode renders a value tree as a JSON document, pretty-printed unless
// compact is set.
func Encode(v wirebin.Value, compact bool) ([]byte, error) {
	native, err := toJSON(v)
	if err != nil {
		return nil, err
	}
	if compact {
		return json.Marshal(native)
	}
	return json.MarshalIndent(native, "", "  ")
}

func toJSON(v wirebin.Value) (any, error) {
	switch v := v.(type) {
	case wirebin.Null:
		return nil, nil
	case wirebin.Int32:
		return int32(v), nil
	case wirebin.Int64:
		return int64(v), nil
	case *wirebin.BigInt:
		return json.Number(v.Int().String()), nil
	case wirebin.Float64:
		return float64(v), nil
	case wirebin.String:
		return string(v), nil
	case wirebin.ByteString:
		return base64.StdEncoding.EncodeToString(v), nil
	case wirebin.List:
		return seqToJSON(v)
	case wirebin.Tuple:
		return seqToJSON(v)
	case wirebin.Map:
		out := make(map[string]any, len(v))
		for _, entry := range v {
			key, err := keyString(entry.Key)
			if err != nil {
				return nil, err
			}
			val, err := toJSON(entry.Value)
			if err != nil {
				return nil, err
			}
			out[key] = val
		}
		return out, nil
	case wirebin.Opaque:
		return nil, fmt.Errorf("jsonconv: opaque object <%T> not representable in JSON", v.Obj)
	default:
		return nil, fmt.Errorf("jsonconv: unhandled value type <%T>", v)
	}
}

func seqToJSON(elems []wirebin.Value) (any, error) {
	out := make([]any, len(elems))
	for i, elem := range elems {
		conv, err := toJSON(elem)
		if err != nil {
			return nil, err
		}
		out[i] = conv
	}
	return out, nil
}

func keyString(key wirebin.Value) (string, error) {
	switch key := key.(type) {
	case wirebin.String:
		return string(key), nil
	case wirebin.ByteString:
		return base64.StdEncoding.EncodeToString(key), nil
	case wirebin.Int32:
		return fmt.Sprintf("%d", int32(key)), nil
	case wirebin.Int64:
		return fmt.Sprintf("%d", int64(key)), nil
	default:
		return "", fmt.Errorf("jsonconv: map key <%T> not representable as a JSON object key", key)
	}
}
