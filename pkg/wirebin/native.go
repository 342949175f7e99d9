package wirebin

import (
	"math"
	"math/big"
	"reflect"
)

// FromNative converts a native Go value into a value tree. The conversion
// is total: anything without a mapping below becomes an Opaque node, whose
// fate (extension codec or error) is decided at encode time.
//
// Mapping:
//
//   - nil                 → Null
//   - bool                → Int32 0 or 1 (the format has no boolean kind)
//   - signed/unsigned int → Int32 when it fits 32 bits, else Int64,
//     else BigInt (uint64 values above the int64 range)
//   - *big.Int            → Int64 when it fits 64 bits, else BigInt
//   - float32, float64    → Float64
//   - string              → String
//   - []byte              → ByteString
//   - slices and arrays   → List, elements converted recursively
//   - maps                → Map, keys and values converted recursively
//   - Value               → itself (trees pass through untouched)
//   - anything else       → Opaque
//
// Go maps iterate in random order, so pair order of a Map built here is not
// stable across equivalent maps.
func FromNative(v any) Value {
	switch v := v.(type) {
	case nil:
		return Null{}
	case Value:
		return v
	case bool:
		if v {
			return Int32(1)
		}
		return Int32(0)
	case int:
		return fromInt64(int64(v))
	case int8:
		return Int32(v)
	case int16:
		return Int32(v)
	case int32:
		return Int32(v)
	case int64:
		return fromInt64(v)
	case uint8:
		return Int32(v)
	case uint16:
		return Int32(v)
	case uint32:
		return fromInt64(int64(v))
	case uint:
		return fromUint64(uint64(v))
	case uint64:
		return fromUint64(v)
	case *big.Int:
		if v.IsInt64() {
			return Int64(v.Int64())
		}
		return NewBigInt(v)
	case float32:
		return Float64(v)
	case float64:
		return Float64(v)
	case string:
		return String(v)
	case []byte:
		return ByteString(v)
	case []any:
		out := make(List, len(v))
		for i, elem := range v {
			out[i] = FromNative(elem)
		}
		return out
	case map[string]any:
		out := make(Map, 0, len(v))
		for key, val := range v {
			out = append(out, MapEntry{Key: String(key), Value: FromNative(val)})
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return ByteString(rv.Bytes())
		}
		out := make(List, rv.Len())
		for i := range out {
			out[i] = FromNative(rv.Index(i).Interface())
		}
		return out
	case reflect.Array:
		out := make(List, rv.Len())
		for i := range out {
			out[i] = FromNative(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		out := make(Map, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out = append(out, MapEntry{
				Key:   FromNative(iter.Key().Interface()),
				Value: FromNative(iter.Value().Interface()),
			})
		}
		return out
	}
	return Opaque{Obj: v}
}

func fromInt64(v int64) Value {
	if v >= math.MinInt32 && v <= math.MaxInt32 {
		return Int32(v)
	}
	return Int64(v)
}

func fromUint64(v uint64) Value {
	if v > math.MaxInt64 {
		return NewBigInt(new(big.Int).SetUint64(v))
	}
	return fromInt64(int64(v))
}
