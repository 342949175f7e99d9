package wirebin

import (
	"math"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestFromNative(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  Value
	}{
		{"nil", nil, Null{}},
		{"bool false", false, Int32(0)},
		{"bool true", true, Int32(1)},
		{"int8", int8(-7), Int32(-7)},
		{"uint16", uint16(7), Int32(7)},
		{"int fits 32", 1 << 20, Int32(1 << 20)},
		{"int needs 64", int64(1) << 40, Int64(1 << 40)},
		{"uint64 overflow", uint64(math.MaxUint64),
			NewBigInt(new(big.Int).SetUint64(math.MaxUint64))},
		{"small big.Int", big.NewInt(9), Int64(9)},
		{"float32", float32(0.5), Float64(0.5)},
		{"string", "s", String("s")},
		{"bytes", []byte{1, 2}, ByteString{1, 2}},
		{"any slice", []any{1, "x"}, List{Int32(1), String("x")}},
		{"typed slice", []int{1, 2, 3}, List{Int32(1), Int32(2), Int32(3)}},
		{"array", [2]string{"a", "b"}, List{String("a"), String("b")}},
		{"named byte slice", ByteString{9}, ByteString{9}},
		{"value passthrough", Tuple{Int32(1)}, Tuple{Int32(1)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := FromNative(c.input)
			if diff := cmp.Diff(c.want, got, bigIntComparer); diff != "" {
				t.Fatalf("conversion mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromNativeStringKeyMap(t *testing.T) {
	got := FromNative(map[string]any{"k": 1})
	m, ok := got.(Map)
	require.True(t, ok, "expected Map, got %T", got)
	require.Len(t, m, 1)
	require.Equal(t, String("k"), m[0].Key)
	require.Equal(t, Int32(1), m[0].Value)
}

func TestFromNativeTypedMap(t *testing.T) {
	got := FromNative(map[int]string{7: "seven"})
	m, ok := got.(Map)
	require.True(t, ok, "expected Map, got %T", got)
	require.Len(t, m, 1)
	require.Equal(t, Int32(7), m[0].Key)
	require.Equal(t, String("seven"), m[0].Value)
}

func TestFromNativeOpaqueFallback(t *testing.T) {
	got := FromNative(unlistedType{})
	op, ok := got.(Opaque)
	require.True(t, ok, "expected Opaque, got %T", got)
	require.IsType(t, unlistedType{}, op.Obj)
}
