package jsonconv

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/slideinc/wirebin-go/pkg/wirebin"
)

var bigIntComparer = cmp.Comparer(func(a, b *wirebin.BigInt) bool {
	return a.Int().Cmp(b.Int()) == 0
})

func TestDecode(t *testing.T) {
	huge, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)

	cases := []struct {
		name string
		json string
		want wirebin.Value
	}{
		{"null", `null`, wirebin.Null{}},
		{"bool", `true`, wirebin.Int32(1)},
		{"small int", `5`, wirebin.Int32(5)},
		{"large int", `1099511627776`, wirebin.Int64(1 << 40)},
		{"huge int", `123456789012345678901234567890`, wirebin.NewBigInt(huge)},
		{"float", `2.5`, wirebin.Float64(2.5)},
		{"exponent", `1e3`, wirebin.Float64(1000)},
		{"string", `"hi"`, wirebin.String("hi")},
		{"array", `[1, "a", null]`, wirebin.List{
			wirebin.Int32(1), wirebin.String("a"), wirebin.Null{},
		}},
		{"object keys sorted", `{"b": 2, "a": 1}`, wirebin.Map{
			{Key: wirebin.String("a"), Value: wirebin.Int32(1)},
			{Key: wirebin.String("b"), Value: wirebin.Int32(2)},
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Decode([]byte(c.json))
			require.NoError(t, err)
			if diff := cmp.Diff(c.want, got, bigIntComparer); diff != "" {
				t.Fatalf("decode mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeBadInput(t *testing.T) {
	_, err := Decode([]byte(`{"unterminated": `))
	require.Error(t, err)
}

func TestEncode(t *testing.T) {
	doc := wirebin.Map{
		{Key: wirebin.String("n"), Value: wirebin.Int32(1)},
		{Key: wirebin.String("raw"), Value: wirebin.ByteString("hi")},
		{Key: wirebin.String("seq"), Value: wirebin.Tuple{wirebin.Float64(0.5)}},
	}
	got, err := Encode(doc, true)
	require.NoError(t, err)
	require.JSONEq(t, `{"n": 1, "raw": "aGk=", "seq": [0.5]}`, string(got))
}

func TestEncodeBigInt(t *testing.T) {
	huge, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)
	got, err := Encode(wirebin.List{wirebin.NewBigInt(huge)}, true)
	require.NoError(t, err)
	require.Equal(t, `[123456789012345678901234567890]`, string(got))
}

func TestEncodeIntegerKeys(t *testing.T) {
	got, err := Encode(wirebin.Map{
		{Key: wirebin.Int32(7), Value: wirebin.Null{}},
	}, true)
	require.NoError(t, err)
	require.JSONEq(t, `{"7": null}`, string(got))
}

func TestEncodeOpaqueFails(t *testing.T) {
	_, err := Encode(wirebin.Opaque{Obj: big.NewRat(1, 2)}, true)
	require.Error(t, err)
}

func TestWireRoundTripThroughJSON(t *testing.T) {
	src := `{"a": [1, 2.5, "x"], "b": null}`
	tree, err := Decode([]byte(src))
	require.NoError(t, err)

	encoded, err := wirebin.Serialize(tree)
	require.NoError(t, err)
	decoded, err := wirebin.Deserialize(encoded)
	require.NoError(t, err)

	got, err := Encode(decoded, true)
	require.NoError(t, err)
	require.JSONEq(t, src, string(got))
}
