package pickle

import (
	"math/big"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultDecimalRoundTrip(t *testing.T) {
	codec := Default()

	want := big.NewRat(-22, 7)
	blob, err := codec.Dump(want)
	require.NoError(t, err)

	obj, err := codec.Load(blob)
	require.NoError(t, err)
	got, ok := obj.(*big.Rat)
	require.True(t, ok, "expected *big.Rat, got %T", obj)
	require.Equal(t, 0, got.Cmp(want))
}

func TestDumpDeterministic(t *testing.T) {
	codec := Default()
	a, err := codec.Dump(big.NewRat(1, 3))
	require.NoError(t, err)
	b, err := codec.Dump(big.NewRat(1, 3))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestDumpUnregisteredType(t *testing.T) {
	_, err := Default().Dump(struct{ X int }{1})
	require.Error(t, err)
	require.Contains(t, err.Error(), "no registered kind")
}

func TestLoadUnknownKind(t *testing.T) {
	codec := New()
	require.NoError(t, codec.Register("n", 0,
		func(obj any) ([]byte, error) {
			return []byte(strconv.Itoa(obj.(int))), nil
		},
		func(data []byte) (any, error) {
			return strconv.Atoi(string(data))
		}))

	blob, err := codec.Dump(42)
	require.NoError(t, err)

	_, err = New().Load(blob)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown kind")
}

func TestLoadBadEnvelope(t *testing.T) {
	_, err := Default().Load([]byte{0xFF, 0x00})
	require.Error(t, err)
}

func TestRegisterCollisions(t *testing.T) {
	codec := New()
	marshal := func(any) ([]byte, error) { return nil, nil }
	unmarshal := func([]byte) (any, error) { return nil, nil }

	require.NoError(t, codec.Register("a", "", marshal, unmarshal))
	require.Error(t, codec.Register("a", 0, marshal, unmarshal))
	require.Error(t, codec.Register("b", "", marshal, unmarshal))
}

func TestCustomKindRoundTrip(t *testing.T) {
	type point struct{ X, Y int }

	codec := New()
	require.NoError(t, codec.Register("point", point{},
		func(obj any) ([]byte, error) {
			p := obj.(point)
			return []byte(strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)), nil
		},
		func(data []byte) (any, error) {
			var p point
			for i := 0; i < len(data); i++ {
				if data[i] == ',' {
					x, err := strconv.Atoi(string(data[:i]))
					if err != nil {
						return nil, err
					}
					y, err := strconv.Atoi(string(data[i+1:]))
					if err != nil {
						return nil, err
					}
					p = point{X: x, Y: y}
				}
			}
			return p, nil
		}))

	blob, err := codec.Dump(point{3, -4})
	require.NoError(t, err)
	obj, err := codec.Load(blob)
	require.NoError(t, err)
	require.Equal(t, point{3, -4}, obj)
}
