package value_test

import (
	"math"
	"testing"

	"iteraptor/value"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromAnyNested(t *testing.T) {
	got, err := value.FromAny(map[string]any{
		"b": []any{nil, 42},
		"a": map[string]any{"c": "x"},
	})
	require.NoError(t, err)

	// native map keys come out sorted for determinism
	assert.Equal(t, value.Map{
		{Key: value.NameKey("a"), Value: value.Map{
			{Key: value.NameKey("c"), Value: value.Scalar{X: "x"}},
		}},
		{Key: value.NameKey("b"), Value: value.Seq{
			value.Scalar{},
			value.Scalar{X: 42},
		}},
	}, got)
}

func TestFromAnyPassthrough(t *testing.T) {
	m := value.Map{{Key: value.NameKey("a"), Value: value.Scalar{X: 1}}}

	got, err := value.FromAny(m)
	require.NoError(t, err)
	assert.Equal(t, value.Value(m), got)

	got, err = value.FromAny(nil)
	require.NoError(t, err)
	assert.Equal(t, value.Value(value.Scalar{}), got)
}

func TestFromAnyTypedCollections(t *testing.T) {
	got, err := value.FromAny(map[int]string{2: "c", 0: "a", 1: "b"})
	require.NoError(t, err)
	assert.Equal(t, value.Value(value.Map{
		{Key: value.IndexKey(0), Value: value.Scalar{X: "a"}},
		{Key: value.IndexKey(1), Value: value.Scalar{X: "b"}},
		{Key: value.IndexKey(2), Value: value.Scalar{X: "c"}},
	}), got)

	got, err = value.FromAny([]string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, value.Value(value.Seq{
		value.Scalar{X: "x"},
		value.Scalar{X: "y"},
	}), got)
}

func TestFromAnyUnsupportedMapKey(t *testing.T) {
	_, err := value.FromAny(map[float64]any{1.5: "x"})
	require.ErrorIs(t, err, value.ErrUnsupportedValue)

	_, err = value.FromAny(map[int]any{-1: "x"})
	require.ErrorIs(t, err, value.ErrUnsupportedValue)

	// unsigned keys beyond the int range must error, not wrap negative
	_, err = value.FromAny(map[uint64]any{math.MaxUint64: "x"})
	require.ErrorIs(t, err, value.ErrUnsupportedValue)
}

func TestToAny(t *testing.T) {
	v := value.Map{
		{Key: value.NameKey("a"), Value: value.Seq{value.Scalar{X: 1}, value.Scalar{X: 2}}},
		{Key: value.IndexKey(0), Value: value.Scalar{X: "x"}},
	}

	assert.Equal(t, map[string]any{
		"a": []any{1, 2},
		"0": "x",
	}, value.ToAny(v))

	assert.Equal(t, 42, value.ToAny(value.Scalar{X: 42}))
	assert.Nil(t, value.ToAny(value.Scalar{}))
}
