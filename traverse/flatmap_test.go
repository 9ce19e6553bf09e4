package traverse_test

import (
	"testing"

	"iteraptor/keypath"
	"iteraptor/options"
	"iteraptor/traverse"
	"iteraptor/value"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// {a: {b: {c: 42, d: [nil, 42]}, e: [f, 42]}}
func mixedTree() value.Map {
	return value.Map{
		named("a", value.Map{
			named("b", value.Map{
				named("c", scalar(42)),
				named("d", value.Seq{scalar(nil), scalar(42)}),
			}),
			named("e", value.Seq{scalar("f"), scalar(42)}),
		}),
	}
}

func TestToFlatmap(t *testing.T) {
	flat, err := traverse.ToFlatmap(mixedTree(), options.Traversal{})
	require.NoError(t, err)

	assert.Equal(t, value.Map{
		named("a.b.c", scalar(42)),
		named("a.b.d.0", scalar(nil)),
		named("a.b.d.1", scalar(42)),
		named("a.e.0", scalar("f")),
		named("a.e.1", scalar(42)),
	}, flat)
}

func TestFromFlatmap(t *testing.T) {
	got, err := traverse.FromFlatmap(value.Map{
		named("a.b.c", scalar(42)),
		named("a.b.d.0", scalar(nil)),
		named("a.b.d.1", scalar(42)),
	}, nil, options.Traversal{})

	require.NoError(t, err)
	assert.Equal(t, value.Value(value.Map{
		named("a", value.Map{
			named("b", value.Map{
				named("c", scalar(42)),
				named("d", value.Seq{scalar(nil), scalar(42)}),
			}),
		}),
	}), got)
}

func TestRoundTrip(t *testing.T) {
	trees := []value.Value{
		mixedTree(),
		value.Map{named("a", scalar(42))},
		value.Seq{scalar("x"), value.Map{named("y", scalar(1))}},
		value.Map{named("deep", value.Map{named("deeper", value.Seq{
			value.Seq{scalar(1), scalar(2)},
			scalar(3),
		})})},
	}

	for _, tree := range trees {
		flat, err := traverse.ToFlatmap(tree, options.Traversal{})
		require.NoError(t, err)

		back, err := traverse.FromFlatmap(flat, nil, options.Traversal{})
		require.NoError(t, err)

		assert.Equal(t, tree, back)
	}
}

func TestRoundTripNormalizesAssoc(t *testing.T) {
	tree := value.Assoc{named("a", scalar(1))}

	flat, err := traverse.ToFlatmap(tree, options.Traversal{})
	require.NoError(t, err)

	back, err := traverse.FromFlatmap(flat, nil, options.Traversal{})
	require.NoError(t, err)
	assert.Equal(t, value.Value(value.Map{named("a", scalar(1))}), back)
}

func TestFlattenEmptyContainers(t *testing.T) {
	for _, root := range []value.Value{value.Map{}, value.Seq{}, value.Assoc{}} {
		flat, err := traverse.ToFlatmap(root, options.Traversal{})
		require.NoError(t, err)
		assert.Empty(t, flat)
	}

	back, err := traverse.FromFlatmap(value.Map{}, nil, options.Traversal{})
	require.NoError(t, err)
	assert.Equal(t, value.Value(value.Map{}), back)
}

func TestSingleKeyMapIsIdentity(t *testing.T) {
	root := value.Map{named("a", scalar(42))}

	flat, err := traverse.ToFlatmap(root, options.Traversal{})
	require.NoError(t, err)
	assert.Equal(t, root, flat)

	back, err := traverse.FromFlatmap(flat, nil, options.Traversal{})
	require.NoError(t, err)
	assert.Equal(t, value.Value(root), back)
}

func TestSequenceRootKeepsBareIndexKeys(t *testing.T) {
	root := value.Seq{scalar("x"), scalar("y")}

	flat, err := traverse.ToFlatmap(root, options.Traversal{})
	require.NoError(t, err)

	// depth-1 leaves keep typed bare keys: indices, not "0"/"1" strings
	assert.Equal(t, value.Map{
		{Key: value.IndexKey(0), Value: scalar("x")},
		{Key: value.IndexKey(1), Value: scalar("y")},
	}, flat)

	back, err := traverse.FromFlatmap(flat, nil, options.Traversal{})
	require.NoError(t, err)
	assert.Equal(t, value.Value(root), back)
}

func TestCustomDelimiter(t *testing.T) {
	flat, err := traverse.ToFlatmap(nestedABC(), options.Traversal{Delimiter: "/"})
	require.NoError(t, err)
	assert.Equal(t, value.Map{named("a/b/c", scalar(42))}, flat)

	back, err := traverse.FromFlatmap(flat, nil, options.Traversal{Delimiter: "/"})
	require.NoError(t, err)
	assert.Equal(t, value.Value(nestedABC()), back)
}

func TestFromFlatmapTransformer(t *testing.T) {
	flat := value.Map{
		named("a.b", scalar(1)),
		named("a.c", scalar(2)),
	}

	got, err := traverse.FromFlatmap(flat, func(p keypath.Path, v value.Value) (keypath.Path, value.Value) {
		// rehome everything under a new root segment and double the payload
		return append(keypath.Path{value.NameKey("moved")}, p...), scalar(v.(value.Scalar).X.(int) * 2)
	}, options.Traversal{})

	require.NoError(t, err)
	assert.Equal(t, value.Value(value.Map{
		named("moved", value.Map{
			named("a", value.Map{
				named("b", scalar(2)),
				named("c", scalar(4)),
			}),
		}),
	}), got)
}

func TestFromFlatmapCollision(t *testing.T) {
	got, err := traverse.FromFlatmap(value.Map{
		named("a.b", scalar(1)),
		named("a.b", scalar(2)),
	}, nil, options.Traversal{})

	require.NoError(t, err)
	assert.Equal(t, value.Value(value.Map{
		named("a", value.Map{
			named("b", value.Seq{scalar(1), scalar(2)}),
		}),
	}), got)
}

func TestFromFlatmapMalformedKey(t *testing.T) {
	_, err := traverse.FromFlatmap(value.Map{named("a..b", scalar(1))}, nil, options.Traversal{})
	assert.ErrorIs(t, err, keypath.ErrMalformedKey)
}
