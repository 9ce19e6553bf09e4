package squeeze

import (
	"iteraptor/keypath"
	"iteraptor/value"
)

// DeepInsert inserts v at path into the associative accumulator root,
// creating intermediate Map containers for path segments that do not exist
// yet. Non-colliding siblings are never touched. Inserting where a value is
// already present combines the two through Merge, so leaf collisions
// accumulate into sequences rather than overwrite.
//
// The accumulator keeps numeric segments as index-keyed Map entries; a final
// SqueezeDeep pass restores sequence shapes.
func DeepInsert(root value.Map, path keypath.Path, v value.Value) value.Map {
	if len(path) == 0 {
		return root
	}

	k := path[0]

	for i, p := range root {
		if p.Key != k {
			continue
		}

		out := make(value.Map, len(root))
		copy(out, root)

		if len(path) == 1 {
			out[i].Value = Merge(p.Value, v)
			return out
		}

		if child, ok := p.Value.(value.Map); ok {
			out[i].Value = DeepInsert(child, path[1:], v)
			return out
		}

		// an existing non-container blocks the path: collide it with the
		// freshly built subtree
		out[i].Value = Merge(p.Value, subtree(path[1:], v))
		return out
	}

	if len(path) == 1 {
		return append(root[:len(root):len(root)], value.Pair{Key: k, Value: v})
	}

	return append(root[:len(root):len(root)], value.Pair{Key: k, Value: subtree(path[1:], v)})
}

// subtree builds the nested single-entry Maps holding v under path.
func subtree(path keypath.Path, v value.Value) value.Value {
	if len(path) == 0 {
		return v
	}

	return value.Map{{Key: path[0], Value: subtree(path[1:], v)}}
}
