package traverse

import (
	"fmt"

	"iteraptor/internal/squeeze"
	"iteraptor/keypath"
	"iteraptor/options"
	"iteraptor/value"
)

// TransformFunc rewrites one flat entry during unflattening. It receives the
// typed path split from the flat key and the stored value, and its results
// substitute both.
type TransformFunc func(path keypath.Path, v value.Value) (keypath.Path, value.Value)

// ToFlatmap collapses a nested tree into a single-level Map from joined
// key-paths to leaf values, in traversal order. A depth-1 leaf keeps its
// bare key with the type preserved; deeper paths join to a name key with the
// configured delimiter. Empty containers contribute nothing, so an empty map
// or sequence flattens to an empty Map.
func ToFlatmap(v value.Value, opts options.Traversal) (value.Map, error) {
	cfg := opts.WithDefaults()
	cfg.Yield = options.YieldNone // leaves only

	flat := value.Map{}

	w := newWalker(cfg, func(p keypath.Path, leaf value.Value) (value.Value, error) {
		flat = append(flat, value.Pair{Key: p.Join(cfg.Delimiter), Value: leaf})
		return nil, nil
	})

	if _, err := w.run(v); err != nil {
		return nil, err
	}

	return flat, nil
}

// FromFlatmap rebuilds a nested tree from a flat Map, the inverse of
// ToFlatmap. Each flat key is split into a typed path (pure-digit segments
// become indices), optionally rewritten by transformer, and deep-inserted
// with intermediate Maps created on demand; a single reassembly pass then
// restores sequence shapes wherever the rebuilt keys are exactly 0..n-1.
//
// Inserting two entries at the same path accumulates them into a sequence
// rather than overwriting. Keys that contained the delimiter before
// flattening do not round-trip.
func FromFlatmap(flat value.Map, transformer TransformFunc, opts options.Traversal) (value.Value, error) {
	cfg := opts.WithDefaults()

	acc := value.Map{}

	for _, p := range flat {
		path, err := keypath.Split(p.Key, cfg.Delimiter, keypath.ModeTyped)
		if err != nil {
			return nil, fmt.Errorf("flat key %q: %w", p.Key.String(), err)
		}

		v := p.Value
		if transformer != nil {
			path, v = transformer(path, v)
		}

		acc = squeeze.DeepInsert(acc, path, v)
	}

	return squeeze.SqueezeDeep(acc), nil
}
