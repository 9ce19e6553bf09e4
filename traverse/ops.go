package traverse

import (
	"iteraptor/internal/squeeze"
	"iteraptor/keypath"
	"iteraptor/options"
	"iteraptor/value"
)

// EachFunc observes one visited node. Its return value, if any, is of no
// interest to Each.
type EachFunc func(path keypath.Path, v value.Value)

// MapFunc transforms one visited node. Returning nil keeps the original
// value; the original key is always used for reinsertion, so a callback
// never needs to echo keys to pass a node through unchanged. Returning a
// non-nil value for a container replaces that whole subtree and the engine
// does not descend into the replacement.
type MapFunc func(path keypath.Path, v value.Value) (value.Value, error)

// FilterFunc is a predicate over a leaf and its path.
type FilterFunc func(path keypath.Path, v value.Value) bool

// Each walks v for the callback's side effects only and returns the input
// unchanged, irrespective of anything the walk produced.
func Each(v value.Value, fn EachFunc, opts options.Traversal) (value.Value, error) {
	if fn == nil {
		return nil, ErrNilCallback
	}

	cfg := opts.WithDefaults()

	w := newWalker(cfg, func(p keypath.Path, node value.Value) (value.Value, error) {
		fn(userPath(cfg, p), node)
		return nil, nil
	})

	if _, err := w.run(v); err != nil {
		return nil, err
	}

	return v, nil
}

// Map returns a new tree with every visited node passed through fn. The
// input is never mutated.
func Map(v value.Value, fn MapFunc, opts options.Traversal) (value.Value, error) {
	if fn == nil {
		return nil, ErrNilCallback
	}

	cfg := opts.WithDefaults()

	w := newWalker(cfg, func(p keypath.Path, node value.Value) (value.Value, error) {
		return fn(userPath(cfg, p), node)
	})

	return w.run(v)
}

// Reduce threads an accumulator through the visited nodes in traversal
// order (left to right, depth per the yield policy) and returns the final
// accumulator. The tree is left untouched.
func Reduce[A any](v value.Value, init A, fn func(path keypath.Path, v value.Value, acc A) (A, error), opts options.Traversal) (A, error) {
	var zero A

	if fn == nil {
		return zero, ErrNilCallback
	}

	cfg := opts.WithDefaults()
	acc := init

	w := newWalker(cfg, func(p keypath.Path, node value.Value) (value.Value, error) {
		next, err := fn(userPath(cfg, p), node, acc)
		if err != nil {
			return nil, err
		}

		acc = next

		return nil, nil
	})

	if _, err := w.run(v); err != nil {
		return zero, err
	}

	return acc, nil
}

// MapReduce combines Map and Reduce in a single walk: fn returns both the
// replacement value (nil keeps the original) and the next accumulator.
func MapReduce[A any](v value.Value, init A, fn func(path keypath.Path, v value.Value, acc A) (value.Value, A, error), opts options.Traversal) (value.Value, A, error) {
	var zero A

	if fn == nil {
		return nil, zero, ErrNilCallback
	}

	cfg := opts.WithDefaults()
	acc := init

	w := newWalker(cfg, func(p keypath.Path, node value.Value) (value.Value, error) {
		out, next, err := fn(userPath(cfg, p), node, acc)
		if err != nil {
			return nil, err
		}

		acc = next

		return out, nil
	})

	mapped, err := w.run(v)
	if err != nil {
		return nil, zero, err
	}

	return mapped, acc, nil
}

// Filter keeps only the leaves the predicate accepts, reinserted at their
// original paths. Branches where no leaf survives are omitted entirely;
// filtering is not structure-preserving for empty branches, and surviving
// sequence elements keep their original indices, so a sequence with gaps
// comes back as an index-keyed map.
func Filter(v value.Value, pred FilterFunc, opts options.Traversal) (value.Value, error) {
	if pred == nil {
		return nil, ErrNilCallback
	}

	cfg := opts.WithDefaults()
	cfg.Yield = options.YieldNone // leaves decide membership

	acc := value.Map{}

	w := newWalker(cfg, func(p keypath.Path, leaf value.Value) (value.Value, error) {
		if pred(userPath(cfg, p), leaf) {
			acc = squeeze.DeepInsert(acc, p, leaf)
		}

		return nil, nil
	})

	if _, err := w.run(v); err != nil {
		return nil, err
	}

	return squeeze.SqueezeDeep(acc), nil
}
