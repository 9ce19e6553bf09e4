package traverse

import (
	"fmt"

	"iteraptor/internal/squeeze"
	"iteraptor/keypath"
	"iteraptor/options"
	"iteraptor/value"
)

// visitFunc is the engine-side callback. It always receives the original
// root-first path. A non-nil return replaces that exact subtree and stops
// recursion into it; nil keeps the original value and lets recursion proceed.
type visitFunc func(path keypath.Path, v value.Value) (value.Value, error)

type walker struct {
	cfg   options.Traversal
	visit visitFunc
}

func newWalker(cfg options.Traversal, visit visitFunc) *walker {
	return &walker{cfg: cfg, visit: visit}
}

// run validates the root and starts the walk. The root itself is never
// handed to the callback; visiting starts at its children.
func (w *walker) run(root value.Value) (value.Value, error) {
	kind := value.Classify(root)

	switch {
	case kind == 0, kind == value.KindScalar:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedRoot, kind)
	case kind == value.KindRecord && w.cfg.Structs != options.StructsKeep:
		return nil, fmt.Errorf("%w: record roots require StructsKeep", ErrUnsupportedRoot)
	}

	return w.walk(root, nil, 0)
}

// walk processes one container node: iterate children with their local key,
// extend the path, apply the yield decision, recurse into non-leaf children,
// and reassemble the results into the node's original shape.
func (w *walker) walk(node value.Value, path keypath.Path, depth int) (value.Value, error) {
	if w.cfg.MaxDepth > 0 && depth >= w.cfg.MaxDepth {
		return nil, fmt.Errorf("%w: at %q", ErrDepthExceeded, path.String())
	}

	kind := value.Classify(node)

	pairs := value.PairsOf(node)
	entries := make([]value.Pair, 0, len(pairs))

	for _, p := range pairs {
		childPath := path.Extend(p.Key)
		childKind := value.Classify(p.Value)
		leaf := w.isLeaf(childKind)

		child := p.Value
		replaced := false

		if leaf || w.yieldsOn(childKind) {
			out, err := w.visit(childPath, child)
			if err != nil {
				return nil, err
			}

			if out != nil {
				child = out
				replaced = true
			}
		}

		if !leaf && !replaced {
			sub, err := w.walk(child, childPath, depth+1)
			if err != nil {
				return nil, err
			}

			child = sub
		}

		entries = append(entries, value.Pair{Key: p.Key, Value: child})
	}

	if kind == value.KindRecord {
		e := node.(value.Scalar).X.(value.Enumerable)

		rebuilt, err := e.Collect(entries)
		if err != nil {
			return nil, fmt.Errorf("rebuild record %s at %q: %w", e.TypeName(), path.String(), err)
		}

		return rebuilt, nil
	}

	return squeeze.Squeeze(entries, kind), nil
}

// isLeaf reports whether a node of this kind terminates the walk. Records
// are leaves unless StructsKeep asks for descent.
func (w *walker) isLeaf(kind value.KindEnum) bool {
	switch kind {
	default:
		return false
	case value.KindScalar:
		return true
	case value.KindRecord:
		return w.cfg.Structs != options.StructsKeep
	}
}

// yieldsOn decides whether the callback fires on a container child of the
// given kind. Leaves always yield; that case is handled by the caller.
func (w *walker) yieldsOn(kind value.KindEnum) bool {
	switch w.cfg.Yield {
	default:
		return false
	case options.YieldAll:
		return true
	case options.YieldMaps:
		return kind.IsMapLike()
	case options.YieldLists:
		return kind == value.KindSeq
	}
}

// userPath shapes the path handed to a caller-supplied callback. Reversal is
// callback ergonomics only and never affects reassembly.
func userPath(cfg options.Traversal, p keypath.Path) keypath.Path {
	if cfg.KeyOrder == options.KeyOrderReverse {
		return p.Reversed()
	}

	return p
}
