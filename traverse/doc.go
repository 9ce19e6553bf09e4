// Package traverse implements the generic recursive walk over nested data
// and the public operation surface built on it.
//
// Every operation takes a root value.Value, a typed callback, and an
// options.Traversal. The engine classifies each node, descends into children
// while tracking the key path, applies the callback under the configured
// yield policy, and reassembles the (possibly transformed) structure into
// its original container shape, converting index-keyed associative results
// back into sequences when their keys are exactly 0..n-1.
//
// # Operations
//
//   - Each runs a callback for effects and returns the input unchanged
//   - Map rebuilds the tree with every visited node transformed
//   - Reduce threads a typed accumulator through the visited nodes
//   - MapReduce transforms and accumulates in a single walk
//   - Filter keeps only the leaves a predicate accepts
//   - ToFlatmap and FromFlatmap collapse to and rebuild from a single-level
//     map keyed by delimited paths
//
// # Yield policies
//
// YieldNone (default) invokes the callback on scalar leaves only. YieldAll
// adds every container; the callback observes the original subtree, and a
// non-nil replacement suppresses descent into it. YieldMaps and YieldLists
// add only containers of the matching kind.
//
// # Semantics
//
// Traversal is eager, synchronous, and purely computational: no I/O, no
// suspension, no shared state between invocations. Inputs are treated as
// immutable and outputs are fresh trees, so concurrent calls are safe
// without locking. Recursion depth equals input nesting depth; set MaxDepth
// when the input is untrusted.
package traverse
