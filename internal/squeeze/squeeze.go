// Package squeeze implements the reassembly step of a traversal: merging
// duplicate-keyed entries produced during a bottom-up rebuild and detecting
// when an associative result is really a sequence in disguise.
package squeeze

import (
	"sort"

	"iteraptor/internal/common"
	"iteraptor/value"
)

// Squeeze merges entries sharing a key (first-seen order of distinct keys is
// preserved) and then inspects the resulting key set: exactly the indices
// 0..n-1, in any order, collapses into a Seq ordered by ascending index.
// Otherwise the entries stay associative, shaped per kind (Assoc in, Assoc
// out; anything else yields a Map).
//
// Squeeze is deterministic and idempotent: squeezing a squeezed result is a
// no-op.
func Squeeze(entries []value.Pair, kind value.KindEnum) value.Value {
	if common.IsEmpty(entries) {
		return value.EmptyOf(kind)
	}

	merged := make([]value.Pair, 0, len(entries))
	at := make(map[value.Key]int, len(entries))

	for _, e := range entries {
		i, seen := at[e.Key]
		if !seen {
			at[e.Key] = len(merged)
			merged = append(merged, e)
			continue
		}

		merged[i].Value = Merge(merged[i].Value, e.Value)
	}

	if quacksAsSeq(merged) {
		sort.Slice(merged, func(i, j int) bool {
			return merged[i].Key.Index() < merged[j].Key.Index()
		})

		out := make(value.Seq, len(merged))
		for i, p := range merged {
			out[i] = p.Value
		}

		return out
	}

	if kind == value.KindAssoc {
		return value.Assoc(merged)
	}

	return value.Map(merged)
}

// SqueezeDeep applies Squeeze bottom-up over a whole tree. Used after a full
// rebuild (unflatten, filter) where every level may hold a sequence in
// associative disguise.
func SqueezeDeep(v value.Value) value.Value {
	switch t := v.(type) {
	default:
		return v
	case value.Seq:
		out := make(value.Seq, len(t))
		for i, el := range t {
			out[i] = SqueezeDeep(el)
		}
		return out
	case value.Map:
		return Squeeze(deepPairs(t), value.KindMap)
	case value.Assoc:
		return Squeeze(deepPairs(t), value.KindAssoc)
	}
}

func deepPairs(pairs []value.Pair) []value.Pair {
	out := make([]value.Pair, len(pairs))
	for i, p := range pairs {
		out[i] = value.Pair{Key: p.Key, Value: SqueezeDeep(p.Value)}
	}

	return out
}

// Merge combines two values stored under the same key. Map-like values merge
// recursively with the right side extending the left; sequences concatenate;
// any other collision accumulates into a flat Seq, so three colliding
// scalars become a 3-element sequence rather than nested pairs.
func Merge(left, right value.Value) value.Value {
	lm, lok := pairsOfMapLike(left)
	rm, rok := pairsOfMapLike(right)

	switch {
	case lok && rok:
		return mergeMapLike(left, lm, rm)

	case left.Kind() == value.KindSeq && right.Kind() == value.KindSeq:
		ls, rs := left.(value.Seq), right.(value.Seq)
		out := make(value.Seq, 0, len(ls)+len(rs))
		out = append(out, ls...)
		return append(out, rs...)

	case left.Kind() == value.KindSeq:
		// a previous collision already accumulated into a sequence
		ls := left.(value.Seq)
		return append(ls[:len(ls):len(ls)], right)

	default:
		return value.Seq{left, right}
	}
}

func pairsOfMapLike(v value.Value) ([]value.Pair, bool) {
	switch t := v.(type) {
	default:
		return nil, false
	case value.Map:
		return t, true
	case value.Assoc:
		return t, true
	}
}

// mergeMapLike extends left with right: new keys append, colliding sub-keys
// merge recursively through Merge, except that a pair of leaf values where
// neither side is a container lets the right side win.
func mergeMapLike(left value.Value, lm, rm []value.Pair) value.Value {
	out := make([]value.Pair, len(lm))
	copy(out, lm)

	at := make(map[value.Key]int, len(lm))
	for i, p := range lm {
		at[p.Key] = i
	}

	for _, p := range rm {
		i, seen := at[p.Key]
		if !seen {
			at[p.Key] = len(out)
			out = append(out, p)
			continue
		}

		if out[i].Value.Kind() == value.KindScalar && p.Value.Kind() == value.KindScalar {
			out[i].Value = p.Value
			continue
		}

		out[i].Value = Merge(out[i].Value, p.Value)
	}

	if left.Kind() == value.KindAssoc {
		return value.Assoc(out)
	}

	return value.Map(out)
}

// quacksAsSeq reports whether the key set is exactly {0..n-1}. Decided on
// the numeric key set alone, never on value content.
func quacksAsSeq(entries []value.Pair) bool {
	if common.IsEmpty(entries) {
		return false
	}

	seen := make([]bool, len(entries))

	for _, p := range entries {
		if !p.Key.IsIndex() {
			return false
		}

		i := p.Key.Index()
		if i >= len(entries) || seen[i] {
			return false
		}

		seen[i] = true
	}

	return true
}
