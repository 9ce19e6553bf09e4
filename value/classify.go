package value

// Enumerable adapts a user record type for traversal. A Scalar whose payload
// implements Enumerable classifies as KindRecord; the adapter takes
// precedence over the payload's native shape.
//
// Pairs exposes the record as ordered key/value children; Collect rebuilds a
// record of the same kind from (possibly transformed) children. TypeName is
// used in diagnostics only.
type Enumerable interface {
	TypeName() string
	Pairs() []Pair
	Collect(pairs []Pair) (Value, error)
}

// Classify determines the effective kind of v, consulting the Enumerable
// adapter before the native variant tag. A nil Value classifies as the
// invalid zero kind.
func Classify(v Value) KindEnum {
	if v == nil {
		return 0
	}

	if s, ok := v.(Scalar); ok {
		if _, ok := s.X.(Enumerable); ok {
			return KindRecord
		}
	}

	return v.Kind()
}

// EmptyOf produces an empty accumulation instance of the given kind. Record
// kinds have no generic empty instance; their Enumerable.Collect is the
// reassembly target instead.
func EmptyOf(kind KindEnum) Value {
	switch kind {
	default:
		return nil
	case KindScalar:
		return Scalar{}
	case KindMap:
		return Map{}
	case KindSeq:
		return Seq{}
	case KindAssoc:
		return Assoc{}
	}
}

// PairsOf returns the ordered keyed children of a container. Seq children are
// keyed by their position; record children come from the adapter. Scalars
// have no children.
func PairsOf(v Value) []Pair {
	switch t := v.(type) {
	default:
		return nil
	case Map:
		return t
	case Assoc:
		return t
	case Seq:
		pairs := make([]Pair, len(t))
		for i, el := range t {
			pairs[i] = Pair{Key: IndexKey(i), Value: el}
		}

		return pairs
	case Scalar:
		if e, ok := t.X.(Enumerable); ok {
			return e.Pairs()
		}

		return nil
	}
}
