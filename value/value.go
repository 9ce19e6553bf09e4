// Package value defines the closed tagged union every traversal operates on.
//
// A Value is exactly one of four variants: Scalar (any leaf payload), Map
// (insertion-ordered associative container with unique keys), Seq
// (index-addressed container), or Assoc (association-list shaped container
// whose keys may repeat until reassembled). Containers never coerce into one
// another implicitly; shape changes happen only at reassembly points.
//
// Keys are either non-negative integers (sequence indices) or string names.
// A Key is comparable and can be used as a Go map key.
package value

import "strconv"

// Value is the closed union of node shapes. Only the four variants in this
// package implement it.
type Value interface {
	// Kind returns the structural kind of the variant, ignoring adapters.
	Kind() KindEnum

	sealed()
}

// Key addresses a child within a container: either a non-negative sequence
// index or a string name. The zero Key is the index 0.
type Key struct {
	name    string
	index   int
	isIndex bool
}

// IndexKey returns a Key addressing position i.
func IndexKey(i int) Key {
	if i < 0 {
		panic("value: negative index key: " + strconv.Itoa(i))
	}

	return Key{index: i, isIndex: true}
}

// NameKey returns a Key addressing the name s.
func NameKey(s string) Key {
	return Key{name: s}
}

// ParseKey converts a string segment into a Key: pure-digit segments become
// index keys, everything else a name key.
func ParseKey(s string) Key {
	if i, err := strconv.Atoi(s); err == nil && i >= 0 {
		return IndexKey(i)
	}

	return NameKey(s)
}

// IsIndex reports whether the key is a sequence index.
func (k Key) IsIndex() bool { return k.isIndex }

// Index returns the index value; it is meaningful only when IsIndex is true.
func (k Key) Index() int { return k.index }

// Name returns the name value; it is meaningful only when IsIndex is false.
func (k Key) Name() string { return k.name }

func (k Key) String() string {
	if k.isIndex {
		return strconv.Itoa(k.index)
	}

	return k.name
}

// Pair is a single keyed child of a map-like container.
type Pair struct {
	Key   Key
	Value Value
}

// Scalar is a traversal-terminal leaf carrying an arbitrary payload. The
// payload is opaque to the engine; nil represents null/absence.
type Scalar struct {
	X any
}

func (Scalar) Kind() KindEnum { return KindScalar }
func (Scalar) sealed()        {}

// Map is an insertion-ordered associative container. Keys are expected to be
// unique; Get returns the first match.
type Map []Pair

func (Map) Kind() KindEnum { return KindMap }
func (Map) sealed()        {}

// Get returns the value stored under k and whether it was present.
func (m Map) Get(k Key) (Value, bool) {
	for _, p := range m {
		if p.Key == k {
			return p.Value, true
		}
	}

	return nil, false
}

// Keys returns the keys in insertion order.
func (m Map) Keys() []Key {
	keys := make([]Key, len(m))
	for i, p := range m {
		keys[i] = p.Key
	}

	return keys
}

// Seq is an index-addressed container; order is semantically meaningful.
type Seq []Value

func (Seq) Kind() KindEnum { return KindSeq }
func (Seq) sealed()        {}

// Assoc is an association-list shaped container. It behaves like a Map for
// lookup but is represented positionally, and its keys may repeat before
// reassembly.
type Assoc []Pair

func (Assoc) Kind() KindEnum { return KindAssoc }
func (Assoc) sealed()        {}

// Get returns the first value stored under k and whether it was present.
func (a Assoc) Get(k Key) (Value, bool) {
	for _, p := range a {
		if p.Key == k {
			return p.Value, true
		}
	}

	return nil, false
}
