// Package options declares the knobs recognized by the traversal operations.
// The zero value of Traversal is a valid configuration: leaves-only yield,
// "." delimiter, records treated as opaque leaves, no depth limit.
package options

import "iteraptor/keypath"

type YieldEnum int

const (
	YieldNone  YieldEnum = iota // callback on scalar leaves only (default)
	YieldAll                    // callback on every node, container or leaf
	YieldMaps                   // leaves plus map-kind containers
	YieldLists                  // leaves plus sequence-kind containers

	// YieldTotal is a constant that represents the total number of yield policies defined
	YieldTotal = int(iota)
)

type KeyOrderEnum int

const (
	KeyOrderDefault KeyOrderEnum = iota // path handed to the callback is root-first
	KeyOrderReverse                     // path handed to the callback is deepest-first
)

type StructsEnum int

const (
	StructsValues StructsEnum = iota // adapted records are opaque leaves (default)
	StructsKeep                      // descend into records and rebuild the same record kind
)

// Traversal bundles the options of a single operation. Callers pass it by
// value; WithDefaults fills the blanks.
type Traversal struct {
	// Delimiter separates joined path segments; empty means ".".
	Delimiter string
	Yield     YieldEnum
	KeyOrder  KeyOrderEnum
	Structs   StructsEnum
	// MaxDepth guards recursion when positive; zero means unlimited.
	MaxDepth int
}

// WithDefaults returns a copy with unset fields resolved to their defaults.
func (t Traversal) WithDefaults() Traversal {
	if t.Delimiter == "" {
		t.Delimiter = keypath.DefaultDelimiter
	}

	return t
}
