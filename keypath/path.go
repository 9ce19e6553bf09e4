// Package keypath models the vertical path from a structure's root to a
// node as an ordered sequence of keys, and its rendering to and from
// delimiter-separated strings.
package keypath

import (
	"errors"
	"fmt"
	"strings"

	"iteraptor/internal/common"
	"iteraptor/value"
)

// DefaultDelimiter separates path segments in joined form.
const DefaultDelimiter = "."

// ErrMalformedKey is returned when a flat key cannot be split into a path,
// e.g. it contains an empty segment.
var ErrMalformedKey = errors.New("malformed key")

// ModeEnum selects how Split types the parsed segments.
type ModeEnum int

const (
	// ModeTyped parses pure-digit segments into index keys and keeps the
	// rest as name keys. This is the default.
	ModeTyped ModeEnum = iota
	// ModeRaw keeps every segment as a name key, digits included.
	ModeRaw
)

// Path is the ordered list of keys from the root to a node. The root's own
// path is empty; length equals traversal depth.
type Path []value.Key

// Extend returns a new path with k appended. The capped append guarantees
// sibling paths never share backing storage.
func (p Path) Extend(k value.Key) Path {
	return append(p[:len(p):len(p)], k)
}

// Reversed returns the path with the deepest key first.
func (p Path) Reversed() Path {
	return Path(common.Reversed(p))
}

// Contains reports whether k occurs anywhere in the path.
func (p Path) Contains(k value.Key) bool {
	for _, el := range p {
		if el == k {
			return true
		}
	}

	return false
}

// Join renders the path as a single flat key. A single-segment path returns
// the bare key with its type preserved, so a one-level index stays an index
// rather than becoming its decimal string. Longer paths join the stringified
// segments with delim.
//
// A key whose name contains delim joins ambiguously; Split cannot undo it.
// This is an accepted limitation, no escaping is attempted.
func (p Path) Join(delim string) value.Key {
	if common.IsSingle(p) {
		return p[0]
	}

	segments := make([]string, len(p))
	for i, k := range p {
		segments[i] = k.String()
	}

	return value.NameKey(strings.Join(segments, delim))
}

func (p Path) String() string {
	return p.Join(DefaultDelimiter).String()
}

// Split is the inverse of Join: an index key yields a single-segment path,
// a name key is split on delim and each segment parsed per mode. Empty
// segments (leading, trailing or doubled delimiters) fail with
// ErrMalformedKey.
func Split(k value.Key, delim string, mode ModeEnum) (Path, error) {
	if k.IsIndex() {
		return Path{k}, nil
	}

	if k.Name() == "" {
		return nil, fmt.Errorf("%w: empty key", ErrMalformedKey)
	}

	if delim == "" {
		delim = DefaultDelimiter
	}

	parts := strings.Split(k.Name(), delim)

	path := make(Path, 0, len(parts))

	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrMalformedKey, k.Name())
		}

		switch mode {
		default:
			path = append(path, value.ParseKey(part))
		case ModeRaw:
			path = append(path, value.NameKey(part))
		}
	}

	return path, nil
}
