package value

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
)

// ErrUnsupportedValue is returned when a native Go value cannot be brought
// into the union, e.g. a map whose key type is neither string nor integer.
var ErrUnsupportedValue = errors.New("value cannot be classified")

// FromAny converts a native Go value into the union. Values already in the
// union pass through. Native maps convert to Map with keys sorted for
// determinism (Go map iteration order is random); slices and arrays convert
// to Seq; []Pair converts to Assoc; everything else becomes a Scalar leaf.
func FromAny(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Scalar{}, nil
	case Value:
		return t, nil
	case []Pair:
		out := make(Assoc, len(t))
		copy(out, t)
		return out, nil
	case map[string]any:
		return mapFromStrings(t)
	case []any:
		out := make(Seq, 0, len(t))
		for _, el := range t {
			v, err := FromAny(el)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}

	rv := reflect.ValueOf(x)

	switch rv.Kind() {
	default:
		return Scalar{X: x}, nil

	case reflect.Map:
		return mapFromReflect(rv)

	case reflect.Slice, reflect.Array:
		out := make(Seq, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			v, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}
}

func mapFromStrings(m map[string]any) (Value, error) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(Map, 0, len(m))
	for _, name := range names {
		v, err := FromAny(m[name])
		if err != nil {
			return nil, err
		}
		out = append(out, Pair{Key: NameKey(name), Value: v})
	}

	return out, nil
}

func mapFromReflect(rv reflect.Value) (Value, error) {
	keys := make([]Key, 0, rv.Len())
	elems := make(map[Key]reflect.Value, rv.Len())

	for _, rk := range rv.MapKeys() {
		k, err := keyFromReflect(rk)
		if err != nil {
			return nil, fmt.Errorf("%w: map key %v", err, rk.Interface())
		}

		keys = append(keys, k)
		elems[k] = rv.MapIndex(rk)
	}

	sort.Slice(keys, func(i, j int) bool { return keyLess(keys[i], keys[j]) })

	out := make(Map, 0, len(keys))
	for _, k := range keys {
		v, err := FromAny(elems[k].Interface())
		if err != nil {
			return nil, err
		}
		out = append(out, Pair{Key: k, Value: v})
	}

	return out, nil
}

func keyFromReflect(rk reflect.Value) (Key, error) {
	switch rk.Kind() {
	default:
		return Key{}, ErrUnsupportedValue
	case reflect.String:
		return NameKey(rk.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := rk.Int()
		if i < 0 {
			return Key{}, ErrUnsupportedValue
		}
		return IndexKey(int(i)), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rk.Uint()
		if u > math.MaxInt {
			return Key{}, ErrUnsupportedValue
		}
		return IndexKey(int(u)), nil
	}
}

// keyLess orders index keys before name keys, indices numerically and names
// lexicographically. Used only to make FromAny deterministic.
func keyLess(a, b Key) bool {
	switch {
	case a.IsIndex() && b.IsIndex():
		return a.Index() < b.Index()
	case a.IsIndex() != b.IsIndex():
		return a.IsIndex()
	default:
		return a.Name() < b.Name()
	}
}

// ToAny converts a Value back into plain Go data: Map and Assoc become
// map[string]any (index keys render as decimal strings, insertion order is
// lost), Seq becomes []any, Scalar yields its payload. Lossy by design.
func ToAny(v Value) any {
	switch t := v.(type) {
	default:
		return nil
	case Scalar:
		return t.X
	case Seq:
		out := make([]any, len(t))
		for i, el := range t {
			out[i] = ToAny(el)
		}
		return out
	case Map:
		return pairsToAny(t)
	case Assoc:
		return pairsToAny(t)
	}
}

func pairsToAny(pairs []Pair) map[string]any {
	out := make(map[string]any, len(pairs))
	for _, p := range pairs {
		name := p.Key.Name()
		if p.Key.IsIndex() {
			name = strconv.Itoa(p.Key.Index())
		}
		out[name] = ToAny(p.Value)
	}

	return out
}
