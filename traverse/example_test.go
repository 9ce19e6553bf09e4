package traverse_test

import (
	"fmt"

	"iteraptor/keypath"
	"iteraptor/options"
	"iteraptor/traverse"
	"iteraptor/value"
)

func ExampleToFlatmap() {
	tree := value.Map{
		{Key: value.NameKey("a"), Value: value.Map{
			{Key: value.NameKey("b"), Value: value.Scalar{X: 42}},
			{Key: value.NameKey("d"), Value: value.Seq{value.Scalar{}, value.Scalar{X: 42}}},
		}},
	}

	flat, err := traverse.ToFlatmap(tree, options.Traversal{})
	fmt.Println(err)

	for _, p := range flat {
		fmt.Printf("%s = %v\n", p.Key, value.ToAny(p.Value))
	}

	// Output:
	// <nil>
	// a.b = 42
	// a.d.0 = <nil>
	// a.d.1 = 42
}

func ExampleFromFlatmap() {
	flat := value.Map{
		{Key: value.NameKey("a.b.0"), Value: value.Scalar{X: "x"}},
		{Key: value.NameKey("a.b.1"), Value: value.Scalar{X: "y"}},
	}

	tree, err := traverse.FromFlatmap(flat, nil, options.Traversal{})
	fmt.Println(err)

	m := tree.(value.Map)
	inner, _ := m.Get(value.NameKey("a"))
	sub, _ := inner.(value.Map).Get(value.NameKey("b"))
	fmt.Printf("%T %v\n", sub, value.ToAny(sub))

	// Output:
	// <nil>
	// value.Seq [x y]
}

func ExampleReduce() {
	tree := value.Map{
		{Key: value.NameKey("a"), Value: value.Scalar{X: 1}},
		{Key: value.NameKey("b"), Value: value.Seq{value.Scalar{X: 2}, value.Scalar{X: 3}}},
	}

	sum, err := traverse.Reduce(tree, 0, func(_ keypath.Path, v value.Value, acc int) (int, error) {
		return acc + v.(value.Scalar).X.(int), nil
	}, options.Traversal{})

	fmt.Println(sum, err)

	// Output:
	// 6 <nil>
}

func ExampleFilter() {
	tree := value.Map{
		{Key: value.NameKey("prod"), Value: value.Map{
			{Key: value.NameKey("host"), Value: value.Scalar{X: "db1"}},
			{Key: value.NameKey("debug"), Value: value.Scalar{X: true}},
		}},
		{Key: value.NameKey("debug"), Value: value.Scalar{X: false}},
	}

	kept, err := traverse.Filter(tree, func(p keypath.Path, _ value.Value) bool {
		return !p.Contains(value.NameKey("debug"))
	}, options.Traversal{})
	fmt.Println(err)

	flat, _ := traverse.ToFlatmap(kept, options.Traversal{})
	for _, p := range flat {
		fmt.Printf("%s = %v\n", p.Key, value.ToAny(p.Value))
	}

	// Output:
	// <nil>
	// prod.host = db1
}
