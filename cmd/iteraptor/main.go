// Package main provides the CLI entrypoint for iteraptor.
//
// iteraptor flattens a YAML document into one `path = value` line per leaf,
// preserving document order:
//
//	iteraptor [-d delimiter] config.yaml
package main

import (
	"flag"
	"fmt"
	"os"

	"iteraptor/internal/config"
	"iteraptor/options"
	"iteraptor/traverse"
	"iteraptor/value"
)

func main() {
	delimiter := flag.String("d", "", "path delimiter (default \".\")")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: iteraptor [-d delimiter] <file.yaml>")
		os.Exit(2)
	}

	doc, err := config.LoadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "load document:", err)
		os.Exit(1)
	}

	flat, err := traverse.ToFlatmap(doc, options.Traversal{Delimiter: *delimiter})
	if err != nil {
		fmt.Fprintln(os.Stderr, "flatten document:", err)
		os.Exit(1)
	}

	for _, p := range flat {
		fmt.Printf("%s = %v\n", p.Key, value.ToAny(p.Value))
	}
}
