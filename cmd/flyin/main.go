// Command flyin parses one delivery-network map, builds its base graph, and
// pretty-prints both.
//
// Usage:
//
//	flyin [-config-only] <map.txt>
//
// Exit status 1 on any parse or build failure.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/andmarti8001/fly-in/basegraph"
	"github.com/andmarti8001/fly-in/mapfile"
	"github.com/andmarti8001/fly-in/render"
)

func main() {
	configOnly := flag.Bool("config-only", false, "parse and print the configuration without building the graph")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: flyin [-config-only] <map.txt>")
		os.Exit(2)
	}

	cfg, err := mapfile.ParseFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	r := render.New(os.Stdout)
	r.Config(cfg)

	if *configOnly {
		return
	}

	graph, err := basegraph.FromConfig(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println()
	r.Graph(graph)
}
