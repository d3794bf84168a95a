// Command flyin-batch runs every map file under a directory through the
// parser (and optionally the graph builder) and reports a pass/fail summary.
//
// Usage:
//
//	flyin-batch [-graph] [dir]
//
// dir defaults to "maps". Exit status 1 when any map fails.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/andmarti8001/fly-in/basegraph"
	"github.com/andmarti8001/fly-in/mapfile"
)

func main() {
	buildGraph := flag.Bool("graph", false, "also build the base graph for each map")
	flag.Parse()

	dir := "maps"
	if flag.NArg() > 0 {
		dir = flag.Arg(0)
	}

	paths, err := collectMaps(dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "no map files found under %s\n", dir)
		os.Exit(1)
	}

	failures := 0
	for _, path := range paths {
		if err := runMap(path, *buildGraph); err != nil {
			failures++
			fmt.Printf("[FAIL] %s\n", path)
			fmt.Printf("       %v\n", err)
			continue
		}
		fmt.Printf("[OK]   %s\n", path)
	}

	fmt.Println()
	fmt.Printf("Completed %d map(s)\n", len(paths))
	fmt.Printf("Passed: %d\n", len(paths)-failures)
	fmt.Printf("Failed: %d\n", failures)

	if failures > 0 {
		os.Exit(1)
	}
}

// collectMaps gathers every .txt file under dir, sorted for a stable report.
func collectMaps(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".txt") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	return paths, nil
}

// runMap parses one map file, optionally building its base graph too.
func runMap(path string, buildGraph bool) error {
	cfg, err := mapfile.ParseFile(path)
	if err != nil {
		return err
	}
	if !buildGraph {
		return nil
	}
	_, err = basegraph.FromConfig(cfg)

	return err
}
