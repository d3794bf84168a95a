// Package mapfile parses the fly-in map format into a validated core.Config.
//
// What
//
// The format is line-oriented: one directive per non-blank, non-comment line
// (comments start with '#'), each directive being `key: payload`:
//
//	nb_drones:  <positive integer>
//	start_hub:  <name> <x> <y> [metadata]
//	end_hub:    <name> <x> <y> [metadata]
//	hub:        <name> <x> <y> [metadata]     (repeatable)
//	connection: <name1>-<name2> [metadata]    (repeatable)
//
// A metadata block is `[key=value key=value ...]`, whitespace-separated,
// with keys drawn from {zone, color, max_drones, max_link_capacity}.
// Hubs accept zone/color/max_drones; connections accept only
// max_link_capacity. Zone values come from the fixed vocabulary
// normal|blocked|restricted|priority|start_hub|end_hub. Color values are
// opaque: unknown names are preserved verbatim for the render layer.
//
// Entry points
//
//   - Parse(io.Reader): the core parser; any ordered line source works.
//   - ParseFile(path): convenience wrapper opening a file.
//   - ParseMetadata / ParseNbDrones / ParseHub / ParseConnection: the
//     per-directive parsers, exported for direct use and testing.
//
// Validation
//
// Parsing fails fast: the first malformed line aborts the whole parse and no
// partial Config is ever returned. Beyond per-line grammar checks, the parser
// enforces single occurrence of nb_drones/start_hub/end_hub, presence of all
// three after the stream ends, unique hub names across the collection
// (start/end included), and that every connection endpoint resolves to a
// declared hub.
//
// Every failure condition has its own sentinel error in errors.go; branch
// with errors.Is, never on message text.
//
// Determinism
//
// The parser holds no package-level state. Hub ids are assigned from a
// parser-local counter (0,1,2,... in file order), so repeated or concurrent
// parses never observe each other's numbering, and parsing the same input
// twice yields identical results, including identical errors.
//
// Complexity: O(L) time over L input lines, O(V + E) memory for the Config.
package mapfile
