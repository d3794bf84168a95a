// Package render pretty-prints parsed configurations and built base graphs
// for humans, with terminal styling via lipgloss.
//
// This is a read-only collaborator: it consumes core.Config, core.Hub,
// core.Connection, and basegraph.BaseGraph records after the fact and is
// never invoked by the parser or the graph builder themselves.
//
// Hub color labels come from the map format verbatim; known names map to
// terminal colors, unknown names are still displayed as-is next to a
// default-colored swatch.
package render
