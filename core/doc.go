// Package core defines the domain model for a fly-in delivery network:
// hubs, connections, zone classifications, metadata keys, and the validated
// Config snapshot produced by the map parser.
//
// What
//
//   - Hub: a named network location with coordinates, a ZoneType, an optional
//     color label, and a drone capacity.
//   - Connection: an undirected capacity-limited link between two hubs,
//     identified by hub name (resolution to integer ids happens later, at
//     graph-build time).
//   - Config: one whole-map snapshot: drone count, designated start/end hubs,
//     all hubs, all connections. Immutable after construction; a fresh value
//     is produced per parse.
//   - ZoneType / MetadataKey: the closed vocabularies of the map format.
//
// Why
//
//	Every downstream stage (pruning, adjacency construction, reachability,
//	rendering) consumes these records read-only. Keeping them as plain value
//	types with no behavior makes the parse → build pipeline trivially safe to
//	reuse and to run concurrently: nothing here carries shared mutable state.
//
// Invariants
//
//   - Hub names are unique within one Config and never contain a dash.
//   - Hub IDs in a freshly parsed Config are exactly 0..len(Hubs)-1 in file
//     order; pruning (package basegraph) produces a new compacted set that
//     restores the same density.
//   - StartHub and EndHub are members of Hubs, carrying ZoneStart / ZoneEnd.
//
// See package mapfile for parsing and package basegraph for graph building.
package core
