// Package flyin parses delivery-network map files and builds the pruned,
// capacitated base graph that routing works on.
//
// 🚀 What is fly-in?
//
//	A small toolkit that takes a plain-text map description and turns it
//	into a validated, ready-to-route network:
//		• core/      — hub, connection and config types plus the zone and
//		  metadata vocabularies
//		• mapfile/   — the line-oriented map parser: directives, bracketed
//		  metadata blocks, strict validation with sentinel errors
//		• basegraph/ — pruning of blocked hubs, dense re-numbering,
//		  adjacency construction and start-to-end reachability
//		• render/    — terminal presentation of configs and graphs
//
// A map file names the drone count, one start hub, one end hub, any number
// of intermediate hubs and the undirected links between them:
//
//	nb_drones: 3
//	start_hub: depot 0 0
//	end_hub: rooftop 4 4
//	hub: relay 2 2 [zone=priority max_drones=2]
//	connection: depot-relay [max_link_capacity=2]
//	connection: relay-rooftop
//
// Parsing is strict: every malformed line, duplicate directive, unknown
// metadata key or dangling connection endpoint is rejected with a wrapped
// sentinel error that callers can branch on with errors.Is.
//
// Graph construction prunes blocked hubs (and every link touching them),
// re-numbers survivors densely, mirrors each undirected link as two
// directed edges and proves the end hub is still reachable from the start
// before handing the graph back.
//
// The cmd/ tree carries two small front ends: flyin renders one map, and
// flyin-batch sweeps a directory of maps and reports pass/fail per file.
package flyin
