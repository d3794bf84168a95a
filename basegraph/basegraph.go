package basegraph

import (
	"fmt"

	"github.com/andmarti8001/fly-in/core"
)

// BaseEdge is one directed edge record of the adjacency structure: the target
// hub id and the capacity of the connection it came from.
type BaseEdge struct {
	To              int
	MaxLinkCapacity int
}

// BaseGraph is the pruned, reachability-proven network.
//
// Adj holds one slot per surviving hub, indexed by its pruned id; each slot
// lists the edges leaving that hub. The structure is symmetric: every
// connection appears once in each direction with the same capacity.
// Hubs is the pruned hub set and StartID/EndID the resolved endpoint ids;
// together with the configured drone count these form the contract toward a
// downstream flow solver.
type BaseGraph struct {
	Adj     [][]BaseEdge
	Hubs    []core.Hub
	StartID int
	EndID   int
}

// BuildAdjacency constructs the undirected adjacency structure from a hub
// list and a connection list.
//
// For every connection, two BaseEdge records are appended, id1→id2 and
// id2→id1, both carrying the connection's capacity. Duplicate connections
// between one pair each contribute their own independent pair, and a
// connection with both endpoints equal contributes two edges from that hub to
// itself. No de-duplication or capacity summation takes place.
//
// Fails with ErrNoHubs on an empty hub list, ErrDuplicateHubName on a shared
// name, ErrDiscontinuousIDs when ids are not exactly 0..n-1, and
// ErrUnknownHubName when a connection references a name outside the list.
//
// Complexity: O(V + E) time and memory.
func BuildAdjacency(hubs []core.Hub, conns []core.Connection) ([][]BaseEdge, error) {
	if len(hubs) == 0 {
		return nil, ErrNoHubs
	}

	ids := make(map[string]int, len(hubs))
	maxID := 0
	for _, h := range hubs {
		if _, dup := ids[h.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateHubName, h.Name)
		}
		ids[h.Name] = h.ID
		if h.ID > maxID {
			maxID = h.ID
		}
	}
	if maxID+1 != len(hubs) {
		return nil, fmt.Errorf("%w: got max id %d over %d hubs", ErrDiscontinuousIDs, maxID, len(hubs))
	}

	adj := make([][]BaseEdge, len(hubs))
	for _, c := range conns {
		id1, ok := ids[c.Hub1]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownHubName, c.Hub1)
		}
		id2, ok := ids[c.Hub2]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownHubName, c.Hub2)
		}
		adj[id1] = append(adj[id1], BaseEdge{To: id2, MaxLinkCapacity: c.MaxLinkCapacity})
		adj[id2] = append(adj[id2], BaseEdge{To: id1, MaxLinkCapacity: c.MaxLinkCapacity})
	}

	return adj, nil
}

// FromConfig runs the whole build: prune blocked hubs, prune connections
// against the survivors, construct the adjacency structure, resolve the
// start/end hubs to their post-pruning ids, and prove reachability.
//
// Fails with ErrEndpointPruned when the start or end hub itself was blocked,
// or ErrNoPath when pruning severed every route between them. Only on success
// is the finished BaseGraph handed to the caller.
func FromConfig(cfg *core.Config) (*BaseGraph, error) {
	hubs := PruneHubs(cfg.Hubs)
	conns := PruneConnections(cfg.Connections, hubs)

	adj, err := BuildAdjacency(hubs, conns)
	if err != nil {
		return nil, err
	}

	ids := make(map[string]int, len(hubs))
	for _, h := range hubs {
		ids[h.Name] = h.ID
	}
	startID, startOK := ids[cfg.StartHub.Name]
	endID, endOK := ids[cfg.EndHub.Name]
	if !startOK || !endOK {
		return nil, fmt.Errorf("%w: start %q, end %q", ErrEndpointPruned, cfg.StartHub.Name, cfg.EndHub.Name)
	}

	if !HasPath(adj, startID, endID) {
		return nil, fmt.Errorf("%w: %s → %s", ErrNoPath, cfg.StartHub.Name, cfg.EndHub.Name)
	}

	return &BaseGraph{Adj: adj, Hubs: hubs, StartID: startID, EndID: endID}, nil
}
