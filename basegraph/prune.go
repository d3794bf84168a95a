package basegraph

import "github.com/andmarti8001/fly-in/core"

// PruneHubs returns a fresh hub list with every blocked hub removed and the
// survivors renumbered densely from zero, preserving relative order.
//
// The input slice is left untouched: survivors are copied, not mutated, so a
// caller holding the original hubs keeps the original numbering and pruning
// an already-blocked-free list yields the same assignment every time.
//
// Complexity: O(V).
func PruneHubs(hubs []core.Hub) []core.Hub {
	pruned := make([]core.Hub, 0, len(hubs))
	for _, h := range hubs {
		if h.Zone == core.ZoneBlocked {
			continue
		}
		h.ID = len(pruned)
		pruned = append(pruned, h)
	}

	return pruned
}

// PruneConnections keeps only connections whose both endpoints appear among
// the non-blocked hubs. Membership is decided by name, independent of any id
// renumbering. Survivors are returned as-is; nothing is mutated.
//
// Complexity: O(V + E).
func PruneConnections(conns []core.Connection, hubs []core.Hub) []core.Connection {
	allowed := make(map[string]struct{}, len(hubs))
	for _, h := range hubs {
		if h.Zone != core.ZoneBlocked {
			allowed[h.Name] = struct{}{}
		}
	}

	pruned := make([]core.Connection, 0, len(conns))
	for _, c := range conns {
		if _, ok := allowed[c.Hub1]; !ok {
			continue
		}
		if _, ok := allowed[c.Hub2]; !ok {
			continue
		}
		pruned = append(pruned, c)
	}

	return pruned
}
