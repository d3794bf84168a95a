package basegraph

import "errors"

// Sentinel errors for graph building. Branch with errors.Is.
var (
	// ErrNoHubs indicates an empty hub list.
	ErrNoHubs = errors.New("basegraph: hubs list must not be empty")

	// ErrDuplicateHubName indicates two hubs sharing one name.
	ErrDuplicateHubName = errors.New("basegraph: duplicate hub name found")

	// ErrDiscontinuousIDs indicates hub ids that are not exactly 0..n-1
	// at the point of building.
	ErrDiscontinuousIDs = errors.New("basegraph: hub ids must be continuous and start from zero")

	// ErrUnknownHubName indicates a connection endpoint absent from the hub list.
	ErrUnknownHubName = errors.New("basegraph: unknown name found in connection")

	// ErrEndpointPruned indicates the start or end hub itself was blocked
	// and removed by pruning.
	ErrEndpointPruned = errors.New("basegraph: start_hub or end_hub missing after pruning")

	// ErrNoPath indicates the reachability proof failed: pruning severed
	// every route between the start and end hubs.
	ErrNoPath = errors.New("basegraph: no valid path from start_hub to end_hub")
)
