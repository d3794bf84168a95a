package basegraph_test

import (
	"errors"
	"testing"

	"github.com/andmarti8001/fly-in/basegraph"
	"github.com/andmarti8001/fly-in/core"
)

// hub builds a test hub with the fields BuildAdjacency cares about.
func hub(id int, name string, zone core.ZoneType) core.Hub {
	return core.Hub{ID: id, Name: name, Zone: zone, MaxDrones: 1}
}

// TestBuildAdjacency_Errors verifies the structural preconditions.
func TestBuildAdjacency_Errors(t *testing.T) {
	cases := []struct {
		name  string
		hubs  []core.Hub
		conns []core.Connection
		err   error
	}{
		{
			"EmptyHubs",
			nil,
			nil,
			basegraph.ErrNoHubs,
		},
		{
			"DuplicateName",
			[]core.Hub{hub(0, "a", core.ZoneNormal), hub(1, "a", core.ZoneNormal)},
			nil,
			basegraph.ErrDuplicateHubName,
		},
		{
			"DiscontinuousIDs",
			[]core.Hub{hub(0, "a", core.ZoneNormal), hub(2, "c", core.ZoneNormal)},
			[]core.Connection{{Hub1: "a", Hub2: "c", MaxLinkCapacity: 1}},
			basegraph.ErrDiscontinuousIDs,
		},
		{
			"UnknownConnectionName",
			[]core.Hub{hub(0, "a", core.ZoneNormal), hub(1, "b", core.ZoneNormal)},
			[]core.Connection{{Hub1: "a", Hub2: "missing", MaxLinkCapacity: 1}},
			basegraph.ErrUnknownHubName,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := basegraph.BuildAdjacency(tc.hubs, tc.conns); !errors.Is(err, tc.err) {
				t.Errorf("BuildAdjacency error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestBuildAdjacency_SymmetricCapacity checks that one connection yields a
// mirrored edge pair carrying the same capacity.
func TestBuildAdjacency_SymmetricCapacity(t *testing.T) {
	adj, err := basegraph.BuildAdjacency(
		[]core.Hub{hub(0, "a", core.ZoneNormal), hub(1, "b", core.ZoneNormal)},
		[]core.Connection{{Hub1: "a", Hub2: "b", MaxLinkCapacity: 7}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(adj) != 2 {
		t.Fatalf("len(adj) = %d; want 2", len(adj))
	}
	if got := adj[0][0]; got.To != 1 || got.MaxLinkCapacity != 7 {
		t.Errorf("adj[0][0] = %+v; want {To:1 MaxLinkCapacity:7}", got)
	}
	if got := adj[1][0]; got.To != 0 || got.MaxLinkCapacity != 7 {
		t.Errorf("adj[1][0] = %+v; want {To:0 MaxLinkCapacity:7}", got)
	}
}

// TestBuildAdjacency_DuplicateConnectionsStayIndependent checks that parallel
// connections each contribute their own edge pair, capacities unmerged.
func TestBuildAdjacency_DuplicateConnectionsStayIndependent(t *testing.T) {
	adj, err := basegraph.BuildAdjacency(
		[]core.Hub{hub(0, "a", core.ZoneNormal), hub(1, "b", core.ZoneNormal)},
		[]core.Connection{
			{Hub1: "a", Hub2: "b", MaxLinkCapacity: 2},
			{Hub1: "a", Hub2: "b", MaxLinkCapacity: 3},
		},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(adj[0]) != 2 || len(adj[1]) != 2 {
		t.Fatalf("edge counts = %d,%d; want 2,2", len(adj[0]), len(adj[1]))
	}
	caps := []int{adj[0][0].MaxLinkCapacity, adj[0][1].MaxLinkCapacity}
	if caps[0]+caps[1] != 5 || caps[0] == caps[1] {
		t.Errorf("capacities = %v; want independent 2 and 3", caps)
	}
}

// TestBuildAdjacency_SelfLoopTwoEdges checks that a self-referencing
// connection, rejected at the directive layer but representable here, adds
// exactly two edges from the hub to itself.
func TestBuildAdjacency_SelfLoopTwoEdges(t *testing.T) {
	adj, err := basegraph.BuildAdjacency(
		[]core.Hub{hub(0, "z", core.ZoneNormal)},
		[]core.Connection{{Hub1: "z", Hub2: "z", MaxLinkCapacity: 5}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(adj[0]) != 2 {
		t.Fatalf("len(adj[0]) = %d; want 2 self-loop edges", len(adj[0]))
	}
	for i, e := range adj[0] {
		if e.To != 0 || e.MaxLinkCapacity != 5 {
			t.Errorf("adj[0][%d] = %+v; want {To:0 MaxLinkCapacity:5}", i, e)
		}
	}
}

// TestBuildAdjacency_LinearDegrees checks the degree sequence of a straight
// four-hub corridor.
func TestBuildAdjacency_LinearDegrees(t *testing.T) {
	adj, err := basegraph.BuildAdjacency(
		[]core.Hub{
			hub(0, "start", core.ZoneStart),
			hub(1, "mid1", core.ZoneNormal),
			hub(2, "mid2", core.ZoneNormal),
			hub(3, "goal", core.ZoneEnd),
		},
		[]core.Connection{
			{Hub1: "start", Hub2: "mid1", MaxLinkCapacity: 1},
			{Hub1: "mid1", Hub2: "mid2", MaxLinkCapacity: 1},
			{Hub1: "mid2", Hub2: "goal", MaxLinkCapacity: 1},
		},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{1, 2, 2, 1}
	for i, edges := range adj {
		if len(edges) != want[i] {
			t.Errorf("degree of hub %d = %d; want %d", i, len(edges), want[i])
		}
	}
}
