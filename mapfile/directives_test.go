package mapfile_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andmarti8001/fly-in/core"
	"github.com/andmarti8001/fly-in/mapfile"
)

func TestParseNbDrones(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    int
		err     error
	}{
		{"Simple", "5", 5, nil},
		{"Whitespace", "  12  ", 12, nil},
		{"BoundaryOne", "1", 1, nil},
		{"NonInteger", "abc", 0, mapfile.ErrInvalidInteger},
		{"Zero", "0", 0, mapfile.ErrNoDrones},
		{"Negative", "-3", 0, mapfile.ErrNoDrones},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := mapfile.ParseNbDrones(tc.payload)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("ParseNbDrones(%q) error = %v; want %v", tc.payload, err, tc.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseNbDrones(%q) unexpected error: %v", tc.payload, err)
			}
			if got != tc.want {
				t.Errorf("ParseNbDrones(%q) = %d; want %d", tc.payload, got, tc.want)
			}
		})
	}
}

func TestParseHub_Minimal(t *testing.T) {
	require := require.New(t)

	hub, err := mapfile.ParseHub("roof1 0 4", "")
	require.NoError(err)
	require.Equal("roof1", hub.Name)
	require.Equal(0, hub.X)
	require.Equal(4, hub.Y)
	require.Equal(core.ZoneNormal, hub.Zone)
	require.Empty(hub.Color)
	require.Equal(1, hub.MaxDrones)
}

func TestParseHub_WithMetadata(t *testing.T) {
	require := require.New(t)

	hub, err := mapfile.ParseHub("roof1 3 4 [zone=priority color=green max_drones=2]", "")
	require.NoError(err)
	require.Equal(core.ZonePriority, hub.Zone)
	require.Equal("green", hub.Color)
	require.Equal(2, hub.MaxDrones)

	// Key order inside the block does not matter.
	hub, err = mapfile.ParseHub("roof1 1 2 [max_drones=4 color=blue zone=priority]", "")
	require.NoError(err)
	require.Equal(core.ZonePriority, hub.Zone)
	require.Equal("blue", hub.Color)
	require.Equal(4, hub.MaxDrones)
}

func TestParseHub_NegativeCoordinates(t *testing.T) {
	// Several known-valid maps carry negative coordinates; they must be
	// preserved exactly.
	require := require.New(t)

	hub, err := mapfile.ParseHub("p -5 -7", "")
	require.NoError(err)
	require.Equal(-5, hub.X)
	require.Equal(-7, hub.Y)
}

func TestParseHub_ImpliedZone(t *testing.T) {
	require := require.New(t)

	hub, err := mapfile.ParseHub("start 0 0", core.ZoneStart)
	require.NoError(err)
	require.Equal(core.ZoneStart, hub.Zone)

	// Other metadata stays legal on endpoint hubs.
	hub, err = mapfile.ParseHub("start 0 0 [color=green max_drones=9]", core.ZoneStart)
	require.NoError(err)
	require.Equal(core.ZoneStart, hub.Zone)
	require.Equal("green", hub.Color)
	require.Equal(9, hub.MaxDrones)

	// An explicit zone conflicts with the implied one.
	_, err = mapfile.ParseHub("goal 1 1 [zone=priority]", core.ZoneEnd)
	require.ErrorIs(err, mapfile.ErrDuplicateZones)
}

func TestParseHub_Errors(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		err     error
	}{
		{"TooFewFields", "roof1 1", mapfile.ErrHubParams},
		{"NameOnly", "roof1", mapfile.ErrHubParams},
		{"DashInName", "roof-1 3 4", mapfile.ErrDashInName},
		{"NonIntegerX", "roof1 a 4", mapfile.ErrInvalidInteger},
		{"NonIntegerY", "roof1 4 b", mapfile.ErrInvalidInteger},
		{"NonIntegerMaxDrones", "roof1 1 2 [max_drones=abc]", mapfile.ErrMetadataNotInteger},
		{"UnbracketedMetadata", "roof1 1 2 zone=normal", mapfile.ErrMetadataBrackets},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := mapfile.ParseHub(tc.payload, ""); !errors.Is(err, tc.err) {
				t.Errorf("ParseHub(%q) error = %v; want %v", tc.payload, err, tc.err)
			}
		})
	}
}

func TestParseConnection_Minimal(t *testing.T) {
	require := require.New(t)

	conn, err := mapfile.ParseConnection("roof1-goal")
	require.NoError(err)
	require.Equal("roof1", conn.Hub1)
	require.Equal("goal", conn.Hub2)
	require.Equal(1, conn.MaxLinkCapacity)
}

func TestParseConnection_WithMetadata(t *testing.T) {
	require := require.New(t)

	conn, err := mapfile.ParseConnection("roof1-goal [max_link_capacity=2]")
	require.NoError(err)
	require.Equal(2, conn.MaxLinkCapacity)

	conn, err = mapfile.ParseConnection("a-b [max_link_capacity=1]")
	require.NoError(err)
	require.Equal(1, conn.MaxLinkCapacity)
}

func TestParseConnection_Errors(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		err     error
	}{
		{"Empty", "", mapfile.ErrEmptyConnection},
		{"WhitespaceOnly", "   ", mapfile.ErrEmptyConnection},
		{"NoDash", "roof1 goal", mapfile.ErrNoDash},
		{"SameEndpoints", "roof1-roof1", mapfile.ErrSameEndpoints},
		{"DashInsideName", "roof-1-goal", mapfile.ErrDashInName},
		{"EmptyLeftEndpoint", "-goal", mapfile.ErrEmptyName},
		{"EmptyRightEndpoint", "start-", mapfile.ErrEmptyName},
		{"ExplicitEmptyMetadata", "roof1-goal []", mapfile.ErrEmptyMetadata},
		{"UnbracketedMetadata", "roof1-goal max_link_capacity=2", mapfile.ErrMetadataBrackets},
		{"ZeroCapacity", "roof1-goal [max_link_capacity=0]", mapfile.ErrMetadataNotPositive},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := mapfile.ParseConnection(tc.payload); !errors.Is(err, tc.err) {
				t.Errorf("ParseConnection(%q) error = %v; want %v", tc.payload, err, tc.err)
			}
		})
	}
}

func TestParseMetadata_RejectsUnknownKind(t *testing.T) {
	_, err := mapfile.ParseMetadata("[zone=normal]", mapfile.ObjectKind(9))
	if !errors.Is(err, mapfile.ErrObjectKind) {
		t.Errorf("unknown kind error = %v; want ErrObjectKind", err)
	}
}
