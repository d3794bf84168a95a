package mapfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andmarti8001/fly-in/core"
)

// hubFieldLimit bounds the hub payload split: name, x, y, metadata tail.
const hubFieldLimit = 4

// defaultCapacity applies when max_drones / max_link_capacity is omitted.
const defaultCapacity = 1

// ParseNbDrones parses the nb_drones payload: a single integer ≥ 1.
func ParseNbDrones(payload string) (int, error) {
	n, err := parseInt(strings.TrimSpace(payload))
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrNoDrones, n)
	}

	return n, nil
}

// ParseHub parses a hub / start_hub / end_hub payload of the form
// `<name> <x> <y> [metadata]`.
//
// implied carries the zone designated by the directive key: core.ZoneStart or
// core.ZoneEnd for start_hub/end_hub lines, the empty string for plain hub
// lines (defaulting the zone to normal). An explicit zone= key in the
// metadata of a start/end hub conflicts with the implied zone and is
// rejected with ErrDuplicateZones.
//
// The returned Hub carries no ID; the configuration parser assigns one as it
// appends the hub to its collection.
func ParseHub(payload string, implied core.ZoneType) (core.Hub, error) {
	params := strings.SplitN(strings.TrimSpace(payload), " ", hubFieldLimit)
	if len(params) < 3 {
		return core.Hub{}, fmt.Errorf("%w: got %q", ErrHubParams, payload)
	}

	zone := core.ZoneNormal
	if implied != "" {
		zone = implied
	}
	hub := core.Hub{Zone: zone, MaxDrones: defaultCapacity}

	if len(params) == hubFieldLimit {
		md, err := ParseMetadata(params[3], KindHub)
		if err != nil {
			return core.Hub{}, err
		}
		if implied != "" && md.HasZone {
			return core.Hub{}, fmt.Errorf("%w: zone is already %s", ErrDuplicateZones, implied)
		}
		if md.HasZone {
			hub.Zone = md.Zone
		}
		if md.HasColor {
			hub.Color = md.Color
		}
		if md.HasMaxDrones {
			hub.MaxDrones = md.MaxDrones
		}
	}

	var err error
	if hub.Name, err = parseName(params[0]); err != nil {
		return core.Hub{}, err
	}
	if hub.X, err = parseInt(params[1]); err != nil {
		return core.Hub{}, err
	}
	if hub.Y, err = parseInt(params[2]); err != nil {
		return core.Hub{}, err
	}

	return hub, nil
}

// ParseConnection parses a connection payload of the form
// `<name1>-<name2> [metadata]`.
//
// The first token must split on a dash into two endpoint names; a dash inside
// an endpoint name is caught by name validation afterwards, not by the split.
// An explicit metadata block must be non-empty and supply max_link_capacity;
// omitting the block entirely defaults the capacity to 1. Endpoints must name
// two distinct hubs; self-connections are rejected here even though the
// adjacency builder below can represent them.
func ParseConnection(payload string) (core.Connection, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return core.Connection{}, ErrEmptyConnection
	}

	params := strings.SplitN(payload, " ", 2)
	endpoints := strings.SplitN(params[0], "-", 2)
	if len(endpoints) != 2 {
		return core.Connection{}, fmt.Errorf("%w: %q", ErrNoDash, params[0])
	}

	capacity := defaultCapacity
	if len(params) == 2 {
		md, err := ParseMetadata(params[1], KindConnection)
		if err != nil {
			return core.Connection{}, err
		}
		if md.Empty() || !md.HasMaxLinkCapacity {
			return core.Connection{}, fmt.Errorf("%w: %q", ErrEmptyMetadata, params[1])
		}
		capacity = md.MaxLinkCapacity
	}

	name1, err := parseName(endpoints[0])
	if err != nil {
		return core.Connection{}, err
	}
	name2, err := parseName(endpoints[1])
	if err != nil {
		return core.Connection{}, err
	}
	if name1 == name2 {
		return core.Connection{}, fmt.Errorf("%w: %s", ErrSameEndpoints, name1)
	}

	return core.Connection{Hub1: name1, Hub2: name2, MaxLinkCapacity: capacity}, nil
}

// parseName validates one hub name: dash-free first, then non-empty after
// trimming. The dash is reserved as the connection endpoint separator.
func parseName(name string) (string, error) {
	if strings.Contains(name, "-") {
		return "", fmt.Errorf("%w: %q", ErrDashInName, name)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}

	return name, nil
}

// parseInt parses a (possibly signed) base-10 integer.
// Negative values are legal: several known-valid maps carry negative
// coordinates, so range policy belongs to the callers.
func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInteger, s)
	}

	return n, nil
}
