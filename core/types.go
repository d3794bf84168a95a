// Package core declares Hub, Connection, Config and the closed map-format
// vocabularies (ZoneType, MetadataKey), plus their sentinel errors.
package core

import "errors"

// ErrUnknownZone indicates a zone value outside the fixed vocabulary.
var ErrUnknownZone = errors.New("core: unknown zone type")

// ZoneType classifies how a hub may be traversed.
type ZoneType string

const (
	// ZoneNormal costs one turn to traverse.
	ZoneNormal ZoneType = "normal"
	// ZoneBlocked hubs may not be traversed; the graph builder prunes them.
	ZoneBlocked ZoneType = "blocked"
	// ZoneRestricted costs an extra turn on the hub itself.
	ZoneRestricted ZoneType = "restricted"
	// ZonePriority costs one turn but is preferred over normal zones.
	ZonePriority ZoneType = "priority"
	// ZoneStart marks the hub all drones launch from; unlimited capacity.
	ZoneStart ZoneType = "start_hub"
	// ZoneEnd marks the hub all drones must reach; unlimited capacity.
	ZoneEnd ZoneType = "end_hub"
)

// ParseZoneType validates s against the fixed zone vocabulary.
// Returns ErrUnknownZone for anything outside it.
func ParseZoneType(s string) (ZoneType, error) {
	switch z := ZoneType(s); z {
	case ZoneNormal, ZoneBlocked, ZoneRestricted, ZonePriority, ZoneStart, ZoneEnd:
		return z, nil
	default:
		return "", ErrUnknownZone
	}
}

// MetadataKey names one recognized `key=value` annotation in a metadata block.
type MetadataKey string

const (
	// MetaZone sets a hub's ZoneType.
	MetaZone MetadataKey = "zone"
	// MetaColor attaches a free-form color label to a hub.
	MetaColor MetadataKey = "color"
	// MetaMaxDrones caps how many drones a hub can hold at once.
	MetaMaxDrones MetadataKey = "max_drones"
	// MetaMaxLinkCapacity caps how many drones a connection carries per turn.
	MetaMaxLinkCapacity MetadataKey = "max_link_capacity"
)

// ParseMetadataKey reports whether s names a recognized metadata key.
func ParseMetadataKey(s string) (MetadataKey, bool) {
	switch k := MetadataKey(s); k {
	case MetaZone, MetaColor, MetaMaxDrones, MetaMaxLinkCapacity:
		return k, true
	default:
		return "", false
	}
}

// Hub is one named network location.
//
// ID is dense and zero-based within its owning collection: the parser assigns
// 0..n-1 in file order, and pruning reassigns 0..m-1 over the survivors.
// Coordinates are signed; several known-valid maps use negative values.
// Color is an opaque label ("" when absent); unknown color names are
// preserved verbatim and resolved cosmetically by the render package.
type Hub struct {
	ID        int
	Name      string
	X, Y      int
	Zone      ZoneType
	Color     string
	MaxDrones int
}

// Connection is one undirected capacity-limited link, keyed by hub names.
// Endpoints are non-empty, dash-free, and distinct at parse time.
type Connection struct {
	Hub1, Hub2      string
	MaxLinkCapacity int
}

// Config is the validated whole-map snapshot.
//
// StartHub and EndHub are value copies of members of Hubs; downstream code
// resolves them by Name, so the copies stay coherent across pruning.
type Config struct {
	NbDrones    int
	StartHub    Hub
	EndHub      Hub
	Hubs        []Hub
	Connections []Connection
}
