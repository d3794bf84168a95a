package mapfile

import "errors"

// Sentinel errors for map parsing. Implementations wrap these with `%w` plus
// the offending token or line; callers branch with errors.Is.
var (
	// ErrNoColon indicates a directive line without a ':' separator.
	ErrNoColon = errors.New("mapfile: no ':' character in line")

	// ErrUnknownKey indicates a directive key outside the fixed set.
	ErrUnknownKey = errors.New("mapfile: key must be 'nb_drones', 'start_hub', 'end_hub', 'hub', or 'connection'")

	// ErrDuplicateDirective indicates a second occurrence of a
	// single-occurrence directive (nb_drones, start_hub, end_hub).
	ErrDuplicateDirective = errors.New("mapfile: directive must not have duplicate configs")

	// ErrMissingRequired indicates absent required directives after the
	// whole line stream was consumed; the wrap lists every missing key.
	ErrMissingRequired = errors.New("mapfile: missing required config(s)")

	// ErrDuplicateHubName indicates two hubs sharing one name.
	ErrDuplicateHubName = errors.New("mapfile: duplicate name found for hub")

	// ErrUnknownConnectionName indicates a connection endpoint that does not
	// resolve to any declared hub.
	ErrUnknownConnectionName = errors.New("mapfile: invalid name found in connections")
)

// Sentinel errors for metadata blocks (§ ParseMetadata).
var (
	// ErrMetadataBrackets indicates a non-empty metadata token not wrapped in [...].
	ErrMetadataBrackets = errors.New("mapfile: metadata must be enclosed in []")

	// ErrMetadataFormat indicates a metadata item lacking the key=value shape.
	ErrMetadataFormat = errors.New("mapfile: metadata item must be in key=value format")

	// ErrMetadataEmptyPair indicates an empty key or empty value in an item.
	ErrMetadataEmptyPair = errors.New("mapfile: metadata key and value must be non-empty")

	// ErrUnsupportedMetadata indicates a key outside the four known metadata names.
	ErrUnsupportedMetadata = errors.New("mapfile: unsupported metadata key")

	// ErrMetadataNotAllowed indicates a known key used on the wrong object kind.
	ErrMetadataNotAllowed = errors.New("mapfile: metadata not allowed")

	// ErrDuplicateMetadata indicates a key repeated within one block.
	ErrDuplicateMetadata = errors.New("mapfile: duplicate metadata key")

	// ErrInvalidZone indicates a zone value outside the fixed vocabulary.
	ErrInvalidZone = errors.New("mapfile: invalid zone type")

	// ErrMetadataNotInteger indicates a non-integer max_drones/max_link_capacity.
	ErrMetadataNotInteger = errors.New("mapfile: metadata value must be an integer")

	// ErrMetadataNotPositive indicates a max_drones/max_link_capacity below 1.
	ErrMetadataNotPositive = errors.New("mapfile: metadata value must be a positive integer")

	// ErrObjectKind indicates an ObjectKind other than KindHub or KindConnection.
	ErrObjectKind = errors.New("mapfile: object kind must be hub or connection")
)

// Sentinel errors for directive payloads (§ ParseNbDrones/ParseHub/ParseConnection).
var (
	// ErrInvalidInteger indicates a token that does not parse as an integer.
	ErrInvalidInteger = errors.New("mapfile: invalid integer")

	// ErrDashInName indicates a hub name containing the reserved '-' character.
	ErrDashInName = errors.New("mapfile: name must not include dashes (-)")

	// ErrEmptyName indicates an empty hub name.
	ErrEmptyName = errors.New("mapfile: name must not be an empty string")

	// ErrNoDrones indicates an nb_drones value below 1.
	ErrNoDrones = errors.New("mapfile: no drones given in map")

	// ErrHubParams indicates a hub payload with fewer than three fields.
	ErrHubParams = errors.New("mapfile: invalid number of params, usage: hub: <name> <x> <y> [metadata]")

	// ErrDuplicateZones indicates an explicit zone= on a start_hub or end_hub
	// directive, whose zone is already implied.
	ErrDuplicateZones = errors.New("mapfile: duplicate zones inputted")

	// ErrEmptyConnection indicates an empty connection payload.
	ErrEmptyConnection = errors.New("mapfile: connection value must not be an empty string")

	// ErrNoDash indicates connection endpoints not joined by a dash.
	ErrNoDash = errors.New("mapfile: no dash (-) present in connection endpoints")

	// ErrSameEndpoints indicates a connection from a hub to itself.
	ErrSameEndpoints = errors.New("mapfile: connection cannot have same source and destination")

	// ErrEmptyMetadata indicates an explicit but empty metadata block on a
	// connection, e.g. `connection: a-b []`, distinct from omitting the
	// block entirely, which defaults the capacity to 1.
	ErrEmptyMetadata = errors.New("mapfile: empty metadata")
)
