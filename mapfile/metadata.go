package mapfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andmarti8001/fly-in/core"
)

// ObjectKind selects which metadata keys are legal for the decorated object.
type ObjectKind int

const (
	// KindHub accepts zone, color, and max_drones.
	KindHub ObjectKind = iota
	// KindConnection accepts only max_link_capacity.
	KindConnection
)

// String returns the kind's map-format name, for error context.
func (k ObjectKind) String() string {
	switch k {
	case KindHub:
		return "hub"
	case KindConnection:
		return "connection"
	default:
		return fmt.Sprintf("ObjectKind(%d)", int(k))
	}
}

// Metadata holds the typed values of one parsed metadata block.
// Each Has flag reports whether its key appeared in the block, so callers can
// distinguish "absent" from a zero value.
type Metadata struct {
	Zone    core.ZoneType
	HasZone bool

	Color    string
	HasColor bool

	MaxDrones    int
	HasMaxDrones bool

	MaxLinkCapacity    int
	HasMaxLinkCapacity bool
}

// Empty reports whether no metadata key appeared at all.
func (m Metadata) Empty() bool {
	return !m.HasZone && !m.HasColor && !m.HasMaxDrones && !m.HasMaxLinkCapacity
}

// ParseMetadata parses the trimmed text following a hub or connection payload
// into typed values.
//
// An empty token yields an empty Metadata without error. A non-empty token
// must be wrapped in [...]; the content is split on whitespace into key=value
// items. Keys must be recognized, legal for the given kind, and unique within
// the block. zone values must parse against the fixed vocabulary; color is
// stored verbatim; max_drones and max_link_capacity must be strictly positive
// integers.
//
// Complexity: O(len(token)).
func ParseMetadata(token string, kind ObjectKind) (Metadata, error) {
	var md Metadata

	allowed, err := allowedKeys(kind)
	if err != nil {
		return md, err
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return md, nil
	}
	if !strings.HasPrefix(token, "[") || !strings.HasSuffix(token, "]") {
		return md, fmt.Errorf("%w: %q", ErrMetadataBrackets, token)
	}

	raw := strings.TrimSpace(token[1 : len(token)-1])
	if raw == "" {
		return md, nil
	}

	seen := make(map[core.MetadataKey]bool, 4)
	for _, item := range strings.Fields(raw) {
		keyStr, valStr, ok := strings.Cut(item, "=")
		if !ok {
			return Metadata{}, fmt.Errorf("%w: %q", ErrMetadataFormat, item)
		}
		if keyStr == "" || valStr == "" {
			return Metadata{}, fmt.Errorf("%w: %q", ErrMetadataEmptyPair, item)
		}
		key, known := core.ParseMetadataKey(keyStr)
		if !known {
			return Metadata{}, fmt.Errorf("%w: %s", ErrUnsupportedMetadata, keyStr)
		}
		if !allowed[key] {
			return Metadata{}, fmt.Errorf("%w for %s: %s", ErrMetadataNotAllowed, kind, key)
		}
		if seen[key] {
			return Metadata{}, fmt.Errorf("%w: %s", ErrDuplicateMetadata, key)
		}
		seen[key] = true

		if err = md.set(key, valStr); err != nil {
			return Metadata{}, err
		}
	}

	return md, nil
}

// set types valStr according to key and stores it.
func (m *Metadata) set(key core.MetadataKey, valStr string) error {
	switch key {
	case core.MetaZone:
		zone, err := core.ParseZoneType(valStr)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidZone, valStr)
		}
		m.Zone, m.HasZone = zone, true
	case core.MetaColor:
		// Opaque label: unknown color names are preserved verbatim and
		// resolved cosmetically by the render layer.
		m.Color, m.HasColor = valStr, true
	case core.MetaMaxDrones, core.MetaMaxLinkCapacity:
		n, err := strconv.Atoi(valStr)
		if err != nil {
			return fmt.Errorf("%w: %s=%s", ErrMetadataNotInteger, key, valStr)
		}
		if n < 1 {
			return fmt.Errorf("%w: %s=%d", ErrMetadataNotPositive, key, n)
		}
		if key == core.MetaMaxDrones {
			m.MaxDrones, m.HasMaxDrones = n, true
		} else {
			m.MaxLinkCapacity, m.HasMaxLinkCapacity = n, true
		}
	}

	return nil
}

// allowedKeys returns the per-kind legality set.
func allowedKeys(kind ObjectKind) (map[core.MetadataKey]bool, error) {
	switch kind {
	case KindHub:
		return map[core.MetadataKey]bool{
			core.MetaZone:      true,
			core.MetaColor:     true,
			core.MetaMaxDrones: true,
		}, nil
	case KindConnection:
		return map[core.MetadataKey]bool{
			core.MetaMaxLinkCapacity: true,
		}, nil
	default:
		return nil, fmt.Errorf("%w: got %s", ErrObjectKind, kind)
	}
}
