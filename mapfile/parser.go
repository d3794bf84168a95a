package mapfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andmarti8001/fly-in/core"
)

// Directive keys of the map format.
const (
	keyNbDrones   = "nb_drones"
	keyStartHub   = "start_hub"
	keyEndHub     = "end_hub"
	keyHub        = "hub"
	keyConnection = "connection"
)

// commentPrefix marks lines the parser ignores.
const commentPrefix = "#"

// ParseFile opens path and parses it as a map file.
func ParseFile(path string) (*core.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapfile: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse consumes r line by line and returns the validated Config, or the
// first error encountered. No partial Config is ever returned: any failure
// aborts the whole parse.
//
// Parse holds no package-level state; hub ids come from a parser-local
// counter, so repeated or concurrent parses are independent.
//
// Complexity: O(L + V + E) time, O(V + E) memory.
func Parse(r io.Reader) (*core.Config, error) {
	var p parser

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if err := p.line(sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mapfile: %w", err)
	}

	return p.finish()
}

// parser accumulates directives for one parse. The zero value is ready to use.
type parser struct {
	nbDrones  int
	hasDrones bool

	startIdx int
	hasStart bool
	endIdx   int
	hasEnd   bool

	hubs  []core.Hub
	conns []core.Connection
}

// line handles one raw input line: skip blanks and comments, split on the
// first colon, and dispatch on the directive key. A fixed switch over the
// five keys keeps the dispatch exhaustive at compile time.
func (p *parser) line(raw string) error {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, commentPrefix) {
		return nil
	}

	key, payload, found := strings.Cut(line, ":")
	if !found {
		return fmt.Errorf("%w: %q", ErrNoColon, line)
	}

	switch strings.TrimSpace(key) {
	case keyNbDrones:
		if p.hasDrones {
			return fmt.Errorf("%w: %s", ErrDuplicateDirective, keyNbDrones)
		}
		n, err := ParseNbDrones(payload)
		if err != nil {
			return err
		}
		p.nbDrones, p.hasDrones = n, true

		return nil
	case keyStartHub:
		return p.endpointHub(payload, core.ZoneStart)
	case keyEndHub:
		return p.endpointHub(payload, core.ZoneEnd)
	case keyHub:
		hub, err := ParseHub(payload, "")
		if err != nil {
			return err
		}
		p.appendHub(hub)

		return nil
	case keyConnection:
		conn, err := ParseConnection(payload)
		if err != nil {
			return err
		}
		p.conns = append(p.conns, conn)

		return nil
	default:
		return fmt.Errorf("%w: got %q", ErrUnknownKey, strings.TrimSpace(key))
	}
}

// endpointHub handles a start_hub or end_hub directive: single occurrence,
// implied zone, and membership in the general hub collection so the endpoint
// participates in name uniqueness and graph building like any other hub.
func (p *parser) endpointHub(payload string, zone core.ZoneType) error {
	switch {
	case zone == core.ZoneStart && p.hasStart:
		return fmt.Errorf("%w: %s", ErrDuplicateDirective, keyStartHub)
	case zone == core.ZoneEnd && p.hasEnd:
		return fmt.Errorf("%w: %s", ErrDuplicateDirective, keyEndHub)
	}

	hub, err := ParseHub(payload, zone)
	if err != nil {
		return err
	}

	idx := p.appendHub(hub)
	if zone == core.ZoneStart {
		p.startIdx, p.hasStart = idx, true
	} else {
		p.endIdx, p.hasEnd = idx, true
	}

	return nil
}

// appendHub assigns the next dense id and stores the hub.
// This is the only place ids are minted: 0,1,2,... in file order.
func (p *parser) appendHub(h core.Hub) int {
	h.ID = len(p.hubs)
	p.hubs = append(p.hubs, h)

	return h.ID
}

// finish runs the post-stream checks and assembles the Config:
// all required directives present, hub names unique, connection endpoints
// resolvable.
func (p *parser) finish() (*core.Config, error) {
	var missing []string
	if !p.hasDrones {
		missing = append(missing, keyNbDrones)
	}
	if !p.hasStart {
		missing = append(missing, keyStartHub)
	}
	if !p.hasEnd {
		missing = append(missing, keyEndHub)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, strings.Join(missing, ", "))
	}

	if err := validateNames(p.hubs, p.conns); err != nil {
		return nil, err
	}

	return &core.Config{
		NbDrones:    p.nbDrones,
		StartHub:    p.hubs[p.startIdx],
		EndHub:      p.hubs[p.endIdx],
		Hubs:        p.hubs,
		Connections: p.conns,
	}, nil
}

// validateNames enforces whole-config referential integrity: unique hub
// names (start/end included) and connection endpoints resolving to hubs.
func validateNames(hubs []core.Hub, conns []core.Connection) error {
	names := make(map[string]struct{}, len(hubs))
	for _, h := range hubs {
		if _, dup := names[h.Name]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateHubName, h.Name)
		}
		names[h.Name] = struct{}{}
	}

	for _, c := range conns {
		if _, ok := names[c.Hub1]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownConnectionName, c.Hub1)
		}
		if _, ok := names[c.Hub2]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownConnectionName, c.Hub2)
		}
	}

	return nil
}
