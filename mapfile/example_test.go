package mapfile_test

import (
	"fmt"
	"strings"

	"github.com/andmarti8001/fly-in/mapfile"
)

// ExampleParse parses a minimal three-hub map and inspects the snapshot.
func ExampleParse() {
	const track = `
# two drones over one relay
nb_drones: 2
start_hub: depot 0 0
hub: relay 1 1 [zone=priority color=gold]
end_hub: rooftop 2 2
connection: depot-relay [max_link_capacity=2]
connection: relay-rooftop
`
	cfg, err := mapfile.Parse(strings.NewReader(track))
	if err != nil {
		fmt.Println("parse failed:", err)
		return
	}

	fmt.Println("drones:", cfg.NbDrones)
	fmt.Println("route:", cfg.StartHub.Name, "->", cfg.EndHub.Name)
	fmt.Println("hubs:", len(cfg.Hubs), "connections:", len(cfg.Connections))
	fmt.Println("relay zone:", cfg.Hubs[1].Zone)

	// Output:
	// drones: 2
	// route: depot -> rooftop
	// hubs: 3 connections: 2
	// relay zone: priority
}
