package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/andmarti8001/fly-in/basegraph"
	"github.com/andmarti8001/fly-in/core"
)

// Styles shared by all renderer output.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("13"))

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)
)

// swatch is the two-character block tinted with a hub's color.
const swatch = "##"

// Renderer writes human-readable views of configs and graphs to one writer.
type Renderer struct {
	w io.Writer
}

// New returns a Renderer writing to w.
func New(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Section prints a boxed section header.
func (r *Renderer) Section(title string) {
	fmt.Fprintln(r.w, sectionStyle.Render(title))
}

// Config prints the full configuration: drone count, start/end hubs, every
// hub, and every connection, each under its own section header.
func (r *Renderer) Config(cfg *core.Config) {
	fmt.Fprintln(r.w, titleStyle.Render("[CONFIG]")+" Printing full configuration")
	fmt.Fprintln(r.w)

	r.Section("nb_drones")
	fmt.Fprintln(r.w, cfg.NbDrones)
	fmt.Fprintln(r.w)

	r.Section("start_hub")
	r.Hub(cfg.StartHub)
	fmt.Fprintln(r.w)

	r.Section("end_hub")
	r.Hub(cfg.EndHub)
	fmt.Fprintln(r.w)

	r.Section("hubs")
	for i, hub := range cfg.Hubs {
		r.Hub(hub)
		if i < len(cfg.Hubs)-1 {
			fmt.Fprintln(r.w)
		}
	}
	fmt.Fprintln(r.w)

	r.Section("connections")
	for i, conn := range cfg.Connections {
		r.Connection(conn)
		if i < len(cfg.Connections)-1 {
			fmt.Fprintln(r.w)
		}
	}
}

// Hub prints one hub line by line, with a tinted swatch next to the color
// label. Absent colors read "none"; unknown names keep their label but get
// the default swatch.
func (r *Renderer) Hub(h core.Hub) {
	fmt.Fprintf(r.w, "id: %d\n", h.ID)
	fmt.Fprintf(r.w, "name: %s\n", h.Name)
	fmt.Fprintf(r.w, "x: %d\n", h.X)
	fmt.Fprintf(r.w, "y: %d\n", h.Y)
	fmt.Fprintf(r.w, "zone: %s\n", h.Zone)

	label := h.Color
	if label == "" {
		label = "none"
	}
	tinted := lipgloss.NewStyle().Foreground(ColorCode(h.Color)).Render(swatch)
	fmt.Fprintf(r.w, "color: %s (%s)\n", label, tinted)

	fmt.Fprintf(r.w, "max_drones: %d\n", h.MaxDrones)
}

// Connection prints one connection line by line.
func (r *Renderer) Connection(c core.Connection) {
	fmt.Fprintf(r.w, "hub1: %s\n", c.Hub1)
	fmt.Fprintf(r.w, "hub2: %s\n", c.Hub2)
	fmt.Fprintf(r.w, "max_link_capacity: %d\n", c.MaxLinkCapacity)
}

// Graph prints the pruned adjacency structure: one line per hub id with its
// outgoing edges and their capacities, plus the resolved start/end ids.
func (r *Renderer) Graph(g *basegraph.BaseGraph) {
	r.Section("base graph")
	fmt.Fprintf(r.w, "start: %d end: %d\n", g.StartID, g.EndID)
	for id, edges := range g.Adj {
		fmt.Fprintf(r.w, "%d:", id)
		for _, e := range edges {
			fmt.Fprintf(r.w, " ->%d(cap=%d)", e.To, e.MaxLinkCapacity)
		}
		fmt.Fprintln(r.w)
	}
}
