package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/citypaths/pkg/citygraph"
)

const routeColor = "#1b9e77"

// Options configures node-link diagram rendering.
type Options struct {
	// Title is drawn as the graph label when non-empty.
	Title string
	// Indices prefixes each label with the city's index ("1: gdansk").
	Indices bool
	// Route lists city indices of a path to highlight, source first.
	Route []int
}

// ToDOT converts a city graph to Graphviz DOT source.
// Nodes are emitted in index order and edges in input order, so the output
// is deterministic.
func ToDOT(g *citygraph.Graph, opts Options) string {
	onRoute, hops := routeSets(g, opts.Route)

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=11];\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", opts.Title)
	}
	buf.WriteString("\n")

	for i := 1; i <= g.NodeCount(); i++ {
		attrs := []string{fmt.Sprintf("label=%q", fmtLabel(g, i, opts.Indices))}
		if onRoute[i] {
			attrs = append(attrs, fmt.Sprintf("color=%q", routeColor), "penwidth=2")
		}
		fmt.Fprintf(&buf, "  n%d [%s];\n", i, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for from := 1; from <= g.NodeCount(); from++ {
		for k, e := range g.Edges(from) {
			attrs := []string{fmt.Sprintf("label=\"%d\"", e.Cost)}
			if h, ok := hops[[2]int{from, e.To}]; ok && h == k {
				attrs = append(attrs, fmt.Sprintf("color=%q", routeColor), fmt.Sprintf("fontcolor=%q", routeColor), "penwidth=2.5")
			}
			fmt.Fprintf(&buf, "  n%d -> n%d [%s];\n", from, e.To, strings.Join(attrs, ", "))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(g *citygraph.Graph, i int, indices bool) string {
	if !indices {
		return g.Name(i)
	}
	return fmt.Sprintf("%d: %s", i, g.Name(i))
}

// routeSets returns the cities on route and, per hop, the position of the
// cheapest parallel edge within the source's edge list.
func routeSets(g *citygraph.Graph, route []int) (map[int]bool, map[[2]int]int) {
	onRoute := make(map[int]bool, len(route))
	hops := make(map[[2]int]int, len(route))
	for i, c := range route {
		onRoute[c] = true
		if i+1 == len(route) {
			break
		}
		next := route[i+1]
		best := -1
		for k, e := range g.Edges(c) {
			if e.To == next && (best < 0 || e.Cost < g.Edges(c)[best].Cost) {
				best = k
			}
		}
		if best >= 0 {
			hops[[2]int{c, next}] = best
		}
	}
	return onRoute, hops
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return render(dot, graphviz.SVG)
}

// RenderPNG renders DOT source to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}
