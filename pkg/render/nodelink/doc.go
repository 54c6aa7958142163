// Package nodelink renders city graphs as node-link diagrams.
//
// # Usage
//
// Convert a frozen graph to DOT, then render it:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//	png, err := nodelink.RenderPNG(dot)
//
// # Options
//
//   - Title: graph label drawn above the diagram
//   - Indices: prefix node labels with their 1-based index
//   - Route: city indices of a path to highlight, source first
//
// # DOT Format
//
// The generated DOT uses a left-to-right layout (rankdir=LR). Every edge is
// labelled with its cost; parallel edges are drawn separately. Route edges
// are drawn bold and colored, using the cheapest edge of each hop.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG and
// PNG rendering.
package nodelink
