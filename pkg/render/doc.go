// Package render groups the visual outputs of citypaths.
//
// The [nodelink] subpackage draws a test case's city graph as a Graphviz
// node-link diagram, optionally highlighting one minimal route.
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Route: path})
//	svg, err := nodelink.RenderSVG(dot)
package render
