package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/slicetree/pkg/floorplan"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes geometry and mass properties in node labels.
	// When false, leaves show the module name and splits the split type.
	Detailed bool
}

// ToDOT converts a floorplan tree to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG] or [RenderPNG].
//
// Swapped internal nodes are drawn with a dashed outline.
func ToDOT(root floorplan.Node, opts Options) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	var edges []string
	err := floorplan.Walk(root, func(n floorplan.Node, path string) error {
		id := nodeID(path)
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(fmtAttrs(n, fmtLabel(n, opts.Detailed)), ", "))
		if n.Kind() == floorplan.KindSplit {
			edges = append(edges,
				fmt.Sprintf("  %q -> %q [label=\"L\"];\n", id, nodeID(path+"L")),
				fmt.Sprintf("  %q -> %q [label=\"R\"];\n", id, nodeID(path+"R")))
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e)
	}
	buf.WriteString("}\n")
	return buf.String(), nil
}

func nodeID(path string) string {
	if path == "" {
		return "root"
	}
	return path
}

func fmtLabel(n floorplan.Node, detailed bool) string {
	var head string
	if leaf, ok := floorplan.AsLeaf(n); ok {
		head = leaf.Name()
	} else if f, ok := floorplan.AsSplit(n); ok {
		head = f.Type().String()
	}
	if !detailed {
		return head
	}

	parts := []string{head, "rect: " + n.Rect().String(), fmt.Sprintf("weight: %g", n.Weight())}
	if c, err := n.Centroid(); err == nil {
		parts = append(parts, "centroid: "+c.String())
	}
	return strings.Join(parts, "\n")
}

func fmtAttrs(n floorplan.Node, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	f, ok := floorplan.AsSplit(n)
	if !ok {
		return append(attrs, "shape=box", `style="rounded,filled"`, "fillcolor=white")
	}
	attrs = append(attrs, "shape=ellipse")
	if f.Swapped() {
		attrs = append(attrs, "style=dashed")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	out, err := render(dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
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

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox swaps Graphviz's pt-sized svg header for a plain
// viewBox header.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
