package pipeline

import (
	"fmt"

	"github.com/matzehuels/slicetree/pkg/floorplan"
	"github.com/matzehuels/slicetree/pkg/render/nodelink"
	"github.com/matzehuels/slicetree/pkg/render/sink"
)

// Render generates output artifacts in the requested formats.
func Render(root floorplan.Node, opts Options) (map[string][]byte, error) {
	if opts.VizType == VizNodelink {
		return renderNodelink(root, opts)
	}
	return renderFloorplan(root, opts)
}

func renderNodelink(root floorplan.Node, opts Options) (map[string][]byte, error) {
	dot, err := nodelink.ToDOT(root, nodelink.Options{Detailed: opts.Detailed})
	if err != nil {
		return nil, fmt.Errorf("generate DOT: %w", err)
	}

	artifacts := make(map[string][]byte)
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatDOT:
			data = []byte(dot)
		case FormatSVG:
			data, err = nodelink.RenderSVG(dot)
		case FormatPNG:
			data, err = nodelink.RenderPNG(dot)
		default:
			return nil, fmt.Errorf("unsupported nodelink format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFloorplan(root floorplan.Node, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte)
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = sink.RenderSVG(root, buildSVGOptions(opts)...)
		case FormatJSON:
			data, err = sink.RenderJSON(root)
		default:
			return nil, fmt.Errorf("unsupported floorplan format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func buildSVGOptions(opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithScale(opts.Scale)}
	if len(opts.Selected) > 0 {
		svgOpts = append(svgOpts, sink.WithSelected(opts.Selected...))
	}
	if opts.Centroids {
		svgOpts = append(svgOpts, sink.WithCentroids())
	}
	if opts.Target != nil {
		svgOpts = append(svgOpts, sink.WithTarget(*opts.Target))
	}
	return svgOpts
}
