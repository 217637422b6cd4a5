package sink

import (
	"encoding/json"

	"github.com/matzehuels/slicetree/pkg/floorplan"
)

type jsonOutput struct {
	Width    float64    `json:"width"`
	Height   float64    `json:"height"`
	Weight   float64    `json:"weight"`
	Centroid *jsonPoint `json:"centroid,omitempty"`
	Leaves   []jsonLeaf `json:"leaves"`
	Splits   []jsonNode `json:"splits,omitempty"`
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type jsonLeaf struct {
	Name     string     `json:"name"`
	Path     string     `json:"path"`
	Rect     jsonRect   `json:"rect"`
	Weight   float64    `json:"weight"`
	Centroid *jsonPoint `json:"centroid,omitempty"`
}

type jsonNode struct {
	Path     string     `json:"path"`
	Type     string     `json:"type"`
	Swapped  bool       `json:"swapped,omitempty"`
	Rect     jsonRect   `json:"rect"`
	Weight   float64    `json:"weight"`
	Centroid *jsonPoint `json:"centroid,omitempty"`
}

// RenderJSON exports the absolute geometry of every node under root.
// Pending centroids are omitted.
func RenderJSON(root floorplan.Node) ([]byte, error) {
	var out jsonOutput
	err := floorplan.Walk(root, func(n floorplan.Node, path string) error {
		switch n := n.(type) {
		case *floorplan.Leaf:
			out.Leaves = append(out.Leaves, jsonLeaf{
				Name:     n.Name(),
				Path:     path,
				Rect:     toJSONRect(n),
				Weight:   n.Weight(),
				Centroid: toJSONCentroid(n),
			})
		case *floorplan.Floorplan:
			out.Splits = append(out.Splits, jsonNode{
				Path:     path,
				Type:     n.Type().String(),
				Swapped:  n.Swapped(),
				Rect:     toJSONRect(n),
				Weight:   n.Weight(),
				Centroid: toJSONCentroid(n),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	r := root.Rect()
	out.Width, out.Height = r.W, r.H
	out.Weight = root.Weight()
	out.Centroid = toJSONCentroid(root)
	return json.MarshalIndent(out, "", "  ")
}

func toJSONRect(n floorplan.Node) jsonRect {
	r := n.Rect()
	return jsonRect{X: r.X, Y: r.Y, Width: r.W, Height: r.H}
}

func toJSONCentroid(n floorplan.Node) *jsonPoint {
	c, err := n.Centroid()
	if err != nil {
		return nil
	}
	return &jsonPoint{X: c.X, Y: c.Y}
}
