package model

import (
	"encoding/json"
	"fmt"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Kind classifies a node's shape.
type Kind string

// Node kinds shared by all formats.
const (
	KindRectangle Kind = "rectangle"
	KindEllipse   Kind = "ellipse"
	KindDiamond   Kind = "diamond"
	KindText      Kind = "text"
	KindOther     Kind = "other"
)

// Side names an attachment side on a node's bounding box.
type Side string

// Attachment sides. SideAuto lets the geometry pick the side facing
// the direction of travel.
const (
	SideAuto   Side = ""
	SideTop    Side = "top"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
	SideRight  Side = "right"
)

// CurveStyle selects how an edge path is routed between its anchors.
type CurveStyle string

// Edge routing styles.
const (
	CurveStraight CurveStyle = "straight"
	CurveCurved   CurveStyle = "curved"
	CurveStep     CurveStyle = "step"
)

// CurveDirection biases the bend of a curved edge.
type CurveDirection string

// Curve directions. DirectionAuto bends perpendicular to the dominant
// travel axis.
const (
	DirectionAuto  CurveDirection = "auto"
	DirectionUp    CurveDirection = "up"
	DirectionDown  CurveDirection = "down"
	DirectionLeft  CurveDirection = "left"
	DirectionRight CurveDirection = "right"
)

// Well-known style map keys. Formats may store additional keys; unknown
// keys round-trip opaquely within the originating format and are dropped
// on cross-format conversion.
const (
	StyleStrokeColor = "strokeColor"
	StyleFillColor   = "backgroundColor"
	StyleStrokeStyle = "strokeStyle"
	StyleStrokeWidth = "strokeWidth"
	StyleTextColor   = "textColor"
	StyleFontSize    = "fontSize"
	StyleRounded     = "rounded"
	StyleRaw         = "style"       // raw draw.io style string
	StyleRawType     = "type"        // raw excalidraw element type
	StyleContainerID = "containerId" // bound-text container reference
)

// =============================================================================
// Point - Waypoint Coordinate
// =============================================================================

// Point is a 2D coordinate or relative offset in document units.
// It serializes as a two-element array [x, y], matching the waypoint
// encoding used by the whiteboard format.
type Point struct {
	X float64
	Y float64
}

// MarshalJSON encodes the point as [x, y].
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X, p.Y})
}

// UnmarshalJSON decodes [x, y] into the point.
func (p *Point) UnmarshalJSON(data []byte) error {
	var v [2]float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("point: %w", err)
	}
	p.X, p.Y = v[0], v[1]
	return nil
}

// =============================================================================
// Node - Shape or Standalone Text
// =============================================================================

// Node is a shape or standalone text element.
// X and Y locate the top-left corner; Width and Height are never negative.
type Node struct {
	ID     string            `json:"id"`
	Kind   Kind              `json:"kind,omitempty"`
	Label  string            `json:"label,omitempty"`
	X      float64           `json:"x,omitempty"`
	Y      float64           `json:"y,omitempty"`
	Width  float64           `json:"width,omitempty"`
	Height float64           `json:"height,omitempty"`
	Style  map[string]string `json:"style,omitempty"`

	// Positioned records that the source supplied an explicit position,
	// distinguishing a node placed at the origin from one that was never
	// placed at all. Generators auto-place only unpositioned origin nodes.
	Positioned bool `json:"-"`
}

// CenterX returns the horizontal center of the node.
func (n *Node) CenterX() float64 { return n.X + n.Width/2 }

// CenterY returns the vertical center of the node.
func (n *Node) CenterY() float64 { return n.Y + n.Height/2 }

// StyleOr returns the style value for key, or fallback when unset.
func (n *Node) StyleOr(key, fallback string) string {
	if v, ok := n.Style[key]; ok && v != "" {
		return v
	}
	return fallback
}

// =============================================================================
// Edge - Connector
// =============================================================================

// Edge is a connector between zero, one, or two nodes. Source and Target
// hold node IDs; an empty value means that end is free-floating. Points,
// when present, are caller-supplied waypoints expressed as offsets from
// the start anchor and suppress all anchor/path computation.
type Edge struct {
	ID     string            `json:"id"`
	Source string            `json:"source,omitempty"`
	Target string            `json:"target,omitempty"`
	Label  string            `json:"label,omitempty"`
	Points []Point           `json:"points,omitempty"`
	Style  map[string]string `json:"style,omitempty"`

	CurveStyle     CurveStyle     `json:"curveStyle,omitempty"`
	CurveDirection CurveDirection `json:"curveDirection,omitempty"`
	StartSide      Side           `json:"startSide,omitempty"`
	EndSide        Side           `json:"endSide,omitempty"`

	StartArrowhead string `json:"startArrowhead,omitempty"`
	EndArrowhead   string `json:"endArrowhead,omitempty"`
}

// StyleOr returns the style value for key, or fallback when unset.
func (e *Edge) StyleOr(key, fallback string) string {
	if v, ok := e.Style[key]; ok && v != "" {
		return v
	}
	return fallback
}

// =============================================================================
// Document - Ordered Node/Edge Collection
// =============================================================================

// Document is an ordered collection of nodes and edges plus
// format-specific metadata. Metadata keys are namespaced by format
// ("drawio", "excalidraw", "svg") and survive only within the
// originating format; cross-format conversion drops them.
type Document struct {
	Name  string         `json:"name,omitempty"`
	Nodes []Node         `json:"nodes"`
	Edges []Edge         `json:"edges"`
	Meta  map[string]any `json:"meta,omitempty"`
}

// FindNode returns the node with the given ID.
func (d *Document) FindNode(id string) (*Node, bool) {
	for i := range d.Nodes {
		if d.Nodes[i].ID == id {
			return &d.Nodes[i], true
		}
	}
	return nil, false
}

// NodeIndex returns a lookup map from node ID to node.
// The map references the document's node slice; treat it as read-only.
func (d *Document) NodeIndex() map[string]*Node {
	idx := make(map[string]*Node, len(d.Nodes))
	for i := range d.Nodes {
		idx[d.Nodes[i].ID] = &d.Nodes[i]
	}
	return idx
}

// Labels returns every non-empty node and edge label, deduplicated,
// in first-seen order.
func (d *Document) Labels() []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(s string) {
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	for i := range d.Nodes {
		add(d.Nodes[i].Label)
	}
	for i := range d.Edges {
		add(d.Edges[i].Label)
	}
	return out
}

// Merge returns a new document containing the nodes and edges of all
// pages in order. The first page's name is kept; metadata is dropped,
// since it is meaningful only within a single page's originating format.
func Merge(pages []*Document) *Document {
	out := &Document{}
	for i, p := range pages {
		if i == 0 {
			out.Name = p.Name
		}
		out.Nodes = append(out.Nodes, p.Nodes...)
		out.Edges = append(out.Edges, p.Edges...)
	}
	return out
}
