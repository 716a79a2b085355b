package drawio

import (
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/cegloff/mcp-diagram-tools/pkg/model"
)

// Generation defaults, matching the draw.io desktop app's output.
const (
	defaultNodeStyle = "rounded=1;whiteSpace=wrap;html=1;"
	defaultEdgeStyle = "edgeStyle=orthogonalEdgeStyle;rounded=0;orthogonalLoop=1;jettySize=auto;html=1;"

	defaultPageName   = "Page-1"
	defaultPageWidth  = 850
	defaultPageHeight = 1100

	defaultNodeWidth  = 120
	defaultNodeHeight = 60
	autoLayoutStepX   = 150
	autoLayoutY       = 100
)

// Option configures a Generator.
type Option func(*Generator)

// WithPageName overrides the page name when the document has none.
func WithPageName(name string) Option {
	return func(g *Generator) { g.pageName = name }
}

// WithPageSize overrides the emitted page dimensions.
func WithPageSize(w, h float64) Option {
	return func(g *Generator) { g.pageWidth, g.pageHeight = w, h }
}

// Generator encodes documents as plaintext draw.io XML. Output is never
// re-compressed: compression is a reader compatibility feature the
// writer does not need to reproduce.
type Generator struct {
	pageName   string
	pageWidth  float64
	pageHeight float64
}

// NewGenerator returns a draw.io generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		pageWidth:  defaultPageWidth,
		pageHeight: defaultPageHeight,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate encodes doc as an mxfile container with a single page.
// The two reserved root cells are always emitted first; nodes become
// vertex cells with a geometry child, edges become edge cells with an
// empty relative geometry marker. Edges referencing unknown node ids
// are emitted verbatim, which draw.io renders as free-floating lines.
func (g *Generator) Generate(doc *model.Document) ([]byte, error) {
	name := doc.Name
	if name == "" {
		name = g.pageName
	}
	if name == "" {
		name = defaultPageName
	}

	gm := mxGraphModel{
		Dx: "0", Dy: "0",
		Grid: "1", GridSize: "10",
		Guides: "1", Tooltips: "1", Connect: "1", Arrows: "1",
		Fold: "1", Page: "1", PageScale: "1",
		PageWidth:  formatFloat(g.pageWidth),
		PageHeight: formatFloat(g.pageHeight),
		Root: mxRoot{Cells: []mxCell{
			{ID: rootCellID},
			{ID: layerCellID, Parent: rootCellID},
		}},
	}

	for i, n := range doc.Nodes {
		gm.Root.Cells = append(gm.Root.Cells, nodeCell(n, i))
	}
	for i, e := range doc.Edges {
		gm.Root.Cells = append(gm.Root.Cells, edgeCell(e, i))
	}

	file := mxFile{
		Host:    "mcp-diagram-tools",
		Agent:   "MCP Diagram Tools",
		Version: "1.0",
		Diagrams: []mxDiagram{{
			Name:  name,
			ID:    "diagram-1",
			Model: &gm,
		}},
	}

	out, err := xml.MarshalIndent(file, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal drawio: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

// nodeCell converts a node to a vertex cell. Nodes without dimensions
// get the standard 120x60 box; nodes that were never positioned are
// laid out in a row so caller-supplied structure definitions render
// sensibly. A node explicitly placed at the origin stays there.
func nodeCell(n model.Node, i int) mxCell {
	id := n.ID
	if id == "" {
		id = fmt.Sprintf("node-%d", i+2)
	}

	x, y, w, h := n.X, n.Y, n.Width, n.Height
	if w == 0 {
		w = defaultNodeWidth
	}
	if h == 0 {
		h = defaultNodeHeight
	}
	if !n.Positioned && n.X == 0 && n.Y == 0 {
		x = float64(i * autoLayoutStepX)
		y = autoLayoutY
	}

	return mxCell{
		ID:     id,
		Value:  n.Label,
		Style:  n.StyleOr(model.StyleRaw, styleForKind(n.Kind)),
		Vertex: "1",
		Parent: layerCellID,
		Geometry: &mxGeometry{
			X:      formatFloat(x),
			Y:      formatFloat(y),
			Width:  formatFloat(w),
			Height: formatFloat(h),
			As:     "geometry",
		},
	}
}

// edgeCell converts an edge to an edge cell with an empty geometry marker.
func edgeCell(e model.Edge, i int) mxCell {
	id := e.ID
	if id == "" {
		id = fmt.Sprintf("edge-%d", i+100)
	}
	return mxCell{
		ID:       id,
		Value:    e.Label,
		Style:    e.StyleOr(model.StyleRaw, defaultEdgeStyle),
		Edge:     "1",
		Parent:   layerCellID,
		Source:   e.Source,
		Target:   e.Target,
		Geometry: &mxGeometry{Relative: "1", As: "geometry"},
	}
}

// styleForKind builds a draw.io style string for documents that came
// from other formats and carry no raw style.
func styleForKind(k model.Kind) string {
	switch k {
	case model.KindEllipse:
		return "ellipse;whiteSpace=wrap;html=1;"
	case model.KindDiamond:
		return "rhombus;whiteSpace=wrap;html=1;"
	case model.KindText:
		return "text;html=1;align=center;verticalAlign=middle;"
	default:
		return defaultNodeStyle
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
