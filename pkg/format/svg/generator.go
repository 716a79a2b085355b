package svg

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/cegloff/mcp-diagram-tools/pkg/model"
)

const (
	defaultCanvasWidth  = 800.0
	defaultCanvasHeight = 600.0
	canvasPadding       = 50.0

	defaultNodeWidth  = 120.0
	defaultNodeHeight = 60.0
	autoLayoutStepX   = 150.0
	autoLayoutY       = 100.0

	defaultNodeFill   = "#e1f5fe"
	defaultNodeStroke = "#0288d1"
)

// Option configures a Generator.
type Option func(*Generator)

// WithCanvasSize sets the minimum canvas size. The canvas grows beyond
// it when the node bounding box plus padding needs more room.
func WithCanvasSize(width, height float64) Option {
	return func(g *Generator) {
		g.width = width
		g.height = height
	}
}

// Generator renders a document as a standalone SVG.
type Generator struct {
	width  float64
	height float64
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{width: defaultCanvasWidth, height: defaultCanvasHeight}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// placed is a node with its layout defaults resolved and its position
// shifted into canvas coordinates.
type placed struct {
	node       *model.Node
	x, y, w, h float64
}

// Generate renders nodes as shapes with centered labels and edges as
// lines from the source's right center to the target's left center.
// Edges whose endpoints do not both resolve to nodes are skipped.
func (g *Generator) Generate(doc *model.Document) ([]byte, error) {
	nodes := make([]placed, len(doc.Nodes))
	index := make(map[string]*placed, len(doc.Nodes))

	minX, minY := 0.0, 0.0
	maxX, maxY := g.width, g.height
	for i := range doc.Nodes {
		n := &doc.Nodes[i]
		p := placed{node: n, x: n.X, y: n.Y, w: n.Width, h: n.Height}
		if !n.Positioned && p.x == 0 && p.y == 0 {
			p.x = float64(i) * autoLayoutStepX
			p.y = autoLayoutY
		}
		if p.w == 0 {
			p.w = defaultNodeWidth
		}
		if p.h == 0 {
			p.h = defaultNodeHeight
		}
		if i == 0 || p.x < minX {
			minX = p.x
		}
		if i == 0 || p.y < minY {
			minY = p.y
		}
		if i == 0 {
			maxX, maxY = p.x+p.w, p.y+p.h
		} else {
			maxX = max(maxX, p.x+p.w)
			maxY = max(maxY, p.y+p.h)
		}
		nodes[i] = p
	}
	viewWidth := max(g.width, maxX-minX+canvasPadding*2)
	viewHeight := max(g.height, maxY-minY+canvasPadding*2)

	// Shift into canvas coordinates.
	for i := range nodes {
		nodes[i].x += canvasPadding - minX
		nodes[i].y += canvasPadding - minY
		if id := nodes[i].node.ID; id != "" {
			index[id] = &nodes[i]
		}
	}

	var buf bytes.Buffer
	buf.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&buf, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%s\" height=\"%s\" viewBox=\"0 0 %s %s\">\n",
		num(viewWidth), num(viewHeight), num(viewWidth), num(viewHeight))
	buf.WriteString("  <defs>\n")
	buf.WriteString("    <marker id=\"arrowhead\" markerWidth=\"10\" markerHeight=\"7\" refX=\"9\" refY=\"3.5\" orient=\"auto\">\n")
	buf.WriteString("      <polygon points=\"0 0, 10 3.5, 0 7\" fill=\"#333\"/>\n")
	buf.WriteString("    </marker>\n")
	buf.WriteString("  </defs>\n")
	buf.WriteString("  <rect width=\"100%\" height=\"100%\" fill=\"white\"/>\n")

	for i := range nodes {
		g.writeNode(&buf, &nodes[i])
	}

	for _, e := range doc.Edges {
		src, srcOK := index[e.Source]
		tgt, tgtOK := index[e.Target]
		if !srcOK || !tgtOK {
			continue
		}
		x1 := src.x + src.w
		y1 := src.y + src.h/2
		x2 := tgt.x
		y2 := tgt.y + tgt.h/2
		fmt.Fprintf(&buf, "  <line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\" stroke=\"#333\" stroke-width=\"2\" marker-end=\"url(#arrowhead)\"/>\n",
			num(x1), num(y1), num(x2), num(y2))
		if e.Label != "" {
			fmt.Fprintf(&buf, "  <text x=\"%s\" y=\"%s\" text-anchor=\"middle\" font-family=\"Arial\" font-size=\"12\" fill=\"#666\">%s</text>\n",
				num((x1+x2)/2), num((y1+y2)/2-10), escape(e.Label))
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func (g *Generator) writeNode(buf *bytes.Buffer, p *placed) {
	n := p.node
	fill := n.StyleOr(model.StyleFillColor, defaultNodeFill)
	stroke := n.StyleOr(model.StyleStrokeColor, defaultNodeStroke)

	switch n.Kind {
	case model.KindEllipse:
		fmt.Fprintf(buf, "  <ellipse cx=\"%s\" cy=\"%s\" rx=\"%s\" ry=\"%s\" fill=\"%s\" stroke=\"%s\" stroke-width=\"2\"/>\n",
			num(p.x+p.w/2), num(p.y+p.h/2), num(p.w/2), num(p.h/2), fill, stroke)
	case model.KindDiamond:
		points := fmt.Sprintf("%s,%s %s,%s %s,%s %s,%s",
			num(p.x+p.w/2), num(p.y),
			num(p.x+p.w), num(p.y+p.h/2),
			num(p.x+p.w/2), num(p.y+p.h),
			num(p.x), num(p.y+p.h/2))
		fmt.Fprintf(buf, "  <polygon points=\"%s\" fill=\"%s\" stroke=\"%s\" stroke-width=\"2\"/>\n",
			points, fill, stroke)
	default:
		fmt.Fprintf(buf, "  <rect x=\"%s\" y=\"%s\" width=\"%s\" height=\"%s\" rx=\"5\" fill=\"%s\" stroke=\"%s\" stroke-width=\"2\"/>\n",
			num(p.x), num(p.y), num(p.w), num(p.h), fill, stroke)
	}

	if n.Label != "" {
		fmt.Fprintf(buf, "  <text x=\"%s\" y=\"%s\" text-anchor=\"middle\" font-family=\"Arial\" font-size=\"14\" fill=\"#333\">%s</text>\n",
			num(p.x+p.w/2), num(p.y+p.h/2+5), escape(n.Label))
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escape(s string) string {
	return escaper.Replace(s)
}
