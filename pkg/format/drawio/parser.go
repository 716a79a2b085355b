package drawio

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/cegloff/mcp-diagram-tools/pkg/format"
	"github.com/cegloff/mcp-diagram-tools/pkg/model"
)

// Reserved cell ids: every mxGraphModel starts with these two implicit
// root cells, which carry no diagram content.
const (
	rootCellID  = "0"
	layerCellID = "1"
)

// Default page names, matching draw.io's own conventions.
const (
	untitledPage = "Untitled"
	barePageName = "Main"
)

// Parser decodes draw.io documents into the shared graph model.
type Parser struct{}

// NewParser returns a draw.io parser.
func NewParser() *Parser { return &Parser{} }

// Parse decodes a draw.io document. The input may be an mxfile
// container (pages stored encoded or as nested elements) or a bare
// mxGraphModel, which is treated as a single unnamed page.
func (p *Parser) Parse(data []byte) (*format.Result, error) {
	var pages []*model.Document

	var file mxFile
	if err := xml.Unmarshal(data, &file); err == nil {
		for _, d := range file.Diagrams {
			doc, ok := parseDiagram(d)
			if !ok {
				continue
			}
			pages = append(pages, doc)
		}
	} else {
		var gm mxGraphModel
		if err := xml.Unmarshal(data, &gm); err != nil {
			return nil, format.NewParseError(format.DrawIO, "invalid XML", err)
		}
		doc := parseGraphModel(&gm)
		doc.Name = barePageName
		pages = append(pages, doc)
	}

	return buildResult(pages), nil
}

// parseDiagram extracts one page. Encoded payload text is tried first;
// if decoding or the subsequent XML parse fails, the nested
// mxGraphModel child is used instead. A page with neither is skipped.
func parseDiagram(d mxDiagram) (*model.Document, bool) {
	name := d.Name
	if name == "" {
		name = untitledPage
	}

	if payload := strings.TrimSpace(d.Content); payload != "" {
		decoded := decodePayload([]byte(payload))
		var gm mxGraphModel
		if err := xml.Unmarshal(decoded, &gm); err == nil {
			doc := parseGraphModel(&gm)
			doc.Name = name
			return doc, true
		}
	}

	if d.Model != nil {
		doc := parseGraphModel(d.Model)
		doc.Name = name
		return doc, true
	}
	return nil, false
}

// parseGraphModel converts one mxGraphModel into a document.
// Cells with both source and target become edges; cells with a value or
// an explicit vertex flag become nodes; everything else (including the
// two reserved root cells) is skipped.
func parseGraphModel(gm *mxGraphModel) *model.Document {
	doc := &model.Document{}

	for _, cell := range gm.Root.Cells {
		if cell.ID == rootCellID || cell.ID == layerCellID {
			continue
		}

		switch {
		case cell.Source != "" && cell.Target != "":
			doc.Edges = append(doc.Edges, cellToEdge(cell))
		case cell.Value != "" || cell.Vertex == "1":
			doc.Nodes = append(doc.Nodes, cellToNode(cell))
		}
	}

	if gm.PageWidth != "" || gm.PageHeight != "" {
		doc.Meta = map[string]any{
			"drawio": map[string]any{
				"pageWidth":  gm.PageWidth,
				"pageHeight": gm.PageHeight,
			},
		}
	}
	return doc
}

func cellToEdge(cell mxCell) model.Edge {
	e := model.Edge{
		ID:     cell.ID,
		Source: cell.Source,
		Target: cell.Target,
		Label:  cell.Value,
	}
	if cell.Style != "" {
		e.Style = map[string]string{model.StyleRaw: cell.Style}
	}
	return e
}

func cellToNode(cell mxCell) model.Node {
	n := model.Node{
		ID:    cell.ID,
		Kind:  kindFromStyle(cell.Style),
		Label: cell.Value,
	}
	if g := cell.Geometry; g != nil {
		n.X = parseFloat(g.X)
		n.Y = parseFloat(g.Y)
		n.Width = parseFloat(g.Width)
		n.Height = parseFloat(g.Height)
		n.Positioned = true
	}
	if cell.Style != "" {
		n.Style = map[string]string{model.StyleRaw: cell.Style}
	}
	return n
}

// kindFromStyle maps a draw.io style string to a shared node kind.
// The raw style is preserved separately for same-format round trips.
func kindFromStyle(style string) model.Kind {
	switch {
	case strings.Contains(style, "ellipse"):
		return model.KindEllipse
	case strings.Contains(style, "rhombus"):
		return model.KindDiamond
	case strings.HasPrefix(style, "text;"), style == "text":
		return model.KindText
	default:
		return model.KindRectangle
	}
}

// parseFloat reads a geometry attribute, defaulting to 0 when absent
// or malformed.
func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func buildResult(pages []*model.Document) *format.Result {
	res := &format.Result{
		Format: format.DrawIO,
		Pages:  pages,
	}

	seen := make(map[string]struct{})
	for _, page := range pages {
		res.Stats.Nodes += len(page.Nodes)
		res.Stats.Edges += len(page.Edges)
		for _, label := range page.Labels() {
			if _, ok := seen[label]; ok {
				continue
			}
			seen[label] = struct{}{}
			res.Text = append(res.Text, label)
		}
	}
	res.Stats.Pages = len(pages)
	res.Stats.Elements = res.Stats.Nodes + res.Stats.Edges
	return res
}
