package excalidraw

import (
	"encoding/json"
	"fmt"

	"github.com/cegloff/mcp-diagram-tools/pkg/format"
	"github.com/cegloff/mcp-diagram-tools/pkg/model"
)

// Parser reads Excalidraw scene JSON into a single-page document.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse maps the scene's element list onto nodes and edges. Arrows and
// lines become edges with endpoints taken from their bindings. Every
// text element becomes a text node; a containerId reference is kept in
// the node's style map rather than folded into the container's label,
// so shape and bound text survive as separate elements.
func (p *Parser) Parse(src []byte) (*format.Result, error) {
	var sc scene
	if err := json.Unmarshal(src, &sc); err != nil {
		return nil, format.NewParseError(format.Excalidraw, fmt.Sprintf("invalid JSON: %v", err), err)
	}

	doc := &model.Document{}
	var textContent []string
	seen := make(map[string]bool)

	for _, el := range sc.Elements {
		switch el.Type {
		case "arrow", "line":
			doc.Edges = append(doc.Edges, edgeFromElement(el))
		case "text":
			if el.Text == "" {
				continue
			}
			if !seen[el.Text] {
				seen[el.Text] = true
				textContent = append(textContent, el.Text)
			}
			doc.Nodes = append(doc.Nodes, textNodeFromElement(el))
		default:
			doc.Nodes = append(doc.Nodes, nodeFromElement(el))
		}
	}

	res := &format.Result{
		Format: format.Excalidraw,
		Pages:  []*model.Document{doc},
		Text:   textContent,
		Stats: format.Stats{
			Pages:    1,
			Nodes:    len(doc.Nodes),
			Edges:    len(doc.Edges),
			Elements: len(sc.Elements),
		},
	}
	return res, nil
}

func textNodeFromElement(el element) model.Node {
	n := model.Node{
		ID:         el.ID,
		Kind:       model.KindText,
		Label:      el.Text,
		X:          el.X,
		Y:          el.Y,
		Width:      el.Width,
		Height:     el.Height,
		Positioned: true,
	}
	if el.ContainerID != "" {
		n.Style = map[string]string{model.StyleContainerID: el.ContainerID}
	}
	return n
}

// Scene elements always carry explicit coordinates, so parsed nodes are
// marked positioned even at the origin.
func nodeFromElement(el element) model.Node {
	n := model.Node{
		ID:         el.ID,
		Kind:       kindFromType(el.Type),
		X:          el.X,
		Y:          el.Y,
		Width:      el.Width,
		Height:     el.Height,
		Positioned: true,
	}
	style := make(map[string]string)
	if el.StrokeColor != "" {
		style[model.StyleStrokeColor] = el.StrokeColor
	}
	if el.BackgroundColor != "" {
		style[model.StyleFillColor] = el.BackgroundColor
	}
	if n.Kind == model.KindOther {
		style[model.StyleRawType] = el.Type
	}
	if len(style) > 0 {
		n.Style = style
	}
	return n
}

func edgeFromElement(el element) model.Edge {
	e := model.Edge{
		ID:     el.ID,
		Points: el.Points,
	}
	if el.StartBinding != nil {
		e.Source = el.StartBinding.ElementID
	}
	if el.EndBinding != nil {
		e.Target = el.EndBinding.ElementID
	}
	if el.StartArrowhead != nil {
		e.StartArrowhead = *el.StartArrowhead
	}
	if el.EndArrowhead != nil {
		e.EndArrowhead = *el.EndArrowhead
	}
	if el.Type != "arrow" {
		e.Style = map[string]string{model.StyleRawType: el.Type}
	}
	return e
}

func kindFromType(t string) model.Kind {
	switch t {
	case "rectangle":
		return model.KindRectangle
	case "ellipse":
		return model.KindEllipse
	case "diamond":
		return model.KindDiamond
	case "text":
		return model.KindText
	default:
		return model.KindOther
	}
}
