// Package svg reads SVG files as summaries and renders documents to
// standalone SVG. Reading does not recover graph structure: an SVG
// yields its dimensions, text content, and per-tag shape counts only.
package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/cegloff/mcp-diagram-tools/pkg/format"
	"github.com/cegloff/mcp-diagram-tools/pkg/model"
)

// countedTags are the element names tallied into the summary.
var countedTags = map[string]bool{
	"rect": true, "circle": true, "ellipse": true, "line": true,
	"polyline": true, "polygon": true, "path": true, "text": true, "g": true,
}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse walks the SVG token stream, collecting root dimensions, trimmed
// text content, and shape tag counts. The returned page has no nodes or
// edges.
func (p *Parser) Parse(src []byte) (*format.Result, error) {
	dec := xml.NewDecoder(bytes.NewReader(src))

	doc := &model.Document{}
	dims := map[string]any{}
	tags := make(map[string]int)
	var text []string
	seen := make(map[string]bool)
	sawRoot := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, format.NewParseError(format.SVG, fmt.Sprintf("invalid SVG: %v", err), err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			if !sawRoot {
				sawRoot = true
				for _, attr := range t.Attr {
					switch attr.Name.Local {
					case "width", "height", "viewBox":
						dims[attr.Name.Local] = attr.Value
					}
				}
			}
			if countedTags[name] {
				tags[name]++
			}
		case xml.CharData:
			s := strings.TrimSpace(string(t))
			if s != "" && !seen[s] {
				seen[s] = true
				text = append(text, s)
			}
		}
	}
	if !sawRoot {
		return nil, format.NewParseError(format.SVG, "invalid SVG: no root element", nil)
	}
	if len(dims) > 0 {
		doc.Meta = map[string]any{"svg": dims}
	}

	total := 0
	for _, n := range tags {
		total += n
	}

	return &format.Result{
		Format: format.SVG,
		Pages:  []*model.Document{doc},
		Text:   text,
		Stats: format.Stats{
			Pages:    1,
			Elements: total,
			Tags:     tags,
		},
	}, nil
}
