// Package dotimport turns Graphviz DOT sources into laid-out documents.
// Graphviz computes node positions during rendering, so the graph is
// rendered to xdot text and the computed geometry harvested from it.
package dotimport

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/google/uuid"

	"github.com/cegloff/mcp-diagram-tools/pkg/model"
)

// Graphviz emits positions in points with the origin at the bottom
// left, sizes in inches.
const pointsPerInch = 72.0

// FromDOT lays out a DOT graph and returns it as a document with
// absolute node positions in top-left origin coordinates.
func FromDOT(ctx context.Context, src []byte) (*model.Document, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(src)
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.XDOT, &buf); err != nil {
		return nil, fmt.Errorf("layout DOT: %w", err)
	}
	return parseXDOT(buf.String())
}

var (
	bbRe   = regexp.MustCompile(`\bbb="([0-9.-]+),([0-9.-]+),([0-9.-]+),([0-9.-]+)"`)
	stmtRe = regexp.MustCompile(`(?m)^\s*("[^"]+"|[\w.]+)\s+\[(.*)\];?\s*$`)
	edgeRe = regexp.MustCompile(`(?m)^\s*("[^"]+"|[\w.]+)\s*->\s*("[^"]+"|[\w.]+)\s+\[`)

	posRe    = regexp.MustCompile(`\bpos="([0-9.-]+),([0-9.-]+)"`)
	widthRe  = regexp.MustCompile(`\bwidth="?([0-9.]+)"?`)
	heightRe = regexp.MustCompile(`\bheight="?([0-9.]+)"?`)
	labelRe  = regexp.MustCompile(`\blabel=("[^"]*"|[\w.]+)`)
)

// parseXDOT harvests the bounding box, node geometry, and edge
// endpoints from rendered xdot text.
func parseXDOT(text string) (*model.Document, error) {
	// Statements wrap with a backslash before the newline.
	text = strings.ReplaceAll(text, "\\\n", "")
	text = strings.ReplaceAll(text, "\\\r\n", "")

	bb := bbRe.FindStringSubmatch(text)
	if bb == nil {
		return nil, fmt.Errorf("layout output missing bounding box")
	}
	canvasHeight, _ := strconv.ParseFloat(bb[4], 64)

	doc := &model.Document{}
	seen := make(map[string]bool)

	for _, m := range stmtRe.FindAllStringSubmatch(text, -1) {
		name := unquote(m[1])
		attrs := m[2]
		if name == "graph" || name == "node" || name == "edge" {
			continue
		}
		if strings.Contains(m[0], "->") {
			continue
		}
		pos := posRe.FindStringSubmatch(attrs)
		if pos == nil || seen[name] {
			continue
		}
		seen[name] = true

		cx, _ := strconv.ParseFloat(pos[1], 64)
		cy, _ := strconv.ParseFloat(pos[2], 64)
		w := attrInches(widthRe, attrs)
		h := attrInches(heightRe, attrs)

		label := name
		if lm := labelRe.FindStringSubmatch(attrs); lm != nil {
			if l := unquote(lm[1]); l != "\\N" {
				label = l
			}
		}

		doc.Nodes = append(doc.Nodes, model.Node{
			ID:    name,
			Kind:  model.KindRectangle,
			Label: label,
			X:     cx - w/2,
			Y:     (canvasHeight - cy) - h/2,
			Width: w, Height: h,
			Positioned: true,
		})
	}

	for _, m := range edgeRe.FindAllStringSubmatch(text, -1) {
		doc.Edges = append(doc.Edges, model.Edge{
			ID:     uuid.NewString(),
			Source: unquote(m[1]),
			Target: unquote(m[2]),
		})
	}
	return doc, nil
}

func attrInches(re *regexp.Regexp, attrs string) float64 {
	m := re.FindStringSubmatch(attrs)
	if m == nil {
		return 0
	}
	v, _ := strconv.ParseFloat(m[1], 64)
	return v * pointsPerInch
}

func unquote(s string) string {
	return strings.Trim(s, `"`)
}
