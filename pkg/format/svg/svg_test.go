package svg

import (
	"strings"
	"testing"

	"github.com/cegloff/mcp-diagram-tools/pkg/format"
	"github.com/cegloff/mcp-diagram-tools/pkg/model"
)

func TestParseSummary(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg" width="400" height="300" viewBox="0 0 400 300">
  <rect x="10" y="10" width="100" height="50"/>
  <rect x="200" y="10" width="100" height="50"/>
  <ellipse cx="50" cy="200" rx="40" ry="20"/>
  <text x="60" y="40">Start</text>
  <text x="250" y="40">End</text>
  <text x="150" y="100">Start</text>
</svg>`
	res, err := NewParser().Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if res.Stats.Tags["rect"] != 2 || res.Stats.Tags["ellipse"] != 1 || res.Stats.Tags["text"] != 3 {
		t.Errorf("tags = %v, want rect:2 ellipse:1 text:3", res.Stats.Tags)
	}
	if res.Stats.Elements != 6 {
		t.Errorf("elements = %d, want 6", res.Stats.Elements)
	}
	want := []string{"Start", "End"}
	if len(res.Text) != len(want) {
		t.Fatalf("text = %v, want %v", res.Text, want)
	}
	for i, s := range want {
		if res.Text[i] != s {
			t.Errorf("text[%d] = %q, want %q", i, res.Text[i], s)
		}
	}
	dims, ok := res.Pages[0].Meta["svg"].(map[string]any)
	if !ok {
		t.Fatalf("Meta = %v, want dimensions under the svg key", res.Pages[0].Meta)
	}
	if dims["width"] != "400" || dims["height"] != "300" || dims["viewBox"] != "0 0 400 300" {
		t.Errorf("dimensions = %v", dims)
	}
	if len(res.Pages[0].Nodes) != 0 || len(res.Pages[0].Edges) != 0 {
		t.Error("SVG summary must not contain graph structure")
	}
}

func TestParseInvalid(t *testing.T) {
	_, err := NewParser().Parse([]byte("<svg><unclosed></svg>"))
	pe, ok := err.(*format.ParseError)
	if !ok {
		t.Fatalf("Parse() error = %T, want *format.ParseError", err)
	}
	if pe.Format != format.SVG {
		t.Errorf("ParseError.Format = %q, want svg", pe.Format)
	}
}

func TestGenerateShapesAndEdges(t *testing.T) {
	doc := &model.Document{
		Nodes: []model.Node{
			{ID: "a", Kind: model.KindRectangle, Label: "Start", X: 100, Y: 100, Width: 120, Height: 60},
			{ID: "b", Kind: model.KindEllipse, Label: "Loop", X: 400, Y: 100, Width: 120, Height: 60},
			{ID: "c", Kind: model.KindDiamond, Label: "OK?", X: 700, Y: 100, Width: 100, Height: 100},
		},
		Edges: []model.Edge{
			{ID: "e1", Source: "a", Target: "b", Label: "next"},
		},
	}
	out, err := NewGenerator().Generate(doc)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	s := string(out)

	for _, want := range []string{
		`<rect x="50" y="50" width="120" height="60" rx="5"`,
		`<ellipse cx="410" cy="80" rx="60" ry="30"`,
		"<polygon points=",
		`marker-end="url(#arrowhead)"`,
		`<marker id="arrowhead"`,
		">Start</text>",
		">next</text>",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q", want)
		}
	}
	// Source right center to target left center, shifted by padding
	// minus the bounding box origin.
	if !strings.Contains(s, `<line x1="170" y1="80" x2="350" y2="80"`) {
		t.Errorf("edge line missing or misplaced:\n%s", s)
	}
}

func TestGenerateKeepsExplicitOrigin(t *testing.T) {
	doc := &model.Document{
		Nodes: []model.Node{
			{ID: "a", Kind: model.KindRectangle, X: 0, Y: 0, Width: 120, Height: 60, Positioned: true},
			{ID: "b", Kind: model.KindRectangle, X: 300, Y: 0, Width: 120, Height: 60, Positioned: true},
		},
	}
	out, err := NewGenerator().Generate(doc)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	// Only the padding shift applies; a positioned origin node is not
	// moved to an auto-layout slot.
	if !strings.Contains(string(out), `<rect x="50" y="50"`) {
		t.Errorf("origin node displaced:\n%s", string(out))
	}
}

func TestGenerateSkipsDanglingEdges(t *testing.T) {
	doc := &model.Document{
		Nodes: []model.Node{{ID: "a", Kind: model.KindRectangle, X: 10, Y: 10}},
		Edges: []model.Edge{{ID: "e1", Source: "a", Target: "ghost"}},
	}
	out, err := NewGenerator().Generate(doc)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if strings.Contains(string(out), "<line") {
		t.Error("dangling edge must not produce a line")
	}
}

func TestGenerateEscapesLabels(t *testing.T) {
	doc := &model.Document{
		Nodes: []model.Node{{ID: "a", Kind: model.KindRectangle, Label: "a < b & c", X: 1, Y: 1}},
	}
	out, err := NewGenerator().Generate(doc)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if !strings.Contains(string(out), "a &lt; b &amp; c") {
		t.Error("label not escaped")
	}
}

func TestGenerateCanvasGrowsToFit(t *testing.T) {
	doc := &model.Document{
		Nodes: []model.Node{{ID: "a", Kind: model.KindRectangle, X: 2000, Y: 50, Width: 120, Height: 60}},
	}
	out, err := NewGenerator().Generate(doc)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if !strings.Contains(string(out), `width="800"`) {
		// Bounding box is 120 wide plus padding on both sides; the
		// default minimum still wins.
		t.Errorf("canvas width unexpected:\n%s", string(out)[:200])
	}
}
