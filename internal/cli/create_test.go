package cli

import (
	"encoding/json"
	"testing"

	"github.com/cegloff/mcp-diagram-tools/pkg/model"
)

func TestSpecToDocument(t *testing.T) {
	src := `{
	  "name": "Flow",
	  "nodes": [
	    {"id": "a", "label": "Start", "type": "rectangle", "x": 10, "y": 20, "width": 120, "height": 60},
	    {"id": "b", "label": "Choice?", "type": "diamond"}
	  ],
	  "edges": [
	    {"id": "e1", "source": "a", "target": "b", "label": "next",
	     "curveStyle": "curved", "curveDirection": "down", "startSide": "bottom",
	     "points": [[0,0],[50,80]]}
	  ]
	}`
	var spec diagramSpec
	if err := json.Unmarshal([]byte(src), &spec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	doc := spec.toDocument()
	if doc.Name != "Flow" {
		t.Errorf("Name = %q, want Flow", doc.Name)
	}
	if len(doc.Nodes) != 2 || len(doc.Edges) != 1 {
		t.Fatalf("got %d nodes, %d edges, want 2/1", len(doc.Nodes), len(doc.Edges))
	}

	a := doc.Nodes[0]
	if a.Kind != model.KindRectangle || a.X != 10 || a.Width != 120 {
		t.Errorf("node a = %+v", a)
	}
	if !a.Positioned {
		t.Error("node a has explicit coordinates, want Positioned")
	}
	if doc.Nodes[1].Kind != model.KindDiamond {
		t.Errorf("node b kind = %q, want diamond", doc.Nodes[1].Kind)
	}
	if doc.Nodes[1].Positioned {
		t.Error("node b has no coordinates, want unpositioned")
	}

	e := doc.Edges[0]
	if e.CurveStyle != model.CurveCurved || e.CurveDirection != model.DirectionDown {
		t.Errorf("edge routing = %q/%q, want curved/down", e.CurveStyle, e.CurveDirection)
	}
	if e.StartSide != model.SideBottom {
		t.Errorf("start side = %q, want bottom", e.StartSide)
	}
	if len(e.Points) != 2 || e.Points[1] != (model.Point{X: 50, Y: 80}) {
		t.Errorf("points = %v", e.Points)
	}
}

func TestSpecKeepsExplicitOrigin(t *testing.T) {
	var spec diagramSpec
	if err := json.Unmarshal([]byte(`{"nodes": [{"id": "n", "x": 0, "y": 0}]}`), &spec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	n := spec.toDocument().Nodes[0]
	if !n.Positioned || n.X != 0 || n.Y != 0 {
		t.Errorf("origin node = %+v, want positioned at (0,0)", n)
	}
}

func TestSpecDefaultsUntypedNodesToRectangles(t *testing.T) {
	spec := diagramSpec{Nodes: []specNode{{ID: "n", Label: "X"}}}
	doc := spec.toDocument()
	if doc.Nodes[0].Kind != model.KindRectangle {
		t.Errorf("kind = %q, want rectangle", doc.Nodes[0].Kind)
	}
}

func TestDanglingReferences(t *testing.T) {
	doc := &model.Document{
		Nodes: []model.Node{{ID: "a"}},
		Edges: []model.Edge{
			{ID: "e1", Source: "a", Target: "ghost"},
			{ID: "e2", Source: "ghost", Target: "phantom"},
			{ID: "e3", Source: "a"},
		},
	}
	got := danglingReferences(doc)
	want := []string{"ghost", "phantom"}
	if len(got) != len(want) {
		t.Fatalf("danglingReferences() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("danglingReferences()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
