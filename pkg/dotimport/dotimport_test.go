package dotimport

import "testing"

const xdotFixture = `digraph {
	graph [bb="0,0,242,116"];
	node [label="\N"];
	start	[height=0.5,
		pos="27,98",
		width=0.75];
	finish	[height=0.5,
		label="All done",
		pos="215,18",
		width=0.75];
	start -> finish	[pos="e,200,30 45,85 80,60 130,45 180,35"];
}
`

func TestParseXDOT(t *testing.T) {
	doc, err := parseXDOT(xdotFixture)
	if err != nil {
		t.Fatalf("parseXDOT() error: %v", err)
	}
	if len(doc.Nodes) != 2 {
		t.Fatalf("nodes = %d, want 2", len(doc.Nodes))
	}
	if len(doc.Edges) != 1 {
		t.Fatalf("edges = %d, want 1", len(doc.Edges))
	}

	start := doc.Nodes[0]
	if start.ID != "start" || start.Label != "start" {
		t.Errorf("node[0] = %q/%q, want start/start", start.ID, start.Label)
	}
	// 0.75in x 0.5in at center (27,98) in a 116pt tall canvas with a
	// bottom-left origin.
	if start.Width != 54 || start.Height != 36 {
		t.Errorf("node[0] size = (%v,%v), want (54,36)", start.Width, start.Height)
	}
	if start.X != 0 || start.Y != 0 {
		t.Errorf("node[0] position = (%v,%v), want (0,0)", start.X, start.Y)
	}

	finish := doc.Nodes[1]
	if finish.Label != "All done" {
		t.Errorf("node[1] label = %q, want All done", finish.Label)
	}
	if finish.X != 188 || finish.Y != 80 {
		t.Errorf("node[1] position = (%v,%v), want (188,80)", finish.X, finish.Y)
	}

	e := doc.Edges[0]
	if e.Source != "start" || e.Target != "finish" {
		t.Errorf("edge = %q->%q, want start->finish", e.Source, e.Target)
	}
	if e.ID == "" {
		t.Error("edge id not assigned")
	}
}

func TestParseXDOTContinuations(t *testing.T) {
	src := "digraph {\n\tgraph [bb=\"0,0,100,100\"];\n\ta\t[height=0.5, \\\npos=\"50,50\", width=1];\n}\n"
	doc, err := parseXDOT(src)
	if err != nil {
		t.Fatalf("parseXDOT() error: %v", err)
	}
	if len(doc.Nodes) != 1 {
		t.Fatalf("nodes = %d, want 1", len(doc.Nodes))
	}
	if doc.Nodes[0].X != 14 || doc.Nodes[0].Y != 32 {
		t.Errorf("position = (%v,%v), want (14,32)", doc.Nodes[0].X, doc.Nodes[0].Y)
	}
}

func TestParseXDOTMissingBoundingBox(t *testing.T) {
	if _, err := parseXDOT("digraph {}"); err == nil {
		t.Error("expected error for output without bounding box")
	}
}
