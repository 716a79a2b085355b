package format

import (
	"errors"
	"testing"

	"github.com/cegloff/mcp-diagram-tools/pkg/model"
)

func TestFromExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want Format
	}{
		{".drawio", DrawIO},
		{".xml", DrawIO},
		{".excalidraw", Excalidraw},
		{".svg", SVG},
		{"svg", SVG},
		{".SVG", SVG},
	}

	for _, tt := range tests {
		got, err := FromExtension(tt.ext)
		if err != nil {
			t.Errorf("FromExtension(%q) error: %v", tt.ext, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FromExtension(%q) = %q, want %q", tt.ext, got, tt.want)
		}
	}
}

func TestFromExtensionUnsupported(t *testing.T) {
	_, err := FromExtension(".png")
	var ufe *UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Fatalf("FromExtension(.png) error = %v, want *UnsupportedFormatError", err)
	}
	if ufe.Extension != ".png" {
		t.Errorf("Extension = %q, want %q", ufe.Extension, ".png")
	}
}

func TestFromPath(t *testing.T) {
	got, err := FromPath("diagrams/flow.drawio")
	if err != nil {
		t.Fatalf("FromPath() error: %v", err)
	}
	if got != DrawIO {
		t.Errorf("FromPath() = %q, want %q", got, DrawIO)
	}

	if _, err := FromPath("noext"); err == nil {
		t.Error("FromPath(noext) should fail")
	}
}

func TestResultDocumentFlattensPages(t *testing.T) {
	r := &Result{
		Pages: []*model.Document{
			{Name: "Page-1", Nodes: []model.Node{{ID: "a"}}},
			{Name: "Page-2", Nodes: []model.Node{{ID: "b"}}, Edges: []model.Edge{{ID: "e1"}}},
		},
	}

	doc := r.Document()
	if doc.Name != "Page-1" {
		t.Errorf("Name = %q, want %q", doc.Name, "Page-1")
	}
	if len(doc.Nodes) != 2 {
		t.Errorf("Nodes = %d, want 2", len(doc.Nodes))
	}
	if len(doc.Edges) != 1 {
		t.Errorf("Edges = %d, want 1", len(doc.Edges))
	}
}

func TestParseErrorUnwrap(t *testing.T) {
	inner := errors.New("bad xml")
	err := NewParseError(DrawIO, "invalid container", inner)

	if !errors.Is(err, inner) {
		t.Error("ParseError should unwrap to the decode error")
	}
	var pe *ParseError
	if !errors.As(error(err), &pe) {
		t.Error("errors.As should match *ParseError")
	}
}
