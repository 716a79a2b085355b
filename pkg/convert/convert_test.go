package convert

import (
	"errors"
	"strings"
	"testing"

	"github.com/cegloff/mcp-diagram-tools/pkg/format"
)

const excalidrawFixture = `{
  "type": "excalidraw",
  "version": 2,
  "elements": [
    {"id": "s1", "type": "rectangle", "x": 0, "y": 0, "width": 100, "height": 50,
     "boundElements": [{"id": "s1_text", "type": "text"}]},
    {"id": "s1_text", "type": "text", "text": "Hello", "containerId": "s1"},
    {"id": "s2", "type": "ellipse", "x": 300, "y": 0, "width": 100, "height": 50},
    {"id": "ar", "type": "arrow", "points": [[0,0],[200,0]],
     "startBinding": {"elementId": "s1", "focus": 0.5, "gap": 8},
     "endBinding": {"elementId": "s2", "focus": -0.5, "gap": 8}}
  ]
}`

func TestExcalidrawToDrawIO(t *testing.T) {
	out, err := New().Convert([]byte(excalidrawFixture), format.Excalidraw, format.DrawIO)
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, `value="Hello"`) {
		t.Errorf("bound label lost in conversion:\n%s", s)
	}
	if strings.Count(s, `value="Hello"`) != 1 {
		t.Errorf("label duplicated in conversion:\n%s", s)
	}
	if !strings.Contains(s, `source="s1"`) || !strings.Contains(s, `target="s2"`) {
		t.Errorf("edge endpoints lost in conversion:\n%s", s)
	}
	if !strings.Contains(s, "ellipse") {
		t.Errorf("ellipse kind lost in conversion:\n%s", s)
	}
}

func TestExcalidrawToSVG(t *testing.T) {
	out, err := New().Convert([]byte(excalidrawFixture), format.Excalidraw, format.SVG)
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, ">Hello</text>") {
		t.Errorf("label missing from SVG:\n%s", s)
	}
	if !strings.Contains(s, "<line") {
		t.Errorf("edge missing from SVG:\n%s", s)
	}
}

func TestDanglingEdgeToSVG(t *testing.T) {
	src := `{"elements": [
	  {"id": "s1", "type": "rectangle", "x": 0, "y": 0, "width": 100, "height": 50},
	  {"id": "ar", "type": "arrow", "points": [[0,0],[50,0]],
	   "startBinding": {"elementId": "s1", "focus": 0, "gap": 8},
	   "endBinding": {"elementId": "missing", "focus": 0, "gap": 8}}
	]}`
	out, err := New().Convert([]byte(src), format.Excalidraw, format.SVG)
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if strings.Contains(string(out), "<line") {
		t.Error("edge with unresolved endpoint must not render")
	}
}

func TestDrawIOToExcalidraw(t *testing.T) {
	src := `<mxGraphModel><root>
	  <mxCell id="0"/>
	  <mxCell id="1" parent="0"/>
	  <mxCell id="a" value="A" style="rounded=1;" vertex="1" parent="1">
	    <mxGeometry x="0" y="0" width="120" height="60" as="geometry"/>
	  </mxCell>
	  <mxCell id="b" value="B" style="ellipse;" vertex="1" parent="1">
	    <mxGeometry x="300" y="0" width="120" height="60" as="geometry"/>
	  </mxCell>
	  <mxCell id="e" edge="1" source="a" target="b" parent="1"/>
	</root></mxGraphModel>`
	out, err := New().Convert([]byte(src), format.DrawIO, format.Excalidraw)
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	s := string(out)
	for _, want := range []string{`"type": "excalidraw"`, `"ellipse"`, `"containerId": "a"`, `"elementId": "a"`} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %s", want)
		}
	}
}

func TestSVGSourceRejected(t *testing.T) {
	_, err := New().Convert([]byte("<svg/>"), format.SVG, format.DrawIO)
	var uce *UnsupportedConversionError
	if !errors.As(err, &uce) {
		t.Fatalf("Convert() error = %v, want UnsupportedConversionError", err)
	}
	if uce.From != format.SVG {
		t.Errorf("From = %q, want svg", uce.From)
	}
}

func TestUnknownFormat(t *testing.T) {
	_, err := New().Parse(format.Format("pdf"), nil)
	var ufe *format.UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Fatalf("Parse() error = %v, want UnsupportedFormatError", err)
	}
}

func TestUnknownTargetShortCircuits(t *testing.T) {
	// Malformed source: an unknown target must be reported before any
	// parsing happens.
	_, err := New().Convert([]byte("{bad"), format.Excalidraw, format.Format("pdf"))
	var ufe *format.UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Fatalf("Convert() error = %v, want UnsupportedFormatError", err)
	}
}

func TestParseErrorPropagates(t *testing.T) {
	_, err := New().Convert([]byte("{bad"), format.Excalidraw, format.DrawIO)
	var pe *format.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Convert() error = %v, want ParseError", err)
	}
}
