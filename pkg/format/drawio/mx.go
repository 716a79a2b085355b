// Package drawio parses and generates draw.io diagram files.
//
// A draw.io document is either an mxfile container holding one or more
// diagram pages, or a bare mxGraphModel. Page payloads may be stored
// compressed (URL-encoded, Base64, raw deflate) or as directly nested
// XML; parsing tries each decoding in order and falls back to plaintext.
// Generation always emits plaintext XML, since compression is a reader
// compatibility feature, not a requirement of the format.
package drawio

import "encoding/xml"

// mxFile is the container root of a multi-page draw.io document.
type mxFile struct {
	XMLName  xml.Name    `xml:"mxfile"`
	Host     string      `xml:"host,attr"`
	Modified string      `xml:"modified,attr"`
	Agent    string      `xml:"agent,attr"`
	Version  string      `xml:"version,attr"`
	Diagrams []mxDiagram `xml:"diagram"`
}

// mxDiagram is one page. Content holds the encoded payload text when
// the page is stored compressed; Model is set when the graph model is
// nested directly as child elements.
type mxDiagram struct {
	Name    string        `xml:"name,attr"`
	ID      string        `xml:"id,attr,omitempty"`
	Content string        `xml:",chardata"`
	Model   *mxGraphModel `xml:"mxGraphModel"`
}

// mxGraphModel is the graph payload of a single page.
type mxGraphModel struct {
	XMLName    xml.Name `xml:"mxGraphModel"`
	Dx         string   `xml:"dx,attr,omitempty"`
	Dy         string   `xml:"dy,attr,omitempty"`
	Grid       string   `xml:"grid,attr,omitempty"`
	GridSize   string   `xml:"gridSize,attr,omitempty"`
	Guides     string   `xml:"guides,attr,omitempty"`
	Tooltips   string   `xml:"tooltips,attr,omitempty"`
	Connect    string   `xml:"connect,attr,omitempty"`
	Arrows     string   `xml:"arrows,attr,omitempty"`
	Fold       string   `xml:"fold,attr,omitempty"`
	Page       string   `xml:"page,attr,omitempty"`
	PageScale  string   `xml:"pageScale,attr,omitempty"`
	PageWidth  string   `xml:"pageWidth,attr,omitempty"`
	PageHeight string   `xml:"pageHeight,attr,omitempty"`
	Root       mxRoot   `xml:"root"`
}

// mxRoot wraps the flat cell list.
type mxRoot struct {
	Cells []mxCell `xml:"mxCell"`
}

// mxCell is a single graph cell: a vertex, an edge, or one of the two
// reserved root cells (ids "0" and "1").
type mxCell struct {
	ID       string      `xml:"id,attr"`
	Value    string      `xml:"value,attr,omitempty"`
	Style    string      `xml:"style,attr,omitempty"`
	Vertex   string      `xml:"vertex,attr,omitempty"`
	Edge     string      `xml:"edge,attr,omitempty"`
	Parent   string      `xml:"parent,attr,omitempty"`
	Source   string      `xml:"source,attr,omitempty"`
	Target   string      `xml:"target,attr,omitempty"`
	Geometry *mxGeometry `xml:"mxGeometry"`
}

// mxGeometry carries cell position and size.
type mxGeometry struct {
	X        string `xml:"x,attr,omitempty"`
	Y        string `xml:"y,attr,omitempty"`
	Width    string `xml:"width,attr,omitempty"`
	Height   string `xml:"height,attr,omitempty"`
	Relative string `xml:"relative,attr,omitempty"`
	As       string `xml:"as,attr,omitempty"`
}
