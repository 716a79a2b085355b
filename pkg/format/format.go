// Package format defines the contracts shared by all diagram format
// adapters: the format discriminator, extension detection, the parse
// result shape, and the error taxonomy.
//
// Concrete parsers and generators live in the subpackages drawio,
// excalidraw, and svg; the convert package composes them.
package format

import (
	"path/filepath"
	"strings"

	"github.com/cegloff/mcp-diagram-tools/pkg/model"
)

// Format identifies a supported diagram file format.
type Format string

// Supported formats.
const (
	DrawIO     Format = "drawio"
	Excalidraw Format = "excalidraw"
	SVG        Format = "svg"
)

// extensions maps lowercase file extensions to formats.
var extensions = map[string]Format{
	".drawio":     DrawIO,
	".xml":        DrawIO,
	".excalidraw": Excalidraw,
	".svg":        SVG,
}

// FromExtension resolves a file extension (with or without the leading
// dot) to a format. Unrecognized extensions return an
// *UnsupportedFormatError before any parse work is attempted.
func FromExtension(ext string) (Format, error) {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return "", &UnsupportedFormatError{Extension: ext}
}

// FromPath resolves a file path to a format via its extension.
func FromPath(path string) (Format, error) {
	return FromExtension(filepath.Ext(path))
}

// Stats summarizes a parsed document.
type Stats struct {
	// Pages is the number of sub-diagrams found (multi-page container
	// formats may hold several).
	Pages int `json:"pages,omitempty"`

	// Nodes and Edges count the graph elements across all pages.
	Nodes int `json:"nodes"`
	Edges int `json:"edges"`

	// Elements is the raw element total in the source document, which
	// can exceed Nodes+Edges for formats with non-graph elements.
	Elements int `json:"elements,omitempty"`

	// Tags counts source elements by tag name for formats without
	// connection semantics (the vector-graphics summary).
	Tags map[string]int `json:"tags,omitempty"`
}

// Result is the outcome of parsing one document.
type Result struct {
	// Format is the source format the document was parsed from.
	Format Format `json:"format"`

	// Pages holds one document per sub-diagram, in source order.
	// Single-page formats always produce exactly one.
	Pages []*model.Document `json:"pages"`

	// Text is every label or text string found, deduplicated, in
	// first-seen order. Intended for search and indexing by callers.
	Text []string `json:"text"`

	// Stats carries basic counts.
	Stats Stats `json:"stats"`
}

// Document flattens all pages into a single combined document.
func (r *Result) Document() *model.Document {
	if len(r.Pages) == 1 {
		return r.Pages[0]
	}
	return model.Merge(r.Pages)
}

// Parser decodes document bytes into a Result. Malformed input yields a
// *ParseError; parsers never panic across this boundary.
type Parser interface {
	Parse(data []byte) (*Result, error)
}

// Generator encodes a document into format bytes. Generation does not
// fail on well-formed documents: dangling edge references degrade to
// free-floating lines rather than erroring.
type Generator interface {
	Generate(doc *model.Document) ([]byte, error)
}
