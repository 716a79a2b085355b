// Package model defines the shared in-memory representation for diagrams.
//
// Every supported file format (draw.io XML, Excalidraw JSON, SVG) is
// normalized into a [Document] of [Node] and [Edge] values by its parser,
// and re-synthesized from a Document by its generator. The model carries
// only the concepts all formats share: identified shapes with geometry and
// labels, connectors with optional endpoint references and routing hints,
// and an open style map for format-specific attributes.
//
// Documents are immutable by convention: parsers build a fresh Document per
// input, generators never mutate their input, and conversion produces new
// Documents rather than editing the source. This makes concurrent
// conversions safe without coordination.
package model
