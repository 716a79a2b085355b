// Package geometry computes connector anchors and waypoint paths.
//
// All functions are pure: given two axis-aligned bounding boxes and
// routing hints they return where a connector attaches to each box and
// the relative waypoint sequence between the anchors. Degenerate boxes
// (zero width or height) are not errors; anchors simply collapse toward
// a single point.
package geometry

import (
	"math"

	"github.com/cegloff/mcp-diagram-tools/pkg/model"
)

// CurveOffsetRatio is the fraction of the dominant travel distance used
// as the perpendicular midpoint offset of a curved path. The sign and
// axis selection below are load-bearing for visual output; see the
// routing tests.
const CurveOffsetRatio = 0.2

// BindingGap is the fixed pixel gap between a bound connector end and
// the shape boundary it tracks.
const BindingGap = 8.0

// bindingFocusMagnitude is the fractional offset along the boundary edge
// used for endpoint bindings. Sign is derived from direction of travel.
const bindingFocusMagnitude = 0.5

// Box is an axis-aligned bounding rectangle with top-left origin.
type Box struct {
	X float64
	Y float64
	W float64
	H float64
}

// BoxFor returns the bounding box of a node.
func BoxFor(n *model.Node) Box {
	return Box{X: n.X, Y: n.Y, W: n.Width, H: n.Height}
}

// CenterX returns the horizontal center of the box.
func (b Box) CenterX() float64 { return b.X + b.W/2 }

// CenterY returns the vertical center of the box.
func (b Box) CenterY() float64 { return b.Y + b.H/2 }

// ResolveAnchor returns the attachment point on b for a connector
// traveling (dx, dy). An explicit side picks that edge's midpoint.
// SideAuto picks the edge facing the direction of travel: left/right
// when |dx| > |dy|, top/bottom otherwise (ties go vertical).
func ResolveAnchor(b Box, side model.Side, dx, dy float64) model.Point {
	switch side {
	case model.SideTop:
		return model.Point{X: b.CenterX(), Y: b.Y}
	case model.SideBottom:
		return model.Point{X: b.CenterX(), Y: b.Y + b.H}
	case model.SideLeft:
		return model.Point{X: b.X, Y: b.CenterY()}
	case model.SideRight:
		return model.Point{X: b.X + b.W, Y: b.CenterY()}
	}
	if math.Abs(dx) > math.Abs(dy) {
		x := b.X
		if dx > 0 {
			x = b.X + b.W
		}
		return model.Point{X: x, Y: b.CenterY()}
	}
	y := b.Y
	if dy > 0 {
		y = b.Y + b.H
	}
	return model.Point{X: b.CenterX(), Y: y}
}

// DepartureAnchor returns the anchor on the source box for travel (dx, dy).
// With SideAuto the connector leaves through the edge nearest the target.
func DepartureAnchor(b Box, side model.Side, dx, dy float64) model.Point {
	return ResolveAnchor(b, side, dx, dy)
}

// ArrivalAnchor returns the anchor on the target box for travel (dx, dy).
// With SideAuto the connector arrives at the edge facing back toward the
// source, which is the side opposite the travel direction.
func ArrivalAnchor(b Box, side model.Side, dx, dy float64) model.Point {
	if side != model.SideAuto {
		return ResolveAnchor(b, side, dx, dy)
	}
	return ResolveAnchor(b, model.SideAuto, -dx, -dy)
}

// StraightPath returns the two-point path [(0,0), (dx,dy)].
func StraightPath(dx, dy float64) []model.Point {
	return []model.Point{{}, {X: dx, Y: dy}}
}

// CurvedPath returns a three-point path whose midpoint is offset
// perpendicular to the travel direction by CurveOffsetRatio of the
// dominant distance. Explicit directions bias the midpoint on the named
// axis; auto bends downward (+y) for horizontal-dominant paths and
// leftward (-x) for vertical-dominant paths.
func CurvedPath(dx, dy float64, dir model.CurveDirection) []model.Point {
	midX, midY := dx/2, dy/2
	offset := math.Max(math.Abs(dx), math.Abs(dy)) * CurveOffsetRatio

	var mid model.Point
	switch dir {
	case model.DirectionUp:
		mid = model.Point{X: midX, Y: midY - offset}
	case model.DirectionDown:
		mid = model.Point{X: midX, Y: midY + offset}
	case model.DirectionLeft:
		mid = model.Point{X: midX - offset, Y: midY}
	case model.DirectionRight:
		mid = model.Point{X: midX + offset, Y: midY}
	default:
		if math.Abs(dx) > math.Abs(dy) {
			mid = model.Point{X: midX, Y: midY + offset}
		} else {
			mid = model.Point{X: midX - offset, Y: midY}
		}
	}
	return []model.Point{{}, mid, {X: dx, Y: dy}}
}

// StepPath returns a three-point orthogonal path with a single right-angle
// bend. Vertical-dominant paths travel vertically first; otherwise the
// horizontal leg comes first. Segments are never diagonal.
func StepPath(dx, dy float64) []model.Point {
	if math.Abs(dy) > math.Abs(dx) {
		return []model.Point{{}, {X: 0, Y: dy}, {X: dx, Y: dy}}
	}
	return []model.Point{{}, {X: dx, Y: 0}, {X: dx, Y: dy}}
}

// Path routes a connector according to the curve style. dx and dy are
// the offsets from the start anchor to the end anchor.
func Path(style model.CurveStyle, dir model.CurveDirection, dx, dy float64) []model.Point {
	switch style {
	case model.CurveCurved:
		return CurvedPath(dx, dy, dir)
	case model.CurveStep:
		return StepPath(dx, dy)
	default:
		return StraightPath(dx, dy)
	}
}

// BindingFocus returns the fractional boundary offsets for the start and
// end bindings of a connector traveling (dx, dy). The sign leans the
// attachment toward the side of the edge midpoint facing the travel
// direction on the dominant axis; the two ends always get mirrored signs.
func BindingFocus(dx, dy float64) (start, end float64) {
	dominant := dy
	if math.Abs(dx) > math.Abs(dy) {
		dominant = dx
	}
	if dominant > 0 {
		return bindingFocusMagnitude, -bindingFocusMagnitude
	}
	return -bindingFocusMagnitude, bindingFocusMagnitude
}
