package excalidraw

import (
	"encoding/json"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/cegloff/mcp-diagram-tools/pkg/geometry"
	"github.com/cegloff/mcp-diagram-tools/pkg/model"
)

const (
	sceneSource  = "mcp-diagram-tools"
	sceneVersion = 2

	defaultNodeWidth  = 120.0
	defaultNodeHeight = 60.0
	autoLayoutStepX   = 150.0
	autoLayoutY       = 100.0
)

// Option configures a Generator.
type Option func(*Generator)

// WithSeed fixes the seed used for element seeds and version nonces,
// making output deterministic.
func WithSeed(seed uint64) Option {
	return func(g *Generator) { g.seed = &seed }
}

// WithTimestamp fixes the updated timestamp stamped on every element.
func WithTimestamp(t time.Time) Option {
	return func(g *Generator) { g.timestamp = t }
}

// Generator writes a document as an Excalidraw scene.
type Generator struct {
	seed      *uint64
	timestamp time.Time
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{timestamp: time.Now()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate emits the scene in two passes. The first pass writes shapes
// with their bound text labels and arrows with start and end bindings.
// The second pass walks the recorded bindings and appends an arrow
// back-reference to each connected shape's boundElements, which is what
// makes the arrows follow shapes when they move in the editor.
func (g *Generator) Generate(doc *model.Document) ([]byte, error) {
	seed := uint64(g.timestamp.UnixNano())
	if g.seed != nil {
		seed = *g.seed
	}
	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
	updated := g.timestamp.UnixMilli()

	var elements []any
	byID := make(map[string]*elementBase)
	type arrowBinding struct {
		arrowID, source, target string
	}
	var bindings []arrowBinding

	for i, n := range doc.Nodes {
		id := n.ID
		if id == "" {
			id = uuid.NewString()
		}
		x, y := n.X, n.Y
		if !n.Positioned && x == 0 && y == 0 {
			x = float64(i) * autoLayoutStepX
			y = autoLayoutY
		}

		if n.Kind == model.KindText {
			w, h := n.Width, n.Height
			if w == 0 {
				w = 100
			}
			if h == 0 {
				h = 25
			}
			te := &textElement{
				elementBase:   g.base(rng, id, "text", x, y, w, h, n.StyleOr(model.StyleStrokeColor, "#1e1e1e"), "transparent", 1, updated),
				Text:          n.Label,
				FontSize:      16,
				FontFamily:    1,
				TextAlign:     "center",
				VerticalAlign: "middle",
				OriginalText:  n.Label,
				AutoResize:    true,
				LineHeight:    1.25,
			}
			if c := n.StyleOr(model.StyleContainerID, ""); c != "" {
				te.ContainerID = &c
			}
			elements = append(elements, te)
			byID[id] = &te.elementBase
			continue
		}

		w, h := n.Width, n.Height
		if w == 0 {
			w = defaultNodeWidth
		}
		if h == 0 {
			h = defaultNodeHeight
		}

		shape := &shapeElement{
			elementBase: g.base(rng, id, shapeType(n), x, y, w, h,
				n.StyleOr(model.StyleStrokeColor, "#1e1e1e"),
				n.StyleOr(model.StyleFillColor, "transparent"), 2, updated),
			StrokeStyle: "solid",
		}
		if shape.Type == "rectangle" {
			shape.Roundness = &roundness{Type: 3}
		}

		if n.Label != "" {
			textID := id + "_text"
			shape.BoundElements = []boundElement{{ID: textID, Type: "text"}}

			label := &textElement{
				elementBase:   g.base(rng, textID, "text", x, y, w, h, "#1e1e1e", "transparent", 1, updated),
				Text:          n.Label,
				FontSize:      labelFontSize(n.Label),
				FontFamily:    1,
				TextAlign:     "center",
				VerticalAlign: "middle",
				ContainerID:   &id,
				OriginalText:  n.Label,
				AutoResize:    true,
				LineHeight:    1.25,
			}
			elements = append(elements, shape, label)
		} else {
			elements = append(elements, shape)
		}
		byID[id] = &shape.elementBase
	}

	index := doc.NodeIndex()

	for _, e := range doc.Edges {
		arrowID := e.ID
		if arrowID == "" {
			arrowID = uuid.NewString()
		}

		arrowX, arrowY := 0.0, 130.0
		points := e.Points
		if len(points) == 0 {
			points = []model.Point{{X: 0, Y: 0}, {X: 100, Y: 0}}
		}

		var startBinding, endBinding *binding
		src, srcOK := index[e.Source]
		tgt, tgtOK := index[e.Target]
		if srcOK && tgtOK {
			sb := geometry.BoxFor(src)
			tb := geometry.BoxFor(tgt)
			dx := tb.CenterX() - sb.CenterX()
			dy := tb.CenterY() - sb.CenterY()

			start := geometry.DepartureAnchor(sb, e.StartSide, dx, dy)
			end := geometry.ArrivalAnchor(tb, e.EndSide, dx, dy)
			arrowX, arrowY = start.X, start.Y

			if len(e.Points) == 0 {
				points = geometry.Path(e.CurveStyle, e.CurveDirection, end.X-start.X, end.Y-start.Y)
			}

			startFocus, endFocus := geometry.BindingFocus(dx, dy)
			startBinding = &binding{ElementID: e.Source, Focus: startFocus, Gap: geometry.BindingGap}
			endBinding = &binding{ElementID: e.Target, Focus: endFocus, Gap: geometry.BindingGap}
			bindings = append(bindings, arrowBinding{arrowID, e.Source, e.Target})
		}

		last := points[len(points)-1]
		curved := e.CurveStyle == model.CurveCurved || len(points) > 2

		arrow := &arrowElement{
			elementBase: g.base(rng, arrowID, "arrow", arrowX, arrowY,
				math.Abs(last.X), math.Abs(last.Y),
				e.StyleOr(model.StyleStrokeColor, "#1e1e1e"), "transparent", 2, updated),
			StrokeStyle:    "solid",
			Points:         points,
			StartBinding:   startBinding,
			EndBinding:     endBinding,
			StartArrowhead: arrowhead(e.StartArrowhead, ""),
			EndArrowhead:   arrowhead(e.EndArrowhead, "arrow"),
		}
		if curved {
			arrow.Roundness = &roundness{Type: 2}
		}

		if e.Label != "" {
			textID := uuid.NewString()
			arrow.BoundElements = []boundElement{{ID: textID, Type: "text"}}

			label := &textElement{
				elementBase: g.base(rng, textID, "text",
					arrowX+last.X/2, arrowY+last.Y/2-15,
					float64(len(e.Label))*8, 20, "#1e1e1e", "transparent", 1, updated),
				Text:          e.Label,
				FontSize:      14,
				FontFamily:    1,
				TextAlign:     "center",
				VerticalAlign: "middle",
				ContainerID:   &arrowID,
				OriginalText:  e.Label,
				AutoResize:    true,
				LineHeight:    1.25,
			}
			elements = append(elements, arrow, label)
		} else {
			elements = append(elements, arrow)
		}
	}

	for _, b := range bindings {
		if base, ok := byID[b.source]; ok {
			base.BoundElements = append(base.BoundElements, boundElement{ID: b.arrowID, Type: "arrow"})
		}
		if base, ok := byID[b.target]; ok {
			base.BoundElements = append(base.BoundElements, boundElement{ID: b.arrowID, Type: "arrow"})
		}
	}

	out := sceneOut{
		Type:     "excalidraw",
		Version:  sceneVersion,
		Source:   sceneSource,
		Elements: elements,
		AppState: appState{ViewBackgroundColor: "#ffffff"},
		Files:    map[string]any{},
	}
	return json.MarshalIndent(out, "", "  ")
}

func (g *Generator) base(rng *rand.Rand, id, typ string, x, y, w, h float64, stroke, fill string, strokeWidth float64, updated int64) elementBase {
	return elementBase{
		ID:              id,
		Type:            typ,
		X:               x,
		Y:               y,
		Width:           w,
		Height:          h,
		StrokeColor:     stroke,
		BackgroundColor: fill,
		FillStyle:       "solid",
		StrokeWidth:     strokeWidth,
		Roughness:       1,
		Opacity:         100,
		Seed:            rng.IntN(999999999) + 1,
		Version:         1,
		VersionNonce:    rng.IntN(999999999) + 1,
		GroupIDs:        []string{},
		BoundElements:   []boundElement{},
		Updated:         updated,
	}
}

func shapeType(n model.Node) string {
	switch n.Kind {
	case model.KindEllipse:
		return "ellipse"
	case model.KindDiamond:
		return "diamond"
	case model.KindOther:
		if t := n.StyleOr(model.StyleRawType, ""); t != "" {
			return t
		}
		return "rectangle"
	default:
		return "rectangle"
	}
}

// Long labels step down so the text still fits its container.
func labelFontSize(label string) float64 {
	switch {
	case len(label) > 50:
		return 10
	case len(label) > 30:
		return 12
	default:
		return 16
	}
}

func arrowhead(v, fallback string) *string {
	if v == "" {
		if fallback == "" {
			return nil
		}
		return &fallback
	}
	return &v
}
