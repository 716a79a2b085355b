// Package excalidraw reads and writes Excalidraw scene files, mapping
// their element list onto the shared document model. Shape labels are
// bound text elements linked through containerId, and connected arrows
// carry start and end bindings that reference the shapes they attach to.
package excalidraw

import "github.com/cegloff/mcp-diagram-tools/pkg/model"

// binding attaches one end of an arrow to another element.
type binding struct {
	ElementID string  `json:"elementId"`
	Focus     float64 `json:"focus"`
	Gap       float64 `json:"gap"`
}

// boundElement is the back-reference a shape keeps to its bound
// text label and connected arrows.
type boundElement struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type roundness struct {
	Type int `json:"type"`
}

// element is the lenient read-side shape: every field optional, so any
// element type deserializes without loss of the attributes we map.
type element struct {
	ID              string         `json:"id"`
	Type            string         `json:"type"`
	X               float64        `json:"x"`
	Y               float64        `json:"y"`
	Width           float64        `json:"width"`
	Height          float64        `json:"height"`
	Text            string         `json:"text"`
	StrokeColor     string         `json:"strokeColor"`
	BackgroundColor string         `json:"backgroundColor"`
	Points          []model.Point  `json:"points"`
	StartBinding    *binding       `json:"startBinding"`
	EndBinding      *binding       `json:"endBinding"`
	StartArrowhead  *string        `json:"startArrowhead"`
	EndArrowhead    *string        `json:"endArrowhead"`
	ContainerID     string         `json:"containerId"`
	BoundElements   []boundElement `json:"boundElements"`
	IsDeleted       bool           `json:"isDeleted"`
}

// elementBase holds the attributes every generated element carries.
// Per-type structs embed it and add their own fields, which keeps
// type-specific keys like roundness or containerId out of elements
// that must not have them.
type elementBase struct {
	ID              string         `json:"id"`
	Type            string         `json:"type"`
	X               float64        `json:"x"`
	Y               float64        `json:"y"`
	Width           float64        `json:"width"`
	Height          float64        `json:"height"`
	Angle           float64        `json:"angle"`
	StrokeColor     string         `json:"strokeColor"`
	BackgroundColor string         `json:"backgroundColor"`
	FillStyle       string         `json:"fillStyle"`
	StrokeWidth     float64        `json:"strokeWidth"`
	Roughness       int            `json:"roughness"`
	Opacity         int            `json:"opacity"`
	Seed            int            `json:"seed"`
	Version         int            `json:"version"`
	VersionNonce    int            `json:"versionNonce"`
	IsDeleted       bool           `json:"isDeleted"`
	GroupIDs        []string       `json:"groupIds"`
	FrameID         *string        `json:"frameId"`
	BoundElements   []boundElement `json:"boundElements"`
	Updated         int64          `json:"updated"`
	Link            *string        `json:"link"`
	Locked          bool           `json:"locked"`
}

type shapeElement struct {
	elementBase
	StrokeStyle string     `json:"strokeStyle"`
	Roundness   *roundness `json:"roundness"`
}

type textElement struct {
	elementBase
	Text          string  `json:"text"`
	FontSize      float64 `json:"fontSize"`
	FontFamily    int     `json:"fontFamily"`
	TextAlign     string  `json:"textAlign"`
	VerticalAlign string  `json:"verticalAlign"`
	ContainerID   *string `json:"containerId"`
	OriginalText  string  `json:"originalText"`
	AutoResize    bool    `json:"autoResize"`
	LineHeight    float64 `json:"lineHeight"`
}

type arrowElement struct {
	elementBase
	StrokeStyle    string        `json:"strokeStyle"`
	Roundness      *roundness    `json:"roundness"`
	Points         []model.Point `json:"points"`
	StartBinding   *binding      `json:"startBinding"`
	EndBinding     *binding      `json:"endBinding"`
	StartArrowhead *string       `json:"startArrowhead"`
	EndArrowhead   *string       `json:"endArrowhead"`
	Elbowed        bool          `json:"elbowed"`
}

type appState struct {
	GridSize            *int   `json:"gridSize"`
	ViewBackgroundColor string `json:"viewBackgroundColor"`
}

// scene is the top-level file envelope.
type scene struct {
	Type     string    `json:"type"`
	Version  int       `json:"version"`
	Source   string    `json:"source"`
	Elements []element `json:"elements"`
	AppState appState  `json:"appState"`
}

type sceneOut struct {
	Type     string         `json:"type"`
	Version  int            `json:"version"`
	Source   string         `json:"source"`
	Elements []any          `json:"elements"`
	AppState appState       `json:"appState"`
	Files    map[string]any `json:"files"`
}
