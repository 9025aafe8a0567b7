package world

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"sketch3d/internal/components"
	"sketch3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

// SketchFileVersion is written into every saved file.
const SketchFileVersion = 1

var ErrUnsupportedVersion = errors.New("unsupported sketch file version")

// --- JSON types ---

type SketchFile struct {
	Version int         `json:"version"`
	Shapes  []ShapeDef  `json:"shapes"`
	Objects []ObjectDef `json:"objects"`
}

// ShapeDef is one closed sketch ring and its extrusion flag.
type ShapeDef struct {
	Ring     [][3]float32 `json:"ring"`
	Outline  string       `json:"outline,omitempty"`
	Extruded bool         `json:"extruded"`
}

type ObjectDef struct {
	Name       string            `json:"name"`
	Position   [3]float32        `json:"position"`
	Pickable   bool              `json:"pickable,omitempty"`
	Components []json.RawMessage `json:"components"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type solidMeshDef struct {
	Type       string    `json:"type"`
	ID         string    `json:"id"`
	ShapeIndex int       `json:"shapeIndex"`
	Positions  []float32 `json:"positions"`
	Indices    []int     `json:"indices"`
	Edges      [][2]int  `json:"edges,omitempty"`
	Color      string    `json:"color"`
}

type outlineDef struct {
	Type   string       `json:"type"`
	Points [][3]float32 `json:"points"`
	Color  string       `json:"color"`
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Teal":      components.SolidColor,
	"Highlight": components.HighlightColor,
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Orange":    rl.Orange,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"Black":     rl.Black,
}

var nameByColor map[rl.Color]string

func init() {
	nameByColor = make(map[rl.Color]string, len(colorByName))
	for name, c := range colorByName {
		nameByColor[c] = name
	}
}

func lookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	var r, g, b, a uint8
	if _, err := fmt.Sscanf(name, "#%02x%02x%02x%02x", &r, &g, &b, &a); err == nil {
		return rl.NewColor(r, g, b, a)
	}
	return rl.White
}

func lookupColorName(c rl.Color) string {
	if name, ok := nameByColor[c]; ok {
		return name
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func toArray(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

func toVector(a [3]float32) rl.Vector3 {
	return rl.Vector3{X: a[0], Y: a[1], Z: a[2]}
}

// PointsToDef converts a ring for storage.
func PointsToDef(points []rl.Vector3) [][3]float32 {
	out := make([][3]float32, len(points))
	for i, p := range points {
		out[i] = toArray(p)
	}
	return out
}

// PointsFromDef is the inverse of PointsToDef.
func PointsFromDef(points [][3]float32) []rl.Vector3 {
	out := make([]rl.Vector3, len(points))
	for i, p := range points {
		out[i] = toVector(p)
	}
	return out
}

// --- Loading ---

func LoadSketchFile(path string) (*SketchFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sketch: %w", err)
	}

	var sf SketchFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse sketch: %w", err)
	}
	if sf.Version != SketchFileVersion {
		return nil, fmt.Errorf("sketch version %d: %w", sf.Version, ErrUnsupportedVersion)
	}
	return &sf, nil
}

// BuildObject recreates a GameObject from its definition. Unknown component
// types are skipped; a mesh whose indices do not fit its vertices is an
// error.
func BuildObject(def ObjectDef) (*engine.GameObject, error) {
	g := engine.NewGameObject(def.Name)
	g.Pickable = def.Pickable
	g.Transform.Position = toVector(def.Position)

	for _, raw := range def.Components {
		var header componentHeader
		if err := json.Unmarshal(raw, &header); err != nil {
			continue
		}

		switch header.Type {
		case "SolidMesh":
			var d solidMeshDef
			if err := json.Unmarshal(raw, &d); err != nil {
				return nil, fmt.Errorf("object %q: %w", def.Name, err)
			}
			solid := &components.SolidMesh{
				ShapeIndex: d.ShapeIndex,
				Positions:  d.Positions,
				Indices:    d.Indices,
				Edges:      d.Edges,
				Color:      lookupColor(d.Color),
				EdgeColor:  components.SolidEdgeColor,
			}
			if err := solid.Validate(); err != nil {
				return nil, fmt.Errorf("object %q: %w", def.Name, err)
			}
			id, err := uuid.Parse(d.ID)
			if err != nil {
				id = uuid.New()
			}
			solid.ID = id
			solid.MarkDirty()
			g.AddComponent(solid)
		case "Outline":
			var d outlineDef
			if err := json.Unmarshal(raw, &d); err != nil {
				return nil, fmt.Errorf("object %q: %w", def.Name, err)
			}
			o := components.NewOutline(PointsFromDef(d.Points))
			o.Color = lookupColor(d.Color)
			g.AddComponent(o)
		}
	}
	return g, nil
}

// --- Saving ---

func SaveSketchFile(path string, sf *SketchFile) error {
	sf.Version = SketchFileVersion
	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal sketch: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write sketch: %w", err)
	}

	return nil
}

// DescribeObject serializes g. Objects without persistent components, such
// as in-progress point markers, report false.
func DescribeObject(g *engine.GameObject) (ObjectDef, bool) {
	def := ObjectDef{
		Name:     g.Name,
		Position: toArray(g.Transform.Position),
		Pickable: g.Pickable,
	}
	for _, c := range g.Components() {
		if raw := serializeComponent(c); raw != nil {
			def.Components = append(def.Components, raw)
		}
	}
	return def, len(def.Components) > 0
}

func serializeComponent(c engine.Component) json.RawMessage {
	var def any

	switch comp := c.(type) {
	case *components.SolidMesh:
		def = solidMeshDef{
			Type:       "SolidMesh",
			ID:         comp.ID.String(),
			ShapeIndex: comp.ShapeIndex,
			Positions:  comp.Positions,
			Indices:    comp.Indices,
			Edges:      comp.Edges,
			Color:      lookupColorName(comp.Color),
		}

	case *components.Outline:
		def = outlineDef{
			Type:   "Outline",
			Points: PointsToDef(comp.Points),
			Color:  lookupColorName(comp.Color),
		}

	default:
		return nil
	}

	data, err := json.Marshal(def)
	if err != nil {
		return nil
	}
	return data
}
