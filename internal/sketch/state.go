// Package sketch is the interaction core of the tool: the draw, move and
// edit modes, the extrusion step and the dispatcher that wires exactly one
// mode to pointer input at a time.
//
// Everything here talks to the scene through the Engine interface, so the
// whole state machine can be driven without a window.
package sketch

import (
	"fmt"

	"sketch3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/samber/lo"
)

type Mode int

const (
	ModeDraw Mode = iota
	ModeMove
	ModeEdit
)

func (m Mode) String() string {
	switch m {
	case ModeDraw:
		return "draw"
	case ModeMove:
		return "move"
	case ModeEdit:
		return "edit"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// SketchPoint is an in-progress polygon corner and its marker.
type SketchPoint struct {
	Position rl.Vector3
	Marker   *engine.GameObject
}

// PendingShape is a closed ring: the first point is repeated at the end.
type PendingShape struct {
	Ring    []rl.Vector3
	Outline string
}

// Options are the tunables a State is created with.
type Options struct {
	ExtrudeHeight float32
	// Precision is the number of decimals used to group coincident vertices.
	Precision        int
	PointLift        float32
	MarkerSize       float32
	VertexMarkerSize float32
}

func DefaultOptions() Options {
	return Options{
		ExtrudeHeight:    3,
		Precision:        3,
		PointLift:        0.01,
		MarkerSize:       0.2,
		VertexMarkerSize: 0.15,
	}
}

// State is the application state shared by all modes. It is only touched
// from the main loop.
type State struct {
	Options

	// Mode is the mode currently wired to input. Only the Dispatcher
	// changes it.
	Mode   Mode
	Points []SketchPoint
	Shapes []PendingShape
	// Extruded is index-aligned with Shapes.
	Extruded []bool
	Selected *engine.GameObject
	Undo     UndoStack

	ModeChanged    engine.EventWithArg[Mode]
	PointCreated   engine.EventWithArg[int]
	ShapeClosed    engine.EventWithArg[int]
	ShapesExtruded engine.EventWithArg[[]*engine.GameObject]
	Instructions   engine.EventWithArg[string]
	Undone         engine.Event
}

func NewState(opts Options) *State {
	return &State{Options: opts, Mode: ModeDraw}
}

// CanExtrude reports whether the extrude action should be enabled.
func (s *State) CanExtrude() bool {
	return len(s.Points) > 2 || len(s.Shapes) > 0
}

// PendingCount returns how many closed shapes are still waiting for extrusion.
func (s *State) PendingCount() int {
	return lo.CountBy(s.Extruded, func(done bool) bool { return !done })
}

// Notify publishes a user-facing message.
func (s *State) Notify(msg string) {
	s.Instructions.Invoke(msg)
}

// PointPositions returns the in-progress coordinates.
func (s *State) PointPositions() []rl.Vector3 {
	return lo.Map(s.Points, func(p SketchPoint, _ int) rl.Vector3 { return p.Position })
}

// Reset drops all sketch data. Scene objects are the caller's concern.
func (s *State) Reset() {
	s.Mode = ModeDraw
	s.Points = nil
	s.Shapes = nil
	s.Extruded = nil
	s.Selected = nil
	s.Undo.Clear()
}
