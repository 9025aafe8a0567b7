package sketch

import (
	"sketch3d/internal/components"
	"sketch3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const maxUndoStack = 50

type UndoActionType int

const (
	UndoMove UndoActionType = iota
	UndoVertexEdit
)

// UndoState is the state of one solid (and its outline and ring) before an
// edit.
type UndoState struct {
	Type          UndoActionType
	Object        *engine.GameObject
	Positions     []float32
	Outline       *engine.GameObject
	OutlinePoints []rl.Vector3
	Ring          []rl.Vector3
}

type UndoStack struct {
	states []UndoState
}

// PushMove records solid, its outline and its shape ring before a move drag.
func (u *UndoStack) PushMove(solid, outline *engine.GameObject, ring []rl.Vector3) {
	state, ok := snapshot(UndoMove, solid)
	if !ok {
		return
	}
	state.Ring = append([]rl.Vector3(nil), ring...)
	if o := engine.GetComponent[*components.Outline](outline); o != nil {
		state.Outline = outline
		state.OutlinePoints = append([]rl.Vector3(nil), o.Points...)
	}
	u.push(state)
}

// PushVertexEdit records solid before a vertex drag.
func (u *UndoStack) PushVertexEdit(solid *engine.GameObject) {
	if state, ok := snapshot(UndoVertexEdit, solid); ok {
		u.push(state)
	}
}

func snapshot(kind UndoActionType, solid *engine.GameObject) (UndoState, bool) {
	mesh := engine.GetComponent[*components.SolidMesh](solid)
	if mesh == nil {
		return UndoState{}, false
	}
	return UndoState{Type: kind, Object: solid, Positions: mesh.Snapshot()}, true
}

func (u *UndoStack) push(state UndoState) {
	u.states = append(u.states, state)
	if len(u.states) > maxUndoStack {
		u.states = u.states[1:]
	}
}

func (u *UndoStack) Len() int { return len(u.states) }

func (u *UndoStack) Clear() { u.states = nil }

func (u *UndoStack) pop() (UndoState, bool) {
	if len(u.states) == 0 {
		return UndoState{}, false
	}
	state := u.states[len(u.states)-1]
	u.states = u.states[:len(u.states)-1]
	return state, true
}

// Undo reverts the most recent move or vertex edit. Entries whose solid has
// left the scene are dropped. Reports whether anything was restored.
func Undo(st *State, eng Engine) bool {
	for {
		state, ok := st.Undo.pop()
		if !ok {
			return false
		}
		if !eng.Exists(state.Object) {
			continue
		}

		engine.BakeTransform(state.Object)
		engine.GetComponent[*components.SolidMesh](state.Object).Restore(state.Positions)
		if state.Outline != nil && eng.Exists(state.Outline) {
			engine.BakeTransform(state.Outline)
			o := engine.GetComponent[*components.Outline](state.Outline)
			o.Points = append(o.Points[:0], state.OutlinePoints...)
		}
		if shape := shapeOf(st, state.Object); shape != nil && len(shape.Ring) == len(state.Ring) {
			copy(shape.Ring, state.Ring)
		}

		st.Undone.Invoke()
		st.Notify(MsgUndone)
		return true
	}
}
