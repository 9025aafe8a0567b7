package sketch

import (
	"sketch3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type editMode struct {
	st  *State
	eng Engine
	bus *Bus

	hoverID        engine.ListenerID
	lockedID       engine.ListenerID
	undoneID       engine.ListenerID
	session        *VertexSession
	groundPickable bool
}

// SetupEdit wires edit mode. Hovering highlights a solid; pressing on it
// locks the selection and shows its vertex markers; pressing on a marker
// attaches the gizmo.
func SetupEdit(st *State, eng Engine, bus *Bus) Disposer {
	m := &editMode{st: st, eng: eng, bus: bus, groundPickable: eng.Ground().Pickable}
	eng.Ground().Pickable = false
	// a selection left over from move mode is not a hover candidate
	st.Selected = nil

	m.hoverID = bus.AddListener(m.onHover)
	m.undoneID = st.Undone.AddListener(func() {
		if m.session != nil {
			m.session.Rebuild()
		}
	})
	return m
}

func (m *editMode) Dispose() {
	m.bus.RemoveListener(m.hoverID)
	m.bus.RemoveListener(m.lockedID)
	m.st.Undone.RemoveListener(m.undoneID)
	m.closeSession()
	m.eng.ClearHighlight()
	m.eng.Ground().Pickable = m.groundPickable
	m.st.Selected = nil
}

func (m *editMode) onHover(ev PointerEvent) {
	switch ev.Kind {
	case PointerMove:
		hit, ok := m.eng.Pick(ev.Pos, IsSolid)
		if !ok {
			m.eng.ClearHighlight()
			m.st.Selected = nil
			return
		}
		m.eng.Highlight(hit.GameObject)
		m.st.Selected = hit.GameObject
	case PointerDown:
		if ev.Button != ButtonLeft || m.st.Selected == nil {
			return
		}
		hit, ok := m.eng.Pick(ev.Pos, IsSolid)
		if ok && hit.GameObject == m.st.Selected {
			m.commit(hit.GameObject)
		}
	}
}

// commit locks the selection on target and switches to the marker listener.
func (m *editMode) commit(target *engine.GameObject) {
	session := EnterVertexEdit(m.st, m.eng, target)
	if session == nil {
		return
	}
	m.session = session
	m.st.Selected = target

	m.bus.RemoveListener(m.hoverID)
	m.hoverID = 0
	m.eng.ClearHighlight()
	m.lockedID = m.bus.AddListener(m.onLocked)
}

func (m *editMode) onLocked(ev PointerEvent) {
	if ev.Kind != PointerDown || ev.Button != ButtonLeft || m.session == nil {
		return
	}
	if m.session.HandleDown(ev.Pos) {
		return
	}
	m.retarget(ev.Pos)
}

// retarget moves the session to another solid pressed while locked.
func (m *editMode) retarget(pos rl.Vector2) {
	hit, ok := m.eng.Pick(pos, IsSolid)
	if !ok || hit.GameObject == m.session.Target {
		return
	}
	m.closeSession()
	m.session = EnterVertexEdit(m.st, m.eng, hit.GameObject)
	m.st.Selected = hit.GameObject
}

func (m *editMode) closeSession() {
	if m.session == nil {
		return
	}
	m.session.Close()
	m.session = nil
}
