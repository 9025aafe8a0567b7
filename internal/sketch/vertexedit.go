package sketch

import (
	"sketch3d/internal/components"
	"sketch3d/internal/engine"
	"sketch3d/internal/geom"
	"sketch3d/internal/gizmo"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// VertexSession is vertex editing on one solid: one marker per group of
// coincident vertices, and the gizmo on whichever marker was picked last.
type VertexSession struct {
	Target  *engine.GameObject
	Solid   *components.SolidMesh
	Groups  []geom.VertexGroup
	Markers []*engine.GameObject

	st       *State
	eng      Engine
	byMarker map[*engine.GameObject]int
	active   int
}

// EnterVertexEdit groups the vertices of target and spawns their markers.
// It returns nil if target is not a solid still in the scene.
func EnterVertexEdit(st *State, eng Engine, target *engine.GameObject) *VertexSession {
	if target == nil || !eng.Exists(target) {
		return nil
	}
	solid := engine.GetComponent[*components.SolidMesh](target)
	if solid == nil {
		return nil
	}
	engine.BakeTransform(target)

	s := &VertexSession{Target: target, Solid: solid, st: st, eng: eng, active: -1}
	s.spawnMarkers()
	return s
}

func (s *VertexSession) spawnMarkers() {
	s.Groups = geom.GroupVertices(s.Solid.Positions, s.st.Precision)
	s.Markers = make([]*engine.GameObject, 0, len(s.Groups))
	s.byMarker = make(map[*engine.GameObject]int, len(s.Groups))
	for i, g := range s.Groups {
		m := engine.NewGameObject(VertexMarkerName(i))
		m.Pickable = true
		m.Transform.Position = rl.Vector3Add(g.Position, s.Target.Transform.Position)
		m.AddComponent(components.NewMarker(components.MarkerBox, s.st.VertexMarkerSize, components.VertexMarkerColor))
		s.eng.Spawn(m)
		s.Markers = append(s.Markers, m)
		s.byMarker[m] = i
	}
}

func (s *VertexSession) destroyMarkers() {
	for _, m := range s.Markers {
		s.eng.Destroy(m)
	}
	s.Markers = nil
	s.byMarker = nil
	s.Groups = nil
}

// HandleDown attaches the gizmo to the marker under pos. It reports whether
// a marker was hit.
func (s *VertexSession) HandleDown(pos rl.Vector2) bool {
	hit, ok := s.eng.Pick(pos, IsVertexMarker)
	if !ok {
		return false
	}
	idx, ok := s.byMarker[hit.GameObject]
	if !ok {
		return false
	}
	s.Select(idx)
	return true
}

// Select attaches the gizmo to the marker of group idx.
func (s *VertexSession) Select(idx int) {
	if idx < 0 || idx >= len(s.Markers) {
		return
	}
	s.active = idx
	s.eng.AttachGizmo(s.Markers[idx], gizmo.Handler{
		OnDragStart: func() { s.st.Undo.PushVertexEdit(s.Target) },
		OnDrag:      func(delta rl.Vector3) { s.MoveGroup(idx, delta) },
		OnDragEnd:   s.finalize,
	})
}

// Active returns the group under the gizmo, or -1.
func (s *VertexSession) Active() int { return s.active }

// MoveGroup moves every vertex of group idx by delta. The marker itself is
// moved by the gizmo.
func (s *VertexSession) MoveGroup(idx int, delta rl.Vector3) {
	if idx < 0 || idx >= len(s.Groups) {
		return
	}
	g := &s.Groups[idx]
	geom.ApplyDelta(s.Solid.Positions, g.Indices, delta)
	g.Position = rl.Vector3Add(g.Position, delta)
	s.Solid.MarkDirty()
}

func (s *VertexSession) finalize() {
	engine.BakeTransform(s.Target)
	s.Solid.MarkDirty()
}

// Rebuild regroups the vertices after the buffer changed underneath the
// session, keeping the gizmo on the same group index when it still exists.
func (s *VertexSession) Rebuild() {
	active := s.active
	s.eng.DetachGizmo()
	s.active = -1
	s.destroyMarkers()
	s.spawnMarkers()
	if active >= 0 && active < len(s.Markers) {
		s.Select(active)
	}
}

// Close destroys the markers and detaches the gizmo.
func (s *VertexSession) Close() {
	s.eng.DetachGizmo()
	s.active = -1
	s.destroyMarkers()
}
