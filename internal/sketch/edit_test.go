package sketch

import (
	"testing"

	"sketch3d/internal/components"
	"sketch3d/internal/engine"
	"sketch3d/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func editSession(h *harness) *VertexSession {
	m, ok := h.d.disposer.(*editMode)
	if !ok {
		return nil
	}
	return m.session
}

func TestEditHoverHighlights(t *testing.T) {
	h := newHarness()
	solid := extrudedTriangle(t, h)
	h.d.SetMode(ModeEdit)
	assert.Equal(t, MsgEditMode, ModeInstruction(ModeEdit))
	assert.False(t, h.eng.Ground().Pickable)

	h.move(0.75, 0.25)
	assert.Same(t, solid, h.eng.w.Highlighted())
	assert.Same(t, solid, h.st.Selected)

	h.move(5, 5)
	assert.Nil(t, h.eng.w.Highlighted())
	assert.Nil(t, h.st.Selected)
}

func TestEditCommitSpawnsGroupMarkers(t *testing.T) {
	h := newHarness()
	solid := extrudedTriangle(t, h)
	h.d.SetMode(ModeEdit)

	h.move(0.75, 0.25)
	h.down(0.75, 0.25)

	s := editSession(h)
	require.NotNil(t, s)
	assert.Same(t, solid, s.Target)
	assert.Len(t, s.Groups, 6, "three bottom and three top corners")
	assert.Equal(t, 6, h.eng.count(IsVertexMarker))
	assert.Nil(t, h.eng.w.Highlighted(), "locking clears the highlight")
	assert.Same(t, solid, h.st.Selected)

	mesh := engine.GetComponent[*components.SolidMesh](solid)
	seen := 0
	for i, g := range s.Groups {
		assert.Len(t, g.Indices, 3, "each prism corner is shared by three faces")
		for _, v := range g.Indices {
			assert.Equal(t, g.Key, geom.VertexKey(mesh.Vertex(v), h.st.Precision))
		}
		assert.Equal(t, g.Position, s.Markers[i].Transform.Position)
		seen += len(g.Indices)
	}
	assert.Equal(t, mesh.VertexCount(), seen)

	// hover no longer changes the selection
	h.move(5, 5)
	assert.Same(t, solid, h.st.Selected)
}

func TestEditDownWithoutCandidate(t *testing.T) {
	h := newHarness()
	extrudedTriangle(t, h)
	h.d.SetMode(ModeEdit)

	h.down(0.75, 0.25)

	assert.Nil(t, editSession(h), "press without a hover candidate does nothing")
	assert.Zero(t, h.eng.count(IsVertexMarker))
}

func TestEditIgnoresSelectionFromMoveMode(t *testing.T) {
	h := newHarness()
	solid := extrudedTriangle(t, h)
	h.d.SetMode(ModeMove)
	h.down(0.75, 0.25)
	h.move(1.75, 0.25)
	h.up(1.75, 0.25)
	require.Same(t, solid, h.st.Selected)

	h.d.SetMode(ModeEdit)
	assert.Nil(t, h.st.Selected)

	h.down(8, 8)
	assert.Nil(t, editSession(h))
	assert.Zero(t, h.eng.count(IsVertexMarker))

	h.down(1.75, 0.25)
	assert.Nil(t, editSession(h), "the moved solid was never hovered")
}

func TestEditDownAwayFromCandidate(t *testing.T) {
	h := newHarness()
	extrudedTriangle(t, h)
	h.d.SetMode(ModeEdit)
	h.move(0.75, 0.25)

	h.down(8, 8)

	assert.Nil(t, editSession(h))
	assert.Zero(t, h.eng.count(IsVertexMarker))
}

func TestEditCandidateDisposed(t *testing.T) {
	h := newHarness()
	solid := extrudedTriangle(t, h)
	h.d.SetMode(ModeEdit)
	h.move(0.75, 0.25)

	h.eng.Destroy(solid)
	h.down(0.75, 0.25)

	assert.Nil(t, editSession(h))
	assert.Zero(t, h.eng.count(IsVertexMarker))
}

func TestEditDragMovesWholeGroup(t *testing.T) {
	h := newHarness()
	solid := extrudedTriangle(t, h)
	h.d.SetMode(ModeEdit)
	h.move(0.75, 0.25)
	h.down(0.75, 0.25)
	s := editSession(h)
	require.NotNil(t, s)
	mesh := engine.GetComponent[*components.SolidMesh](solid)
	before := mesh.Snapshot()

	// the top marker of corner (1, 0) is nearest to the camera
	h.down(1, 0)
	require.NotNil(t, h.eng.gizmoTarget)
	idx := s.Active()
	require.GreaterOrEqual(t, idx, 0)
	group := s.Groups[idx]
	assert.InDelta(t, 3, group.Position.Y, 1e-4)

	delta := rl.Vector3{X: 0.25, Y: 0.5, Z: -0.5}
	h.eng.drag(delta)

	inGroup := make(map[int]bool)
	for _, v := range group.Indices {
		inGroup[v] = true
	}
	for v := 0; v < mesh.VertexCount(); v++ {
		got := mesh.Vertex(v)
		want := rl.Vector3{X: before[v*3], Y: before[v*3+1], Z: before[v*3+2]}
		if inGroup[v] {
			want = rl.Vector3Add(want, delta)
		}
		assert.InDelta(t, want.X, got.X, 1e-5, "vertex %d", v)
		assert.InDelta(t, want.Y, got.Y, 1e-5, "vertex %d", v)
		assert.InDelta(t, want.Z, got.Z, 1e-5, "vertex %d", v)
	}
	assert.Equal(t, 1, h.st.Undo.Len())
	assert.True(t, solid.Transform.IsIdentity())
	assert.InDelta(t, 3.5, s.Groups[idx].Position.Y, 1e-4)
	assert.InDelta(t, 3.5, s.Markers[idx].Transform.Position.Y, 1e-4)
}

func TestEditLockedRetargets(t *testing.T) {
	h := newHarness()
	first := extrudedTriangle(t, h)
	h.drawTriangle(3, 0)
	second := Extrude(h.st, h.eng)[0]
	h.d.SetMode(ModeEdit)
	h.move(0.75, 0.25)
	h.down(0.75, 0.25)
	require.Same(t, first, editSession(h).Target)

	h.down(3.75, 0.25)

	s := editSession(h)
	require.NotNil(t, s)
	assert.Same(t, second, s.Target)
	assert.Same(t, second, h.st.Selected)
	assert.Equal(t, 6, h.eng.count(IsVertexMarker), "old markers are removed")

	h.down(10, 10)
	assert.Same(t, second, editSession(h).Target, "a miss keeps the session")
}

func TestEditTeardownMidDrag(t *testing.T) {
	h := newHarness()
	solid := extrudedTriangle(t, h)
	h.d.SetMode(ModeEdit)
	h.move(0.75, 0.25)
	h.down(0.75, 0.25)
	s := editSession(h)
	require.NotNil(t, s)
	h.down(1, 0)
	group := s.Groups[s.Active()]
	mesh := engine.GetComponent[*components.SolidMesh](solid)
	v := group.Indices[0]
	before := mesh.Vertex(v)

	delta := rl.Vector3{X: 0.5}
	h.eng.beginDrag(delta)
	h.d.SetMode(ModeDraw)

	assert.False(t, h.eng.gizmoDragging, "switching modes ends the drag")
	assert.Nil(t, h.eng.gizmoTarget)
	assert.Zero(t, h.eng.count(IsVertexMarker))
	assert.True(t, solid.Transform.IsIdentity())
	assert.Equal(t, rl.Vector3Add(before, delta), mesh.Vertex(v), "the partial edit is kept")
	assert.Equal(t, 1, h.st.Undo.Len())

	require.True(t, Undo(h.st, h.eng))
	assert.Equal(t, before, mesh.Vertex(v))
}

func TestEditTeardown(t *testing.T) {
	h := newHarness()
	extrudedTriangle(t, h)
	h.d.SetMode(ModeEdit)
	h.move(0.75, 0.25)
	h.down(0.75, 0.25)
	h.down(1, 0)
	require.NotNil(t, h.eng.gizmoTarget)

	h.d.SetMode(ModeMove)

	assert.Zero(t, h.eng.count(IsVertexMarker))
	assert.Nil(t, h.eng.gizmoTarget)
	assert.True(t, h.eng.Ground().Pickable)
	assert.Nil(t, h.st.Selected)
	assert.Nil(t, h.eng.w.Highlighted())
	assert.Equal(t, 1, h.d.Bus.GetListenerCount())
	assert.Zero(t, h.st.Undone.GetListenerCount())
}
