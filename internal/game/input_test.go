package game

import (
	"testing"

	"sketch3d/internal/sketch"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frame(x, y float32) mouseFrame {
	return mouseFrame{Pos: rl.Vector2{X: x, Y: y}}
}

func kinds(evs []sketch.PointerEvent) []sketch.PointerKind {
	out := make([]sketch.PointerKind, len(evs))
	for i, ev := range evs {
		out[i] = ev.Kind
	}
	return out
}

func TestTrackerTap(t *testing.T) {
	var p pointerTracker
	assert.Empty(t, p.Events(frame(10, 10)), "first frame has nothing to compare against")

	press := frame(10, 10)
	press.Pressed[sketch.ButtonLeft] = true
	press.Down[sketch.ButtonLeft] = true
	assert.Equal(t, []sketch.PointerKind{sketch.PointerDown}, kinds(p.Events(press)))

	jitter := frame(12, 11)
	jitter.Down[sketch.ButtonLeft] = true
	assert.Equal(t, []sketch.PointerKind{sketch.PointerMove}, kinds(p.Events(jitter)))
	assert.False(t, p.Dragging(sketch.ButtonLeft))

	release := frame(12, 11)
	release.Released[sketch.ButtonLeft] = true
	evs := p.Events(release)
	assert.Equal(t, []sketch.PointerKind{sketch.PointerUp, sketch.PointerTap}, kinds(evs))
	assert.Equal(t, sketch.ButtonLeft, evs[1].Button)
}

func TestTrackerDragIsNotTap(t *testing.T) {
	var p pointerTracker
	press := frame(0, 0)
	press.Pressed[sketch.ButtonRight] = true
	p.Events(press)

	drag := frame(50, 0)
	drag.Down[sketch.ButtonRight] = true
	evs := p.Events(drag)
	require.Len(t, evs, 1)
	assert.Equal(t, sketch.ButtonRight, evs[0].Button)
	assert.True(t, p.Dragging(sketch.ButtonRight))

	release := frame(50, 0)
	release.Released[sketch.ButtonRight] = true
	assert.Equal(t, []sketch.PointerKind{sketch.PointerUp}, kinds(p.Events(release)))
	assert.False(t, p.Dragging(sketch.ButtonRight))
}

func TestTrackerIgnoresReleaseWithoutPress(t *testing.T) {
	var p pointerTracker
	press := frame(0, 0)
	press.Pressed[sketch.ButtonLeft] = true
	p.Events(press)
	p.Reset()

	release := frame(0, 0)
	release.Released[sketch.ButtonLeft] = true
	assert.Empty(t, p.Events(release))
}

func TestTrackerPressAndReleaseSameFrame(t *testing.T) {
	var p pointerTracker
	f := frame(3, 3)
	f.Pressed[sketch.ButtonLeft] = true
	f.Released[sketch.ButtonLeft] = true
	assert.Equal(t, []sketch.PointerKind{sketch.PointerDown, sketch.PointerUp, sketch.PointerTap}, kinds(p.Events(f)))
}
