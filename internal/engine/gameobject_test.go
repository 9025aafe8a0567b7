package engine

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if obj.UID == 0 {
		t.Error("UID should not be 0")
	}

	if obj.components == nil {
		t.Error("components slice should be initialized")
	}

	if !obj.Transform.IsIdentity() {
		t.Error("new GameObject should have an identity transform")
	}
}

func TestGameObjectUniqueUIDs(t *testing.T) {
	obj1 := NewGameObject("First")
	obj2 := NewGameObject("Second")
	obj3 := NewGameObject("Third")

	if obj1.UID == obj2.UID || obj2.UID == obj3.UID || obj1.UID == obj3.UID {
		t.Error("GameObjects should have unique UIDs")
	}
}

func TestGameObjectHasPrefix(t *testing.T) {
	obj := NewGameObject("shapeExtruded3")

	if !obj.HasPrefix("shapeExtruded") {
		t.Error("HasPrefix should match the name prefix")
	}
	if obj.HasPrefix("lines") {
		t.Error("HasPrefix should not match a different prefix")
	}
}

func TestGameObjectAddComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	if len(obj.components) != 1 {
		t.Errorf("Expected 1 component, got %d", len(obj.components))
	}

	if comp.gameObject != obj {
		t.Error("Component.gameObject should be set")
	}
}

func TestGameObjectGetComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	found := GetComponent[*BaseComponent](obj)
	if found != comp {
		t.Error("GetComponent failed to find component")
	}

	if GetComponent[*BaseComponent](nil) != nil {
		t.Error("GetComponent on nil GameObject should return zero value")
	}
}

func TestGameObjectStartCalledOnce(t *testing.T) {
	obj := NewGameObject("Test")

	obj.Start()
	if !obj.started {
		t.Error("started flag should be true after Start()")
	}

	obj.Start()
}

type bakeRecorder struct {
	BaseComponent
	calls int
	last  rl.Vector3
}

func (b *bakeRecorder) Bake(m rl.Matrix) {
	b.calls++
	b.last = rl.Vector3Transform(rl.Vector3{}, m)
}

func TestBakeTransformResetsTransform(t *testing.T) {
	obj := NewGameObject("Solid")
	rec := &bakeRecorder{}
	obj.AddComponent(rec)

	obj.Translate(rl.Vector3{X: 2, Y: 0, Z: -1})
	BakeTransform(obj)

	if rec.calls != 1 {
		t.Fatalf("Expected Bake to be called once, got %d", rec.calls)
	}
	if rec.last != (rl.Vector3{X: 2, Y: 0, Z: -1}) {
		t.Errorf("Expected origin to map to (2,0,-1), got %v", rec.last)
	}
	if !obj.Transform.IsIdentity() {
		t.Error("Transform should be identity after baking")
	}

	BakeTransform(obj)
	if rec.calls != 1 {
		t.Error("Baking an identity transform should be a no-op")
	}
}
