package rowan

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Construction ---

func TestNewGameObjectDefaults(t *testing.T) {
	o := NewGameObject(Config{Name: "obj"})
	if o.Name != "obj" {
		t.Errorf("Name = %q, want %q", o.Name, "obj")
	}
	if !o.Active() {
		t.Error("Active should default to true")
	}
	if !o.Enabled || !o.Visible {
		t.Error("Enabled and Visible should default to true")
	}
	if o.Destroyed() {
		t.Error("new object should not be destroyed")
	}
	if o.Parent != nil || o.NumChildren() != 0 {
		t.Error("new object should be detached and childless")
	}
}

func TestNewGameObjectFlags(t *testing.T) {
	o := NewGameObject(Config{Inactive: true, Disabled: true, Hidden: true})
	if o.Active() {
		t.Error("Inactive should start deactivated")
	}
	if o.Enabled {
		t.Error("Disabled should start disabled")
	}
	if o.Visible {
		t.Error("Hidden should start hidden")
	}
}

func TestNewGameObjectFiresActivateHandlers(t *testing.T) {
	fired := 0
	NewGameObject(Config{
		ActivateHandlers: []LifecycleHandler{func(*GameObject) { fired++ }},
	})
	if fired != 1 {
		t.Errorf("activate handler fired %d times at construction, want 1", fired)
	}

	fired = 0
	NewGameObject(Config{
		Inactive:         true,
		ActivateHandlers: []LifecycleHandler{func(*GameObject) { fired++ }},
	})
	if fired != 0 {
		t.Errorf("activate handler fired %d times for inactive construction, want 0", fired)
	}
}

func TestNewGameObjectAdoptsChildren(t *testing.T) {
	c1 := NewGameObject(Config{Name: "c1"})
	c2 := NewGameObject(Config{Name: "c2"})
	p := NewGameObject(Config{Name: "p", Children: []*GameObject{c1, c2}})
	if c1.Parent != p || c2.Parent != p {
		t.Error("children should be parented to the new object")
	}
	if p.NumChildren() != 2 || p.ChildAt(0) != c1 || p.ChildAt(1) != c2 {
		t.Error("children should be owned in the given order")
	}
}

// --- Activation ---

func TestSetActivePropagatesToSubtree(t *testing.T) {
	child := NewGameObject(Config{Name: "child"})
	grandchild := NewGameObject(Config{Name: "grandchild"})
	child.AddChild(grandchild)
	parent := NewGameObject(Config{Name: "parent", Children: []*GameObject{child}})

	parent.SetActive(false)
	if child.Active() || grandchild.Active() {
		t.Error("deactivation should propagate to every descendant")
	}
	parent.SetActive(true)
	if !child.Active() || !grandchild.Active() {
		t.Error("activation should propagate to every descendant")
	}
}

func TestSetActiveParentBeforeChildren(t *testing.T) {
	var order []string
	record := func(name string) LifecycleHandler {
		return func(*GameObject) { order = append(order, name) }
	}
	c1 := NewGameObject(Config{ActivateHandlers: []LifecycleHandler{record("c1")}})
	c2 := NewGameObject(Config{ActivateHandlers: []LifecycleHandler{record("c2")}})
	p := NewGameObject(Config{
		Children:         []*GameObject{c1, c2},
		ActivateHandlers: []LifecycleHandler{record("p")},
	})

	p.SetActive(false)
	order = nil
	p.SetActive(true)

	want := []string{"p", "c1", "c2"}
	assertOrder(t, order, want)
}

func TestSetActiveNoOpWhenUnchanged(t *testing.T) {
	fired := 0
	o := NewGameObject(Config{
		ActivateHandlers: []LifecycleHandler{func(*GameObject) { fired++ }},
	})
	fired = 0
	o.SetActive(true)
	if fired != 0 {
		t.Error("re-activating an active object should fire nothing")
	}
}

func TestActivateHookRunsBeforeHandlers(t *testing.T) {
	var order []string
	o := NewGameObject(Config{
		Inactive:         true,
		ActivateHandlers: []LifecycleHandler{func(*GameObject) { order = append(order, "handler") }},
	})
	o.ActivateHook = func(*GameObject) { order = append(order, "hook") }
	o.SetActive(true)
	assertOrder(t, order, []string{"hook", "handler"})
}

// --- Destruction ---

func TestDestroyIsTerminal(t *testing.T) {
	o := NewGameObject(Config{})
	o.Destroy()
	if !o.Destroyed() {
		t.Fatal("object should be destroyed")
	}
	if o.Active() {
		t.Error("destroy should deactivate")
	}
	o.SetActive(true)
	if o.Active() {
		t.Error("a destroyed object must never reactivate")
	}
}

func TestDestroyChildrenBeforeParent(t *testing.T) {
	var order []string
	record := func(name string) LifecycleHandler {
		return func(*GameObject) { order = append(order, name) }
	}
	c1 := NewGameObject(Config{DestroyHandlers: []LifecycleHandler{record("c1")}})
	c2 := NewGameObject(Config{DestroyHandlers: []LifecycleHandler{record("c2")}})
	p := NewGameObject(Config{
		Children:        []*GameObject{c1, c2},
		DestroyHandlers: []LifecycleHandler{record("p")},
	})

	p.Destroy()
	assertOrder(t, order, []string{"c1", "c2", "p"})
}

func TestDestroyFiresDeactivateHandlers(t *testing.T) {
	deactivated := 0
	o := NewGameObject(Config{
		DeactivateHandlers: []LifecycleHandler{func(*GameObject) { deactivated++ }},
	})
	o.Destroy()
	if deactivated != 1 {
		t.Errorf("deactivate handlers fired %d times during destroy, want 1", deactivated)
	}
}

func TestDestroyIdempotent(t *testing.T) {
	fired := 0
	o := NewGameObject(Config{
		DestroyHandlers: []LifecycleHandler{func(*GameObject) { fired++ }},
	})
	o.Destroy()
	o.Destroy()
	if fired != 1 {
		t.Errorf("destroy handlers fired %d times, want 1", fired)
	}
}

func TestUpdateReapsDestroyedChildren(t *testing.T) {
	child := NewGameObject(Config{Name: "child"})
	p := NewGameObject(Config{Children: []*GameObject{child}})

	child.Destroy()
	if p.NumChildren() != 1 {
		t.Fatal("destroyed child should stay attached until the parent's next update")
	}
	p.Update(0.016)
	if p.NumChildren() != 0 {
		t.Error("destroyed child should be detached at the start of the parent's update")
	}
	if child.Parent != nil {
		t.Error("reaping should sever the child's parent link")
	}
}

func TestUpdateReapsEvenWhenInactive(t *testing.T) {
	child := NewGameObject(Config{})
	p := NewGameObject(Config{Children: []*GameObject{child}})
	p.SetActive(false)
	child.destroyed = true

	p.Update(0.016)
	if p.NumChildren() != 0 {
		t.Error("reaping should run before the inactive check")
	}
}

// --- Structural violations ---

func TestAddChildAlreadyParentedPanics(t *testing.T) {
	p1 := NewGameObject(Config{})
	p2 := NewGameObject(Config{})
	c := NewGameObject(Config{})
	p1.AddChild(c)
	assertStructuralPanic(t, "AddChild", func() { p2.AddChild(c) })
}

func TestAddChildNilPanics(t *testing.T) {
	p := NewGameObject(Config{})
	assertStructuralPanic(t, "AddChild", func() { p.AddChild(nil) })
}

func TestAddChildCyclePanics(t *testing.T) {
	p := NewGameObject(Config{})
	c := NewGameObject(Config{})
	p.AddChild(c)
	assertStructuralPanic(t, "AddChild", func() { c.AddChild(p) })
}

func TestRemoveChildNotMinePanics(t *testing.T) {
	p1 := NewGameObject(Config{})
	p2 := NewGameObject(Config{})
	c := NewGameObject(Config{})
	p1.AddChild(c)
	assertStructuralPanic(t, "RemoveChild", func() { p2.RemoveChild(c) })
}

func TestRemoveChildParentlessIsNoOp(t *testing.T) {
	p := NewGameObject(Config{})
	c := NewGameObject(Config{})
	p.RemoveChild(c) // must not panic
	if c.Parent != nil {
		t.Error("parentless child should stay parentless")
	}
}

func TestRemoveChildDetaches(t *testing.T) {
	p := NewGameObject(Config{})
	c := NewGameObject(Config{})
	p.AddChild(c)
	p.RemoveChild(c)
	if p.NumChildren() != 0 || c.Parent != nil {
		t.Error("RemoveChild should detach and sever the parent link")
	}
	// Detached children are re-addable.
	p.AddChild(c)
	if c.Parent != p {
		t.Error("detached child should be re-addable")
	}
}

// --- Handler lists ---

func TestHandlersFireInRegistrationOrder(t *testing.T) {
	var order []string
	o := NewGameObject(Config{})
	o.AddUpdateHandler(func(*GameObject, float64) { order = append(order, "first") })
	o.AddUpdateHandler(func(*GameObject, float64) { order = append(order, "second") })
	o.Update(0.016)
	assertOrder(t, order, []string{"first", "second"})
}

func TestDuplicateHandlersFireOncePerRegistration(t *testing.T) {
	fired := 0
	fn := UpdateHandler(func(*GameObject, float64) { fired++ })
	o := NewGameObject(Config{})
	o.AddUpdateHandler(fn)
	o.AddUpdateHandler(fn)
	o.Update(0.016)
	if fired != 2 {
		t.Errorf("duplicate registration fired %d times, want 2", fired)
	}
}

func TestRemoveHandlerRemovesFirstMatch(t *testing.T) {
	fired := 0
	fn := UpdateHandler(func(*GameObject, float64) { fired++ })
	o := NewGameObject(Config{})
	o.AddUpdateHandler(fn)
	o.AddUpdateHandler(fn)
	o.RemoveUpdateHandler(fn)
	o.Update(0.016)
	if fired != 1 {
		t.Errorf("after removing first match, fired %d times, want 1", fired)
	}
	o.RemoveUpdateHandler(fn)
	fired = 0
	o.Update(0.016)
	if fired != 0 {
		t.Error("removing both registrations should leave nothing to fire")
	}
}

func TestRemoveHandlerMissingIsNoOp(t *testing.T) {
	o := NewGameObject(Config{})
	o.RemoveUpdateHandler(func(*GameObject, float64) {}) // must not panic
}

// --- Update gating ---

func TestUpdateSkipsInactiveSubtree(t *testing.T) {
	childTicks := 0
	child := NewGameObject(Config{
		UpdateHandlers: []UpdateHandler{func(*GameObject, float64) { childTicks++ }},
	})
	p := NewGameObject(Config{Children: []*GameObject{child}})
	p.SetActive(false)
	p.Update(0.016)
	if childTicks != 0 {
		t.Error("children of an inactive object should not update")
	}
}

func TestDisabledSkipsOwnHandlersButUpdatesChildren(t *testing.T) {
	ownTicks, childTicks := 0, 0
	child := NewGameObject(Config{
		UpdateHandlers: []UpdateHandler{func(*GameObject, float64) { childTicks++ }},
	})
	p := NewGameObject(Config{
		Children:       []*GameObject{child},
		UpdateHandlers: []UpdateHandler{func(*GameObject, float64) { ownTicks++ }},
	})
	p.Enabled = false
	p.Update(0.016)
	if ownTicks != 0 {
		t.Error("disabled object should skip its own update handlers")
	}
	if childTicks != 1 {
		t.Error("disabled object should still update its children")
	}
}

func TestUpdateHandlerReceivesSelfAndDt(t *testing.T) {
	var got *GameObject
	var gotDt float64
	o := NewGameObject(Config{
		UpdateHandlers: []UpdateHandler{func(obj *GameObject, dt float64) {
			got = obj
			gotDt = dt
		}},
	})
	o.Update(0.25)
	if got != o {
		t.Error("handler should receive the owning object")
	}
	if gotDt != 0.25 {
		t.Errorf("dt = %v, want 0.25", gotDt)
	}
}

// --- Draw gating ---

func TestDrawSkipsInactive(t *testing.T) {
	drawn := 0
	o := NewGameObject(Config{
		DrawHandlers: []DrawHandler{func(*GameObject, *ebiten.Image) { drawn++ }},
	})
	o.SetActive(false)
	o.Draw(nil)
	if drawn != 0 {
		t.Error("inactive object should not draw")
	}
}

func TestInvisibleSkipsOwnDrawButDrawsChildren(t *testing.T) {
	ownDraws, childDraws := 0, 0
	child := NewGameObject(Config{
		DrawHandlers: []DrawHandler{func(*GameObject, *ebiten.Image) { childDraws++ }},
	})
	p := NewGameObject(Config{
		Children:     []*GameObject{child},
		DrawHandlers: []DrawHandler{func(*GameObject, *ebiten.Image) { ownDraws++ }},
	})
	p.Visible = false
	p.Draw(nil)
	if ownDraws != 0 {
		t.Error("invisible object should skip its own draw handlers")
	}
	if childDraws != 1 {
		t.Error("invisible object should still draw its children")
	}
}

// --- Helpers ---

func assertOrder(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func assertStructuralPanic(t *testing.T, op string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a *StructuralError panic")
		}
		err, ok := r.(*StructuralError)
		if !ok {
			t.Fatalf("panic value = %v, want *StructuralError", r)
		}
		if err.Op != op {
			t.Errorf("Op = %q, want %q", err.Op, op)
		}
	}()
	fn()
}
