package rowan

import (
	"reflect"

	"github.com/hajimehoshi/ebiten/v2"
)

// DrawHandler is called with the object and the host-owned draw surface.
type DrawHandler func(o *GameObject, screen *ebiten.Image)

// UpdateHandler is called with the object and the frame delta time in seconds.
type UpdateHandler func(o *GameObject, dt float64)

// LifecycleHandler is called when an object is activated, deactivated, or
// destroyed.
type LifecycleHandler func(o *GameObject)

// handlerEntry pairs a handler with its identity key so that removal can
// match the first registration of the same function value. Duplicates are
// permitted and fire once per registration.
type handlerEntry[F any] struct {
	fn  F
	key uintptr
}

func appendHandler[F any](list []handlerEntry[F], fn F) []handlerEntry[F] {
	return append(list, handlerEntry[F]{fn: fn, key: reflect.ValueOf(fn).Pointer()})
}

// removeHandler removes the first entry registered with the same function
// value. Uses copy+zero to avoid retaining a dangling closure in the backing
// array.
func removeHandler[F any](list []handlerEntry[F], fn F) []handlerEntry[F] {
	key := reflect.ValueOf(fn).Pointer()
	for i := range list {
		if list[i].key == key {
			copy(list[i:], list[i+1:])
			list[len(list)-1] = handlerEntry[F]{}
			return list[:len(list)-1]
		}
	}
	return list
}

// GameObject is the fundamental scene tree element. A single flat struct is
// used for all object kinds to avoid interface dispatch on the hot path;
// Kind selects the built-in per-tick step (sprite animation and behaviors,
// collision rules) run before the object's own hooks and handlers.
type GameObject struct {
	// Identity
	Name string
	Kind Kind

	// Hierarchy
	Parent   *GameObject
	children []*GameObject

	// Lifecycle flags. active propagates to the whole subtree on change and
	// is therefore only reachable through SetActive; destroyed is terminal.
	// Enabled gates update, Visible gates draw; neither propagates.
	active    bool
	destroyed bool
	Enabled   bool
	Visible   bool

	// Ordered handler lists (first extension channel).
	drawHandlers       []handlerEntry[DrawHandler]
	updateHandlers     []handlerEntry[UpdateHandler]
	activateHandlers   []handlerEntry[LifecycleHandler]
	deactivateHandlers []handlerEntry[LifecycleHandler]
	destroyHandlers    []handlerEntry[LifecycleHandler]

	// Single optional template hooks (second extension channel; nil by
	// default, zero cost when unused). A hook runs before the corresponding
	// handler list.
	ActivateHook   func(o *GameObject)
	DeactivateHook func(o *GameObject)
	DestroyHook    func(o *GameObject)
	UpdateHook     func(o *GameObject, dt float64)
	DrawHook       func(o *GameObject, screen *ebiten.Image)

	// Metadata
	UserData any

	// Sprite fields (KindSprite)
	Pos       Vec2
	NormalPos Vec2 // anchor used by ReturnToNormalPosition / OverridePosition
	Images    []*ebiten.Image
	FPS       float64
	Size      Vec2 // collision box size; defaults to the first frame's size
	VX        float64
	MaxLeft   float64
	MaxRight  float64

	frame       int
	frameTimer  float64
	behaviors   []Behavior
	lifetime    float64
	hasLifetime bool

	// Collision fields (KindCollisions)
	detections []detection
}

// Config carries construction options for NewGameObject. The zero value
// yields the defaults: active, enabled, visible, no name, no children, no
// handlers.
type Config struct {
	Name     string
	Inactive bool // start deactivated (activate handlers do not fire)
	Disabled bool // start with updates gated off
	Hidden   bool // start with draws gated off

	// Children is the initial owned subtree, adopted in order.
	Children []*GameObject

	// Handlers are appended to the respective ordered lists before the
	// initial activation, so activate handlers observe the construction flip.
	DrawHandlers       []DrawHandler
	UpdateHandlers     []UpdateHandler
	ActivateHandlers   []LifecycleHandler
	DeactivateHandlers []LifecycleHandler
	DestroyHandlers    []LifecycleHandler
}

// NewGameObject creates a plain tree node. Objects start deactivated
// internally and are flipped through SetActive so that, unless cfg.Inactive
// is set, activate handlers fire once during construction.
func NewGameObject(cfg Config) *GameObject {
	o := &GameObject{
		Name:    cfg.Name,
		Kind:    KindGroup,
		Enabled: !cfg.Disabled,
		Visible: !cfg.Hidden,
	}
	for _, fn := range cfg.DrawHandlers {
		o.AddDrawHandler(fn)
	}
	for _, fn := range cfg.UpdateHandlers {
		o.AddUpdateHandler(fn)
	}
	for _, fn := range cfg.ActivateHandlers {
		o.AddActivateHandler(fn)
	}
	for _, fn := range cfg.DeactivateHandlers {
		o.AddDeactivateHandler(fn)
	}
	for _, fn := range cfg.DestroyHandlers {
		o.AddDestroyHandler(fn)
	}
	for _, child := range cfg.Children {
		o.AddChild(child)
	}
	if !cfg.Inactive {
		o.SetActive(true)
	}
	return o
}

// --- Lifecycle flags ---

// Active reports whether the object participates in update and draw passes.
func (o *GameObject) Active() bool {
	return o.active
}

// SetActive assigns the active flag. No-op if the object is destroyed or the
// value is unchanged. On a genuine flip it runs the object's own kind step,
// template hook, and handlers, then recurses the same assignment into every
// child in order, so a parent's state settles before its children observe it.
func (o *GameObject) SetActive(v bool) {
	if o.destroyed || o.active == v {
		return
	}
	o.active = v
	if v {
		if o.Kind == KindSprite {
			o.resetAnimation()
		}
		if o.ActivateHook != nil {
			o.ActivateHook(o)
		}
		for _, h := range o.activateHandlers {
			h.fn(o)
		}
	} else {
		if o.DeactivateHook != nil {
			o.DeactivateHook(o)
		}
		for _, h := range o.deactivateHandlers {
			h.fn(o)
		}
	}
	for i := 0; i < len(o.children); i++ {
		o.children[i].SetActive(v)
	}
}

// Destroyed reports whether the object has been destroyed. Destroyed objects
// never reactivate and are detached by their parent at the start of the
// parent's next update.
func (o *GameObject) Destroyed() bool {
	return o.destroyed
}

// Destroy recursively destroys every child first, then deactivates this
// object (firing deactivate handlers on a genuine flip), marks it destroyed,
// and fires its destroy hook and handlers. Idempotent: a second call fires
// nothing. The object stays attached until its parent's next update.
func (o *GameObject) Destroy() {
	for i := 0; i < len(o.children); i++ {
		o.children[i].Destroy()
	}
	if o.destroyed {
		return
	}
	o.SetActive(false)
	o.destroyed = true
	if o.DestroyHook != nil {
		o.DestroyHook(o)
	}
	for _, h := range o.destroyHandlers {
		h.fn(o)
	}
}

// --- Tree manipulation ---

// AddChild appends child to this object's children, which defines update and
// draw order. Panics with *StructuralError if child is nil, already has a
// parent, or is an ancestor of this object.
func (o *GameObject) AddChild(child *GameObject) {
	if child == nil {
		panic(&StructuralError{Op: "AddChild", Msg: "child is nil"})
	}
	if globalDebug {
		debugCheckDestroyed(o, "AddChild (parent)")
		debugCheckDestroyed(child, "AddChild (child)")
	}
	if child.Parent != nil {
		panic(&StructuralError{Op: "AddChild", Msg: "child already has a parent"})
	}
	if isAncestor(child, o) {
		panic(&StructuralError{Op: "AddChild", Msg: "adding child would create a cycle"})
	}
	child.Parent = o
	o.children = append(o.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(o)
	}
}

// RemoveChild detaches child from this object. Removing a parentless child is
// a no-op; removing a child parented to another object panics with
// *StructuralError.
func (o *GameObject) RemoveChild(child *GameObject) {
	if child == nil || child.Parent == nil {
		return
	}
	if child.Parent != o {
		panic(&StructuralError{Op: "RemoveChild", Msg: "child's parent is not this object"})
	}
	o.removeChildByPtr(child)
	child.Parent = nil
}

// Children returns the child list in update/draw order. The returned slice
// MUST NOT be mutated by the caller.
func (o *GameObject) Children() []*GameObject {
	return o.children
}

// NumChildren returns the number of children.
func (o *GameObject) NumChildren() int {
	return len(o.children)
}

// ChildAt returns the child at the given index.
func (o *GameObject) ChildAt(index int) *GameObject {
	return o.children[index]
}

// --- Handler registration ---

// AddDrawHandler appends a draw handler.
func (o *GameObject) AddDrawHandler(fn DrawHandler) {
	o.drawHandlers = appendHandler(o.drawHandlers, fn)
}

// RemoveDrawHandler removes the first registration of fn, if any.
func (o *GameObject) RemoveDrawHandler(fn DrawHandler) {
	o.drawHandlers = removeHandler(o.drawHandlers, fn)
}

// AddUpdateHandler appends an update handler.
func (o *GameObject) AddUpdateHandler(fn UpdateHandler) {
	o.updateHandlers = appendHandler(o.updateHandlers, fn)
}

// RemoveUpdateHandler removes the first registration of fn, if any.
func (o *GameObject) RemoveUpdateHandler(fn UpdateHandler) {
	o.updateHandlers = removeHandler(o.updateHandlers, fn)
}

// AddActivateHandler appends an activate handler.
func (o *GameObject) AddActivateHandler(fn LifecycleHandler) {
	o.activateHandlers = appendHandler(o.activateHandlers, fn)
}

// RemoveActivateHandler removes the first registration of fn, if any.
func (o *GameObject) RemoveActivateHandler(fn LifecycleHandler) {
	o.activateHandlers = removeHandler(o.activateHandlers, fn)
}

// AddDeactivateHandler appends a deactivate handler.
func (o *GameObject) AddDeactivateHandler(fn LifecycleHandler) {
	o.deactivateHandlers = appendHandler(o.deactivateHandlers, fn)
}

// RemoveDeactivateHandler removes the first registration of fn, if any.
func (o *GameObject) RemoveDeactivateHandler(fn LifecycleHandler) {
	o.deactivateHandlers = removeHandler(o.deactivateHandlers, fn)
}

// AddDestroyHandler appends a destroy handler.
func (o *GameObject) AddDestroyHandler(fn LifecycleHandler) {
	o.destroyHandlers = appendHandler(o.destroyHandlers, fn)
}

// RemoveDestroyHandler removes the first registration of fn, if any.
func (o *GameObject) RemoveDestroyHandler(fn LifecycleHandler) {
	o.destroyHandlers = removeHandler(o.destroyHandlers, fn)
}

// --- Frame passes ---

// Update advances the subtree rooted at this object by dt seconds. Destroyed
// children are detached first, unconditionally, so a tree never mutates while
// its own child list is being walked. An inactive object updates nothing
// further; a disabled one skips its own step and handlers but still recurses.
func (o *GameObject) Update(dt float64) {
	o.reapDestroyed()
	if !o.active {
		return
	}
	if o.Enabled {
		switch o.Kind {
		case KindSprite:
			if !o.stepSprite(dt) {
				return
			}
		case KindCollisions:
			o.stepCollisions()
		}
		if o.UpdateHook != nil {
			o.UpdateHook(o, dt)
		}
		// A hook or behavior may have destroyed or deactivated this object.
		if !o.active || o.destroyed {
			return
		}
		for _, h := range o.updateHandlers {
			h.fn(o, dt)
		}
		if !o.active || o.destroyed {
			return
		}
	}
	for i := 0; i < len(o.children); i++ {
		o.children[i].Update(dt)
	}
}

// Draw renders the subtree rooted at this object onto screen. An inactive
// object draws nothing; an invisible one skips its own drawing but still
// recurses into children.
func (o *GameObject) Draw(screen *ebiten.Image) {
	if !o.active {
		return
	}
	if o.Visible {
		if o.Kind == KindSprite {
			o.drawSprite(screen)
		}
		if o.DrawHook != nil {
			o.DrawHook(o, screen)
		}
		for _, h := range o.drawHandlers {
			h.fn(o, screen)
		}
	}
	for i := 0; i < len(o.children); i++ {
		o.children[i].Draw(screen)
	}
}

// reapDestroyed detaches children whose destroyed flag is set and severs
// their parent links. In-place filter with tail zeroing to avoid retaining
// dangling pointers in the backing array.
func (o *GameObject) reapDestroyed() {
	n := len(o.children)
	kept := o.children[:0]
	for _, child := range o.children {
		if child.destroyed {
			child.Parent = nil
			continue
		}
		kept = append(kept, child)
	}
	for i := len(kept); i < n; i++ {
		o.children[i] = nil
	}
	o.children = kept
}

// --- Helpers ---

// isAncestor reports whether candidate is obj or an ancestor of obj.
func isAncestor(candidate, obj *GameObject) bool {
	for p := obj; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from o.children without clearing
// child.Parent. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (o *GameObject) removeChildByPtr(child *GameObject) {
	for i, c := range o.children {
		if c == child {
			copy(o.children[i:], o.children[i+1:])
			o.children[len(o.children)-1] = nil
			o.children = o.children[:len(o.children)-1]
			return
		}
	}
}
