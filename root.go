package rowan

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// UpdateFunc is a per-frame callback run before the tree update.
type UpdateFunc func(dt float64)

// DrawFunc is a per-frame callback run before the tree draw.
type DrawFunc func(screen *ebiten.Image)

// Root owns the top-level object forest and the global per-frame callback
// lists. The host constructs one Root at startup and calls Update and Draw
// once per frame; Root is the sole integration point between the host loop
// and the tree.
//
// Root is single-threaded: Update and Draw must never run concurrently or
// reenter, and tree mutation is only safe from within a frame pass or between
// frames on the same goroutine.
type Root struct {
	tree        *GameObject
	background  Color
	drawFuncs   []DrawFunc
	updateFuncs []UpdateFunc
}

// NewRoot creates a Root with an empty forest and a black background.
func NewRoot() *Root {
	return &Root{
		tree:       NewGameObject(Config{Name: "root"}),
		background: ColorBlack,
	}
}

// Tree returns the object owning the top-level forest. Its children are the
// forest in update/draw order.
func (r *Root) Tree() *GameObject {
	return r.tree
}

// Add appends obj to the top-level forest.
func (r *Root) Add(obj *GameObject) {
	r.tree.AddChild(obj)
}

// AddUpdateFunc registers a callback run each frame before the tree update.
func (r *Root) AddUpdateFunc(fn UpdateFunc) {
	r.updateFuncs = append(r.updateFuncs, fn)
}

// AddDrawFunc registers a callback run each frame before the tree draw.
func (r *Root) AddDrawFunc(fn DrawFunc) {
	r.drawFuncs = append(r.drawFuncs, fn)
}

// SetBackgroundColour sets the colour Draw clears the screen to.
func (r *Root) SetBackgroundColour(c Color) {
	r.background = c
}

// Background returns the current background colour.
func (r *Root) Background() Color {
	return r.background
}

// Update runs the registered update funcs in order, then the tree update.
// Call once per frame with the frame's delta time in seconds.
func (r *Root) Update(dt float64) {
	for _, fn := range r.updateFuncs {
		fn(dt)
	}
	r.tree.Update(dt)
}

// Draw clears screen to the background colour, runs the registered draw funcs
// in order, then the tree draw. Call once per frame. A nil screen skips the
// clear and is passed through to handlers, which allows headless use.
func (r *Root) Draw(screen *ebiten.Image) {
	if screen != nil {
		screen.Fill(r.background.toRGBA())
	}
	for _, fn := range r.drawFuncs {
		fn(screen)
	}
	r.tree.Draw(screen)
}

// SetDebugMode enables or disables debug mode. When enabled, tree mutation on
// destroyed objects panics and tree depth / child count warnings are printed
// to stderr.
func (r *Root) SetDebugMode(enabled bool) {
	globalDebug = enabled
}
