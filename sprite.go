package rowan

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// defaultSpriteFPS is the animation frame rate a sprite starts with.
const defaultSpriteFPS = 2

// NewSprite creates an animated, behavior-driven object. pos is the sprite's
// center. images is the animation frame sequence; it may be empty for
// sprites drawn entirely by handlers, in which case Size should be set
// explicitly for collision detection. Behaviors execute in the given order.
func NewSprite(pos Vec2, images []*ebiten.Image, behaviors ...Behavior) *GameObject {
	o := &GameObject{
		Kind:      KindSprite,
		Enabled:   true,
		Visible:   true,
		Pos:       pos,
		NormalPos: pos,
		Images:    images,
		FPS:       defaultSpriteFPS,
		frame:     -1,
		behaviors: behaviors,
	}
	if len(images) > 0 && images[0] != nil {
		b := images[0].Bounds()
		o.Size = Vec2{X: float64(b.Dx()), Y: float64(b.Dy())}
	}
	o.SetActive(true)
	return o
}

// AddBehavior appends a behavior to the sprite's ordered behavior list.
func (o *GameObject) AddBehavior(b Behavior) {
	if globalDebug {
		debugCheckDestroyed(o, "AddBehavior")
	}
	o.behaviors = append(o.behaviors, b)
}

// Behaviors returns the sprite's behavior list in execution order. The
// returned slice MUST NOT be mutated by the caller.
func (o *GameObject) Behaviors() []Behavior {
	return o.behaviors
}

// SetLifetime arms the sprite's lifetime countdown. The sprite destroys
// itself on the tick the countdown crosses zero, before any behavior
// executes that tick.
func (o *GameObject) SetLifetime(seconds float64) {
	o.lifetime = seconds
	o.hasLifetime = true
}

// Lifetime returns the remaining lifetime and whether one is armed.
func (o *GameObject) Lifetime() (float64, bool) {
	return o.lifetime, o.hasLifetime
}

// Frame returns the current animation frame index, or -1 before the first
// animated tick.
func (o *GameObject) Frame() int {
	return o.frame
}

// Bounds returns the sprite's axis-aligned collision box, centered on Pos.
func (o *GameObject) Bounds() Rect {
	return Rect{
		X:      o.Pos.X - o.Size.X/2,
		Y:      o.Pos.Y - o.Size.Y/2,
		Width:  o.Size.X,
		Height: o.Size.Y,
	}
}

// resetAnimation rewinds the animator so the first animated tick shows
// frame 0. Runs on every activation.
func (o *GameObject) resetAnimation() {
	o.frame = -1
	o.frameTimer = 0
}

// animate advances the frame index by accumulated delta time at FPS frames
// per second. The timer carries its remainder across frames so long-running
// animations do not drift.
func (o *GameObject) animate(dt float64) {
	if len(o.Images) == 0 || o.FPS <= 0 {
		return
	}
	if o.frameTimer <= 0 {
		o.frame = (o.frame + 1) % len(o.Images)
		o.frameTimer += 1 / o.FPS
	}
	o.frameTimer -= dt
}

// stepSprite runs the sprite's per-tick work: lifetime countdown, frame
// animation, behavior eviction, and behavior execution in list order.
// Returns false when the sprite destroyed or deactivated itself, in which
// case the caller skips the rest of this tick.
func (o *GameObject) stepSprite(dt float64) bool {
	if o.hasLifetime {
		o.lifetime -= dt
		if o.lifetime <= 0 {
			o.Destroy()
			return false
		}
	}

	o.animate(dt)

	// Evict finished behaviors before this tick's execution pass; an evicted
	// behavior never runs again.
	n := len(o.behaviors)
	kept := o.behaviors[:0]
	for _, b := range o.behaviors {
		if b.Remove(o) {
			continue
		}
		kept = append(kept, b)
	}
	for i := len(kept); i < n; i++ {
		o.behaviors[i] = nil
	}
	o.behaviors = kept

	// Behaviors run synchronously in list order; later behaviors observe
	// mutations made by earlier ones in the same tick.
	for _, b := range o.behaviors {
		if b.Enabled(o) {
			b.Execute(dt, o)
		}
		if o.destroyed || !o.active {
			return false
		}
	}
	return true
}

// drawSprite renders the current animation frame centered on Pos. Sprites
// with no frames (handler-drawn) render nothing here.
func (o *GameObject) drawSprite(screen *ebiten.Image) {
	if screen == nil || len(o.Images) == 0 {
		return
	}
	idx := o.frame
	if idx < 0 {
		idx = 0
	}
	img := o.Images[idx]
	if img == nil {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(o.Pos.X-float64(b.Dx())/2, o.Pos.Y-float64(b.Dy())/2)
	screen.DrawImage(img, op)
}
