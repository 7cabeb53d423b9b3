package rowan

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Move ---

// Move displaces the sprite by a fixed offset at a capped velocity. Each axis
// tracks its own remaining distance, so differently sized axes finish
// independently. Enabled while either axis has distance left.
type Move struct {
	neverRemoved
	offset   Vec2
	velocity Vec2
	xLeft    float64
	yLeft    float64
}

// NewMove creates a Move covering offset at velocity (both in units per
// second; signs of velocity are ignored, direction comes from offset).
func NewMove(offset, velocity Vec2) *Move {
	return &Move{
		offset:   offset,
		velocity: velocity,
		xLeft:    math.Abs(offset.X),
		yLeft:    math.Abs(offset.Y),
	}
}

func (m *Move) Enabled(*GameObject) bool {
	return m.xLeft > 0 || m.yLeft > 0
}

func (m *Move) Execute(dt float64, sp *GameObject) {
	x := math.Abs(m.velocity.X * dt)
	y := math.Abs(m.velocity.Y * dt)

	if m.xLeft <= 0 {
		x = 0
	}
	if m.yLeft <= 0 {
		y = 0
	}
	if x > m.xLeft {
		x = m.xLeft
	}
	if y > m.yLeft {
		y = m.yLeft
	}

	m.xLeft -= x
	m.yLeft -= y

	if m.offset.X < 0 {
		x = -x
	}
	if m.offset.Y < 0 {
		y = -y
	}

	sp.Pos.X += x
	sp.Pos.Y += y
}

// --- CalculatedPosition ---

// CalculatedPosition sets the sprite's position each tick from functions of
// accumulated elapsed time, for parametric trajectories. A nil function
// leaves that axis untouched.
type CalculatedPosition struct {
	alwaysEnabled
	neverRemoved
	xFn     func(elapsed float64) float64
	yFn     func(elapsed float64) float64
	elapsed float64
}

// NewCalculatedPosition creates a parametric position behavior. Either
// function may be nil.
func NewCalculatedPosition(xFn, yFn func(elapsed float64) float64) *CalculatedPosition {
	return &CalculatedPosition{xFn: xFn, yFn: yFn}
}

func (c *CalculatedPosition) Execute(dt float64, sp *GameObject) {
	c.elapsed += dt
	if c.xFn != nil {
		sp.Pos.X = c.xFn(c.elapsed)
	}
	if c.yFn != nil {
		sp.Pos.Y = c.yFn(c.elapsed)
	}
}

// --- MovePlayer ---

// MovePlayer moves the sprite horizontally at sp.VX while a left or right key
// is held, clamping to [sp.MaxLeft, sp.MaxRight] when that interval is
// non-empty. Left wins when both directions are held.
type MovePlayer struct {
	alwaysEnabled
	neverRemoved
	LeftKeys  []ebiten.Key
	RightKeys []ebiten.Key

	// pressed is swappable so tests can drive the behavior without a window.
	pressed func(ebiten.Key) bool
}

// NewMovePlayer creates a keyboard-driven horizontal movement behavior bound
// to A/Left and D/Right.
func NewMovePlayer() *MovePlayer {
	return &MovePlayer{
		LeftKeys:  []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		RightKeys: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		pressed:   ebiten.IsKeyPressed,
	}
}

func (m *MovePlayer) anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if m.pressed(k) {
			return true
		}
	}
	return false
}

func (m *MovePlayer) Execute(dt float64, sp *GameObject) {
	x := sp.Pos.X
	switch {
	case m.anyPressed(m.LeftKeys):
		x -= sp.VX * dt
	case m.anyPressed(m.RightKeys):
		x += sp.VX * dt
	}
	if sp.MaxRight > sp.MaxLeft {
		if x < sp.MaxLeft {
			x = sp.MaxLeft
		} else if x > sp.MaxRight {
			x = sp.MaxRight
		}
	}
	sp.Pos.X = x
}

// --- RelativeToNow ---

// RelativeToNow captures the sprite's position on its first execution and
// afterwards adds the wrapped behavior's output on top of that origin, so the
// wrapped behavior can be written in purely relative coordinates.
type RelativeToNow struct {
	neverRemoved
	inner    Behavior
	start    Vec2
	captured bool
}

// NewRelativeToNow wraps inner so its output is offset by the position at
// first execution.
func NewRelativeToNow(inner Behavior) *RelativeToNow {
	return &RelativeToNow{inner: inner}
}

func (r *RelativeToNow) Enabled(sp *GameObject) bool {
	return r.inner.Enabled(sp)
}

func (r *RelativeToNow) Execute(dt float64, sp *GameObject) {
	if !r.captured {
		r.start = sp.Pos
		r.captured = true
	}
	r.inner.Execute(dt, sp)
	sp.Pos = Vec2{X: r.start.X + sp.Pos.X, Y: r.start.Y + sp.Pos.Y}
}

// RelativeToNowOnlyX is RelativeToNow restricted to the X axis; the sprite's
// Y is restored to its pre-execution value each tick.
type RelativeToNowOnlyX struct {
	neverRemoved
	inner    Behavior
	start    Vec2
	captured bool
}

// NewRelativeToNowOnlyX wraps inner so only its X output is offset by the
// position at first execution.
func NewRelativeToNowOnlyX(inner Behavior) *RelativeToNowOnlyX {
	return &RelativeToNowOnlyX{inner: inner}
}

func (r *RelativeToNowOnlyX) Enabled(sp *GameObject) bool {
	return r.inner.Enabled(sp)
}

func (r *RelativeToNowOnlyX) Execute(dt float64, sp *GameObject) {
	if !r.captured {
		r.start = sp.Pos
		r.captured = true
	}
	y := sp.Pos.Y
	r.inner.Execute(dt, sp)
	sp.Pos = Vec2{X: r.start.X + sp.Pos.X, Y: y}
}

// --- ReturnToNormalPosition ---

// ReturnToNormalPosition moves the sprite toward its NormalPos anchor at a
// capped per-axis velocity, landing exactly on the anchor. Enabled exactly
// while the position differs from the anchor.
type ReturnToNormalPosition struct {
	neverRemoved
	velocity Vec2
}

// NewReturnToNormalPosition creates a behavior that homes on sp.NormalPos at
// the given per-axis speed.
func NewReturnToNormalPosition(velocity Vec2) *ReturnToNormalPosition {
	return &ReturnToNormalPosition{velocity: velocity}
}

func (r *ReturnToNormalPosition) Enabled(sp *GameObject) bool {
	return sp.Pos != sp.NormalPos
}

func (r *ReturnToNormalPosition) Execute(dt float64, sp *GameObject) {
	sp.Pos.X = approach(sp.Pos.X, sp.NormalPos.X, r.velocity.X*dt)
	sp.Pos.Y = approach(sp.Pos.Y, sp.NormalPos.Y, r.velocity.Y*dt)
}

// approach moves cur toward target by at most step, never overshooting.
func approach(cur, target, step float64) float64 {
	step = math.Abs(step)
	switch {
	case cur > target:
		cur -= step
		if cur < target {
			cur = target
		}
	case cur < target:
		cur += step
		if cur > target {
			cur = target
		}
	}
	return cur
}

// --- OverridePosition ---

// OverridePosition lets a displacement behavior operate relative to an anchor
// set elsewhere. Each tick it stashes the sprite's pre-call position into
// NormalPos, swaps in a privately tracked position (captured on first
// execution), delegates to the inner behavior, and keeps the result as the
// private position for the next tick.
type OverridePosition struct {
	neverRemoved
	inner    Behavior
	pos      Vec2
	captured bool
}

// NewOverridePosition wraps inner so it works on a private position slot
// while the sprite's visible position becomes the anchor.
func NewOverridePosition(inner Behavior) *OverridePosition {
	return &OverridePosition{inner: inner}
}

func (o *OverridePosition) Enabled(sp *GameObject) bool {
	return o.inner.Enabled(sp)
}

func (o *OverridePosition) Execute(dt float64, sp *GameObject) {
	if !o.captured {
		o.pos = sp.Pos
		o.captured = true
	}
	sp.NormalPos = sp.Pos
	sp.Pos = o.pos
	o.inner.Execute(dt, sp)
	o.pos = sp.Pos
}
