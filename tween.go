package rowan

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenTo eases the sprite's position to an absolute target over a fixed
// duration. The starting position is captured on the first execution, so the
// behavior composes with Sequence: the tween begins from wherever earlier
// behaviors left the sprite. Enabled until both axes finish; wrap in
// RemoveWhenFinished to evict it afterwards.
type TweenTo struct {
	neverRemoved
	to       Vec2
	duration float32
	easeFn   ease.TweenFunc
	x, y     *gween.Tween
	done     bool
}

// NewTweenTo creates an eased absolute-position behavior. duration is in
// seconds; fn is any gween easing function (e.g. ease.Linear, ease.OutQuad).
func NewTweenTo(to Vec2, duration float64, fn ease.TweenFunc) *TweenTo {
	return &TweenTo{to: to, duration: float32(duration), easeFn: fn}
}

func (t *TweenTo) Enabled(*GameObject) bool {
	return !t.done
}

func (t *TweenTo) Execute(dt float64, sp *GameObject) {
	if t.x == nil {
		t.x = gween.New(float32(sp.Pos.X), float32(t.to.X), t.duration, t.easeFn)
		t.y = gween.New(float32(sp.Pos.Y), float32(t.to.Y), t.duration, t.easeFn)
	}
	vx, xDone := t.x.Update(float32(dt))
	vy, yDone := t.y.Update(float32(dt))
	sp.Pos = Vec2{X: float64(vx), Y: float64(vy)}
	t.done = xDone && yDone
}
