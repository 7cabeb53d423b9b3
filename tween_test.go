package rowan

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenToReachesTarget(t *testing.T) {
	sp := NewSprite(Vec2{X: 10, Y: 20}, nil)
	tw := NewTweenTo(Vec2{X: 100, Y: 200}, 1.0, ease.Linear)
	sp.AddBehavior(tw)

	// Run for the full duration using exact halves to avoid float32
	// accumulation drift.
	sp.Update(0.5)
	sp.Update(0.5)

	if tw.Enabled(sp) {
		t.Fatal("tween should disable after the full duration")
	}
	if math.Abs(sp.Pos.X-100) > 0.5 {
		t.Errorf("Pos.X = %f, want ~100", sp.Pos.X)
	}
	if math.Abs(sp.Pos.Y-200) > 0.5 {
		t.Errorf("Pos.Y = %f, want ~200", sp.Pos.Y)
	}
}

func TestTweenToCapturesStartOnFirstExecution(t *testing.T) {
	sp := NewSprite(Vec2{}, nil)
	// A sequence: move first, then tween — the tween starts from wherever
	// the move left the sprite, not from the construction position.
	sp.AddBehavior(NewSequence(
		NewMove(Vec2{X: 10}, Vec2{X: 10}),
		NewTweenTo(Vec2{X: 20}, 1.0, ease.Linear),
	))

	sp.Update(1) // move finishes at X=10
	sp.Update(0.5)
	if math.Abs(sp.Pos.X-15) > 0.5 {
		t.Errorf("Pos.X = %f, want ~15 (halfway from 10 to 20)", sp.Pos.X)
	}
}

func TestTweenToEvictableWhenWrapped(t *testing.T) {
	sp := NewSprite(Vec2{}, nil)
	sp.AddBehavior(NewRemoveWhenFinished(NewTweenTo(Vec2{X: 4}, 1.0, ease.Linear)))

	sp.Update(0.5)
	sp.Update(0.5)
	sp.Update(0.5)
	if len(sp.Behaviors()) != 0 {
		t.Error("finished tween wrapped in RemoveWhenFinished should be evicted")
	}
}
