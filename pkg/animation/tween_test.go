package animation

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"

	"github.com/opd-ai/go-gamekit/pkg/geom"
)

func TestTween_Linear(t *testing.T) {
	target := geom.NewEntity(geom.Vec2(0, 0))
	tween, err := NewTween(&target, geom.Vec2(10, 20), 1.0, ease.Linear)
	if err != nil {
		t.Fatalf("NewTween() unexpected error: %v", err)
	}

	if done := tween.Update(0.5); done {
		t.Error("Update() reported done at the midpoint")
	}
	pos := target.Position()
	if math.Abs(pos.X()-5) > 1e-3 || math.Abs(pos.Y()-10) > 1e-3 {
		t.Errorf("midpoint position = %v, expected <5, 10>", pos)
	}

	if done := tween.Update(0.5); !done {
		t.Error("Update() should report done at full duration")
	}
	pos = target.Position()
	if math.Abs(pos.X()-10) > 1e-3 || math.Abs(pos.Y()-20) > 1e-3 {
		t.Errorf("final position = %v, expected <10, 20>", pos)
	}
	if !tween.Done() {
		t.Error("Done() = false after completion")
	}
}

func TestTween_UpdateAfterDone(t *testing.T) {
	target := geom.NewEntity(geom.Vec2(0, 0))
	tween, err := NewTween(&target, geom.Vec2(4, 4), 0.5, ease.Linear)
	if err != nil {
		t.Fatalf("NewTween() unexpected error: %v", err)
	}

	tween.Update(1)
	if !tween.Done() {
		t.Fatal("tween should be done after overshooting the duration")
	}

	// Further updates hold the final position.
	tween.Update(1)
	pos := target.Position()
	if math.Abs(pos.X()-4) > 1e-3 || math.Abs(pos.Y()-4) > 1e-3 {
		t.Errorf("position after extra update = %v, expected <4, 4>", pos)
	}
}

func TestNewTween_Requires2D(t *testing.T) {
	target := geom.NewEntity(geom.Vec3(0, 0, 0))
	if _, err := NewTween(&target, geom.Vec2(1, 1), 1, ease.Linear); err == nil {
		t.Error("NewTween() expected error for a 3D entity")
	}

	target2 := geom.NewEntity(geom.Vec2(0, 0))
	if _, err := NewTween(&target2, geom.Vec3(1, 1, 1), 1, ease.Linear); err == nil {
		t.Error("NewTween() expected error for a 3D target point")
	}
}

func TestTween_Eased(t *testing.T) {
	target := geom.NewEntity(geom.Vec2(0, 0))
	tween, err := NewTween(&target, geom.Vec2(10, 0), 1.0, ease.InQuad)
	if err != nil {
		t.Fatalf("NewTween() unexpected error: %v", err)
	}

	tween.Update(0.5)
	// InQuad at t=0.5 is 0.25 of the way there.
	if got := target.Position().X(); math.Abs(got-2.5) > 1e-2 {
		t.Errorf("eased midpoint x = %v, expected 2.5", got)
	}
}
