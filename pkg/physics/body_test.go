package physics

import (
	"math"
	"testing"

	"github.com/opd-ai/go-gamekit/pkg/geom"
)

const epsilon = 1e-9

func TestNewBody(t *testing.T) {
	b := NewBody(geom.Vec2(5, 5), DefaultAttributes())

	if !b.Position().Equal(geom.Vec2(5, 5)) {
		t.Errorf("NewBody() position = %v, expected <5, 5>", b.Position())
	}
	if b.IsMoving() {
		t.Error("NewBody() should start at rest")
	}
	if b.Attrs.MaxVelocity != DefaultMaxVelocity {
		t.Errorf("NewBody() max velocity = %v, expected %v", b.Attrs.MaxVelocity, DefaultMaxVelocity)
	}
}

func TestBody_SetVelocity(t *testing.T) {
	tests := []struct {
		name           string
		velocity       geom.Vector
		expectedLength float64
	}{
		{"below_cap", geom.Vec2(3, 4), 5},
		{"at_cap", geom.Vec2(10, 0), 10},
		{"above_cap_clamped", geom.Vec2(30, 40), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBody(geom.Vec2(0, 0), DefaultAttributes())
			if err := b.SetVelocity(tt.velocity); err != nil {
				t.Fatalf("SetVelocity() unexpected error: %v", err)
			}
			if got := b.Velocity().Length(); math.Abs(got-tt.expectedLength) > epsilon {
				t.Errorf("Velocity().Length() = %v, expected %v", got, tt.expectedLength)
			}
		})
	}

	t.Run("clamp_preserves_direction", func(t *testing.T) {
		b := NewBody(geom.Vec2(0, 0), DefaultAttributes())
		if err := b.SetVelocity(geom.Vec2(30, 40)); err != nil {
			t.Fatalf("SetVelocity() unexpected error: %v", err)
		}
		v := b.Velocity()
		if math.Abs(v.X()-6) > epsilon || math.Abs(v.Y()-8) > epsilon {
			t.Errorf("Velocity() = %v, expected <6, 8>", v)
		}
	})

	t.Run("dimension_mismatch", func(t *testing.T) {
		b := NewBody(geom.Vec2(0, 0), DefaultAttributes())
		if err := b.SetVelocity(geom.Vec3(1, 1, 1)); err == nil {
			t.Error("SetVelocity() expected error for mismatched dimensions")
		}
	})
}

func TestBody_Update(t *testing.T) {
	b := NewBody(geom.Vec2(0, 0), DefaultAttributes())
	if err := b.SetVelocity(geom.Vec2(4, 2)); err != nil {
		t.Fatalf("SetVelocity() unexpected error: %v", err)
	}

	b.Update(0.5)
	if !b.Position().Equal(geom.Vec2(2, 1)) {
		t.Errorf("Update() position = %v, expected <2, 1>", b.Position())
	}

	b.Update(0.5)
	if !b.Position().Equal(geom.Vec2(4, 2)) {
		t.Errorf("Update() position = %v, expected <4, 2>", b.Position())
	}
}

func TestBody_UpdateCapsVelocity(t *testing.T) {
	b := NewBody(geom.Vec2(0, 0), Attributes{MaxVelocity: 5, Mass: 1, Radius: 1})
	// Write past the setter to simulate accumulated velocity.
	b.vel = geom.Vec2(30, 40)

	b.Update(1)
	if got := b.Velocity().Length(); math.Abs(got-5) > epsilon {
		t.Errorf("Update() velocity length = %v, expected cap 5", got)
	}
	if !b.Position().Equal(geom.Vec2(3, 4)) {
		t.Errorf("Update() position = %v, expected <3, 4>", b.Position())
	}
}

func TestBody_SetPositionClearsVelocity(t *testing.T) {
	b := NewBody(geom.Vec2(0, 0), DefaultAttributes())
	if err := b.SetVelocity(geom.Vec2(3, 3)); err != nil {
		t.Fatalf("SetVelocity() unexpected error: %v", err)
	}

	b.SetPosition(geom.Vec2(100, 100))
	if b.IsMoving() {
		t.Error("SetPosition() should clear velocity")
	}
	if !b.Position().Equal(geom.Vec2(100, 100)) {
		t.Errorf("SetPosition() = %v, expected <100, 100>", b.Position())
	}
}

func TestBody_Bounds(t *testing.T) {
	b := NewBody(geom.Vec2(7, 9), Attributes{MaxVelocity: 10, Mass: 1, Radius: 3})

	bounds := b.Bounds()
	if !bounds.Position().Equal(geom.Vec2(7, 9)) {
		t.Errorf("Bounds() center = %v, expected <7, 9>", bounds.Position())
	}
	if bounds.Radius() != 3 {
		t.Errorf("Bounds() radius = %v, expected 3", bounds.Radius())
	}

	// Bounds follows the body.
	b.SetPosition(geom.Vec2(0, 0))
	if !b.Bounds().Position().Equal(geom.Vec2(0, 0)) {
		t.Errorf("Bounds() did not follow the body: %v", b.Bounds().Position())
	}
}

func TestBody_AsTriggerOperand(t *testing.T) {
	// A body embeds geom.Entity, so volumes accept it through the
	// Positioned fallback in their Contains dispatch.
	b := NewBody(geom.Vec2(5, 5), DefaultAttributes())
	zone := geom.RectFromPosSize(0, 0, 10, 10)

	ok, err := zone.Contains(b)
	if err != nil {
		t.Fatalf("Contains() unexpected error: %v", err)
	}
	if !ok {
		t.Error("Contains() = false, expected body position inside zone")
	}
}
