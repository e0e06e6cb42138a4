package trigger

import (
	"testing"

	"github.com/opd-ai/go-gamekit/pkg/geom"
)

func TestProximity_FiresOnEntry(t *testing.T) {
	zone := geom.RectFromPosSize(0, 0, 10, 10)
	target := geom.NewEntity(geom.Vec2(50, 50))

	fired := 0
	prox := NewProximity("door", &target, zone, func(Trigger) { fired++ })

	prox.Update(0.016)
	if fired != 0 {
		t.Errorf("fired %d times while outside the zone", fired)
	}

	target.SetPosition(geom.Vec2(5, 5))
	prox.Update(0.016)
	if fired != 1 {
		t.Errorf("fired %d times after entering, expected 1", fired)
	}

	// Staying inside does not re-fire.
	prox.Update(0.016)
	prox.Update(0.016)
	if fired != 1 {
		t.Errorf("fired %d times while staying inside, expected 1", fired)
	}
}

func TestProximity_RearmsOnLeave(t *testing.T) {
	zone := geom.NewCircle(geom.Vec2(0, 0), 5)
	target := geom.NewEntity(geom.Vec2(0, 0))

	fired := 0
	prox := NewProximity("orbit", &target, zone, func(Trigger) { fired++ })

	prox.Update(0.016) // inside from the start
	if fired != 1 {
		t.Fatalf("fired %d times, expected 1", fired)
	}

	target.SetPosition(geom.Vec2(10, 0))
	prox.Update(0.016) // leaves, trigger re-arms
	if prox.Triggered() {
		t.Error("Triggered() = true after leaving the volume")
	}

	target.SetPosition(geom.Vec2(1, 1))
	prox.Update(0.016) // second entry
	if fired != 2 {
		t.Errorf("fired %d times after re-entry, expected 2", fired)
	}
}

func TestProximity_NeverDone(t *testing.T) {
	zone := geom.RectFromPosSize(0, 0, 10, 10)
	target := geom.NewEntity(geom.Vec2(5, 5))
	prox := NewProximity("zone", &target, zone, nil)

	if prox.AutoRemove() {
		t.Error("proximity triggers must not auto-remove")
	}
	for i := 0; i < 5; i++ {
		if done := prox.Update(0.016); done {
			t.Fatal("Update() reported done")
		}
	}
}

func TestProximity_Accessors(t *testing.T) {
	zone := geom.NewCircle(geom.Vec2(0, 0), 5)
	target := geom.NewEntity(geom.Vec2(0, 0))
	prox := NewProximity("spawn", &target, zone, nil)

	if prox.Name() != "spawn" {
		t.Errorf("Name() = %q, expected %q", prox.Name(), "spawn")
	}
	if prox.Volume() != geom.Volume(zone) {
		t.Error("Volume() does not return the watched volume")
	}
	if prox.Target() != geom.Positioned(&target) {
		t.Error("Target() does not return the watched entity")
	}
}
