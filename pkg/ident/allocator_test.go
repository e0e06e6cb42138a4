package ident

import "testing"

func TestAllocator_Next(t *testing.T) {
	a := New(100)

	for want := ID(100); want < 103; want++ {
		id, ok := a.Next()
		if !ok {
			t.Fatal("Next() reported exhausted on an unbounded allocator")
		}
		if id != want {
			t.Errorf("Next() = %d, expected %d", id, want)
		}
	}
}

func TestAllocator_Reserve(t *testing.T) {
	t.Run("reserve_ahead_advances_cursor", func(t *testing.T) {
		a := New(0)
		if id, ok := a.Reserve(10); !ok || id != 10 {
			t.Fatalf("Reserve(10) = %d, %v", id, ok)
		}
		if id, _ := a.Next(); id != 11 {
			t.Errorf("Next() after Reserve(10) = %d, expected 11", id)
		}
	})

	t.Run("reserve_behind_keeps_cursor", func(t *testing.T) {
		a := New(0)
		a.Next() // 0
		a.Next() // 1
		if id, ok := a.Reserve(0); !ok || id != 0 {
			t.Fatalf("Reserve(0) = %d, %v", id, ok)
		}
		if id, _ := a.Next(); id != 2 {
			t.Errorf("Next() after Reserve(0) = %d, expected 2", id)
		}
	})
}

func TestAllocator_Bounded(t *testing.T) {
	a := NewBounded(0, 2)

	if a.Exhausted() {
		t.Fatal("Exhausted() = true before any allocation")
	}

	for want := ID(0); want < 2; want++ {
		id, ok := a.Next()
		if !ok || id != want {
			t.Fatalf("Next() = %d, %v, expected %d, true", id, ok, want)
		}
	}

	if !a.Exhausted() {
		t.Error("Exhausted() = false after draining the range")
	}
	if _, ok := a.Next(); ok {
		t.Error("Next() succeeded on an exhausted allocator")
	}
	if _, ok := a.Reserve(1); ok {
		t.Error("Reserve() succeeded on an exhausted allocator")
	}
}

func TestNewBounded_InvalidRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewBounded() expected panic for inverted range")
		}
	}()
	NewBounded(5, 5)
}
