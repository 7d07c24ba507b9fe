package persistence

import (
	"context"
	"testing"
)

func TestMemory_GetSetRemove(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if _, ok, err := m.Get(ctx, "user"); ok || err != nil {
		t.Fatalf("Expected absent key, got ok=%v err=%v", ok, err)
	}

	if err := m.Set(ctx, "user", []byte(`{"id":"1"}`)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	value, ok, err := m.Get(ctx, "user")
	if err != nil || !ok {
		t.Fatalf("Expected stored value, got ok=%v err=%v", ok, err)
	}
	if string(value) != `{"id":"1"}` {
		t.Errorf("Unexpected value: %s", value)
	}

	// The returned slice is a copy; mutating it must not touch the store.
	value[0] = 'X'
	fresh, _, _ := m.Get(ctx, "user")
	if string(fresh) != `{"id":"1"}` {
		t.Errorf("Stored value was mutated through a read: %s", fresh)
	}

	if err := m.Remove(ctx, "user"); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if _, ok, _ := m.Get(ctx, "user"); ok {
		t.Error("Expected key to be removed")
	}
}
