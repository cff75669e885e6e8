package ecs

import "testing"

// stub components used only in tests
type compA struct{ val int }

func (compA) Type() ComponentType { return 1 }

type compB struct{}

func (compB) Type() ComponentType { return 2 }

func TestCreateEntity(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	if id == NilEntity {
		t.Fatal("expected non-nil entity ID")
	}
	if !w.Alive(id) {
		t.Fatal("expected entity to be alive after creation")
	}
}

func TestAddAndGetComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, compA{val: 9})

	c := w.Get(id, ComponentType(1))
	if c == nil {
		t.Fatal("expected component, got nil")
	}
	got, ok := c.(compA)
	if !ok {
		t.Fatal("wrong component type returned")
	}
	if got.val != 9 {
		t.Fatalf("expected val=9, got %d", got.val)
	}
}

func TestAddReplacesExisting(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, compA{val: 1})
	w.Add(id, compA{val: 2})

	got := w.Get(id, ComponentType(1)).(compA)
	if got.val != 2 {
		t.Fatalf("expected second Add to win; got val=%d", got.val)
	}
}

func TestDestroyEntityRemovesComponents(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, compA{val: 3})
	w.DestroyEntity(id)

	if w.Alive(id) {
		t.Fatal("entity should not be alive after DestroyEntity")
	}
	if w.Get(id, ComponentType(1)) != nil {
		t.Fatal("component should be gone after DestroyEntity")
	}
}

func TestDestroyEntityTwiceIsNoop(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.DestroyEntity(id)
	// Second destroy must not panic or resurrect anything.
	w.DestroyEntity(id)
	if w.Alive(id) {
		t.Fatal("entity should stay dead")
	}
}

func TestQueryFiltersCorrectly(t *testing.T) {
	w := NewWorld()

	both := w.CreateEntity()
	w.Add(both, compA{})
	w.Add(both, compB{})

	onlyA := w.CreateEntity()
	w.Add(onlyA, compA{})

	results := w.Query(ComponentType(1), ComponentType(2))
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0] != both {
		t.Fatalf("expected entity %v in results, got %v", both, results[0])
	}
}

func TestQueryReturnsSortedIDs(t *testing.T) {
	w := NewWorld()
	var ids []EntityID
	for i := 0; i < 20; i++ {
		id := w.CreateEntity()
		w.Add(id, compA{val: i})
		ids = append(ids, id)
	}

	results := w.Query(ComponentType(1))
	if len(results) != len(ids) {
		t.Fatalf("expected %d results, got %d", len(ids), len(results))
	}
	for i, id := range results {
		if id != ids[i] {
			t.Fatalf("result %d: expected %v, got %v", i, ids[i], id)
		}
	}
}

func TestQueryExcludesDeadEntities(t *testing.T) {
	w := NewWorld()
	alive := w.CreateEntity()
	w.Add(alive, compA{})

	dead := w.CreateEntity()
	w.Add(dead, compA{})
	w.DestroyEntity(dead)

	results := w.Query(ComponentType(1))
	if len(results) != 1 || results[0] != alive {
		t.Fatalf("expected only the alive entity; got %v", results)
	}
}

func TestRemoveComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, compA{val: 5})

	w.Remove(id, ComponentType(1))

	if w.Get(id, ComponentType(1)) != nil {
		t.Fatal("component should be nil after Remove")
	}
}

func TestHasComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()

	if w.Has(id, ComponentType(1)) {
		t.Fatal("Has should return false before Add")
	}
	w.Add(id, compA{})
	if !w.Has(id, ComponentType(1)) {
		t.Fatal("Has should return true after Add")
	}
}
