package product

import "testing"

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(New(66, "Apples", 1))
	r.Register(New(67, "Oranges", 1))

	p, ok := r.Get(66)
	if !ok {
		t.Fatal("Get(66) missed")
	}
	if p.Name() != "Apples" {
		t.Errorf("name = %q, want Apples", p.Name())
	}

	if _, ok := r.Get(9999); ok {
		t.Error("Get(9999) hit on unregistered id")
	}

	byName, ok := r.GetByName("Oranges")
	if !ok || byName.ID() != 67 {
		t.Errorf("GetByName(Oranges) = %v, %v", byName, ok)
	}

	// Name lookup is case insensitive.
	if _, ok := r.GetByName("oranges"); !ok {
		t.Error("GetByName is case sensitive")
	}

	if got := r.Count(); got != 2 {
		t.Errorf("count = %d, want 2", got)
	}
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()

	apples, ok := r.GetByName("Apples")
	if !ok {
		t.Fatal("default registry is missing Apples")
	}
	if apples.ID() != ResourceApples {
		t.Errorf("apples id = %d, want %d", apples.ID(), ResourceApples)
	}

	if r.Count() == 0 {
		t.Error("default registry is empty")
	}
}
