package model

import "testing"

func TestSeedDefaultItemsMapsLegacyChecks(t *testing.T) {
	h := NewHabitState()
	h.Checks = map[string]bool{"overseas": true, "gym": true, "nc2": false, "stale": true}

	if !h.SeedDefaultItems() {
		t.Fatal("expected defaults to be seeded")
	}
	if len(h.Items) != 5 {
		t.Fatalf("expected 5 default items, got %d", len(h.Items))
	}
	want := map[string]bool{"overseas": true, "audio": false, "gym": true, "nc1": false, "nc2": false}
	for id, checked := range want {
		if h.Checks[id] != checked {
			t.Fatalf("check %s = %v, want %v", id, h.Checks[id], checked)
		}
	}
	if _, ok := h.Checks["stale"]; ok {
		t.Fatal("expected unknown legacy keys to be dropped")
	}
}

func TestSeedDefaultItemsKeepsExistingItems(t *testing.T) {
	h := NewHabitState()
	h.Items = []HabitItem{{ID: "h_1", Label: "Stretch"}}
	if h.SeedDefaultItems() {
		t.Fatal("expected no seeding when items exist")
	}
	if len(h.Items) != 1 || h.Items[0].ID != "h_1" {
		t.Fatalf("items changed unexpectedly: %+v", h.Items)
	}
}

func TestFindItem(t *testing.T) {
	h := NewHabitState()
	h.SeedDefaultItems()
	if idx, ok := h.FindItem("gym"); !ok || idx != 2 {
		t.Fatalf("unexpected lookup: %d %v", idx, ok)
	}
	if _, ok := h.FindItem("nope"); ok {
		t.Fatal("expected missing item")
	}
}
