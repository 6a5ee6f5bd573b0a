package catalog

import "testing"

func TestLookupPrices(t *testing.T) {
	want := map[string]float64{
		"crystal_kayak":        60.0,
		"canoe":                75.0,
		"paddle_board":         75.0,
		"luxury_cabana_hourly": 50.0,
		"luxury_cabana_3hr":    100.0,
		"luxury_cabana_4hr":    400.0,
	}
	for id, price := range want {
		svc, ok := Lookup(id)
		if !ok {
			t.Fatalf("Lookup(%q) not found", id)
		}
		if svc.Price != price {
			t.Fatalf("Lookup(%q).Price = %v, want %v", id, svc.Price, price)
		}
		if svc.ID != id || svc.Name == "" {
			t.Fatalf("Lookup(%q) malformed entry: %+v", id, svc)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("jet_ski"); ok {
		t.Fatal("unknown service should not resolve")
	}
	if _, ok := Lookup(""); ok {
		t.Fatal("empty id should not resolve")
	}
}

func TestAllCoversCatalog(t *testing.T) {
	all := All()
	if len(all) != 6 {
		t.Fatalf("catalog has %d services, want 6", len(all))
	}
	for id, svc := range all {
		if svc.ID != id {
			t.Fatalf("key %q does not match entry id %q", id, svc.ID)
		}
	}
}
