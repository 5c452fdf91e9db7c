package response

import "testing"

func TestFromCatalog(t *testing.T) {
	res := FromCatalog()
	if len(res.Catalog) != 10 || res.Catalog[0].Description != "Furnace Inspection" {
		t.Fatalf("unexpected catalog: %+v", res.Catalog)
	}
	if len(res.ServiceTypes) != 4 || res.ServiceTypes[0] != "HVAC Repair" {
		t.Fatalf("unexpected service types: %+v", res.ServiceTypes)
	}
	if len(res.Zones) != 4 || res.Zones[0] != "Zone 1" {
		t.Fatalf("unexpected zones: %+v", res.Zones)
	}
}
