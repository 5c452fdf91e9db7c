package entities

// ServiceType is the kind of service requested on a proposal.
type ServiceType string

const (
	ServiceTypeHVACRepair         ServiceType = "HVAC Repair"
	ServiceTypePlumbing           ServiceType = "Plumbing"
	ServiceTypeElectrical         ServiceType = "Electrical"
	ServiceTypeGeneralMaintenance ServiceType = "General Maintenance"
)

// TravelZone selects the travel fee band.
type TravelZone string

const (
	TravelZone1 TravelZone = "Zone 1"
	TravelZone2 TravelZone = "Zone 2"
	TravelZone3 TravelZone = "Zone 3"
	TravelZone4 TravelZone = "Zone 4"

	DefaultTravelZone = TravelZone1
)

// CatalogEntry is one priced service description.
type CatalogEntry struct {
	Description string  `json:"description"`
	UnitCost    float64 `json:"unit_cost"`
}

// catalogEntries is kept ordered so listings are stable.
var catalogEntries = []CatalogEntry{
	{Description: "Furnace Inspection", UnitCost: 120},
	{Description: "Thermostat Installation", UnitCost: 150},
	{Description: "Air Duct Cleaning", UnitCost: 80},
	{Description: "AC Repair", UnitCost: 200},
	{Description: "Filter Replacement", UnitCost: 50},
	{Description: "Boiler Check", UnitCost: 100},
	{Description: "Water Heater Repair", UnitCost: 180},
	{Description: "Vent Cleaning", UnitCost: 90},
	{Description: "Pipe Leak Fix", UnitCost: 110},
	{Description: "Electrical Panel Upgrade", UnitCost: 250},
}

var catalogPrices = func() map[string]float64 {
	m := make(map[string]float64, len(catalogEntries))
	for _, e := range catalogEntries {
		m[e.Description] = e.UnitCost
	}
	return m
}()

// CatalogPrice returns the fixed unit cost for a description. Unknown
// descriptions report ok=false and a zero price.
func CatalogPrice(description string) (price float64, ok bool) {
	price, ok = catalogPrices[description]
	return price, ok
}

// Catalog returns a copy of the priced catalog in display order.
func Catalog() []CatalogEntry {
	out := make([]CatalogEntry, len(catalogEntries))
	copy(out, catalogEntries)
	return out
}

func ServiceTypes() []ServiceType {
	return []ServiceType{
		ServiceTypeHVACRepair,
		ServiceTypePlumbing,
		ServiceTypeElectrical,
		ServiceTypeGeneralMaintenance,
	}
}

func TravelZones() []TravelZone {
	return []TravelZone{TravelZone1, TravelZone2, TravelZone3, TravelZone4}
}
