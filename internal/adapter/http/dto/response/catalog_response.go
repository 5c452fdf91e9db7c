package response

import "proposal_relay/internal/domain/entities"

type CatalogResponse struct {
	Catalog      []entities.CatalogEntry `json:"catalog"`
	ServiceTypes []string                `json:"service_types"`
	Zones        []string                `json:"zones"`
}

func FromCatalog() CatalogResponse {
	res := CatalogResponse{
		Catalog:      entities.Catalog(),
		ServiceTypes: []string{},
		Zones:        []string{},
	}
	for _, st := range entities.ServiceTypes() {
		res.ServiceTypes = append(res.ServiceTypes, string(st))
	}
	for _, z := range entities.TravelZones() {
		res.Zones = append(res.Zones, string(z))
	}
	return res
}
