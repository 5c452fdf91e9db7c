package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCatalogHandler_GetCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/api/catalog", NewCatalogHandler().GetCatalog)

	req := httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Catalog []struct {
			Description string  `json:"description"`
			UnitCost    float64 `json:"unit_cost"`
		} `json:"catalog"`
		ServiceTypes []string `json:"service_types"`
		Zones        []string `json:"zones"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Catalog) != 10 || body.Catalog[9].Description != "Electrical Panel Upgrade" || body.Catalog[9].UnitCost != 250 {
		t.Fatalf("unexpected catalog: %+v", body.Catalog)
	}
	if len(body.ServiceTypes) != 4 || len(body.Zones) != 4 {
		t.Fatalf("unexpected lists: %+v %+v", body.ServiceTypes, body.Zones)
	}
}
