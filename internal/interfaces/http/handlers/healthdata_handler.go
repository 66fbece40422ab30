package handlers

import (
	"net/http"

	"github.com/byestunting/byestunting/internal/healthdata"
)

// HealthDataHandler serves the health-data catalog and statistics endpoints.
type HealthDataHandler struct {
	catalog *healthdata.Catalog
}

// NewHealthDataHandler wires the handler.
func NewHealthDataHandler(catalog *healthdata.Catalog) *HealthDataHandler {
	return &HealthDataHandler{catalog: catalog}
}

// List returns catalog records, filtered by ?category, ?accessLevel, and
// ?search.
func (h *HealthDataHandler) List(w http.ResponseWriter, r *http.Request) {
	records := h.catalog.List(healthdata.CatalogFilter{
		Category:    r.URL.Query().Get("category"),
		AccessLevel: r.URL.Query().Get("accessLevel"),
		Search:      r.URL.Query().Get("search"),
	})
	if records == nil {
		records = []healthdata.Record{}
	}
	writeJSON(w, http.StatusOK, records)
}

// Get returns one catalog record by id.
func (h *HealthDataHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "recordID")
	if err != nil {
		writeAppError(w, err)
		return
	}

	record, err := h.catalog.Get(id)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// Create registers a new catalog record.
func (h *HealthDataHandler) Create(w http.ResponseWriter, r *http.Request) {
	var record healthdata.Record
	if err := decodeJSON(r, &record); err != nil {
		writeAppError(w, err)
		return
	}

	added, err := h.catalog.Add(record)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, added)
}

// ProvinceStats returns stunting prevalence per province.
func (h *HealthDataHandler) ProvinceStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.ProvinceStats())
}

// AgeStats returns stunting prevalence per age band.
func (h *HealthDataHandler) AgeStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.AgeStats())
}
