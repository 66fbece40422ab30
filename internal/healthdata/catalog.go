// Package healthdata serves the health-data catalog and the national
// stunting statistics series.
package healthdata

import (
	"strings"
	"sync"
	"time"

	"github.com/byestunting/byestunting/pkg/errors"
)

// Access levels of catalog records.
const (
	AccessPublic     = "public"
	AccessRestricted = "restricted"
)

// Record is one entry in the health-data catalog: a pointer to an external
// dataset or guideline published by a health authority.
type Record struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Source      string `json:"source"`
	Description string `json:"description"`
	URL         string `json:"url"`
	LastUpdated string `json:"lastUpdated"`
	Category    string `json:"category"`
	AccessLevel string `json:"accessLevel"`
}

// CatalogFilter narrows a List call. Zero values mean "no constraint"; the
// literal category "all" is treated as unset.
type CatalogFilter struct {
	Category    string
	AccessLevel string
	// Search matches case-insensitively against title, description, and
	// source.
	Search string
}

// Catalog is the in-memory health-data catalog. Safe for concurrent use.
// New records are prepended, matching how the listing presents the freshest
// entries first.
type Catalog struct {
	mu      sync.RWMutex
	records []Record
	now     func() time.Time
}

// NewCatalog creates a catalog over the built-in seed records.
func NewCatalog() *Catalog {
	records := make([]Record, len(seedRecords))
	copy(records, seedRecords)
	return &Catalog{records: records, now: time.Now}
}

// List returns records matching the filter, newest first.
func (c *Catalog) List(filter CatalogFilter) []Record {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var result []Record
	search := strings.ToLower(filter.Search)

	for _, r := range c.records {
		if filter.Category != "" && filter.Category != "all" && r.Category != filter.Category {
			continue
		}
		if filter.AccessLevel != "" && r.AccessLevel != filter.AccessLevel {
			continue
		}
		if search != "" && !matchesSearch(r, search) {
			continue
		}
		result = append(result, r)
	}
	return result
}

func matchesSearch(r Record, search string) bool {
	return strings.Contains(strings.ToLower(r.Title), search) ||
		strings.Contains(strings.ToLower(r.Description), search) ||
		strings.Contains(strings.ToLower(r.Source), search)
}

// Get returns the record with the given id.
func (c *Catalog) Get(id int) (Record, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, r := range c.records {
		if r.ID == id {
			return r, nil
		}
	}
	return Record{}, errors.NotFound("data kesehatan tidak ditemukan")
}

// Add validates and stores a new record, assigning the next id and stamping
// LastUpdated with the current date.
func (c *Catalog) Add(r Record) (Record, error) {
	var details []string
	if r.Title == "" {
		details = append(details, "Judul wajib diisi")
	}
	if r.Source == "" {
		details = append(details, "Sumber wajib diisi")
	}
	if r.Description == "" {
		details = append(details, "Deskripsi wajib diisi")
	}
	if r.URL == "" {
		details = append(details, "URL wajib diisi")
	}
	if r.Category == "" {
		details = append(details, "Kategori wajib diisi")
	}
	if r.AccessLevel != AccessPublic && r.AccessLevel != AccessRestricted {
		details = append(details, "Level akses harus 'public' atau 'restricted'")
	}
	if len(details) > 0 {
		return Record{}, errors.Validation(details...)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	maxID := 0
	for _, existing := range c.records {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}

	r.ID = maxID + 1
	r.LastUpdated = c.now().Format("2006-01-02")
	c.records = append([]Record{r}, c.records...)
	return r, nil
}
