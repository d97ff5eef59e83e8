// Package catalog owns the static hospital dataset: loading, validation
// and lookup. The dataset is embedded at build time and immutable after
// Load returns.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/medatlas/directory-api/internal/model"
)

//go:embed hospitals.json
var hospitalsJSON []byte

// Catalog is the loaded, validated hospital dataset.
type Catalog struct {
	hospitals []model.Hospital
	byID      map[int]*model.Hospital
}

// Load decodes and validates the embedded dataset.
func Load() (*Catalog, error) {
	return loadFrom(hospitalsJSON)
}

func loadFrom(data []byte) (*Catalog, error) {
	var hospitals []model.Hospital
	if err := json.Unmarshal(data, &hospitals); err != nil {
		return nil, fmt.Errorf("failed to decode hospital catalog: %w", err)
	}
	if len(hospitals) == 0 {
		return nil, fmt.Errorf("hospital catalog is empty")
	}

	v := validator.New()
	byID := make(map[int]*model.Hospital, len(hospitals))
	for i := range hospitals {
		h := &hospitals[i]
		if err := v.Struct(h); err != nil {
			return nil, fmt.Errorf("invalid hospital record %d: %w", h.ID, err)
		}
		if _, dup := byID[h.ID]; dup {
			return nil, fmt.Errorf("duplicate hospital id %d", h.ID)
		}
		byID[h.ID] = h
	}

	return &Catalog{hospitals: hospitals, byID: byID}, nil
}

// Hospitals returns all records in catalog order. The returned slice must
// not be mutated by callers.
func (c *Catalog) Hospitals() []model.Hospital {
	return c.hospitals
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.hospitals)
}

// ByID looks up a hospital by its id.
func (c *Catalog) ByID(id int) (*model.Hospital, bool) {
	h, ok := c.byID[id]
	return h, ok
}

// BySpecialty returns every hospital offering the given specialty,
// matched case-insensitively, in catalog order.
func (c *Catalog) BySpecialty(specialty string) []model.Hospital {
	var out []model.Hospital
	for _, h := range c.hospitals {
		if h.HasSpecialty(specialty) {
			out = append(out, h)
		}
	}
	return out
}

// Specialties returns the sorted set of distinct specialties across the
// catalog. Display casing of the first occurrence wins.
func (c *Catalog) Specialties() []string {
	return c.uniqueValues(func(h model.Hospital) []string { return h.Specialties })
}

// Locations returns the sorted set of distinct cities across the catalog.
func (c *Catalog) Locations() []string {
	return c.uniqueValues(func(h model.Hospital) []string { return []string{h.Location} })
}

func (c *Catalog) uniqueValues(extract func(model.Hospital) []string) []string {
	seen := make(map[string]string)
	for _, h := range c.hospitals {
		for _, v := range extract(h) {
			key := strings.ToLower(v)
			if _, ok := seen[key]; !ok {
				seen[key] = v
			}
		}
	}
	out := make([]string, 0, len(seen))
	for _, v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
