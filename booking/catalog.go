package booking

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/SyntalysTech/glow-aesthetic-web-sub000/models"
)

// Catalog is the studio's treatment list, loaded once at startup and held
// immutable for the life of the process. The admin back office edits the
// services table; those edits become visible on the next restart, past
// bookings keep the prices they were created with either way.
type Catalog struct {
	services []models.Service
	byID     map[uint]int
}

// NewCatalog builds a catalog from offerings in declaration order.
func NewCatalog(services []models.Service) *Catalog {
	c := &Catalog{
		services: services,
		byID:     make(map[uint]int, len(services)),
	}
	for i, s := range services {
		c.byID[s.ID] = i
	}
	return c
}

// LoadCatalog reads the services table in id order.
func LoadCatalog(db *gorm.DB) (*Catalog, error) {
	var services []models.Service
	if err := db.Order("id asc").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("%w: loading services: %v", ErrStoreUnavailable, err)
	}
	return NewCatalog(services), nil
}

// List returns all offerings, or only those in the given category. An empty
// category matches everything; a category with no offerings yields an empty
// slice, never an error.
func (c *Catalog) List(category string) []models.Service {
	if category == "" {
		out := make([]models.Service, len(c.services))
		copy(out, c.services)
		return out
	}
	out := []models.Service{}
	for _, s := range c.services {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// Find looks up one offering by id. Not finding it is a normal outcome the
// caller must branch on (stale cart lines reference removed services).
func (c *Catalog) Find(id uint) (models.Service, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Service{}, false
	}
	return c.services[i], true
}
