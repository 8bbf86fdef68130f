package booking

import (
	"gorm.io/gorm"
)

// Engine computes slot availability and drives the cart and the booking
// ledger. One instance is shared by all handlers; the catalog snapshot and
// the cart store are injected so tests can swap them out.
type Engine struct {
	db      *gorm.DB
	catalog *Catalog
	carts   CartStore
}

func NewEngine(db *gorm.DB, catalog *Catalog, carts CartStore) *Engine {
	return &Engine{db: db, catalog: catalog, carts: carts}
}

// Catalog returns the engine's immutable treatment list.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}
