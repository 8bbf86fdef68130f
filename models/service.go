package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Service categories shown on the treatments page.
const (
	CategoryFace        = "face"
	CategoryBody        = "body"
	CategoryNails       = "nails"
	CategoryLashesBrows = "lashes-brows"
	CategoryMassage     = "massage"
)

// Service is a bookable treatment. Prices are stored in CHF centimes so
// booking totals sum without rounding drift.
type Service struct {
	gorm.Model
	Name         string `json:"name"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	PriceCents   int64  `json:"price_cents"`
	DurationMin  int    `json:"duration_min"`
	Specialist   string `json:"specialist"`
	DisplayPrice string `json:"display_price" gorm:"-"`
}

func (s *Service) AfterFind(tx *gorm.DB) (err error) {
	s.DisplayPrice = FormatCHF(s.PriceCents)
	return
}

// FormatCHF renders centimes as a display amount, e.g. 12050 -> "CHF 120.50".
func FormatCHF(cents int64) string {
	return fmt.Sprintf("CHF %d.%02d", cents/100, cents%100)
}
