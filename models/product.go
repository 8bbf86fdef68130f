package models

import (
	"gorm.io/gorm"
)

// Product is a retail item on the shop page (skincare lines, gift cards).
type Product struct {
	gorm.Model
	Name         string `json:"name"`
	Description  string `json:"description"`
	PriceCents   int64  `json:"price_cents"`
	ImageURL     string `json:"image_url"`
	Stock        int    `json:"stock"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
	DisplayPrice string `json:"display_price" gorm:"-"`
}

func (p *Product) AfterFind(tx *gorm.DB) (err error) {
	p.DisplayPrice = FormatCHF(p.PriceCents)
	return
}
