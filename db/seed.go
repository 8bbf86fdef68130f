package db

import (
	"fmt"
	"log"

	"github.com/SyntalysTech/glow-aesthetic-web-sub000/models"
)

// DefaultServices is the studio's treatment list in display order. It seeds
// the services table on first run; afterwards the table is the source of
// truth and the admin back office may edit it.
var DefaultServices = []models.Service{
	{Name: "Signature Glow Facial", Category: models.CategoryFace, PriceCents: 12000, DurationMin: 60, Specialist: "Elena", Description: "Deep-cleansing facial with brightening mask and LED finish."},
	{Name: "Hydrafacial Deluxe", Category: models.CategoryFace, PriceCents: 16500, DurationMin: 75, Specialist: "Elena", Description: "Hydradermabrasion with serum infusion for an instant glow."},
	{Name: "Microneedling", Category: models.CategoryFace, PriceCents: 19000, DurationMin: 60, Specialist: "Elena", Description: "Collagen induction therapy for texture and fine lines."},
	{Name: "Body Peeling & Wrap", Category: models.CategoryBody, PriceCents: 14000, DurationMin: 90, Specialist: "Mara", Description: "Full-body exfoliation followed by a nourishing wrap."},
	{Name: "Anti-Cellulite Treatment", Category: models.CategoryBody, PriceCents: 11000, DurationMin: 45, Specialist: "Mara", Description: "Targeted massage and firming treatment."},
	{Name: "Spa Manicure", Category: models.CategoryNails, PriceCents: 6500, DurationMin: 45, Specialist: "Sofia", Description: "Classic manicure with hand peeling and polish."},
	{Name: "Gel Pedicure", Category: models.CategoryNails, PriceCents: 8500, DurationMin: 60, Specialist: "Sofia", Description: "Pedicure with long-lasting gel finish."},
	{Name: "Lash Lift & Tint", Category: models.CategoryLashesBrows, PriceCents: 9000, DurationMin: 60, Specialist: "Nadia", Description: "Lift, curl and tint for natural lashes."},
	{Name: "Brow Lamination", Category: models.CategoryLashesBrows, PriceCents: 7500, DurationMin: 45, Specialist: "Nadia", Description: "Set and shape brows, tint included."},
	{Name: "Relaxing Massage", Category: models.CategoryMassage, PriceCents: 10000, DurationMin: 50, Specialist: "Mara", Description: "Full-body relaxation massage with aromatic oils."},
	{Name: "Hot Stone Massage", Category: models.CategoryMassage, PriceCents: 13000, DurationMin: 75, Specialist: "Mara", Description: "Deep warmth massage with volcanic stones."},
}

var defaultProducts = []models.Product{
	{Name: "Vitamin C Serum", PriceCents: 7900, Stock: 25, Description: "Brightening antioxidant serum, 30ml."},
	{Name: "Hyaluron Day Cream", PriceCents: 6400, Stock: 30, Description: "Lightweight hydrating day cream, 50ml."},
	{Name: "Gift Card CHF 100", PriceCents: 10000, Stock: 100, Description: "Redeemable for any treatment or product."},
}

// Seed creates the default roles, treatment catalog and shop products.
// Existing rows are left untouched, so it is safe to run on every deploy.
func Seed() {
	roles := []models.Role{
		{Name: models.RoleAdmin, Description: "Studio staff with full back-office access"},
		{Name: models.RoleClient, Description: "Customer who can book treatments"},
	}
	for _, role := range roles {
		var existing models.Role
		if DB.Where("name = ?", role.Name).First(&existing).RowsAffected == 0 {
			DB.Create(&role)
		}
	}

	for _, svc := range DefaultServices {
		var existing models.Service
		if DB.Where("name = ?", svc.Name).First(&existing).RowsAffected == 0 {
			if err := DB.Create(&svc).Error; err != nil {
				log.Printf("Failed to seed service %q: %v", svc.Name, err)
			}
		}
	}

	for _, p := range defaultProducts {
		var existing models.Product
		if DB.Where("name = ?", p.Name).First(&existing).RowsAffected == 0 {
			if err := DB.Create(&p).Error; err != nil {
				log.Printf("Failed to seed product %q: %v", p.Name, err)
			}
		}
	}

	fmt.Println("✅ Seed data applied successfully!")
}
