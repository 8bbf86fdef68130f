package admin

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/SyntalysTech/glow-aesthetic-web-sub000/db"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/models"
)

// GetDashboardOverview returns booking and revenue counters for the back office
func GetDashboardOverview(c *fiber.Ctx) error {
	var statistics struct {
		TotalBookings  int64     `json:"total_bookings"`
		PendingCount   int64     `json:"pending_count"`
		ConfirmedCount int64     `json:"confirmed_count"`
		CompletedCount int64     `json:"completed_count"`
		CancelledCount int64     `json:"cancelled_count"`
		NoShowCount    int64     `json:"no_show_count"`
		TotalCustomers int64     `json:"total_customers"`
		UnreadMessages int64     `json:"unread_messages"`
		PendingReviews int64     `json:"pending_reviews"`
		RevenueCents   int64     `json:"revenue_cents"`
		RevenueDisplay string    `json:"revenue_display"`
		LastUpdated    time.Time `json:"last_updated"`
	}

	db.DB.Model(&models.Booking{}).Count(&statistics.TotalBookings)
	db.DB.Model(&models.Booking{}).Where("status = ?", models.StatusPending).Count(&statistics.PendingCount)
	db.DB.Model(&models.Booking{}).Where("status = ?", models.StatusConfirmed).Count(&statistics.ConfirmedCount)
	db.DB.Model(&models.Booking{}).Where("status = ?", models.StatusCompleted).Count(&statistics.CompletedCount)
	db.DB.Model(&models.Booking{}).Where("status = ?", models.StatusCancelled).Count(&statistics.CancelledCount)
	db.DB.Model(&models.Booking{}).Where("status = ?", models.StatusNoShow).Count(&statistics.NoShowCount)

	db.DB.Model(&models.User{}).
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.name = ?", models.RoleClient).
		Count(&statistics.TotalCustomers)

	db.DB.Model(&models.ContactMessage{}).Where("is_read = ?", false).Count(&statistics.UnreadMessages)
	db.DB.Model(&models.Review{}).Where("is_approved = ?", false).Count(&statistics.PendingReviews)

	// Revenue counts completed treatments only
	db.DB.Model(&models.Booking{}).
		Where("status = ?", models.StatusCompleted).
		Select("COALESCE(SUM(total_cents), 0)").
		Scan(&statistics.RevenueCents)

	statistics.RevenueDisplay = models.FormatCHF(statistics.RevenueCents)
	statistics.LastUpdated = time.Now()

	return c.JSON(statistics)
}

// GetCustomers lists customer accounts for the back office
func GetCustomers(c *fiber.Ctx) error {
	var customers []models.User
	err := db.DB.Preload("Role").
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.name = ?", models.RoleClient).
		Order("users.created_at desc").
		Find(&customers).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	for i := range customers {
		customers[i].Password = ""
	}
	return c.JSON(customers)
}
