package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SyntalysTech/glow-aesthetic-web-sub000/controllers"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/controllers/admin"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/middleware"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/models"
)

// SetupAdminRoutes configures the back office
func SetupAdminRoutes(app *fiber.App) {
	group := app.Group("/admin", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))

	group.Get("/dashboard", admin.GetDashboardOverview)
	group.Get("/customers", admin.GetCustomers)

	group.Get("/bookings", admin.GetAllBookings)
	group.Get("/bookings/:id", admin.GetBooking)
	group.Post("/bookings", admin.CreateBooking)
	group.Patch("/bookings/:id/status", admin.UpdateBookingStatus)

	group.Get("/reviews", admin.GetAllReviews)
	group.Patch("/reviews/:id/approve", admin.ApproveReview)
	group.Delete("/reviews/:id", admin.DeleteReview)

	group.Get("/messages", controllers.GetContactMessages)
	group.Patch("/messages/:id/read", controllers.MarkContactMessageRead)
}
