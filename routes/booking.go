package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SyntalysTech/glow-aesthetic-web-sub000/controllers/consumer"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/middleware"
)

// SetupBookingRoutes configures slot lookup, the session cart and checkout.
// Browsing slots and filling the cart are open to anonymous visitors; only
// checkout and the booking history require a signed-in customer.
func SetupBookingRoutes(app *fiber.App) {
	bookings := app.Group("/bookings")

	bookings.Get("/slots", consumer.GetAvailableSlots)
	bookings.Get("/cart", consumer.GetCart)
	bookings.Post("/cart", consumer.AddToCart)
	bookings.Delete("/cart/:index", consumer.RemoveFromCart)

	bookings.Post("/checkout", middleware.Protected(), consumer.Checkout)
	bookings.Get("/me", middleware.Protected(), consumer.GetMyBookings)
	bookings.Post("/:id/cancel", middleware.Protected(), consumer.CancelBooking)
}
