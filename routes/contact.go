package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SyntalysTech/glow-aesthetic-web-sub000/controllers"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/controllers/consumer"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/middleware"
)

// SetupContactRoutes configures the public contact form and testimonials
func SetupContactRoutes(app *fiber.App) {
	app.Post("/contact", controllers.CreateContactMessage)

	reviews := app.Group("/reviews")
	reviews.Get("/", consumer.GetApprovedReviews)
	reviews.Post("/", middleware.Protected(), consumer.CreateReview)
}
