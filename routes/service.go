package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SyntalysTech/glow-aesthetic-web-sub000/controllers"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/middleware"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/models"
)

// SetupServiceRoutes configures the public treatment catalog and its
// back-office management routes
func SetupServiceRoutes(app *fiber.App) {
	services := app.Group("/services")
	services.Get("/", controllers.GetServices)
	services.Get("/:id", controllers.GetService)

	services.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.CreateService)
	services.Patch("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.UpdateService)
	services.Delete("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.DeleteService)
}
