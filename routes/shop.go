package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SyntalysTech/glow-aesthetic-web-sub000/controllers"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/middleware"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/models"
)

// SetupShopRoutes configures the shop page and product management
func SetupShopRoutes(app *fiber.App) {
	shop := app.Group("/shop")
	shop.Get("/products", controllers.GetProducts)
	shop.Get("/products/:id", controllers.GetProduct)

	admin := shop.Group("/products", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))
	admin.Post("/", controllers.CreateProduct)
	admin.Patch("/:id", controllers.UpdateProduct)
	admin.Delete("/:id", controllers.DeleteProduct)
	admin.Post("/:id/image", controllers.UploadProductImage)
}
