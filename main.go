package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/SyntalysTech/glow-aesthetic-web-sub000/booking"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/controllers"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/controllers/admin"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/controllers/consumer"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/cron"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/db"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/redis"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/routes"
)

func main() {
	app := fiber.New()
	db.Migrate()
	db.Seed()
	redis.InitRedis()

	catalog, err := booking.LoadCatalog(db.DB)
	if err != nil {
		log.Fatal("Failed to load treatment catalog: ", err)
	}
	engine := booking.NewEngine(db.DB, catalog, redis.NewCartStore(redis.Client))
	controllers.UseEngine(engine)
	consumer.UseEngine(engine)
	admin.UseEngine(engine)

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, X-Cart-Session",
		ExposeHeaders: "X-Cart-Session",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Glow Aesthetic Studio API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupBookingRoutes(app)
	routes.SetupShopRoutes(app)
	routes.SetupContactRoutes(app)
	routes.SetupAdminRoutes(app)

	cron.StartCronJobs()

	app.Listen(":8000")
}
