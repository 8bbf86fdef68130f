package consumer

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/SyntalysTech/glow-aesthetic-web-sub000/db"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/models"
)

// CreateReview adds a new review for a treatment
func CreateReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	review := new(models.Review)
	if err := c.BodyParser(review); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid review data",
		})
	}

	review.CustomerID = userID
	review.IsApproved = false

	// Check if the service exists
	var service models.Service
	if err := db.DB.First(&service, review.ServiceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	// One review per customer and service
	exists, err := review.HasExistingReview(db.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check existing reviews",
		})
	}
	if exists {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "You have already reviewed this service",
		})
	}

	if err := db.DB.Create(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create review",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

// GetApprovedReviews returns the testimonials shown on the public site,
// optionally filtered by service
func GetApprovedReviews(c *fiber.Ctx) error {
	query := db.DB.Preload("Service").Where("is_approved = ?", true).Order("created_at desc")

	if serviceID := c.Query("service_id"); serviceID != "" {
		id, err := strconv.ParseUint(serviceID, 10, 32)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid service_id",
			})
		}
		query = query.Where("service_id = ?", uint(id))
	}

	var reviews []models.Review
	if err := query.Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch reviews",
		})
	}

	// Hide customer names on anonymous reviews
	for i := range reviews {
		if reviews[i].IsAnonymous {
			reviews[i].Customer = models.User{}
			reviews[i].CustomerID = 0
		}
	}

	return c.JSON(reviews)
}
