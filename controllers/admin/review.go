package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SyntalysTech/glow-aesthetic-web-sub000/db"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/models"
)

// GetAllReviews lists every review, pending first
func GetAllReviews(c *fiber.Ctx) error {
	var reviews []models.Review
	err := db.DB.Preload("Service").Preload("Customer").
		Order("is_approved asc, created_at desc").
		Find(&reviews).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	for i := range reviews {
		reviews[i].Customer.Password = ""
	}
	return c.JSON(reviews)
}

// ApproveReview publishes a review to the testimonials page
func ApproveReview(c *fiber.Ctx) error {
	id := c.Params("id")
	var review models.Review
	if err := db.DB.First(&review, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Review not found",
		})
	}
	review.IsApproved = true
	if err := db.DB.Save(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to approve review",
		})
	}
	return c.JSON(review)
}

// DeleteReview removes a review
func DeleteReview(c *fiber.Ctx) error {
	id := c.Params("id")
	var review models.Review
	if db.DB.First(&review, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Review not found",
		})
	}
	if err := db.DB.Delete(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete review",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
