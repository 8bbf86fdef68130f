package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SyntalysTech/glow-aesthetic-web-sub000/db"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/models"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/utils"
)

// CreateContactMessage stores a submission from the public contact form
func CreateContactMessage(c *fiber.Ctx) error {
	message := new(models.ContactMessage)
	if err := c.BodyParser(message); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if message.Email == "" || message.Body == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Email and message are required",
		})
	}

	message.IsRead = false
	if err := db.DB.Create(&message).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save message",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(message)
}

// GetContactMessages lists contact messages, unread first (back office)
func GetContactMessages(c *fiber.Ctx) error {
	var messages []models.ContactMessage
	if err := db.DB.Order("is_read asc, created_at desc").Find(&messages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch messages",
			Error:   err.Error(),
		})
	}
	return c.JSON(messages)
}

// MarkContactMessageRead flags one message as handled (back office)
func MarkContactMessageRead(c *fiber.Ctx) error {
	id := c.Params("id")
	var message models.ContactMessage
	if err := db.DB.First(&message, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Message not found",
			Error:   err.Error(),
		})
	}
	message.IsRead = true
	if err := db.DB.Save(&message).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update message",
			Error:   err.Error(),
		})
	}
	return c.JSON(message)
}
