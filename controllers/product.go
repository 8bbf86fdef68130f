package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/SyntalysTech/glow-aesthetic-web-sub000/db"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/models"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/utils"
)

// GetProducts returns all active shop products
func GetProducts(c *fiber.Ctx) error {
	var products []models.Product
	if err := db.DB.Where("is_active = ?", true).Order("id asc").Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch products",
			Error:   err.Error(),
		})
	}
	return c.JSON(products)
}

// GetProduct returns one product by ID
func GetProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	var product models.Product
	if err := db.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Product not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(product)
}

// CreateProduct creates a new shop product (back office)
func CreateProduct(c *fiber.Ctx) error {
	product := new(models.Product)
	if err := c.BodyParser(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Create(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create product",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// UpdateProduct updates a shop product (back office)
func UpdateProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	var existing models.Product
	if db.DB.First(&existing, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Product not found",
		})
	}
	product := new(models.Product)
	if err := c.BodyParser(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	product.ID = existing.ID
	if err := db.DB.Save(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update product",
			Error:   err.Error(),
		})
	}
	return c.JSON(product)
}

// DeleteProduct removes a shop product (back office)
func DeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	var product models.Product
	if db.DB.First(&product, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Product not found",
		})
	}
	if err := db.DB.Delete(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete product",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadProductImage uploads a product photo and stores its URL
func UploadProductImage(c *fiber.Ctx) error {
	id := c.Params("id")
	var product models.Product
	if err := db.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Product not found",
			Error:   err.Error(),
		})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Missing image file",
			Error:   err.Error(),
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to open image file",
			Error:   err.Error(),
		})
	}
	defer file.Close()

	url, err := utils.UploadToCloudinary(file, fmt.Sprintf("product-%d", product.ID), "shop")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload image",
			Error:   err.Error(),
		})
	}

	product.ImageURL = url
	if err := db.DB.Save(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save product image",
			Error:   err.Error(),
		})
	}
	return c.JSON(product)
}
