package admin

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/SyntalysTech/glow-aesthetic-web-sub000/booking"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/models"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/utils"
)

var engine *booking.Engine

// UseEngine wires the booking engine built in main into the handlers.
func UseEngine(e *booking.Engine) {
	engine = e
}

// GetAllBookings lists every booking, optionally filtered by ?status=
func GetAllBookings(c *fiber.Ctx) error {
	status := models.BookingStatus(c.Query("status"))
	bookings, err := engine.AllBookings(status)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}
	for i := range bookings {
		bookings[i].Customer.Password = ""
	}
	return c.JSON(fiber.Map{
		"bookings": bookings,
		"count":    len(bookings),
	})
}

// GetBooking returns one booking with its items
func GetBooking(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid booking ID",
			Error:   err.Error(),
		})
	}

	result, err := engine.Get(uint(id))
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Booking not found",
			})
		}
		return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{
			Message: "Failed to load booking",
			Error:   err.Error(),
		})
	}
	return c.JSON(result)
}

// CreateBooking enters a booking manually (phone or walk-in customers).
// Manual entries start as pending until the studio confirms them.
func CreateBooking(c *fiber.Ctx) error {
	type CreateInput struct {
		CustomerID    uint               `json:"customer_id"`
		Lines         []booking.CartLine `json:"lines"`
		PaymentMethod string             `json:"payment_method"`
	}

	input := new(CreateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.CustomerID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "customer_id is required",
		})
	}
	if input.PaymentMethod == "" {
		input.PaymentMethod = "on-site"
	}

	result, err := engine.CreateManual(input.CustomerID, input.Lines, input.PaymentMethod)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrEmptyCart):
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "At least one line is required",
			})
		case errors.Is(err, booking.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "A selected service does not exist",
				Error:   err.Error(),
			})
		default:
			return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{
				Message: "Failed to create booking",
				Error:   err.Error(),
			})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// UpdateBookingStatus applies a confirm/complete/cancel/no-show transition
func UpdateBookingStatus(c *fiber.Ctx) error {
	type StatusInput struct {
		Status models.BookingStatus `json:"status"`
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid booking ID",
			Error:   err.Error(),
		})
	}

	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	switch input.Status {
	case models.StatusConfirmed, models.StatusCompleted, models.StatusCancelled, models.StatusNoShow:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Unknown status",
		})
	}

	if err := engine.SetStatus(uint(id), input.Status); err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Booking not found",
			})
		}
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Status transition not allowed",
			Error:   err.Error(),
		})
	}

	result, err := engine.Get(uint(id))
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{
			Message: "Failed to reload booking",
			Error:   err.Error(),
		})
	}
	return c.JSON(result)
}
