package consumer

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/SyntalysTech/glow-aesthetic-web-sub000/booking"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/db"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/models"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/utils"
)

var engine *booking.Engine

// UseEngine wires the booking engine built in main into the handlers.
func UseEngine(e *booking.Engine) {
	engine = e
}

// cartSession reads the cart session id from the X-Cart-Session header,
// minting a fresh one when the browser has none yet.
func cartSession(c *fiber.Ctx) string {
	session := c.Get("X-Cart-Session")
	if session == "" {
		session = utils.GenerateSessionID()
	}
	c.Set("X-Cart-Session", session)
	return session
}

// GetAvailableSlots returns the free times for a date and specialist
func GetAvailableSlots(c *fiber.Ctx) error {
	date := c.Query("date")
	specialist := c.Query("specialist")
	if date == "" || specialist == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "date and specialist query parameters are required",
		})
	}

	slots, err := engine.AvailableSlots(date, specialist)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{
			Message: "Failed to load available slots",
			Error:   err.Error(),
		})
	}
	if slots == nil {
		slots = []string{}
	}
	return c.JSON(fiber.Map{
		"date":       date,
		"specialist": specialist,
		"slots":      slots,
	})
}

// GetCart returns the session's pending selections
func GetCart(c *fiber.Ctx) error {
	session := cartSession(c)
	lines, err := engine.Cart(session)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{
			Message: "Failed to load cart",
			Error:   err.Error(),
		})
	}
	if lines == nil {
		lines = []booking.CartLine{}
	}
	var total int64
	for _, line := range lines {
		total += line.PriceCents
	}
	return c.JSON(fiber.Map{
		"session":     session,
		"items":       lines,
		"total_cents": total,
	})
}

// AddToCart appends one treatment selection to the session cart
func AddToCart(c *fiber.Ctx) error {
	type AddInput struct {
		ServiceID  uint   `json:"service_id"`
		Date       string `json:"date"`
		Time       string `json:"time"`
		Specialist string `json:"specialist"`
	}

	input := new(AddInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.ServiceID == 0 || input.Date == "" || input.Time == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "service_id, date and time are required",
		})
	}

	session := cartSession(c)
	if err := engine.AddToCart(session, input.ServiceID, input.Date, input.Time, input.Specialist); err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Service not found",
				Error:   err.Error(),
			})
		}
		return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{
			Message: "Failed to add to cart",
			Error:   err.Error(),
		})
	}
	return GetCart(c)
}

// RemoveFromCart drops the cart line at the given index
func RemoveFromCart(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid cart index",
			Error:   err.Error(),
		})
	}

	session := cartSession(c)
	if err := engine.RemoveFromCart(session, index); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{
			Message: "Failed to update cart",
			Error:   err.Error(),
		})
	}
	return GetCart(c)
}

// Checkout converts the cart into a confirmed booking
func Checkout(c *fiber.Ctx) error {
	type CheckoutInput struct {
		PaymentMethod string `json:"payment_method"`
		ConsentSigned bool   `json:"consent_signed"`
	}

	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "User ID not found in context",
		})
	}

	input := new(CheckoutInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.PaymentMethod == "" {
		input.PaymentMethod = "on-site"
	}

	session := cartSession(c)
	result, err := engine.Checkout(session, userID, input.PaymentMethod, input.ConsentSigned)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrConsentRequired):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
				Message: "Treatment consent must be signed before booking",
			})
		case errors.Is(err, booking.ErrEmptyCart):
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Cart is empty",
			})
		case errors.Is(err, booking.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "A selected service no longer exists",
				Error:   err.Error(),
			})
		default:
			return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{
				Message: "Failed to create booking, please try again",
				Error:   err.Error(),
			})
		}
	}

	sendBookingConfirmation(userID, result)

	return c.Status(fiber.StatusCreated).JSON(result)
}

// GetMyBookings lists the customer's bookings, newest first
func GetMyBookings(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "User ID not found in context",
		})
	}

	bookings, err := engine.BookingsForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}
	return c.JSON(bookings)
}

// CancelBooking cancels one of the customer's own bookings
func CancelBooking(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "User ID not found in context",
		})
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid booking ID",
			Error:   err.Error(),
		})
	}

	target, err := engine.Get(uint(id))
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
	if target.CustomerID != userID {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "Access denied",
		})
	}

	if err := engine.Cancel(uint(id)); err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Failed to cancel booking",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Booking cancelled",
	})
}

// sendBookingConfirmation emails the customer their booking summary. Email
// failures are logged, never surfaced; the booking is already committed.
func sendBookingConfirmation(userID uint, b *models.Booking) {
	var customer models.User
	if err := db.DB.First(&customer, userID).Error; err != nil {
		log.Printf("Booking %s: customer %d not found for confirmation email: %v", b.Reference, userID, err)
		return
	}

	items := ""
	for _, item := range b.Items {
		items += fmt.Sprintf("<li><strong>%s</strong> — %s at %s with %s (%s)</li>",
			item.ServiceName, item.Date, item.Time, item.Specialist, models.FormatCHF(item.PriceCents))
	}

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your booking <strong>%s</strong> is confirmed.</p>
		<p><strong>Treatments:</strong></p>
		<ul>%s</ul>
		<p><strong>Total:</strong> %s</p>
		<p><strong>Payment:</strong> %s</p>
		<p>We look forward to seeing you at the studio!</p>
		<p>Glow Aesthetic Studio</p>
	`, customer.Name, b.Reference, items, models.FormatCHF(b.TotalCents), b.PaymentMethod)

	if err := utils.SendEmail(customer.Email, "Your booking at Glow Aesthetic Studio", body); err != nil {
		log.Printf("Booking %s: failed to send confirmation email: %v", b.Reference, err)
	}
}
