package admin_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/SyntalysTech/glow-aesthetic-web-sub000/booking"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/controllers/admin"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/models"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Service{},
		&models.Booking{},
		&models.BookingItem{},
	))

	catalog := booking.NewCatalog([]models.Service{
		{Model: gorm.Model{ID: 1}, Name: "Signature Glow Facial", Category: models.CategoryFace, PriceCents: 10000, DurationMin: 60, Specialist: "SpecialistX"},
	})
	admin.UseEngine(booking.NewEngine(db, catalog, booking.NewMemoryCartStore()))

	app := fiber.New()
	app.Get("/admin/bookings", admin.GetAllBookings)
	return app, db
}

func TestGetAllBookingsHidesCustomerPassword(t *testing.T) {
	app, db := newTestApp(t)

	hash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	customer := models.User{Name: "Nora", Email: "nora@example.ch", Password: hash}
	require.NoError(t, db.Create(&customer).Error)

	require.NoError(t, db.Create(&models.Booking{
		Reference:     "GLW-TEST01",
		CustomerID:    customer.ID,
		Status:        models.StatusConfirmed,
		TotalCents:    10000,
		ConsentSigned: true,
		Items: []models.BookingItem{
			{ServiceID: 1, ServiceName: "Signature Glow Facial", PriceCents: 10000, Date: "2024-01-10", Time: "09:00", Specialist: "SpecialistX"},
		},
	}).Error)

	req := httptest.NewRequest(fiber.MethodGet, "/admin/bookings", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	// The customer must be embedded, the stored hash must not
	assert.Contains(t, string(body), "nora@example.ch")
	assert.NotContains(t, string(body), hash)

	var payload struct {
		Bookings []models.Booking `json:"bookings"`
		Count    int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	require.Equal(t, 1, payload.Count)
	assert.Empty(t, payload.Bookings[0].Customer.Password)
}
