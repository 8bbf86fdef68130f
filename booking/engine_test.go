package booking_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/SyntalysTech/glow-aesthetic-web-sub000/booking"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Service{},
		&models.Booking{},
		&models.BookingItem{},
	))
	return gdb
}

func testCatalog() *booking.Catalog {
	return booking.NewCatalog([]models.Service{
		{Model: gorm.Model{ID: 1}, Name: "Signature Glow Facial", Category: models.CategoryFace, PriceCents: 10000, DurationMin: 60, Specialist: "SpecialistX"},
		{Model: gorm.Model{ID: 2}, Name: "Spa Manicure", Category: models.CategoryNails, PriceCents: 8000, DurationMin: 45, Specialist: "SpecialistX"},
		{Model: gorm.Model{ID: 3}, Name: "Relaxing Massage", Category: models.CategoryMassage, PriceCents: 10000, DurationMin: 50, Specialist: "Mara"},
	})
}

func newTestEngine(t *testing.T) (*booking.Engine, *booking.MemoryCartStore) {
	t.Helper()
	carts := booking.NewMemoryCartStore()
	return booking.NewEngine(newTestDB(t), testCatalog(), carts), carts
}

// failingCartStore simulates an unreachable cart backend.
type failingCartStore struct{}

func (failingCartStore) Get(string) ([]booking.CartLine, error) { return nil, errors.New("down") }
func (failingCartStore) Put(string, []booking.CartLine) error   { return errors.New("down") }
func (failingCartStore) Clear(string) error                     { return errors.New("down") }

func TestEngineCartStoreUnavailable(t *testing.T) {
	engine := booking.NewEngine(newTestDB(t), testCatalog(), failingCartStore{})

	err := engine.AddToCart("s1", 1, "2024-01-10", "09:00", "")
	require.ErrorIs(t, err, booking.ErrStoreUnavailable)

	_, err = engine.Cart("s1")
	require.ErrorIs(t, err, booking.ErrStoreUnavailable)

	_, err = engine.Checkout("s1", 7, "card", true)
	require.ErrorIs(t, err, booking.ErrStoreUnavailable)

	// Nothing may have reached the ledger
	bookings, err := engine.AllBookings("")
	require.NoError(t, err)
	require.Empty(t, bookings)
}
