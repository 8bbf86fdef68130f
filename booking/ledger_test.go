package booking_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SyntalysTech/glow-aesthetic-web-sub000/booking"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/models"
)

func TestCheckoutTwoTreatments(t *testing.T) {
	engine, _ := newTestEngine(t)

	// Service 1 costs CHF 100, service 2 costs CHF 80
	require.NoError(t, engine.AddToCart("s1", 1, "2024-01-10", "09:00", "SpecialistX"))
	require.NoError(t, engine.AddToCart("s1", 2, "2024-01-10", "10:00", "SpecialistX"))

	created, err := engine.Checkout("s1", 7, "card", true)
	require.NoError(t, err)

	assert.Equal(t, int64(18000), created.TotalCents)
	assert.Equal(t, models.StatusConfirmed, created.Status)
	assert.Equal(t, uint(7), created.CustomerID)
	assert.True(t, created.ConsentSigned)
	assert.NotEmpty(t, created.Reference)
	require.Len(t, created.Items, 2)
	assert.Equal(t, "Signature Glow Facial", created.Items[0].ServiceName)
	assert.Equal(t, int64(10000), created.Items[0].PriceCents)

	// Cart is empty after a successful checkout
	lines, err := engine.Cart("s1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCheckoutTotalIsExactSum(t *testing.T) {
	for n := 1; n <= 10; n++ {
		t.Run(fmt.Sprintf("%d_lines", n), func(t *testing.T) {
			engine, _ := newTestEngine(t)

			var want int64
			for i := 0; i < n; i++ {
				serviceID := uint(i%3 + 1)
				svc, ok := engine.Catalog().Find(serviceID)
				require.True(t, ok)
				want += svc.PriceCents
				slot := fmt.Sprintf("%02d:00", 9+i)
				require.NoError(t, engine.AddToCart("s1", serviceID, "2024-01-10", slot, ""))
			}

			created, err := engine.Checkout("s1", 7, "card", true)
			require.NoError(t, err)
			assert.Equal(t, want, created.TotalCents)

			var sum int64
			for _, item := range created.Items {
				sum += item.PriceCents
			}
			assert.Equal(t, created.TotalCents, sum)
		})
	}
}

func TestCheckoutConsentGate(t *testing.T) {
	engine, _ := newTestEngine(t)

	require.NoError(t, engine.AddToCart("s1", 1, "2024-01-10", "09:00", ""))

	_, err := engine.Checkout("s1", 7, "card", false)
	require.ErrorIs(t, err, booking.ErrConsentRequired)

	// Neither the ledger nor the cart was touched
	bookings, err := engine.AllBookings("")
	require.NoError(t, err)
	assert.Empty(t, bookings)

	lines, err := engine.Cart("s1")
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestCheckoutEmptyCart(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.Checkout("s1", 7, "card", true)
	require.ErrorIs(t, err, booking.ErrEmptyCart)
}

func TestCheckoutStaleServiceLeavesCartIntact(t *testing.T) {
	engine, carts := newTestEngine(t)

	// A line referencing a service that no longer exists, planted directly
	// in the store the way a stale browser session would leave it
	stale := []booking.CartLine{{ServiceID: 99, ServiceName: "Gone", PriceCents: 5000, Date: "2024-01-10", Time: "09:00", Specialist: "X"}}
	require.NoError(t, carts.Put("s1", stale))

	_, err := engine.Checkout("s1", 7, "card", true)
	require.ErrorIs(t, err, booking.ErrNotFound)

	lines, err := engine.Cart("s1")
	require.NoError(t, err)
	assert.Equal(t, stale, lines)

	bookings, err := engine.AllBookings("")
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestCheckoutLedgerWriteFailureLeavesCartIntact(t *testing.T) {
	db := newTestDB(t)
	carts := booking.NewMemoryCartStore()
	engine := booking.NewEngine(db, testCatalog(), carts)

	require.NoError(t, engine.AddToCart("s1", 1, "2024-01-10", "09:00", ""))

	// Take the ledger table away so the transactional write fails after
	// the cart has been read
	require.NoError(t, db.Migrator().DropTable(&models.Booking{}))

	_, err := engine.Checkout("s1", 7, "card", true)
	require.ErrorIs(t, err, booking.ErrStoreUnavailable)

	lines, err := engine.Cart("s1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, uint(1), lines[0].ServiceID)
}

func TestCancelBooking(t *testing.T) {
	engine, _ := newTestEngine(t)

	require.NoError(t, engine.AddToCart("s1", 1, "2024-01-10", "09:00", ""))
	created, err := engine.Checkout("s1", 7, "card", true)
	require.NoError(t, err)

	require.NoError(t, engine.Cancel(created.ID))

	reloaded, err := engine.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, reloaded.Status)

	// Cancelling again silently succeeds
	require.NoError(t, engine.Cancel(created.ID))
}

func TestCancelUnknownBooking(t *testing.T) {
	engine, _ := newTestEngine(t)
	require.ErrorIs(t, engine.Cancel(12345), booking.ErrNotFound)
}

func TestCancelledIsTerminal(t *testing.T) {
	engine, _ := newTestEngine(t)

	require.NoError(t, engine.AddToCart("s1", 1, "2024-01-10", "09:00", ""))
	created, err := engine.Checkout("s1", 7, "card", true)
	require.NoError(t, err)
	require.NoError(t, engine.Cancel(created.ID))

	for _, status := range []models.BookingStatus{models.StatusPending, models.StatusConfirmed, models.StatusCompleted, models.StatusNoShow} {
		err := engine.SetStatus(created.ID, status)
		require.Error(t, err, "cancelled booking must not transition to %s", status)
	}

	reloaded, err := engine.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, reloaded.Status)
}

func TestStatusTransitions(t *testing.T) {
	engine, _ := newTestEngine(t)

	lines := []booking.CartLine{{ServiceID: 1, Date: "2024-01-10", Time: "09:00"}}
	created, err := engine.CreateManual(7, lines, "on-site")
	require.NoError(t, err)
	require.Equal(t, models.StatusPending, created.Status)

	// pending -> completed is not allowed
	require.Error(t, engine.SetStatus(created.ID, models.StatusCompleted))

	require.NoError(t, engine.SetStatus(created.ID, models.StatusConfirmed))
	require.NoError(t, engine.SetStatus(created.ID, models.StatusCompleted))

	// completed is terminal
	require.Error(t, engine.SetStatus(created.ID, models.StatusCancelled))
}

func TestConfirmedToNoShow(t *testing.T) {
	engine, _ := newTestEngine(t)

	require.NoError(t, engine.AddToCart("s1", 1, "2024-01-10", "09:00", ""))
	created, err := engine.Checkout("s1", 7, "card", true)
	require.NoError(t, err)

	require.NoError(t, engine.SetStatus(created.ID, models.StatusNoShow))

	// no_show is terminal
	require.Error(t, engine.SetStatus(created.ID, models.StatusConfirmed))
}

func TestCreateManualSnapshotsCatalogPrices(t *testing.T) {
	engine, _ := newTestEngine(t)

	lines := []booking.CartLine{
		// Prices on the input lines are ignored; the catalog is authoritative
		{ServiceID: 1, PriceCents: 1, Date: "2024-01-10", Time: "09:00"},
		{ServiceID: 2, PriceCents: 1, Date: "2024-01-10", Time: "10:00", Specialist: "Sofia"},
	}
	created, err := engine.CreateManual(7, lines, "invoice")
	require.NoError(t, err)

	assert.Equal(t, int64(18000), created.TotalCents)
	assert.Equal(t, "SpecialistX", created.Items[0].Specialist)
	assert.Equal(t, "Sofia", created.Items[1].Specialist)

	_, err = engine.CreateManual(7, nil, "invoice")
	require.ErrorIs(t, err, booking.ErrEmptyCart)

	_, err = engine.CreateManual(7, []booking.CartLine{{ServiceID: 99}}, "invoice")
	require.ErrorIs(t, err, booking.ErrNotFound)
}

func TestBookingsForUserNewestFirst(t *testing.T) {
	engine, _ := newTestEngine(t)

	require.NoError(t, engine.AddToCart("s1", 1, "2024-01-10", "09:00", ""))
	first, err := engine.Checkout("s1", 7, "card", true)
	require.NoError(t, err)

	require.NoError(t, engine.AddToCart("s1", 2, "2024-01-11", "10:00", ""))
	second, err := engine.Checkout("s1", 7, "card", true)
	require.NoError(t, err)

	// Another customer's booking must not appear
	require.NoError(t, engine.AddToCart("s2", 3, "2024-01-12", "11:00", ""))
	_, err = engine.Checkout("s2", 8, "card", true)
	require.NoError(t, err)

	bookings, err := engine.BookingsForUser(7)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, second.ID, bookings[0].ID)
	assert.Equal(t, first.ID, bookings[1].ID)
	require.Len(t, bookings[0].Items, 1)
}

func TestAllBookingsStatusFilter(t *testing.T) {
	engine, _ := newTestEngine(t)

	require.NoError(t, engine.AddToCart("s1", 1, "2024-01-10", "09:00", ""))
	confirmed, err := engine.Checkout("s1", 7, "card", true)
	require.NoError(t, err)

	require.NoError(t, engine.AddToCart("s1", 2, "2024-01-10", "10:00", ""))
	cancelled, err := engine.Checkout("s1", 7, "card", true)
	require.NoError(t, err)
	require.NoError(t, engine.Cancel(cancelled.ID))

	all, err := engine.AllBookings("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyConfirmed, err := engine.AllBookings(models.StatusConfirmed)
	require.NoError(t, err)
	require.Len(t, onlyConfirmed, 1)
	assert.Equal(t, confirmed.ID, onlyConfirmed[0].ID)
}
