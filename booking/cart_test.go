package booking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SyntalysTech/glow-aesthetic-web-sub000/booking"
)

func TestAddToCartSnapshotsServiceFields(t *testing.T) {
	engine, _ := newTestEngine(t)

	require.NoError(t, engine.AddToCart("s1", 2, "2024-01-10", "10:00", ""))

	lines, err := engine.Cart("s1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, uint(2), lines[0].ServiceID)
	assert.Equal(t, "Spa Manicure", lines[0].ServiceName)
	assert.Equal(t, int64(8000), lines[0].PriceCents)
	// Specialist defaults to the service's assigned specialist
	assert.Equal(t, "SpecialistX", lines[0].Specialist)
	assert.Equal(t, "2024-01-10", lines[0].Date)
	assert.Equal(t, "10:00", lines[0].Time)
}

func TestAddToCartUnknownService(t *testing.T) {
	engine, _ := newTestEngine(t)

	err := engine.AddToCart("s1", 99, "2024-01-10", "10:00", "")
	require.ErrorIs(t, err, booking.ErrNotFound)

	lines, err := engine.Cart("s1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestRemoveFromCart(t *testing.T) {
	engine, _ := newTestEngine(t)

	require.NoError(t, engine.AddToCart("s1", 1, "2024-01-10", "09:00", ""))
	require.NoError(t, engine.AddToCart("s1", 2, "2024-01-10", "10:00", ""))

	require.NoError(t, engine.RemoveFromCart("s1", 0))

	lines, err := engine.Cart("s1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, uint(2), lines[0].ServiceID)
}

func TestRemoveFromCartOutOfRangeIsNoOp(t *testing.T) {
	engine, _ := newTestEngine(t)

	require.NoError(t, engine.AddToCart("s1", 1, "2024-01-10", "09:00", ""))

	require.NoError(t, engine.RemoveFromCart("s1", 5))
	require.NoError(t, engine.RemoveFromCart("s1", -1))

	lines, err := engine.Cart("s1")
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestCartsAreIsolatedPerSession(t *testing.T) {
	engine, _ := newTestEngine(t)

	require.NoError(t, engine.AddToCart("s1", 1, "2024-01-10", "09:00", ""))

	lines, err := engine.Cart("s2")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestClearCart(t *testing.T) {
	engine, _ := newTestEngine(t)

	require.NoError(t, engine.AddToCart("s1", 1, "2024-01-10", "09:00", ""))
	require.NoError(t, engine.ClearCart("s1"))

	lines, err := engine.Cart("s1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestMemoryCartStoreCopiesOnReadAndWrite(t *testing.T) {
	store := booking.NewMemoryCartStore()

	in := []booking.CartLine{{ServiceID: 1, Date: "2024-01-10", Time: "09:00"}}
	require.NoError(t, store.Put("s1", in))

	// Mutating the caller's slice must not leak into the store
	in[0].Time = "17:00"

	out, err := store.Get("s1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "09:00", out[0].Time)

	// Mutating a read result must not leak either
	out[0].Time = "12:00"
	again, err := store.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, "09:00", again[0].Time)
}
