package booking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SyntalysTech/glow-aesthetic-web-sub000/booking"
)

func TestCandidateSlots(t *testing.T) {
	slots := booking.CandidateSlots("2024-01-10")

	require.Len(t, slots, 18)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "09:30", slots[1])
	assert.Equal(t, "17:30", slots[len(slots)-1])

	// The grid does not vary by date
	assert.Equal(t, slots, booking.CandidateSlots("2024-07-21"))
}

func TestAvailableSlotsExcludesBookedTriple(t *testing.T) {
	engine, _ := newTestEngine(t)

	require.NoError(t, engine.AddToCart("s1", 1, "2024-01-10", "09:00", "SpecialistX"))
	_, err := engine.Checkout("s1", 1, "card", true)
	require.NoError(t, err)

	free, err := engine.AvailableSlots("2024-01-10", "SpecialistX")
	require.NoError(t, err)
	assert.NotContains(t, free, "09:00")
	assert.Contains(t, free, "09:30")

	ok, err := engine.IsSlotFree("2024-01-10", "09:00", "SpecialistX")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAvailableSlotsOnlyExactTripleConflicts(t *testing.T) {
	engine, _ := newTestEngine(t)

	require.NoError(t, engine.AddToCart("s1", 1, "2024-01-10", "09:00", "SpecialistX"))
	_, err := engine.Checkout("s1", 1, "card", true)
	require.NoError(t, err)

	// Same time, different specialist
	free, err := engine.AvailableSlots("2024-01-10", "Mara")
	require.NoError(t, err)
	assert.Contains(t, free, "09:00")

	// Same specialist, different date
	free, err = engine.AvailableSlots("2024-01-11", "SpecialistX")
	require.NoError(t, err)
	assert.Contains(t, free, "09:00")
}

func TestCancelledBookingFreesSlot(t *testing.T) {
	engine, _ := newTestEngine(t)

	require.NoError(t, engine.AddToCart("s1", 1, "2024-01-10", "09:00", "SpecialistX"))
	created, err := engine.Checkout("s1", 1, "card", true)
	require.NoError(t, err)

	free, err := engine.AvailableSlots("2024-01-10", "SpecialistX")
	require.NoError(t, err)
	require.NotContains(t, free, "09:00")

	require.NoError(t, engine.Cancel(created.ID))

	free, err = engine.AvailableSlots("2024-01-10", "SpecialistX")
	require.NoError(t, err)
	assert.Contains(t, free, "09:00")
}

func TestAvailableSlotsEmptyLedger(t *testing.T) {
	engine, _ := newTestEngine(t)

	free, err := engine.AvailableSlots("2024-01-10", "SpecialistX")
	require.NoError(t, err)
	assert.Equal(t, booking.CandidateSlots("2024-01-10"), free)
}
