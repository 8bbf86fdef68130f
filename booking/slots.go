package booking

import (
	"fmt"

	"github.com/SyntalysTech/glow-aesthetic-web-sub000/models"
)

// Business hours grid: first slot 09:00, last slot 17:30, 30-minute steps.
const (
	openingMinute = 9 * 60
	closingMinute = 17*60 + 30
	slotStepMin   = 30
)

// CandidateSlots returns the full daily grid of bookable times. The grid is
// the same for every date; day-of-week rules live in the date picker, not
// here.
func CandidateSlots(date string) []string {
	var slots []string
	for m := openingMinute; m <= closingMinute; m += slotStepMin {
		slots = append(slots, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return slots
}

// IsSlotFree reports whether no non-cancelled booking holds an item with the
// exact (date, time, specialist) triple. This is the only conflict rule:
// overlapping treatment durations are not checked.
func (e *Engine) IsSlotFree(date, timeOfDay, specialist string) (bool, error) {
	var count int64
	err := e.db.Model(&models.BookingItem{}).
		Joins("JOIN bookings ON bookings.id = booking_items.booking_id").
		Where("booking_items.slot_date = ? AND booking_items.slot_time = ? AND booking_items.specialist = ?",
			date, timeOfDay, specialist).
		Where("bookings.status <> ?", models.StatusCancelled).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("%w: checking slot: %v", ErrStoreUnavailable, err)
	}
	return count == 0, nil
}

// AvailableSlots is the candidate grid with every taken slot removed.
// Recomputed on every call against the current ledger, never cached.
func (e *Engine) AvailableSlots(date, specialist string) ([]string, error) {
	var taken []string
	err := e.db.Model(&models.BookingItem{}).
		Joins("JOIN bookings ON bookings.id = booking_items.booking_id").
		Where("booking_items.slot_date = ? AND booking_items.specialist = ?", date, specialist).
		Where("bookings.status <> ?", models.StatusCancelled).
		Pluck("booking_items.slot_time", &taken).Error
	if err != nil {
		return nil, fmt.Errorf("%w: listing taken slots: %v", ErrStoreUnavailable, err)
	}

	takenSet := make(map[string]bool, len(taken))
	for _, t := range taken {
		takenSet[t] = true
	}

	var free []string
	for _, slot := range CandidateSlots(date) {
		if !takenSet[slot] {
			free = append(free, slot)
		}
	}
	return free, nil
}
