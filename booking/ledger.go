package booking

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/SyntalysTech/glow-aesthetic-web-sub000/models"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/utils"
)

// Checkout converts the session's cart into one ledger booking. The booking
// is written in a transaction and the cart is cleared only after the write
// commits, so a failed write leaves the cart intact for retry. Self-service
// bookings auto-confirm; pending is reserved for admin-entered rows.
func (e *Engine) Checkout(session string, customerID uint, paymentMethod string, consentSigned bool) (*models.Booking, error) {
	if !consentSigned {
		return nil, ErrConsentRequired
	}

	lines, err := e.carts.Get(session)
	if err != nil {
		return nil, fmt.Errorf("%w: reading cart: %v", ErrStoreUnavailable, err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	var total int64
	items := make([]models.BookingItem, 0, len(lines))
	for _, line := range lines {
		if _, ok := e.catalog.Find(line.ServiceID); !ok {
			return nil, fmt.Errorf("%w: service %d", ErrNotFound, line.ServiceID)
		}
		total += line.PriceCents
		items = append(items, models.BookingItem{
			ServiceID:   line.ServiceID,
			ServiceName: line.ServiceName,
			PriceCents:  line.PriceCents,
			Date:        line.Date,
			Time:        line.Time,
			Specialist:  line.Specialist,
		})
	}

	booking := models.Booking{
		Reference:     utils.GenerateBookingRef(),
		CustomerID:    customerID,
		Items:         items,
		TotalCents:    total,
		Status:        models.StatusConfirmed,
		PaymentMethod: paymentMethod,
		ConsentSigned: true,
	}

	err = e.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&booking).Error
	})
	if err != nil {
		return nil, fmt.Errorf("%w: creating booking: %v", ErrStoreUnavailable, err)
	}

	// The ledger write is committed; a failed cart clear must not undo it.
	if err := e.carts.Clear(session); err != nil {
		log.Printf("booking %s created but cart %s not cleared: %v", booking.Reference, session, err)
	}

	return &booking, nil
}

// CreateManual enters a booking on a customer's behalf from the back office.
// Unlike self-service checkout it starts as pending and takes its lines
// directly instead of reading a cart; name and price are still snapshotted
// from the catalog.
func (e *Engine) CreateManual(customerID uint, lines []CartLine, paymentMethod string) (*models.Booking, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	var total int64
	items := make([]models.BookingItem, 0, len(lines))
	for _, line := range lines {
		svc, ok := e.catalog.Find(line.ServiceID)
		if !ok {
			return nil, fmt.Errorf("%w: service %d", ErrNotFound, line.ServiceID)
		}
		specialist := line.Specialist
		if specialist == "" {
			specialist = svc.Specialist
		}
		total += svc.PriceCents
		items = append(items, models.BookingItem{
			ServiceID:   svc.ID,
			ServiceName: svc.Name,
			PriceCents:  svc.PriceCents,
			Date:        line.Date,
			Time:        line.Time,
			Specialist:  specialist,
		})
	}

	booking := models.Booking{
		Reference:     utils.GenerateBookingRef(),
		CustomerID:    customerID,
		Items:         items,
		TotalCents:    total,
		Status:        models.StatusPending,
		PaymentMethod: paymentMethod,
		ConsentSigned: true,
	}

	err := e.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&booking).Error
	})
	if err != nil {
		return nil, fmt.Errorf("%w: creating booking: %v", ErrStoreUnavailable, err)
	}
	return &booking, nil
}

// Cancel transitions a booking to cancelled. Cancelling an already-cancelled
// booking silently succeeds; it is terminal either way.
func (e *Engine) Cancel(bookingID uint) error {
	return e.SetStatus(bookingID, models.StatusCancelled)
}

// SetStatus applies one administrative status transition
// (confirm/complete/cancel/no-show) through the booking state machine.
func (e *Engine) SetStatus(bookingID uint, status models.BookingStatus) error {
	var booking models.Booking
	if err := e.db.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: booking %d", ErrNotFound, bookingID)
		}
		return fmt.Errorf("%w: loading booking: %v", ErrStoreUnavailable, err)
	}
	return booking.UpdateStatus(e.db, status)
}

// Get loads one booking with its items.
func (e *Engine) Get(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	err := e.db.Preload("Items").First(&booking, bookingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking %d", ErrNotFound, bookingID)
		}
		return nil, fmt.Errorf("%w: loading booking: %v", ErrStoreUnavailable, err)
	}
	return &booking, nil
}

// BookingsForUser returns the customer's bookings, newest first.
func (e *Engine) BookingsForUser(customerID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := e.db.Preload("Items").
		Where("customer_id = ?", customerID).
		Order("created_at desc").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("%w: listing bookings: %v", ErrStoreUnavailable, err)
	}
	return bookings, nil
}

// AllBookings returns every booking, optionally filtered by status, newest
// first. Back-office listing only.
func (e *Engine) AllBookings(status models.BookingStatus) ([]models.Booking, error) {
	query := e.db.Preload("Items").Preload("Customer").Order("created_at desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("%w: listing bookings: %v", ErrStoreUnavailable, err)
	}
	return bookings, nil
}
