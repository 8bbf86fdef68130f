package models

import (
	"fmt"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// Booking is one checkout's worth of treatment selections. Service names and
// prices are copied onto the items at creation time so later catalog edits
// never alter past bookings.
type Booking struct {
	gorm.Model
	Reference     string        `json:"reference" gorm:"uniqueIndex"`
	CustomerID    uint          `json:"customer_id"`
	Customer      User          `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Items         []BookingItem `json:"items" gorm:"foreignKey:BookingID"`
	TotalCents    int64         `json:"total_cents"`
	Status        BookingStatus `json:"status"`
	PaymentMethod string        `json:"payment_method"`
	ConsentSigned bool          `json:"consent_signed"`
}

// BookingItem is a single (service, date, time, specialist) line.
// Date is "2006-01-02", Time is "15:04".
type BookingItem struct {
	gorm.Model
	BookingID   uint   `json:"booking_id"`
	ServiceID   uint   `json:"service_id"`
	ServiceName string `json:"service_name"`
	PriceCents  int64  `json:"price_cents"`
	Date        string `json:"date" gorm:"column:slot_date"`
	Time        string `json:"time" gorm:"column:slot_time"`
	Specialist  string `json:"specialist"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = StatusPending
	}
	return nil
}

// UpdateStatus applies one status transition and saves the booking.
// Allowed: pending -> confirmed|cancelled, confirmed -> completed|cancelled|no_show.
// Completed, cancelled and no_show are terminal, except that re-cancelling a
// cancelled booking is a silent no-op.
func (b *Booking) UpdateStatus(tx *gorm.DB, newStatus BookingStatus) error {
	if b.Status == StatusCancelled && newStatus == StatusCancelled {
		return nil
	}
	switch b.Status {
	case StatusPending:
		if newStatus != StatusConfirmed && newStatus != StatusCancelled {
			return fmt.Errorf("invalid transition from pending to %s", newStatus)
		}
	case StatusConfirmed:
		if newStatus != StatusCompleted && newStatus != StatusCancelled && newStatus != StatusNoShow {
			return fmt.Errorf("invalid transition from confirmed to %s", newStatus)
		}
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return fmt.Errorf("no transitions allowed from %s", b.Status)
	}

	b.Status = newStatus
	return tx.Save(b).Error
}
