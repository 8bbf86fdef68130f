package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/SyntalysTech/glow-aesthetic-web-sub000/db"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/models"
	"github.com/SyntalysTech/glow-aesthetic-web-sub000/utils"
)

// StartCronJobs initializes and starts the cron scheduler for booking reminders
func StartCronJobs() {
	c := cron.New()
	// Every evening at 18:00, remind customers about tomorrow's treatments
	_, err := c.AddFunc("0 18 * * *", sendBookingReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for booking reminders")
}

// sendBookingReminders finds confirmed bookings with treatments tomorrow and
// emails their customers
func sendBookingReminders() {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	var items []models.BookingItem
	err := db.DB.
		Joins("JOIN bookings ON bookings.id = booking_items.booking_id").
		Where("booking_items.slot_date = ?", tomorrow).
		Where("bookings.status = ?", models.StatusConfirmed).
		Find(&items).Error
	if err != nil {
		log.Printf("Error fetching bookings for reminders: %v", err)
		return
	}

	// One email per booking even when several treatments fall on the same day
	byBooking := make(map[uint][]models.BookingItem)
	for _, item := range items {
		byBooking[item.BookingID] = append(byBooking[item.BookingID], item)
	}

	log.Printf("Found %d bookings with treatments on %s", len(byBooking), tomorrow)

	for bookingID, bookingItems := range byBooking {
		var booking models.Booking
		if err := db.DB.Preload("Customer").First(&booking, bookingID).Error; err != nil {
			log.Printf("Failed to load booking %d for reminder: %v", bookingID, err)
			continue
		}
		if err := sendReminderEmail(&booking, bookingItems); err != nil {
			log.Printf("Failed to send reminder for booking %s: %v", booking.Reference, err)
			continue
		}
		log.Printf("Sent reminder for booking %s to %s", booking.Reference, booking.Customer.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(booking *models.Booking, items []models.BookingItem) error {
	subject := fmt.Sprintf("Reminder: your treatments tomorrow (%s)", booking.Reference)

	list := ""
	for _, item := range items {
		list += fmt.Sprintf("<li><strong>%s</strong> at %s with %s</li>", item.ServiceName, item.Time, item.Specialist)
	}

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder of your treatments tomorrow:</p>
		<ul>%s</ul>
		<p>Please arrive a few minutes early. If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Glow Aesthetic Studio</p>
	`, booking.Customer.Name, list)

	return utils.SendEmail(booking.Customer.Email, subject, body)
}
