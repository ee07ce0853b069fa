package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/cyclelife/doorstep-backend/db"
	"github.com/cyclelife/doorstep-backend/models"
	"github.com/cyclelife/doorstep-backend/utils"
)

// StartCronJobs initializes and starts the cron scheduler for visit reminders
func StartCronJobs() {
	c := cron.New()
	// Every morning at 08:00, remind customers about tomorrow's visits
	_, err := c.AddFunc("0 8 * * *", sendVisitReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for visit reminders")
}

// sendVisitReminders mails customers whose confirmed bookings are due the
// next day.
func sendVisitReminders() {
	now := time.Now()
	tomorrow := now.AddDate(0, 0, 1)
	dayStart := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var bookings []models.Booking
	err := db.DB.Preload("Customer").
		Where("status = ? AND date >= ? AND date < ?", models.StatusConfirmed, dayStart, dayEnd).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error fetching bookings for reminders: %v", err)
		return
	}

	for _, booking := range bookings {
		if err := sendReminderEmail(&booking); err != nil {
			log.Printf("Failed to send reminder for booking %d: %v", booking.ID, err)
			continue
		}
		log.Printf("Sent reminder for booking %d to %s", booking.ID, booking.Customer.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(booking *models.Booking) error {
	subject := fmt.Sprintf("Reminder: Doorstep Service Tomorrow - %s", booking.PackageName)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your doorstep service scheduled tomorrow.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time Slot:</strong> %s</li>
			<li><strong>Address:</strong> %s</li>
		</ul>
		<p>Please keep your cycle accessible. If you need to reschedule, you can do so from your dashboard.</p>
		<p>Best regards,</p>
		<p>Your CycleLife Team</p>
	`, booking.Customer.Name, booking.PackageName,
		utils.ToIST(booking.Date).Format("2006-01-02"), booking.TimeSlot, booking.Address)

	return utils.SendEmail(booking.Customer.Email, subject, body)
}
