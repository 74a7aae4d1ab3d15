package services

import (
	"fmt"

	intconfig "staybook/internal/config"
	"staybook/internal/domain/models"
	"staybook/internal/utils"

	"gopkg.in/gomail.v2"
)

// MailService sends customer notifications. All sends are best-effort: a
// broken SMTP setup must never fail the originating request.
type MailService struct {
	Env intconfig.Env
}

// SendBookingConfirmation mails the booking summary asynchronously.
func (m *MailService) SendBookingConfirmation(requestID, to string, booking models.Booking) {
	if m == nil || m.Env.SMTPHost == "" || to == "" {
		return
	}

	go func() {
		message := gomail.NewMessage()
		message.SetHeader("From", m.Env.MailFrom)
		message.SetHeader("To", to)
		message.SetHeader("Subject", fmt.Sprintf("Booking #%d received - %s", booking.ID, booking.AccommodationName))

		body := fmt.Sprintf(
			"Your booking is %s.\n\nAccommodation: %s\nRoom type: %s\nPackage: %s\nCheck-in: %s\nCheck-out: %s\nGuests: %d\nTotal: %s KRW\n",
			booking.Status,
			booking.AccommodationName,
			booking.RoomTypeName,
			booking.PackageName,
			utils.FormatDate(booking.CheckIn),
			utils.FormatDate(booking.CheckOut),
			booking.Guests,
			utils.FormatKRW(booking.TotalRetail()),
		)
		message.SetBody("text/plain", body)

		dialer := gomail.NewDialer(m.Env.SMTPHost, m.Env.SMTPPort, m.Env.SMTPUser, m.Env.SMTPPass)
		if err := dialer.DialAndSend(message); err != nil {
			utils.LogEvent(requestID, "mail", "booking_confirmation_failed", err.Error())
			return
		}
		utils.LogEvent(requestID, "mail", "booking_confirmation_sent", fmt.Sprintf("booking_id=%d", booking.ID))
	}()
}
