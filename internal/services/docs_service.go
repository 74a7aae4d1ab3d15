package services

import (
	"bytes"
	"fmt"

	"staybook/internal/domain/models"
	"staybook/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the booking confirmation PDF.
type DocsService struct {
	RequestID string
}

// BookingConfirmation builds the PDF and suggests a filename.
func (s DocsService) BookingConfirmation(booking models.Booking, customerName string) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "docs", "confirmation_pdf", fmt.Sprintf("booking_id=%d", booking.ID))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Confirmation", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING CONFIRMATION")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking        : #%d (%s)", booking.ID, booking.Status),
		fmt.Sprintf("Guest name     : %s", safe(customerName)),
		fmt.Sprintf("Accommodation  : %s", safe(booking.AccommodationName)),
		fmt.Sprintf("Room type      : %s", safe(booking.RoomTypeName)),
		fmt.Sprintf("Package        : %s", safe(booking.PackageName)),
		fmt.Sprintf("Check-in       : %s", utils.FormatDate(booking.CheckIn)),
		fmt.Sprintf("Check-out      : %s", utils.FormatDate(booking.CheckOut)),
		fmt.Sprintf("Guests         : %d", booking.Guests),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Nightly rates")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
	for _, li := range booking.LineItems {
		pdf.Cell(0, 6, fmt.Sprintf("%s : %s KRW", utils.FormatDate(li.Date), utils.FormatKRW(li.RetailPrice)))
		pdf.Ln(6)
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total : %s KRW", utils.FormatKRW(booking.TotalRetail())))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this confirmation at check-in. Cancellation terms follow the accommodation's policy.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("booking-%d-confirmation.pdf", booking.ID)
	return buf.Bytes(), filename, nil
}

func safe(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
