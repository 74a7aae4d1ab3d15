package services

import (
	"bytes"
	"testing"
	"time"

	"staybook/internal/domain/models"
)

func TestBookingConfirmationPDF(t *testing.T) {
	checkIn, _ := time.ParseInLocation("2006-01-02", "2026-03-01", time.Local)
	booking := models.Booking{
		ID:                77,
		Status:            models.BookingApproved,
		PackageName:       "Breakfast Package",
		RoomTypeName:      "Deluxe Double",
		AccommodationName: "Seoul Stay",
		CheckIn:           checkIn,
		CheckOut:          checkIn.AddDate(0, 0, 2),
		Guests:            2,
		LineItems: []models.BookingLineItem{
			{Date: checkIn, RetailPrice: 150000, CostPrice: 120000},
			{Date: checkIn.AddDate(0, 0, 1), RetailPrice: 90000, CostPrice: 70000},
		},
	}

	svc := DocsService{}
	pdf, filename, err := svc.BookingConfirmation(booking, "Hong Gildong")
	if err != nil {
		t.Fatalf("BookingConfirmation returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("BookingConfirmation returned empty data")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF")
	}
	if filename != "booking-77-confirmation.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}
