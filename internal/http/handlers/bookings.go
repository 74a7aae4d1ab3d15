package handlers

import (
	"net/http"

	"staybook/internal/http/middleware"
	"staybook/internal/repositories"
	"staybook/internal/services"

	"github.com/gin-gonic/gin"
)

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		BookingRepo:  repositories.BookingRepo{},
		PackageRepo:  repositories.PackageRepo{},
		RoomTypeRepo: repositories.RoomTypeRepo{},
		UserRepo:     repositories.UserRepo{},
		Mailer:       mailer,
		RequestID:    middleware.GetRequestID(c),
	}
}

func paymentService(c *gin.Context) services.PaymentService {
	return services.PaymentService{
		PaymentRepo: repositories.PaymentRepo{},
		BookingSvc:  bookingService(c),
		RequestID:   middleware.GetRequestID(c),
	}
}

// POST /api/v1/bookings
func CreateBooking(c *gin.Context) {
	var body struct {
		PackageID int64                  `json:"package_id"`
		CheckIn   string                 `json:"check_in"`
		CheckOut  string                 `json:"check_out"`
		Guests    int                    `json:"guests"`
		Guest     *services.GuestPayload `json:"guest"`
	}
	if !BindJSONOrError(c, &body) {
		return
	}

	booking, err := bookingService(c).Create(middleware.GetCaller(c), services.CreateBookingInput{
		PackageID:   body.PackageID,
		CheckInRaw:  body.CheckIn,
		CheckOutRaw: body.CheckOut,
		Guests:      body.Guests,
		Guest:       body.Guest,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// GET /api/v1/bookings/:id?phone=
// Guests pass their phone number to prove ownership.
func GetBooking(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	booking, err := bookingService(c).Get(middleware.GetCaller(c), id, c.Query("phone"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// POST /api/v1/bookings/:id/cancel-request
func RequestBookingCancellation(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	booking, err := bookingService(c).RequestCancellation(middleware.GetCaller(c), id, c.Query("phone"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// GET /api/v1/bookings/:id/confirmation.pdf?phone=
func GetBookingConfirmation(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	svc := bookingService(c)
	booking, err := svc.Get(middleware.GetCaller(c), id, c.Query("phone"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	customerName := ""
	if booking.GuestID != 0 {
		if guest, err := svc.BookingRepo.GetGuest(booking.GuestID); err == nil {
			customerName = guest.Name
		}
	} else if booking.UserID != 0 {
		if user, err := svc.UserRepo.GetByID(booking.UserID); err == nil {
			customerName = user.LastName + user.FirstName
		}
	}

	docs := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := docs.BookingConfirmation(booking, customerName)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// POST /api/v1/bookings/:id/payments
func CreatePayment(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	var body struct {
		Amount int64  `json:"amount"`
		Method string `json:"method"`
	}
	if !BindJSONOrError(c, &body) {
		return
	}

	payment, err := paymentService(c).Create(middleware.GetCaller(c), services.CreatePaymentInput{
		BookingID:  id,
		Amount:     body.Amount,
		Method:     body.Method,
		GuestPhone: c.Query("phone"),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// GET /api/v1/bookings/:id/payments?phone=
func ListBookingPayments(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	payments, err := paymentService(c).ListForBooking(middleware.GetCaller(c), id, c.Query("phone"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}
