package models

import "time"

type User struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number"`
	Avatar      string    `json:"avatar,omitempty"`
	Points      int64     `json:"points"`
	IsStaff     bool      `json:"is_staff"`
	CreatedDate time.Time `json:"created_date"`
}

// Guest identifies a non-registered customer by contact info. Guest
// bookings are looked up with the booking id plus this phone number.
type Guest struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email,omitempty"`
}
