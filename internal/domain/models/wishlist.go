package models

// Wishlist holds a user's saved accommodations. One wishlist per user.
type Wishlist struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	UserID int64  `json:"-"`

	Username       string          `json:"username"`
	Accommodations []Accommodation `json:"accommodations"`
}
