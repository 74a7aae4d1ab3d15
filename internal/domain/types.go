package domain

// ID is used across domain entities.
type ID = int64

// Caller identifies the authenticated requester. A zero UserID means the
// request is anonymous.
type Caller struct {
	UserID  int64
	IsStaff bool
}

func (c Caller) Authenticated() bool { return c.UserID > 0 }
