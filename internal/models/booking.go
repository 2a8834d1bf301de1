package models

import "time"

const (
	BookingStatusOK        = "ok"
	BookingStatusPending   = "pending"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	ID         int       `json:"id"`
	SlotID     int       `json:"slot_id"`
	UserID     string    `json:"user_id,omitempty"`
	GuestName  string    `json:"guest_name,omitempty"`
	GuestEmail string    `json:"guest_email,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// Holder identifies who a booking is for: an authenticated user id, or a
// guest name and email when there is no account.
type Holder struct {
	UserID     string
	GuestName  string
	GuestEmail string
}

// Actor identifies who is asking to cancel a booking. OwnerKey authorizes the
// menu owner, UserID or GuestEmail the original holder.
type Actor struct {
	OwnerKey   string
	UserID     string
	GuestEmail string
}
