package models

import "time"

const (
	KindReservation = "reservation"
	KindAdjustment  = "adjustment"
)

type Menu struct {
	ID              int       `json:"id"`
	Kind            string    `json:"kind"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"duration_minutes,omitempty"`
	OwnerKey        string    `json:"-"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
}
