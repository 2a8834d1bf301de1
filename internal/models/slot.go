package models

import "time"

type Slot struct {
	ID          int       `json:"id"`
	MenuID      int       `json:"menu_id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	MaxCapacity int       `json:"max_capacity,omitempty"`
}

// NewSlot is a candidate slot in a bulk create request, before it has an id.
type NewSlot struct {
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	MaxCapacity int       `json:"max_capacity"`
}

// SlotCount pairs a slot with the number of bookings currently holding a unit
// of its capacity. Cancelled bookings are never counted.
type SlotCount struct {
	Slot
	ActiveBookings int `json:"-"`
}
