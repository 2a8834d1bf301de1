package storage

import (
	"errors"
	"fmt"
)

var (
	ErrMenuNotFound    = errors.New("menu not found")
	ErrSlotNotFound    = errors.New("slot not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrSlotFull        = errors.New("no remaining capacity for this slot")
	ErrSlotInPast      = errors.New("slot is already in the past")
	ErrNotBookable     = errors.New("menu does not take bookings")
	ErrNotOwner        = errors.New("owner key does not match")
	ErrNotAllowed      = errors.New("only the owner or the holder may cancel")
	ErrUnknownSlot     = errors.New("response references a slot outside this menu")
)

// InvalidSlotsError rejects a whole createSlots batch, naming the positions
// of the entries that failed validation. Nothing from the batch is persisted.
type InvalidSlotsError struct {
	Indices []int
}

func (e *InvalidSlotsError) Error() string {
	return fmt.Sprintf("slots at positions %v must start in the future", e.Indices)
}
