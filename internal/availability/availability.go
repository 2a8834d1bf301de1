// Package availability derives remaining capacity from slot configuration
// and the current count of active bookings. It is pure arithmetic: the
// storage layer, not this package, is responsible for keeping the count
// correct under concurrency.
package availability

type Availability struct {
	RemainingCapacity int  `json:"remaining_capacity"`
	IsAvailable       bool `json:"is_available"`
}

func Compute(maxCapacity, activeBookings int) Availability {
	remaining := maxCapacity - activeBookings
	if remaining < 0 {
		remaining = 0
	}

	return Availability{
		RemainingCapacity: remaining,
		IsAvailable:       remaining > 0,
	}
}
