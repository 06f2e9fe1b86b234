package models

import "time"

// BookingStatus is the stored lifecycle status of a booking.
type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
)

// validTransitions is the single source of truth for status changes.
// WAITING is the only non-terminal status.
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusWaiting:  {StatusApproved, StatusRejected},
	StatusApproved: {},
	StatusRejected: {},
}

// IsValid reports whether the status is a recognized one.
func (s BookingStatus) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

// IsTerminal reports whether no further transitions are possible.
func (s BookingStatus) IsTerminal() bool {
	allowed, ok := validTransitions[s]
	if !ok {
		return true
	}
	return len(allowed) == 0
}

// CanTransitionTo reports whether a transition to target is allowed.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, t := range validTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// BookingRequest is the caller's payload for creating a booking.
type BookingRequest struct {
	ItemID int64     `json:"item_id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

// Booking is a reservation of an item for a time interval. Item and booker
// fields are snapshots taken at creation; OwnerID backs authorization checks
// without a second catalog lookup.
type Booking struct {
	ID         int64         `json:"id"`
	ItemID     int64         `json:"item_id"`
	ItemName   string        `json:"item_name"`
	OwnerID    int64         `json:"owner_id"`
	BookerID   int64         `json:"booker_id"`
	BookerName string        `json:"booker_name"`
	Start      time.Time     `json:"start"`
	End        time.Time     `json:"end"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
}
