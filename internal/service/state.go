package service

import (
	"strings"
	"time"

	"sharely/internal/domain"
	"sharely/internal/models"
)

// BookingState is a query-time classification of bookings used to filter
// listings. It is distinct from the stored status: CURRENT, PAST and FUTURE
// classify purely by the interval relative to "now" and ignore status, while
// WAITING and REJECTED classify purely by status and ignore time. The six-way
// enum is kept as-is; there is no APPROVED or combined time+status filter.
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
)

// ParseBookingState parses a state token case-insensitively. An empty token
// defaults to ALL; anything unrecognized fails with ErrUnknownState.
func ParseBookingState(token string) (BookingState, error) {
	if token == "" {
		return StateAll, nil
	}

	switch state := BookingState(strings.ToUpper(token)); state {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return state, nil
	default:
		return "", domain.ErrUnknownState
	}
}

// Matches reports whether the booking falls into the state at the given
// instant.
func (s BookingState) Matches(booking *models.Booking, now time.Time) bool {
	switch s {
	case StateCurrent:
		return booking.Start.Before(now) && booking.End.After(now)
	case StatePast:
		return booking.End.Before(now)
	case StateFuture:
		return booking.Start.After(now)
	case StateWaiting:
		return booking.Status == models.StatusWaiting
	case StateRejected:
		return booking.Status == models.StatusRejected
	default:
		return true
	}
}
