package repository

import (
	"context"
	"sync"

	"sharely/internal/domain"
	"sharely/internal/models"
)

// MemoryBookingRepository keeps booking records in a mutex-guarded map. It is
// the authoritative owner of booking status: records leave the store only as
// copies, and the status changes only through TransitionStatus.
type MemoryBookingRepository struct {
	mu       sync.RWMutex
	bookings map[int64]models.Booking
	seq      sequence
}

func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{bookings: make(map[int64]models.Booking)}
}

func (r *MemoryBookingRepository) CreateBooking(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking.ID = r.seq.Next()
	r.bookings[booking.ID] = *booking
	return nil
}

func (r *MemoryBookingRepository) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return &booking, nil
}

// BookingsWhere returns copies of all bookings matching the predicate.
// Order is unspecified; callers sort.
func (r *MemoryBookingRepository) BookingsWhere(ctx context.Context, match func(*models.Booking) bool) ([]*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var bookings []*models.Booking
	for id := range r.bookings {
		booking := r.bookings[id]
		if match(&booking) {
			bookings = append(bookings, &booking)
		}
	}
	return bookings, nil
}

// TransitionStatus moves the booking from one status to another under the
// write lock. If the booking is no longer in the expected status — a racing
// decision got there first — it fails with ErrAlreadyDecided, so exactly one
// of two concurrent decisions wins.
func (r *MemoryBookingRepository) TransitionStatus(ctx context.Context, id int64, from, to models.BookingStatus) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	if booking.Status != from {
		return nil, domain.ErrAlreadyDecided
	}
	if !booking.Status.CanTransitionTo(to) {
		return nil, domain.ErrAlreadyDecided
	}

	booking.Status = to
	r.bookings[id] = booking
	return &booking, nil
}
