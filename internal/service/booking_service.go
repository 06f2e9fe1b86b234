package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"sharely/internal/domain"
	"sharely/internal/events"
	"sharely/internal/models"

	"github.com/rs/zerolog"
)

// BookingService implements the booking lifecycle: creation, approval,
// authorized retrieval and state-filtered listings. It consumes the user and
// item subsystems only through their lookup contracts and never mutates them.
type BookingService struct {
	repo     domain.BookingRepository
	users    domain.UserDirectory
	items    domain.ItemCatalog
	eventBus domain.EventPublisher
	logger   *zerolog.Logger
	now      func() time.Time
}

func NewBookingService(repo domain.BookingRepository, users domain.UserDirectory, items domain.ItemCatalog, eventBus domain.EventPublisher, logger *zerolog.Logger) *BookingService {
	return &BookingService{
		repo:     repo,
		users:    users,
		items:    items,
		eventBus: eventBus,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateBooking validates the request and persists a new WAITING booking.
// Checks run in a fixed order and the first failure wins; nothing is stored
// unless all of them pass. The item's availability flag is left untouched, so
// overlapping WAITING bookings on one item are permitted.
func (s *BookingService) CreateBooking(ctx context.Context, req *models.BookingRequest, bookerID int64) (*models.Booking, error) {
	booker, err := s.users.GetUser(ctx, bookerID)
	if err != nil {
		return nil, err
	}

	item, err := s.items.GetItem(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}

	if !item.Available {
		return nil, domain.ErrItemUnavailable
	}
	if item.OwnerID == bookerID {
		return nil, domain.ErrSelfBooking
	}
	if !req.Start.Before(req.End) {
		return nil, domain.ErrInvalidInterval
	}

	booking := &models.Booking{
		ItemID:     item.ID,
		ItemName:   item.Name,
		OwnerID:    item.OwnerID,
		BookerID:   booker.ID,
		BookerName: booker.Name,
		Start:      req.Start,
		End:        req.End,
		Status:     models.StatusWaiting,
		CreatedAt:  s.now(),
	}

	if err := s.repo.CreateBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info().
		Int64("booking_id", booking.ID).
		Int64("item_id", booking.ItemID).
		Int64("booker_id", booking.BookerID).
		Msg("booking created")

	s.publishEvent(events.EventBookingCreated, booking)

	return booking, nil
}

// ApproveBooking records the owner's decision on a WAITING booking. The
// status change itself is a compare-and-set inside the store, so a second
// decision on the same booking always fails with ErrAlreadyDecided.
func (s *BookingService) ApproveBooking(ctx context.Context, bookingID, ownerID int64, approved bool) (*models.Booking, error) {
	booking, err := s.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.OwnerID != ownerID {
		return nil, domain.ErrNotOwner
	}
	if booking.Status != models.StatusWaiting {
		return nil, domain.ErrAlreadyDecided
	}

	target := models.StatusRejected
	eventType := events.EventBookingRejected
	if approved {
		target = models.StatusApproved
		eventType = events.EventBookingApproved
	}

	booking, err = s.repo.TransitionStatus(ctx, bookingID, models.StatusWaiting, target)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("booking_id", booking.ID).
		Int64("owner_id", ownerID).
		Str("status", string(booking.Status)).
		Msg("booking decided")

	s.publishEvent(eventType, booking)

	return booking, nil
}

// GetBookingByID returns the booking to its booker or to the item's owner.
// Anyone else gets ErrBookingNotFound so existence is not revealed.
func (s *BookingService) GetBookingByID(ctx context.Context, bookingID, requesterID int64) (*models.Booking, error) {
	booking, err := s.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.BookerID != requesterID && booking.OwnerID != requesterID {
		return nil, domain.ErrBookingNotFound
	}
	return booking, nil
}

// GetBookingsForUser lists the user's bookings as booker, newest start first,
// filtered by state.
func (s *BookingService) GetBookingsForUser(ctx context.Context, userID int64, state string) ([]*models.Booking, error) {
	return s.listBookings(ctx, userID, state, func(b *models.Booking) bool {
		return b.BookerID == userID
	})
}

// GetBookingsForOwner lists bookings of the user's items, newest start first,
// filtered by state.
func (s *BookingService) GetBookingsForOwner(ctx context.Context, ownerID int64, state string) ([]*models.Booking, error) {
	return s.listBookings(ctx, ownerID, state, func(b *models.Booking) bool {
		return b.OwnerID == ownerID
	})
}

func (s *BookingService) listBookings(ctx context.Context, userID int64, state string, role func(*models.Booking) bool) ([]*models.Booking, error) {
	// The user check surfaces unknown ids early even though the result does
	// not depend on user attributes.
	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	bookingState, err := ParseBookingState(state)
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.BookingsWhere(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	sort.Slice(bookings, func(i, j int) bool {
		if !bookings[i].Start.Equal(bookings[j].Start) {
			return bookings[i].Start.After(bookings[j].Start)
		}
		return bookings[i].ID < bookings[j].ID
	})

	now := s.now()
	filtered := make([]*models.Booking, 0, len(bookings))
	for _, booking := range bookings {
		if bookingState.Matches(booking, now) {
			filtered = append(filtered, booking)
		}
	}
	return filtered, nil
}

func (s *BookingService) publishEvent(eventType string, booking *models.Booking) {
	if s.eventBus == nil {
		return
	}

	payload := events.BookingEventPayload{
		BookingID: booking.ID,
		ItemID:    booking.ItemID,
		ItemName:  booking.ItemName,
		OwnerID:   booking.OwnerID,
		BookerID:  booking.BookerID,
		Status:    string(booking.Status),
		Start:     booking.Start,
		End:       booking.End,
	}

	if err := s.eventBus.PublishJSON(eventType, payload); err != nil {
		s.logger.Error().Err(err).Str("event_type", eventType).Int64("booking_id", booking.ID).Msg("publish event error")
	}
}
