package domain

import (
	"context"

	"sharely/internal/models"
)

// UserRepository owns user records and their identity sequence.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
	EmailInUse(ctx context.Context, email string, excludeID int64) (bool, error)
}

// ItemRepository owns item records and their identity sequence.
type ItemRepository interface {
	CreateItem(ctx context.Context, item *models.Item) error
	UpdateItem(ctx context.Context, item *models.Item) error
	GetItem(ctx context.Context, id int64) (*models.Item, error)
	GetItemsByOwner(ctx context.Context, ownerID int64) ([]*models.Item, error)
	SearchItems(ctx context.Context, text string) ([]*models.Item, error)
}

// RequestRepository owns item-request records and their identity sequence.
type RequestRepository interface {
	CreateRequest(ctx context.Context, req *models.ItemRequest) error
	GetRequest(ctx context.Context, id int64) (*models.ItemRequest, error)
	GetRequestsByRequestor(ctx context.Context, userID int64) ([]*models.ItemRequest, error)
	GetRequestsExcludingRequestor(ctx context.Context, userID int64) ([]*models.ItemRequest, error)
}

// BookingRepository owns booking records. It is the only writer of booking
// status; TransitionStatus performs a compare-and-set so concurrent decisions
// on the same booking serialize inside the store.
type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBooking(ctx context.Context, id int64) (*models.Booking, error)
	BookingsWhere(ctx context.Context, match func(*models.Booking) bool) ([]*models.Booking, error)
	TransitionStatus(ctx context.Context, id int64, from, to models.BookingStatus) (*models.Booking, error)
}

// UserDirectory is the narrow lookup contract the booking core needs from the
// user subsystem.
type UserDirectory interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
}

// ItemCatalog is the narrow lookup contract the booking core needs from the
// item subsystem.
type ItemCatalog interface {
	GetItem(ctx context.Context, id int64) (*models.Item, error)
}

// EventPublisher publishes a domain event with a JSON payload.
type EventPublisher interface {
	PublishJSON(eventType string, payload interface{}) error
}

// UserService is the user directory surface consumed by the API layer.
type UserService interface {
	UserDirectory
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// ItemService is the item catalog surface consumed by the API layer.
type ItemService interface {
	ItemCatalog
	AddItem(ctx context.Context, item *models.Item) (*models.Item, error)
	UpdateItem(ctx context.Context, itemID, ownerID int64, patch models.ItemPatch) (*models.Item, error)
	GetItemsByOwner(ctx context.Context, ownerID int64) ([]*models.Item, error)
	SearchItems(ctx context.Context, text string) ([]*models.Item, error)
}

// RequestService is the item-request surface consumed by the API layer.
type RequestService interface {
	CreateRequest(ctx context.Context, req *models.ItemRequest) (*models.ItemRequest, error)
	GetRequest(ctx context.Context, id int64) (*models.ItemRequest, error)
	GetRequestsForUser(ctx context.Context, userID int64) ([]*models.ItemRequest, error)
	GetAllRequests(ctx context.Context, userID int64, from, size int) ([]*models.ItemRequest, error)
}

// BookingService is the booking lifecycle surface consumed by the API layer.
type BookingService interface {
	CreateBooking(ctx context.Context, req *models.BookingRequest, bookerID int64) (*models.Booking, error)
	ApproveBooking(ctx context.Context, bookingID, ownerID int64, approved bool) (*models.Booking, error)
	GetBookingByID(ctx context.Context, bookingID, requesterID int64) (*models.Booking, error)
	GetBookingsForUser(ctx context.Context, userID int64, state string) ([]*models.Booking, error)
	GetBookingsForOwner(ctx context.Context, ownerID int64, state string) ([]*models.Booking, error)
}
