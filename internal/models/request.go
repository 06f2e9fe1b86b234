package models

import "time"

// ItemRequest is a user's "looking for" note that owners can answer with items.
type ItemRequest struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	RequestorID int64     `json:"requestor_id"`
	Created     time.Time `json:"created"`
}
