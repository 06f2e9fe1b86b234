package models

type Item struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"owner_id"`
	// RequestID links the item to the request it answers; 0 means none.
	RequestID int64 `json:"request_id,omitempty"`
}

// ItemPatch carries a partial update; nil fields stay unchanged.
type ItemPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}
