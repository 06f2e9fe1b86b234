package api

import (
	"net/http"
	"strings"

	"sharely/internal/models"
)

func (s *HTTPServer) handleItems(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.addItem(w, r)
	case http.MethodGet:
		s.listOwnItems(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *HTTPServer) handleItemSubpath(w http.ResponseWriter, r *http.Request) {
	if strings.TrimPrefix(r.URL.Path, "/items/") == "search" {
		s.searchItems(w, r)
		return
	}

	id, ok := pathID(r.URL.Path, "/items/")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	switch r.Method {
	case http.MethodGet:
		item, err := s.items.GetItem(r.Context(), id)
		if err != nil {
			s.writeDomainError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, item)
	case http.MethodPatch:
		s.updateItem(w, r, id)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

type itemPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
	RequestID   int64  `json:"request_id"`
}

func (s *HTTPServer) addItem(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := callerID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "missing or invalid "+headerCallerID+" header")
		return
	}

	var payload itemPayload
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(payload.Name) == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if strings.TrimSpace(payload.Description) == "" {
		writeError(w, http.StatusBadRequest, "description is required")
		return
	}
	if payload.Available == nil {
		writeError(w, http.StatusBadRequest, "available is required")
		return
	}

	item := models.Item{
		Name:        payload.Name,
		Description: payload.Description,
		Available:   *payload.Available,
		OwnerID:     ownerID,
		RequestID:   payload.RequestID,
	}

	created, err := s.items.AddItem(r.Context(), &item)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *HTTPServer) updateItem(w http.ResponseWriter, r *http.Request, itemID int64) {
	ownerID, ok := callerID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "missing or invalid "+headerCallerID+" header")
		return
	}

	var patch models.ItemPatch
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	item, err := s.items.UpdateItem(r.Context(), itemID, ownerID, patch)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *HTTPServer) listOwnItems(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := callerID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "missing or invalid "+headerCallerID+" header")
		return
	}

	items, err := s.items.GetItemsByOwner(r.Context(), ownerID)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	if items == nil {
		items = []*models.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *HTTPServer) searchItems(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	items, err := s.items.SearchItems(r.Context(), r.URL.Query().Get("text"))
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
