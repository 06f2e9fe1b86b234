package api

import (
	"net/http"
	"strings"

	"sharely/internal/models"
)

func (s *HTTPServer) handleBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "missing or invalid "+headerCallerID+" header")
		return
	}

	switch r.Method {
	case http.MethodPost:
		s.createBooking(w, r, userID)
	case http.MethodGet:
		bookings, err := s.bookings.GetBookingsForUser(r.Context(), userID, r.URL.Query().Get("state"))
		if err != nil {
			s.writeDomainError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, bookings)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *HTTPServer) handleBookingSubpath(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "missing or invalid "+headerCallerID+" header")
		return
	}

	if strings.TrimPrefix(r.URL.Path, "/bookings/") == "owner" {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		bookings, err := s.bookings.GetBookingsForOwner(r.Context(), userID, r.URL.Query().Get("state"))
		if err != nil {
			s.writeDomainError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, bookings)
		return
	}

	bookingID, ok := pathID(r.URL.Path, "/bookings/")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}

	switch r.Method {
	case http.MethodGet:
		booking, err := s.bookings.GetBookingByID(r.Context(), bookingID, userID)
		if err != nil {
			s.writeDomainError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, booking)
	case http.MethodPatch:
		s.approveBooking(w, r, bookingID, userID)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *HTTPServer) createBooking(w http.ResponseWriter, r *http.Request, bookerID int64) {
	var req models.BookingRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.ItemID <= 0 {
		writeError(w, http.StatusBadRequest, "item_id is required")
		return
	}
	if req.Start.IsZero() || req.End.IsZero() {
		writeError(w, http.StatusBadRequest, "start and end are required")
		return
	}

	booking, err := s.bookings.CreateBooking(r.Context(), &req, bookerID)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (s *HTTPServer) approveBooking(w http.ResponseWriter, r *http.Request, bookingID, ownerID int64) {
	var approved bool
	switch r.URL.Query().Get("approved") {
	case "true":
		approved = true
	case "false":
		approved = false
	default:
		writeError(w, http.StatusBadRequest, "approved must be true or false")
		return
	}

	booking, err := s.bookings.ApproveBooking(r.Context(), bookingID, ownerID, approved)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}
