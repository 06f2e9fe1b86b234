package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"sharely/internal/domain"
)

// headerCallerID carries the already-authenticated caller's user id.
const headerCallerID = "X-Sharer-User-Id"

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, errorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}

// writeDomainError maps domain error kinds to HTTP status codes in one place.
// Unknown errors become a generic 500; the handler logs them for operators.
func (s *HTTPServer) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrRequestNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNotOwner):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrItemUnavailable),
		errors.Is(err, domain.ErrSelfBooking),
		errors.Is(err, domain.ErrInvalidInterval),
		errors.Is(err, domain.ErrAlreadyDecided),
		errors.Is(err, domain.ErrUnknownState),
		errors.Is(err, domain.ErrInvalidPagination):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("internal error")
		writeError(w, http.StatusInternalServerError, "an unexpected error occurred")
	}
}

// callerID extracts the authenticated user id from the request header.
func callerID(r *http.Request) (int64, bool) {
	raw := strings.TrimSpace(r.Header.Get(headerCallerID))
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// pathID parses the numeric id that follows the given route prefix.
func pathID(path, prefix string) (int64, bool) {
	raw := strings.TrimPrefix(path, prefix)
	if raw == "" || strings.Contains(raw, "/") {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func decodeBody(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}
