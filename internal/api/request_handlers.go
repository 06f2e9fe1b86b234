package api

import (
	"net/http"
	"strconv"
	"strings"

	"sharely/internal/models"
)

func (s *HTTPServer) handleRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "missing or invalid "+headerCallerID+" header")
		return
	}

	switch r.Method {
	case http.MethodPost:
		var payload struct {
			Description string `json:"description"`
		}
		if err := decodeBody(r, &payload); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if strings.TrimSpace(payload.Description) == "" {
			writeError(w, http.StatusBadRequest, "description is required")
			return
		}

		req := models.ItemRequest{Description: payload.Description, RequestorID: userID}
		created, err := s.requests.CreateRequest(r.Context(), &req)
		if err != nil {
			s.writeDomainError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	case http.MethodGet:
		requests, err := s.requests.GetRequestsForUser(r.Context(), userID)
		if err != nil {
			s.writeDomainError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, requests)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *HTTPServer) handleRequestSubpath(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if strings.TrimPrefix(r.URL.Path, "/requests/") == "all" {
		s.listAllRequests(w, r)
		return
	}

	id, ok := pathID(r.URL.Path, "/requests/")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	req, err := s.requests.GetRequest(r.Context(), id)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (s *HTTPServer) listAllRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "missing or invalid "+headerCallerID+" header")
		return
	}

	from, size := 0, 10
	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid from parameter")
			return
		}
		from = parsed
	}
	if raw := r.URL.Query().Get("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid size parameter")
			return
		}
		size = parsed
	}

	requests, err := s.requests.GetAllRequests(r.Context(), userID, from, size)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}
