package repository

import (
	"context"
	"sync"

	"sharely/internal/domain"
	"sharely/internal/models"
)

// MemoryRequestRepository keeps item-request records in a mutex-guarded map.
type MemoryRequestRepository struct {
	mu       sync.RWMutex
	requests map[int64]models.ItemRequest
	seq      sequence
}

func NewMemoryRequestRepository() *MemoryRequestRepository {
	return &MemoryRequestRepository{requests: make(map[int64]models.ItemRequest)}
}

func (r *MemoryRequestRepository) CreateRequest(ctx context.Context, req *models.ItemRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	req.ID = r.seq.Next()
	r.requests[req.ID] = *req
	return nil
}

func (r *MemoryRequestRepository) GetRequest(ctx context.Context, id int64) (*models.ItemRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	return &req, nil
}

func (r *MemoryRequestRepository) GetRequestsByRequestor(ctx context.Context, userID int64) ([]*models.ItemRequest, error) {
	return r.where(func(req *models.ItemRequest) bool { return req.RequestorID == userID })
}

func (r *MemoryRequestRepository) GetRequestsExcludingRequestor(ctx context.Context, userID int64) ([]*models.ItemRequest, error) {
	return r.where(func(req *models.ItemRequest) bool { return req.RequestorID != userID })
}

func (r *MemoryRequestRepository) where(match func(*models.ItemRequest) bool) ([]*models.ItemRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var requests []*models.ItemRequest
	for id := range r.requests {
		req := r.requests[id]
		if match(&req) {
			requests = append(requests, &req)
		}
	}
	return requests, nil
}
