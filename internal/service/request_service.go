package service

import (
	"context"
	"sort"
	"time"

	"sharely/internal/domain"
	"sharely/internal/models"

	"github.com/rs/zerolog"
)

// RequestService is the item-request catalog: users post "looking for" notes
// and browse others' requests.
type RequestService struct {
	repo   domain.RequestRepository
	users  domain.UserDirectory
	logger *zerolog.Logger
	now    func() time.Time
}

func NewRequestService(repo domain.RequestRepository, users domain.UserDirectory, logger *zerolog.Logger) *RequestService {
	return &RequestService{repo: repo, users: users, logger: logger, now: time.Now}
}

func (s *RequestService) CreateRequest(ctx context.Context, req *models.ItemRequest) (*models.ItemRequest, error) {
	if _, err := s.users.GetUser(ctx, req.RequestorID); err != nil {
		return nil, err
	}

	req.Created = s.now()
	if err := s.repo.CreateRequest(ctx, req); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("request_id", req.ID).Int64("requestor_id", req.RequestorID).Msg("item request created")
	return req, nil
}

func (s *RequestService) GetRequest(ctx context.Context, id int64) (*models.ItemRequest, error) {
	return s.repo.GetRequest(ctx, id)
}

// GetRequestsForUser lists the user's own requests, newest first.
func (s *RequestService) GetRequestsForUser(ctx context.Context, userID int64) ([]*models.ItemRequest, error) {
	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	requests, err := s.repo.GetRequestsByRequestor(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortByCreatedDesc(requests)
	return requests, nil
}

// GetAllRequests lists other users' requests, newest first, paginated with
// from/size.
func (s *RequestService) GetAllRequests(ctx context.Context, userID int64, from, size int) ([]*models.ItemRequest, error) {
	if from < 0 || size <= 0 {
		return nil, domain.ErrInvalidPagination
	}

	requests, err := s.repo.GetRequestsExcludingRequestor(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortByCreatedDesc(requests)

	if from >= len(requests) {
		return []*models.ItemRequest{}, nil
	}
	end := from + size
	if end > len(requests) {
		end = len(requests)
	}
	return requests[from:end], nil
}

func sortByCreatedDesc(requests []*models.ItemRequest) {
	sort.Slice(requests, func(i, j int) bool {
		if !requests[i].Created.Equal(requests[j].Created) {
			return requests[i].Created.After(requests[j].Created)
		}
		return requests[i].ID < requests[j].ID
	})
}
