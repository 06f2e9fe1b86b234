package service

import (
	"context"
	"strings"
	"time"

	"sharely/internal/domain"
	"sharely/internal/models"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
)

const searchCacheTTL = 30 * time.Second

// ItemService is the item catalog: CRUD restricted to the owner plus text
// search over available items. Search results are cached briefly; any catalog
// write flushes the cache.
type ItemService struct {
	repo     domain.ItemRepository
	users    domain.UserDirectory
	requests domain.RequestRepository
	cache    *gocache.Cache
	logger   *zerolog.Logger
}

func NewItemService(repo domain.ItemRepository, users domain.UserDirectory, requests domain.RequestRepository, logger *zerolog.Logger) *ItemService {
	return &ItemService{
		repo:     repo,
		users:    users,
		requests: requests,
		cache:    gocache.New(searchCacheTTL, 2*searchCacheTTL),
		logger:   logger,
	}
}

func (s *ItemService) AddItem(ctx context.Context, item *models.Item) (*models.Item, error) {
	if _, err := s.users.GetUser(ctx, item.OwnerID); err != nil {
		return nil, err
	}

	if item.RequestID != 0 {
		if _, err := s.requests.GetRequest(ctx, item.RequestID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	s.cache.Flush()

	s.logger.Info().Int64("item_id", item.ID).Int64("owner_id", item.OwnerID).Msg("item added")
	return item, nil
}

func (s *ItemService) UpdateItem(ctx context.Context, itemID, ownerID int64, patch models.ItemPatch) (*models.Item, error) {
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if item.OwnerID != ownerID {
		return nil, domain.ErrNotOwner
	}

	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Available != nil {
		item.Available = *patch.Available
	}

	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	s.cache.Flush()

	return item, nil
}

func (s *ItemService) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	return s.repo.GetItem(ctx, id)
}

func (s *ItemService) GetItemsByOwner(ctx context.Context, ownerID int64) ([]*models.Item, error) {
	return s.repo.GetItemsByOwner(ctx, ownerID)
}

// SearchItems matches available items by case-insensitive substring on name
// or description. Blank text yields an empty result without hitting the
// repository.
func (s *ItemService) SearchItems(ctx context.Context, text string) ([]*models.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []*models.Item{}, nil
	}

	key := strings.ToLower(text)
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]*models.Item), nil
	}

	items, err := s.repo.SearchItems(ctx, text)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*models.Item{}
	}

	s.cache.Set(key, items, searchCacheTTL)
	return items, nil
}
