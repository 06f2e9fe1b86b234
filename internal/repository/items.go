package repository

import (
	"context"
	"strings"
	"sync"

	"sharely/internal/domain"
	"sharely/internal/models"
)

// MemoryItemRepository keeps item records in a mutex-guarded map.
type MemoryItemRepository struct {
	mu    sync.RWMutex
	items map[int64]models.Item
	seq   sequence
}

func NewMemoryItemRepository() *MemoryItemRepository {
	return &MemoryItemRepository{items: make(map[int64]models.Item)}
}

func (r *MemoryItemRepository) CreateItem(ctx context.Context, item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.seq.Next()
	r.items[item.ID] = *item
	return nil
}

func (r *MemoryItemRepository) UpdateItem(ctx context.Context, item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return domain.ErrItemNotFound
	}
	r.items[item.ID] = *item
	return nil
}

func (r *MemoryItemRepository) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return &item, nil
}

func (r *MemoryItemRepository) GetItemsByOwner(ctx context.Context, ownerID int64) ([]*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []*models.Item
	for id := range r.items {
		if r.items[id].OwnerID == ownerID {
			item := r.items[id]
			items = append(items, &item)
		}
	}
	return items, nil
}

// SearchItems scans available items for a case-insensitive substring match on
// name or description. Blank-text handling is the service's concern.
func (r *MemoryItemRepository) SearchItems(ctx context.Context, text string) ([]*models.Item, error) {
	needle := strings.ToLower(text)

	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []*models.Item
	for id := range r.items {
		item := r.items[id]
		if !item.Available {
			continue
		}
		if strings.Contains(strings.ToLower(item.Name), needle) ||
			strings.Contains(strings.ToLower(item.Description), needle) {
			items = append(items, &item)
		}
	}
	return items, nil
}
