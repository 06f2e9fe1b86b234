package service

import (
	"context"
	"testing"

	"sharely/internal/domain"
	"sharely/internal/models"
	"sharely/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func newItemFixture(t *testing.T) (*ItemService, *UserService, *RequestService) {
	t.Helper()
	users := NewUserService(repository.NewMemoryUserRepository(), testLogger())
	requestRepo := repository.NewMemoryRequestRepository()
	items := NewItemService(repository.NewMemoryItemRepository(), users, requestRepo, testLogger())
	requests := NewRequestService(requestRepo, users, testLogger())
	return items, users, requests
}

func TestItemService(t *testing.T) {
	ctx := context.Background()
	items, users, requests := newItemFixture(t)

	owner, err := users.CreateUser(ctx, &models.User{Name: "Owner", Email: "owner@example.com"})
	require.NoError(t, err)
	other, err := users.CreateUser(ctx, &models.User{Name: "Other", Email: "other@example.com"})
	require.NoError(t, err)

	t.Run("add requires existing owner", func(t *testing.T) {
		_, err := items.AddItem(ctx, &models.Item{Name: "drill", Description: "power drill", Available: true, OwnerID: 999})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("add with unknown request link rejected", func(t *testing.T) {
		_, err := items.AddItem(ctx, &models.Item{Name: "drill", Description: "power drill", Available: true, OwnerID: owner.ID, RequestID: 42})
		assert.ErrorIs(t, err, domain.ErrRequestNotFound)
	})

	t.Run("add with request link", func(t *testing.T) {
		req, err := requests.CreateRequest(ctx, &models.ItemRequest{Description: "need a drill", RequestorID: other.ID})
		require.NoError(t, err)

		item, err := items.AddItem(ctx, &models.Item{Name: "drill", Description: "power drill", Available: true, OwnerID: owner.ID, RequestID: req.ID})
		require.NoError(t, err)
		assert.Positive(t, item.ID)
		assert.Equal(t, req.ID, item.RequestID)
	})

	t.Run("only owner may update", func(t *testing.T) {
		item, err := items.AddItem(ctx, &models.Item{Name: "ladder", Description: "6m ladder", Available: true, OwnerID: owner.ID})
		require.NoError(t, err)

		_, err = items.UpdateItem(ctx, item.ID, other.ID, models.ItemPatch{Available: boolPtr(false)})
		assert.ErrorIs(t, err, domain.ErrNotOwner)

		updated, err := items.UpdateItem(ctx, item.ID, owner.ID, models.ItemPatch{Available: boolPtr(false)})
		require.NoError(t, err)
		assert.False(t, updated.Available)
	})

	t.Run("update unknown item", func(t *testing.T) {
		_, err := items.UpdateItem(ctx, 9999, owner.ID, models.ItemPatch{Name: strPtr("x")})
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("list by owner", func(t *testing.T) {
		owned, err := items.GetItemsByOwner(ctx, owner.ID)
		require.NoError(t, err)
		assert.Len(t, owned, 2)

		owned, err = items.GetItemsByOwner(ctx, other.ID)
		require.NoError(t, err)
		assert.Empty(t, owned)
	})
}

func TestItemSearch(t *testing.T) {
	ctx := context.Background()
	items, users, _ := newItemFixture(t)

	owner, err := users.CreateUser(ctx, &models.User{Name: "Owner", Email: "owner@example.com"})
	require.NoError(t, err)

	_, err = items.AddItem(ctx, &models.Item{Name: "Cordless Drill", Description: "18V", Available: true, OwnerID: owner.ID})
	require.NoError(t, err)
	_, err = items.AddItem(ctx, &models.Item{Name: "Hammer", Description: "includes drill bits", Available: true, OwnerID: owner.ID})
	require.NoError(t, err)
	hidden, err := items.AddItem(ctx, &models.Item{Name: "Broken Drill", Description: "do not lend", Available: false, OwnerID: owner.ID})
	require.NoError(t, err)

	t.Run("matches name and description case-insensitively", func(t *testing.T) {
		found, err := items.SearchItems(ctx, "DRILL")
		require.NoError(t, err)
		assert.Len(t, found, 2)
		for _, item := range found {
			assert.NotEqual(t, hidden.ID, item.ID)
		}
	})

	t.Run("blank text returns empty list", func(t *testing.T) {
		found, err := items.SearchItems(ctx, "   ")
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("catalog writes invalidate cached results", func(t *testing.T) {
		found, err := items.SearchItems(ctx, "drill")
		require.NoError(t, err)
		require.Len(t, found, 2)

		_, err = items.UpdateItem(ctx, hidden.ID, owner.ID, models.ItemPatch{Available: boolPtr(true)})
		require.NoError(t, err)

		found, err = items.SearchItems(ctx, "drill")
		require.NoError(t, err)
		assert.Len(t, found, 3)
	})

	t.Run("no matches", func(t *testing.T) {
		found, err := items.SearchItems(ctx, "excavator")
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}
