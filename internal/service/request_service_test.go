package service

import (
	"context"
	"testing"
	"time"

	"sharely/internal/domain"
	"sharely/internal/models"
	"sharely/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestService(t *testing.T) {
	ctx := context.Background()
	users := NewUserService(repository.NewMemoryUserRepository(), testLogger())
	svc := NewRequestService(repository.NewMemoryRequestRepository(), users, testLogger())

	base := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	clock := base
	svc.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	alice, err := users.CreateUser(ctx, &models.User{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	bob, err := users.CreateUser(ctx, &models.User{Name: "Bob", Email: "bob@example.com"})
	require.NoError(t, err)

	t.Run("create stamps created time", func(t *testing.T) {
		req, err := svc.CreateRequest(ctx, &models.ItemRequest{Description: "need a tent", RequestorID: alice.ID})
		require.NoError(t, err)
		assert.Positive(t, req.ID)
		assert.False(t, req.Created.IsZero())
	})

	t.Run("create for unknown user", func(t *testing.T) {
		_, err := svc.CreateRequest(ctx, &models.ItemRequest{Description: "x", RequestorID: 999})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("own requests newest first", func(t *testing.T) {
		second, err := svc.CreateRequest(ctx, &models.ItemRequest{Description: "need a kayak", RequestorID: alice.ID})
		require.NoError(t, err)

		got, err := svc.GetRequestsForUser(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, second.ID, got[0].ID)
	})

	t.Run("own requests for unknown user", func(t *testing.T) {
		_, err := svc.GetRequestsForUser(ctx, 999)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("others excludes own and paginates", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			_, err := svc.CreateRequest(ctx, &models.ItemRequest{Description: "bob wants things", RequestorID: bob.ID})
			require.NoError(t, err)
		}

		got, err := svc.GetAllRequests(ctx, alice.ID, 0, 10)
		require.NoError(t, err)
		assert.Len(t, got, 3)
		for _, req := range got {
			assert.Equal(t, bob.ID, req.RequestorID)
		}

		page, err := svc.GetAllRequests(ctx, alice.ID, 1, 1)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, got[1].ID, page[0].ID)

		empty, err := svc.GetAllRequests(ctx, alice.ID, 10, 5)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("pagination validation", func(t *testing.T) {
		_, err := svc.GetAllRequests(ctx, alice.ID, -1, 10)
		assert.ErrorIs(t, err, domain.ErrInvalidPagination)

		_, err = svc.GetAllRequests(ctx, alice.ID, 0, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidPagination)
	})

	t.Run("get by id", func(t *testing.T) {
		req, err := svc.CreateRequest(ctx, &models.ItemRequest{Description: "need a pump", RequestorID: bob.ID})
		require.NoError(t, err)

		got, err := svc.GetRequest(ctx, req.ID)
		require.NoError(t, err)
		assert.Equal(t, "need a pump", got.Description)

		_, err = svc.GetRequest(ctx, 9999)
		assert.ErrorIs(t, err, domain.ErrRequestNotFound)
	})
}
