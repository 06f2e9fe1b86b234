package repository

import (
	"context"
	"strings"
	"sync"

	"sharely/internal/domain"
	"sharely/internal/models"
)

// MemoryUserRepository keeps user records in a mutex-guarded map.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[int64]models.User
	seq   sequence
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[int64]models.User)}
}

func (r *MemoryUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = r.seq.Next()
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) GetUser(ctx context.Context, id int64) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (r *MemoryUserRepository) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*models.User, 0, len(r.users))
	for id := range r.users {
		user := r.users[id]
		users = append(users, &user)
	}
	return users, nil
}

func (r *MemoryUserRepository) DeleteUser(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// EmailInUse reports whether another user (excludeID aside) holds the email.
// Comparison is case-insensitive.
func (r *MemoryUserRepository) EmailInUse(ctx context.Context, email string, excludeID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.ID != excludeID && strings.EqualFold(user.Email, email) {
			return true, nil
		}
	}
	return false, nil
}
