package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sbilibin2017/users-service/internal/models"
)

// UserMemoryRepository is an in-memory implementation of both the user reader and writer.
// It enforces email uniqueness the same way the users table does.
type UserMemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]models.User
	emails map[string]int64
	now    func() time.Time
}

func NewUserMemoryRepository() *UserMemoryRepository {
	return &UserMemoryRepository{
		nextID: 1,
		users:  make(map[int64]models.User),
		emails: make(map[string]int64),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *UserMemoryRepository) Save(_ context.Context, username, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.emails[email]; ok {
		return nil, fmt.Errorf("%w: users_email_key", models.ErrUniqueViolation)
	}

	user := models.User{
		ID:        r.nextID,
		Username:  username,
		Email:     email,
		CreatedAt: r.now(),
	}
	r.nextID++
	r.users[user.ID] = user
	r.emails[email] = user.ID

	return &user, nil
}

func (r *UserMemoryRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.emails[email]
	if !ok {
		return nil, nil
	}
	user := r.users[id]
	return &user, nil
}

func (r *UserMemoryRepository) GetByID(_ context.Context, id int64) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *UserMemoryRepository) List(_ context.Context) ([]models.User, error) {
	users := r.snapshot()
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *UserMemoryRepository) ListByCreatedAtDesc(_ context.Context) ([]models.User, error) {
	users := r.snapshot()
	sort.Slice(users, func(i, j int) bool {
		if !users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].CreatedAt.After(users[j].CreatedAt)
		}
		return users[i].ID > users[j].ID
	})
	return users, nil
}

func (r *UserMemoryRepository) snapshot() []models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	return users
}
