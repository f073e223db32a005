package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ameerhamza-malik/ItemManagement/internal/domain/shared"
)

// UserRepository keeps users in memory, enforcing the same identity
// uniqueness the Postgres schema guarantees with constraints
type UserRepository struct {
	mu     sync.RWMutex
	users  map[int64]shared.User
	nextID int64
}

// NewUserRepository creates a new in-memory user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[int64]shared.User), nextID: 1}
}

// Create creates a new user, assigning its ID and creation time
func (r *UserRepository) Create(_ context.Context, user *shared.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return shared.ErrDuplicateIdentity
		}
	}

	user.ID = r.nextID
	r.nextID++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	r.users[user.ID] = *user
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(_ context.Context, id int64) (*shared.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if user, ok := r.users[id]; ok {
		return &user, nil
	}
	return nil, shared.ErrUserNotFound
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(_ context.Context, username string) (*shared.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, shared.ErrUserNotFound
}

// ExistsByUsernameOrEmail reports whether either identity is taken
func (r *UserRepository) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username || user.Email == email {
			return true, nil
		}
	}
	return false, nil
}
