package outbound

import (
	"context"

	"github.com/ameerhamza-malik/ItemManagement/internal/domain/shared"
)

// ListFilter narrows and pages the item sequence. All values are passed to
// the storage layer as bound parameters, never interpolated into query text.
type ListFilter struct {
	// Search matches title or description as a case-insensitive substring
	Search string

	// OwnerID restricts results to items owned by a specific user
	OwnerID *int64

	// Page is 1-based and must be clamped to >= 1 by the caller
	Page int

	// PageSize is the number of items per page
	PageSize int
}

// ItemRepository defines the interface for item data operations
type ItemRepository interface {
	// Create creates a new item and fills in its assigned ID and creation time
	Create(ctx context.Context, item *shared.Item) error

	// GetByID retrieves an item by ID
	GetByID(ctx context.Context, id int64) (*shared.Item, error)

	// List retrieves one page of items plus the total count matching the
	// same filter independent of pagination. Results are ordered by
	// creation time descending, ties broken by ID descending.
	List(ctx context.Context, filter ListFilter) ([]*shared.Item, int, error)

	// Update persists new title and description for an item
	Update(ctx context.Context, item *shared.Item) error

	// Delete deletes an item; returns ErrItemNotFound when no row matched
	Delete(ctx context.Context, id int64) error
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// Create creates a new user and fills in its assigned ID and creation
	// time; returns ErrDuplicateIdentity when username or email is taken
	Create(ctx context.Context, user *shared.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id int64) (*shared.User, error)

	// GetByUsername retrieves a user by username
	GetByUsername(ctx context.Context, username string) (*shared.User, error)

	// ExistsByUsernameOrEmail reports whether either identity is taken
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

// SessionStore defines the interface for session identity bindings
type SessionStore interface {
	// Save persists a session until its absolute expiry
	Save(ctx context.Context, session *shared.Session) error

	// Get retrieves a session by ID; returns ErrSessionNotFound when absent
	Get(ctx context.Context, id string) (*shared.Session, error)

	// Delete invalidates a session immediately; absent IDs are not an error
	Delete(ctx context.Context, id string) error
}
