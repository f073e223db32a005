package inbound

import (
	"context"

	"github.com/ameerhamza-malik/ItemManagement/internal/domain/shared"
)

// ItemService defines the interface for item lifecycle operations
type ItemService interface {
	// CreateItem validates and persists a new item owned by the caller
	CreateItem(ctx context.Context, req CreateItemRequest) (*shared.Item, error)

	// GetItem retrieves a single item by ID
	GetItem(ctx context.Context, itemID int64) (*shared.Item, error)

	// ListItems retrieves one page of the filtered, ordered item sequence
	ListItems(ctx context.Context, req ListItemsRequest) (*shared.ItemPage, error)

	// UpdateItem validates and persists new title/description for an item
	UpdateItem(ctx context.Context, req UpdateItemRequest) (*shared.Item, error)

	// DeleteItem removes an item by ID; deleting an absent ID is not an error
	DeleteItem(ctx context.Context, itemID, actorID int64) error
}

// AuthService defines the interface for registration and identity binding
type AuthService interface {
	// Register creates a new user with a hashed password
	Register(ctx context.Context, req RegisterRequest) (*shared.User, error)

	// Login verifies credentials and establishes a session with an absolute expiry
	Login(ctx context.Context, req LoginRequest) (*shared.Session, error)

	// Logout invalidates a session immediately
	Logout(ctx context.Context, sessionID string) error

	// CurrentUser resolves a session ID to its authenticated user
	CurrentUser(ctx context.Context, sessionID string) (*shared.User, error)
}

// request to create an item
type CreateItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	OwnerID     *int64 `json:"owner_id,omitempty"`
}

// request to list items
type ListItemsRequest struct {
	Search   string `json:"q,omitempty"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	OwnerID  *int64 `json:"owner_id,omitempty"`
}

// request to update an item; id and owner are immutable
type UpdateItemRequest struct {
	ItemID      int64  `json:"item_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ActorID     int64  `json:"actor_id"`
}

// request to register a user
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// request to log in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
