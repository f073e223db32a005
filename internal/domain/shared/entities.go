package shared

import (
	"time"
)

// User represents an authenticated user in the system
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	// PasswordHash holds the bcrypt-derived value; never the raw password,
	// never serialized, never logged
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Item represents a managed item, optionally owned by a user
type Item struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OwnerID     *int64    `json:"owner_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Session binds a request to an authenticated user until its absolute expiry
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session passed its absolute expiry
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
