package db

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents an account holder. The Password field carries the
// bcrypt hash, never plaintext, and is excluded from JSON.
type User struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Watchlist represents a named group of tickers owned by a user
type Watchlist struct {
	ID        string    `json:"id" db:"id"`
	UserEmail string    `json:"-" db:"user_email"`
	Name      string    `json:"name" db:"name"`
	Tickers   []string  `json:"tickers" db:"tickers"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ChatMessage represents a single turn of the research copilot thread
type ChatMessage struct {
	ID        string    `json:"id" db:"id"`
	UserEmail string    `json:"-" db:"user_email"`
	Role      string    `json:"role" db:"role"` // user or assistant
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewUser creates a new User with a generated UUID. Emails are stored
// lower-cased so lookups are case-insensitive.
func NewUser(email, passwordHash string) *User {
	return &User{
		ID:        uuid.New().String(),
		Email:     strings.ToLower(email),
		Password:  passwordHash,
		CreatedAt: time.Now(),
	}
}

// NewWatchlist creates a new Watchlist with a generated UUID
func NewWatchlist(userEmail, name string, tickers []string) *Watchlist {
	return &Watchlist{
		ID:        uuid.New().String(),
		UserEmail: strings.ToLower(userEmail),
		Name:      name,
		Tickers:   tickers,
		CreatedAt: time.Now(),
	}
}

// NewChatMessage creates a new ChatMessage with a generated UUID
func NewChatMessage(userEmail, role, content string) *ChatMessage {
	return &ChatMessage{
		ID:        uuid.New().String(),
		UserEmail: strings.ToLower(userEmail),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	}
}
