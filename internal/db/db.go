package db

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// ErrDuplicate is returned when an insert violates a uniqueness constraint
var ErrDuplicate = errors.New("duplicate record")

// ErrNotFound is returned when a lookup matches no row
var ErrNotFound = errors.New("record not found")

// DB wraps the database connection
type DB struct {
	*sql.DB
	dbPath string
}

// Init initializes the database connection and runs migrations
func Init(dbPath string) (*DB, error) {
	// Ensure data directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	sqlDB, err := sql.Open("sqlite", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}

	db := &DB{sqlDB, dbPath}

	if err := db.migrate(); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return db, nil
}

// GetDBPath returns the database file path
func (db *DB) GetDBPath() string {
	return db.dbPath
}

// migrate runs database migrations
func (db *DB) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS watchlists (
			id TEXT PRIMARY KEY,
			user_email TEXT NOT NULL,
			name TEXT NOT NULL,
			tickers TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(user_email, name)
		)`,
		`CREATE TABLE IF NOT EXISTS chat_messages (
			id TEXT PRIMARY KEY,
			user_email TEXT NOT NULL,
			role TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_watchlists_user_email ON watchlists(user_email)`,
		`CREATE INDEX IF NOT EXISTS idx_chat_messages_user_email ON chat_messages(user_email, created_at)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}

// isUniqueConstraintError checks if an error is a sqlite uniqueness violation
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

// CreateUser inserts a new user record. Returns ErrDuplicate when the
// email is already registered; the existing record is left unchanged.
func (db *DB) CreateUser(user *User) error {
	_, err := db.Exec(
		"INSERT INTO users (id, email, password, created_at) VALUES (?, ?, ?, ?)",
		user.ID, user.Email, user.Password, user.CreatedAt,
	)
	if isUniqueConstraintError(err) {
		return ErrDuplicate
	}
	return err
}

// GetUserByEmail retrieves a user by email (case-insensitive)
func (db *DB) GetUserByEmail(email string) (*User, error) {
	user := &User{}
	err := db.QueryRow(
		"SELECT id, email, password, created_at FROM users WHERE email = ?",
		strings.ToLower(email),
	).Scan(&user.ID, &user.Email, &user.Password, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateWatchlist inserts a new watchlist. Returns ErrDuplicate when the
// user already has a watchlist with the same name.
func (db *DB) CreateWatchlist(w *Watchlist) error {
	_, err := db.Exec(
		"INSERT INTO watchlists (id, user_email, name, tickers, created_at) VALUES (?, ?, ?, ?, ?)",
		w.ID, w.UserEmail, w.Name, strings.Join(w.Tickers, ","), w.CreatedAt,
	)
	if isUniqueConstraintError(err) {
		return ErrDuplicate
	}
	return err
}

// ListWatchlists retrieves all watchlists for a user, oldest first
func (db *DB) ListWatchlists(userEmail string) ([]*Watchlist, error) {
	rows, err := db.Query(
		"SELECT id, user_email, name, tickers, created_at FROM watchlists WHERE user_email = ? ORDER BY created_at ASC",
		strings.ToLower(userEmail),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lists []*Watchlist
	for rows.Next() {
		w := &Watchlist{}
		var tickers string
		if err := rows.Scan(&w.ID, &w.UserEmail, &w.Name, &tickers, &w.CreatedAt); err != nil {
			return nil, err
		}
		w.Tickers = splitTickers(tickers)
		lists = append(lists, w)
	}

	return lists, rows.Err()
}

// GetWatchlist retrieves a single watchlist by ID scoped to its owner
func (db *DB) GetWatchlist(userEmail, id string) (*Watchlist, error) {
	w := &Watchlist{}
	var tickers string
	err := db.QueryRow(
		"SELECT id, user_email, name, tickers, created_at FROM watchlists WHERE id = ? AND user_email = ?",
		id, strings.ToLower(userEmail),
	).Scan(&w.ID, &w.UserEmail, &w.Name, &tickers, &w.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	w.Tickers = splitTickers(tickers)
	return w, nil
}

// DeleteWatchlist deletes a watchlist by ID scoped to its owner
func (db *DB) DeleteWatchlist(userEmail, id string) error {
	result, err := db.Exec(
		"DELETE FROM watchlists WHERE id = ? AND user_email = ?",
		id, strings.ToLower(userEmail),
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateChatMessage appends a message to a user's copilot thread
func (db *DB) CreateChatMessage(m *ChatMessage) error {
	_, err := db.Exec(
		"INSERT INTO chat_messages (id, user_email, role, content, created_at) VALUES (?, ?, ?, ?, ?)",
		m.ID, m.UserEmail, m.Role, m.Content, m.CreatedAt,
	)
	return err
}

// ListChatMessages retrieves a user's copilot thread in chronological order
func (db *DB) ListChatMessages(userEmail string) ([]*ChatMessage, error) {
	rows, err := db.Query(
		"SELECT id, user_email, role, content, created_at FROM chat_messages WHERE user_email = ? ORDER BY created_at ASC",
		strings.ToLower(userEmail),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*ChatMessage
	for rows.Next() {
		m := &ChatMessage{}
		if err := rows.Scan(&m.ID, &m.UserEmail, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}

// DeleteChatMessages clears a user's copilot thread
func (db *DB) DeleteChatMessages(userEmail string) error {
	_, err := db.Exec("DELETE FROM chat_messages WHERE user_email = ?", strings.ToLower(userEmail))
	return err
}

func splitTickers(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
