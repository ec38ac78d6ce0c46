package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"userAccountStore/internal/db"
	"userAccountStore/internal/security"
	"userAccountStore/models"
)

// AccountStore provides durable storage and retrieval of user accounts.
// One instance owns exactly one SQLite handle from Open until Close. It is
// not designed for concurrent use; callers needing concurrency must
// serialize access or use one instance per goroutine.
type AccountStore struct {
	db *sqlx.DB
}

// NewAccountStore wraps an already-open handle. Intended for callers (and
// tests) that manage the handle themselves; such callers also own closing it.
func NewAccountStore(d *sqlx.DB) *AccountStore {
	return &AccountStore{db: d}
}

// Open opens (or creates) the store at path and ensures the users table
// exists. Safe to call against an already-initialized path.
func Open(path string) (*AccountStore, error) {
	d, err := db.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open account store: %w", err)
	}
	return NewAccountStore(d), nil
}

// CreateUser hashes password and inserts a new record, committing before
// returning. Returns (true, nil) on insertion and (false, nil) when username
// is already taken; a taken username is an expected outcome, not a fault.
func (s *AccountStore) CreateUser(ctx context.Context, username, password, email string, isAdmin bool) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	hash := security.HashPassword(password)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, password_hash, email, is_admin) VALUES (?, ?, ?, ?)`,
		username, hash, email, isAdmin)
	if err != nil {
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("create user %q: %w", username, err)
	}
	return true, nil
}

// Authenticate reports whether exactly one record matches both username and
// the digest of password. Username and password are bound as data values, so
// neither can alter the query's structure. Unknown users and wrong passwords
// both yield a plain false; the caller cannot tell the two apart.
func (s *AccountStore) Authenticate(ctx context.Context, username, password string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	hash := security.HashPassword(password)
	var matches []models.User
	err := s.db.SelectContext(ctx, &matches,
		`SELECT id, username, password_hash, email, is_admin FROM users WHERE username = ? AND password_hash = ?`,
		username, hash)
	if err != nil {
		return false, fmt.Errorf("authenticate %q: %w", username, err)
	}
	return len(matches) == 1, nil
}

// GetPermissions returns the is_admin flag for username. Returns ErrNotFound
// when no record matches; there is no silent default.
func (s *AccountStore) GetPermissions(ctx context.Context, username string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var u models.User
	err := s.db.GetContext(ctx, &u,
		`SELECT id, username, password_hash, email, is_admin FROM users WHERE username = ?`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, fmt.Errorf("get permissions: %w: %q", ErrNotFound, username)
		}
		return false, fmt.Errorf("get permissions for %q: %w", username, err)
	}
	return u.IsAdmin, nil
}

// FindByPrefix returns all usernames starting with prefix, in insertion
// order. The predicate is a lexicographic range [prefix, upper) on the unique
// username index, so the engine never hands back rows for the store to
// filter. An empty prefix matches every username; no match returns an empty
// list.
func (s *AccountStore) FindByPrefix(ctx context.Context, prefix string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var usernames []string
	var err error
	if upper, ok := prefixUpperBound(prefix); ok {
		err = s.db.SelectContext(ctx, &usernames,
			`SELECT username FROM users WHERE username >= ? AND username < ? ORDER BY id`, prefix, upper)
	} else {
		err = s.db.SelectContext(ctx, &usernames,
			`SELECT username FROM users WHERE username >= ? ORDER BY id`, prefix)
	}
	if err != nil {
		return nil, fmt.Errorf("find by prefix %q: %w", prefix, err)
	}
	return usernames, nil
}

// prefixUpperBound returns the smallest string greater than every string
// starting with prefix. The second result is false when no finite bound
// exists (empty prefix, or all bytes are 0xff).
func prefixUpperBound(prefix string) (string, bool) {
	b := []byte(prefix)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < 0xff {
			b[i]++
			return string(b[:i+1]), true
		}
	}
	return "", false
}

// Close releases the underlying handle. The store must not be used after
// Close returns.
func (s *AccountStore) Close() error {
	return s.db.Close()
}
