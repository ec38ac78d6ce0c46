package models

// User represents a stored account.
// It maps to the `users` table in SQLite. PasswordHash is the lower-case hex
// SHA-256 digest of the plaintext password; the plaintext itself is never stored.
type User struct {
	ID           int64  `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password_hash" json:"-"`
	Email        string `db:"email" json:"email"`
	IsAdmin      bool   `db:"is_admin" json:"is_admin"`
}
