package repository

import "context"

// AccountStoreI defines operations on user accounts.
type AccountStoreI interface {
	CreateUser(ctx context.Context, username, password, email string, isAdmin bool) (bool, error)
	Authenticate(ctx context.Context, username, password string) (bool, error)
	GetPermissions(ctx context.Context, username string) (bool, error)
	FindByPrefix(ctx context.Context, prefix string) ([]string, error)
	Close() error
}
