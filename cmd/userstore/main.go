package main

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"userAccountStore/internal/config"
	"userAccountStore/repository"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("load config", "err", err)
	}
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	log.Info("configuration loaded", "config", cfg)

	// Open store
	store, err := repository.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("open store", "err", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("close store", "err", err)
		}
	}()

	ctx := context.Background()

	// Create some test users
	seed := []struct {
		username, password, email string
		isAdmin                   bool
	}{
		{"admin", "password123", "admin@example.com", true},
		{"john_doe", "mypassword", "john@example.com", false},
		{"jane_smith", "secret456", "jane@example.com", false},
	}
	for _, u := range seed {
		created, err := store.CreateUser(ctx, u.username, u.password, u.email, u.isAdmin)
		if err != nil {
			log.Fatal("create user", "username", u.username, "err", err)
		}
		if !created {
			log.Warn("username already taken", "username", u.username)
		}
	}

	ok, err := store.Authenticate(ctx, "admin", "password123")
	if err != nil {
		log.Fatal("authenticate", "err", err)
	}
	log.Info("authenticate admin", "ok", ok)

	// A quoted username is bound as a literal value; this must never match.
	ok, err = store.Authenticate(ctx, "admin' OR '1'='1", "anything")
	if err != nil {
		log.Fatal("authenticate", "err", err)
	}
	log.Info("authenticate quoted username", "ok", ok)

	if _, err := store.GetPermissions(ctx, "nonexistent_user"); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Fatal("get permissions", "err", err)
		}
		log.Info("permissions lookup rejected", "err", err)
	}

	start := time.Now()
	names, err := store.FindByPrefix(ctx, "j")
	if err != nil {
		log.Fatal("find by prefix", "err", err)
	}
	log.Info("prefix search", "prefix", "j", "usernames", names, "took", time.Since(start))
}
