package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the bootstrap admin account if it does not exist yet.
// Idempotent: an existing account with the same email is left untouched.
func SeedAdmin(ctx context.Context, logger *slog.Logger, db *sql.DB, email, password string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil
	}

	var exists int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM admins WHERE email = ?`, email).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking admin account: %w", err)
	}
	if exists > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	if _, err := db.ExecContext(ctx, `
		INSERT INTO admins (email, password_hash) VALUES (?, ?)
	`, email, string(hash)); err != nil {
		return fmt.Errorf("creating admin account: %w", err)
	}

	logger.Info("admin account created", "email", email)
	return nil
}
