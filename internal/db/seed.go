package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/karimhasan/inventory-manager/internal/auth"
)

// Seed inserts the built-in roles and the bootstrap admin account if they
// are missing. The admin password comes from configuration so deployments
// can override the default.
func Seed(db *sql.DB, adminPassword string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, role := range []string{auth.RoleAdmin, auth.RoleStaff} {
		_, err := db.ExecContext(ctx, `INSERT INTO roles (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, role)
		if err != nil {
			return fmt.Errorf("failed to seed role %s: %w", role, err)
		}
	}

	var adminID int
	err := db.QueryRowContext(ctx, `SELECT id FROM users WHERE username = $1`, "Admin").Scan(&adminID)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	err = db.QueryRowContext(ctx,
		`INSERT INTO users (username, first_name, last_name, email, password_hash)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		"Admin", "System", "Administrator", "admin@gmail.com", string(hash)).Scan(&adminID)
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO user_roles (user_id, role_id) SELECT $1, id FROM roles WHERE name = $2`,
		adminID, auth.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to assign admin role: %w", err)
	}

	return nil
}
