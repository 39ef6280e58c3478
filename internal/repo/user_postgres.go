package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/karimhasan/inventory-manager/internal/auth"
	"github.com/karimhasan/inventory-manager/internal/models"
)

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

const userColumns = `id, username, first_name, last_name, email, phone, password_hash, created_at, updated_at`

func (r *PostgresUserRepository) GetByUsername(username string) (models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var u models.User
	err := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username).
		Scan(&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}

	u.Roles, err = r.rolesOf(ctx, r.db, u.ID)
	return u, err
}

func (r *PostgresUserRepository) GetByID(id int) (models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var u models.User
	err := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}

	u.Roles, err = r.rolesOf(ctx, r.db, u.ID)
	return u, err
}

func (r *PostgresUserRepository) GetAll() ([]models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range users {
		users[i].Roles, err = r.rolesOf(ctx, r.db, users[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return users, nil
}

func (r *PostgresUserRepository) CreateUser(u models.User, role string) (models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.User{}, err
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	err = tx.QueryRowContext(ctx, `
		INSERT INTO users (username, first_name, last_name, email, phone, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		u.Username, u.FirstName, u.LastName, u.Email, u.Phone, u.PasswordHash, now, now).Scan(&u.ID)
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") {
			return models.User{}, ErrDuplicatedValueUnique
		}
		return models.User{}, err
	}

	if err := assignRole(ctx, tx, u.ID, role); err != nil {
		return models.User{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.User{}, err
	}

	u.Roles = []string{role}
	u.CreatedAt = now
	u.UpdatedAt = now
	return u, nil
}

// UpdateUser edits profile fields and replaces the user's roles with newRole
// in one transaction. The Admin membership rows are locked before counting so
// two concurrent demotions of the last Admin cannot both pass the guard.
func (r *PostgresUserRepository) UpdateUser(u models.User, newRole string) (models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.User{}, err
	}
	defer tx.Rollback()

	currentRoles, err := r.rolesOf(ctx, tx, u.ID)
	if err != nil {
		return models.User{}, err
	}

	adminCount, err := lockAndCountRole(ctx, tx, auth.RoleAdmin)
	if err != nil {
		return models.User{}, err
	}
	if err := auth.CanChangeRole(currentRoles, newRole, adminCount); err != nil {
		return models.User{}, err
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE users SET first_name = $1, last_name = $2, email = $3, phone = $4, updated_at = $5
		WHERE id = $6`,
		u.FirstName, u.LastName, u.Email, u.Phone, time.Now().UTC(), u.ID)
	if err != nil {
		return models.User{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.User{}, ErrUserNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM user_roles WHERE user_id = $1`, u.ID); err != nil {
		return models.User{}, err
	}
	if err := assignRole(ctx, tx, u.ID, newRole); err != nil {
		return models.User{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.User{}, err
	}
	return r.GetByID(u.ID)
}

func (r *PostgresUserRepository) DeleteUser(id int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	currentRoles, err := r.rolesOf(ctx, tx, id)
	if err != nil {
		return err
	}

	adminCount, err := lockAndCountRole(ctx, tx, auth.RoleAdmin)
	if err != nil {
		return err
	}
	if err := auth.CanDeleteUser(currentRoles, adminCount); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return tx.Commit()
}

func (r *PostgresUserRepository) CountUsersInRole(role string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM user_roles ur
		JOIN roles r ON ur.role_id = r.id
		WHERE r.name = $1`, role).Scan(&count)
	return count, err
}

func (r *PostgresUserRepository) CreateRole(name string) (models.Role, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var role models.Role
	role.Name = name
	err := r.db.QueryRowContext(ctx, `INSERT INTO roles (name) VALUES ($1) RETURNING id`, name).Scan(&role.ID)
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") {
			return models.Role{}, ErrDuplicatedValueUnique
		}
		return models.Role{}, err
	}
	return role, nil
}

func (r *PostgresUserRepository) Roles() ([]models.Role, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM roles ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []models.Role
	for rows.Next() {
		var role models.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (r *PostgresUserRepository) rolesOf(ctx context.Context, q querier, userID int) ([]string, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT r.name FROM user_roles ur
		JOIN roles r ON ur.role_id = r.id
		WHERE ur.user_id = $1
		ORDER BY r.id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		roles = append(roles, name)
	}
	return roles, rows.Err()
}

// lockAndCountRole locks the membership rows of the role and returns their
// count. Counting over locked rows keeps the guard stable for the rest of
// the transaction.
func lockAndCountRole(ctx context.Context, tx *sql.Tx, role string) (int, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT ur.user_id FROM user_roles ur
		JOIN roles r ON ur.role_id = r.id
		WHERE r.name = $1
		FOR UPDATE OF ur`, role)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return 0, err
		}
		count++
	}
	return count, rows.Err()
}

func assignRole(ctx context.Context, tx *sql.Tx, userID int, role string) error {
	res, err := tx.ExecContext(ctx, `
		INSERT INTO user_roles (user_id, role_id)
		SELECT $1, id FROM roles WHERE name = $2`, userID, role)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrRoleNotFound, role)
	}
	return nil
}
