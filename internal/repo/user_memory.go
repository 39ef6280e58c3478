package repo

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/karimhasan/inventory-manager/internal/auth"
	"github.com/karimhasan/inventory-manager/internal/models"
)

// InMemoryUserRepository mirrors the postgres implementation for tests. The
// mutex serialises the guard-and-mutate sequences the postgres version runs
// inside a transaction.
type InMemoryUserRepository struct {
	mu     sync.Mutex
	users  []models.User
	roles  []models.Role
	nextID int
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users:  []models.User{},
		roles:  []models.Role{},
		nextID: 1,
	}
}

func (r *InMemoryUserRepository) GetByUsername(username string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *InMemoryUserRepository) GetByID(id int) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *InMemoryUserRepository) GetAll() ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *InMemoryUserRepository) CreateUser(u models.User, role string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Username == u.Username {
			return models.User{}, ErrDuplicatedValueUnique
		}
	}
	if !r.roleExists(role) {
		return models.User{}, fmt.Errorf("%w: %s", ErrRoleNotFound, role)
	}

	u.ID = r.nextID
	u.Roles = []string{role}
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	r.nextID++
	r.users = append(r.users, u)
	return u, nil
}

func (r *InMemoryUserRepository) UpdateUser(u models.User, newRole string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, user := range r.users {
		if user.ID == u.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.User{}, ErrUserNotFound
	}
	if !r.roleExists(newRole) {
		return models.User{}, fmt.Errorf("%w: %s", ErrRoleNotFound, newRole)
	}

	if err := auth.CanChangeRole(r.users[idx].Roles, newRole, r.countInRole(auth.RoleAdmin)); err != nil {
		return models.User{}, err
	}

	r.users[idx].FirstName = u.FirstName
	r.users[idx].LastName = u.LastName
	r.users[idx].Email = u.Email
	r.users[idx].Phone = u.Phone
	r.users[idx].Roles = []string{newRole}
	r.users[idx].UpdatedAt = time.Now().UTC()
	return r.users[idx], nil
}

func (r *InMemoryUserRepository) DeleteUser(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, user := range r.users {
		if user.ID == id {
			if err := auth.CanDeleteUser(user.Roles, r.countInRole(auth.RoleAdmin)); err != nil {
				return err
			}
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return ErrUserNotFound
}

func (r *InMemoryUserRepository) CountUsersInRole(role string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.countInRole(role), nil
}

func (r *InMemoryUserRepository) CreateRole(name string) (models.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.roleExists(name) {
		return models.Role{}, ErrDuplicatedValueUnique
	}
	role := models.Role{ID: len(r.roles) + 1, Name: name}
	r.roles = append(r.roles, role)
	return role, nil
}

func (r *InMemoryUserRepository) Roles() ([]models.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Role, len(r.roles))
	copy(out, r.roles)
	return out, nil
}

func (r *InMemoryUserRepository) countInRole(role string) int {
	count := 0
	for _, user := range r.users {
		if slices.Contains(user.Roles, role) {
			count++
		}
	}
	return count
}

func (r *InMemoryUserRepository) roleExists(name string) bool {
	for _, role := range r.roles {
		if role.Name == name {
			return true
		}
	}
	return false
}
