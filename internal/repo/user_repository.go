package repo

import "github.com/karimhasan/inventory-manager/internal/models"

// UserRepository wraps the user/role store. Mutations that could violate the
// at-least-one-Admin invariant (UpdateUser, DeleteUser) evaluate the guard
// against live store state, atomically with the mutation itself.
type UserRepository interface {
	GetByUsername(username string) (models.User, error)
	GetByID(id int) (models.User, error)
	GetAll() ([]models.User, error)
	// CreateUser stores the user and assigns the named role in one step.
	CreateUser(u models.User, role string) (models.User, error)
	// UpdateUser edits profile fields and replaces the user's roles with
	// newRole as a single atomic operation.
	UpdateUser(u models.User, newRole string) (models.User, error)
	DeleteUser(id int) error
	CountUsersInRole(role string) (int, error)
	CreateRole(name string) (models.Role, error)
	Roles() ([]models.Role, error)
}
