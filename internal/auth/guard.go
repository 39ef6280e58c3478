package auth

import (
	"errors"
	"slices"
)

// Role names recognised by the invariant guard.
const (
	RoleAdmin = "Admin"
	RoleStaff = "Staff"
)

// ErrLastAdmin is returned when an operation would leave the system without
// any Admin user.
var ErrLastAdmin = errors.New("there must be at least one Admin in the system")

// CanChangeRole reports whether the user's single role may be replaced with
// proposed. currentRoles are the roles the user holds right now and
// adminCount is the live number of users in the Admin role; callers must
// evaluate both inside the same transaction as the mutation.
func CanChangeRole(currentRoles []string, proposed string, adminCount int) error {
	if !slices.Contains(currentRoles, RoleAdmin) {
		return nil
	}
	if proposed == RoleAdmin {
		return nil
	}
	if adminCount <= 1 {
		return ErrLastAdmin
	}
	return nil
}

// CanDeleteUser reports whether the user may be deleted without breaking the
// at-least-one-Admin invariant.
func CanDeleteUser(currentRoles []string, adminCount int) error {
	if !slices.Contains(currentRoles, RoleAdmin) {
		return nil
	}
	if adminCount <= 1 {
		return ErrLastAdmin
	}
	return nil
}
