package repo

import "errors"

var (
	// ErrProductNotFound is returned when a product is not found in the repository.
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrRoleNotFound     = errors.New("role not found")

	// ErrDuplicatedValueUnique signals a unique-constraint violation.
	ErrDuplicatedValueUnique = errors.New("duplicated value for unique column")

	// ErrInvalidQuantityChange is returned when an adjustment would drive the
	// stock quantity below zero.
	ErrInvalidQuantityChange = errors.New("adjustment would make quantity negative")
)
