package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/karimhasan/inventory-manager/internal/auth"
	"github.com/karimhasan/inventory-manager/internal/models"
	"github.com/karimhasan/inventory-manager/internal/repo"
)

func userResponse(u models.User) UserResponse {
	return UserResponse{
		Id:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		Roles:     u.Roles,
	}
}

// GetUsersHandler godoc
// @Summary List all users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} UserResponse
// @Failure 500 {string} string "Internal error"
// @Router /users [get]
func GetUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := userRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch users", http.StatusInternalServerError)
		return
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = userResponse(u)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// GetUserByIDHandler godoc
// @Summary Get user by ID
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} UserResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /users/{id} [get]
func GetUserByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	user, err := userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch user", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(userResponse(user))
}

// UpdateUserHandler godoc
// @Summary Update a user's profile and role
// @Description Rejects a role change that would leave the system without an Admin.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param user body UserRequest true "Updated user"
// @Success 200 {object} UserResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Last admin"
// @Router /users/{id} [put]
func UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	var req UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Role == "" {
		http.Error(w, "username and role are required", http.StatusBadRequest)
		return
	}

	user := models.User{
		ID:        id,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	updated, err := userRepo.UpdateUser(user, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrLastAdmin):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, repo.ErrUserNotFound):
			http.Error(w, "user not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrRoleNotFound):
			http.Error(w, "role does not exist", http.StatusBadRequest)
		case errors.Is(err, repo.ErrDuplicatedValueUnique):
			http.Error(w, "username already exists", http.StatusConflict)
		default:
			http.Error(w, "could not update user", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(userResponse(updated))
}

// DeleteUserHandler godoc
// @Summary Delete a user
// @Description Rejects deleting the last Admin.
// @Tags admin
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Last admin"
// @Router /users/{id} [delete]
func DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	if err := userRepo.DeleteUser(id); err != nil {
		switch {
		case errors.Is(err, auth.ErrLastAdmin):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, repo.ErrUserNotFound):
			http.Error(w, "user not found", http.StatusNotFound)
		default:
			http.Error(w, "could not delete user", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetRolesHandler godoc
// @Summary List all roles
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} RoleResponse
// @Failure 500 {string} string "Internal error"
// @Router /roles [get]
func GetRolesHandler(w http.ResponseWriter, r *http.Request) {
	roles, err := userRepo.Roles()
	if err != nil {
		http.Error(w, "could not fetch roles", http.StatusInternalServerError)
		return
	}

	resp := make([]RoleResponse, len(roles))
	for i, role := range roles {
		resp[i] = RoleResponse{Id: role.ID, Name: role.Name}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// CreateRoleHandler godoc
// @Summary Create a new role
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param role body RoleRequest true "Role to add"
// @Success 201 {object} RoleResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 409 {string} string "Role exists"
// @Router /roles [post]
func CreateRoleHandler(w http.ResponseWriter, r *http.Request) {
	var req RoleRequest
	if err := readJSON(w, r, &req); err != nil || req.Name == "" {
		http.Error(w, "role name is required", http.StatusBadRequest)
		return
	}

	created, err := userRepo.CreateRole(req.Name)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "role already exists", http.StatusConflict)
			return
		}
		http.Error(w, "could not create role", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(RoleResponse{Id: created.ID, Name: created.Name})
}
