package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	api "github.com/karimhasan/inventory-manager/internal/http"
	handler "github.com/karimhasan/inventory-manager/internal/http/handlers"
)

func findUserID(t *testing.T, r http.Handler, username string) int {
	t.Helper()
	w := doJSON(r, http.MethodGet, "/users", adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("could not list users: %d", w.Code)
	}
	var users []handler.UserResponse
	json.NewDecoder(w.Body).Decode(&users)
	for _, u := range users {
		if u.Username == username {
			return u.Id
		}
	}
	t.Fatalf("user %q not found", username)
	return 0
}

func TestGetUsersHandler_AdminOnly(t *testing.T) {
	r := api.NewRouter()

	t.Run("Staff is forbidden", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/users", staffToken, nil)
		if w.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", w.Code)
		}
	})

	t.Run("Admin lists users", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/users", adminToken, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var users []handler.UserResponse
		json.NewDecoder(w.Body).Decode(&users)
		if len(users) < 2 {
			t.Errorf("expected at least the seeded users, got %d", len(users))
		}
	})
}

func TestLastAdminInvariant(t *testing.T) {
	r := api.NewRouter()

	// Promote a helper so "admin" is not the only Admin, demote it back,
	// then verify the remaining Admin can neither be demoted nor deleted.
	w := doJSON(r, http.MethodPost, "/admin/users", adminToken,
		handler.RegisterAsAdminRequest{Username: "secondadmin", Password: "secret123", Role: "Admin"})
	if w.Code != http.StatusCreated {
		t.Fatalf("could not create second admin: %d", w.Code)
	}
	secondID := findUserID(t, r, "secondadmin")

	t.Run("Demoting a non-last admin succeeds", func(t *testing.T) {
		w := doJSON(r, http.MethodPut, fmt.Sprintf("/users/%d", secondID), adminToken,
			handler.UserRequest{Username: "secondadmin", Role: "Staff"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp handler.UserResponse
		json.NewDecoder(w.Body).Decode(&resp)
		if len(resp.Roles) != 1 || resp.Roles[0] != "Staff" {
			t.Errorf("expected roles [Staff], got %v", resp.Roles)
		}
	})

	adminID := findUserID(t, r, "admin")

	t.Run("Demoting the last admin is rejected", func(t *testing.T) {
		w := doJSON(r, http.MethodPut, fmt.Sprintf("/users/%d", adminID), adminToken,
			handler.UserRequest{Username: "admin", Role: "Staff"})
		if w.Code != http.StatusConflict {
			t.Errorf("expected 409, got %d", w.Code)
		}
	})

	t.Run("Deleting the last admin is rejected", func(t *testing.T) {
		w := doJSON(r, http.MethodDelete, fmt.Sprintf("/users/%d", adminID), adminToken, nil)
		if w.Code != http.StatusConflict {
			t.Errorf("expected 409, got %d", w.Code)
		}
	})

	t.Run("Rejected demotion left the role intact", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, fmt.Sprintf("/users/%d", adminID), adminToken, nil)
		var resp handler.UserResponse
		json.NewDecoder(w.Body).Decode(&resp)
		if len(resp.Roles) != 1 || resp.Roles[0] != "Admin" {
			t.Errorf("expected roles [Admin], got %v", resp.Roles)
		}
	})

	t.Run("Deleting a non-admin succeeds", func(t *testing.T) {
		w := doJSON(r, http.MethodDelete, fmt.Sprintf("/users/%d", secondID), adminToken, nil)
		if w.Code != http.StatusNoContent {
			t.Errorf("expected 204, got %d", w.Code)
		}
	})
}

func TestUpdateUserHandler_Errors(t *testing.T) {
	r := api.NewRouter()

	t.Run("Unknown user", func(t *testing.T) {
		w := doJSON(r, http.MethodPut, "/users/999999", adminToken,
			handler.UserRequest{Username: "ghost", Role: "Staff"})
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("Unknown role", func(t *testing.T) {
		staffID := findUserID(t, r, "staff")
		w := doJSON(r, http.MethodPut, fmt.Sprintf("/users/%d", staffID), adminToken,
			handler.UserRequest{Username: "staff", Role: "Wizard"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestRoleHandlers(t *testing.T) {
	r := api.NewRouter()

	t.Run("Staff cannot create roles", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/roles", staffToken, handler.RoleRequest{Name: "Auditor"})
		if w.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", w.Code)
		}
	})

	t.Run("Admin creates a role", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/roles", adminToken, handler.RoleRequest{Name: "Auditor"})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var created handler.RoleResponse
		json.NewDecoder(w.Body).Decode(&created)
		if created.Name != "Auditor" {
			t.Errorf("expected 'Auditor', got %q", created.Name)
		}
	})

	t.Run("Duplicate role", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/roles", adminToken, handler.RoleRequest{Name: "Auditor"})
		if w.Code != http.StatusConflict {
			t.Errorf("expected 409, got %d", w.Code)
		}
	})

	t.Run("List roles", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/roles", adminToken, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var roles []handler.RoleResponse
		json.NewDecoder(w.Body).Decode(&roles)
		names := make(map[string]bool)
		for _, role := range roles {
			names[role.Name] = true
		}
		for _, want := range []string{"Admin", "Staff", "Auditor"} {
			if !names[want] {
				t.Errorf("expected role %q in %v", want, roles)
			}
		}
	})
}
