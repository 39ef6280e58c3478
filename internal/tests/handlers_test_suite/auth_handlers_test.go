package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"slices"
	"testing"

	api "github.com/karimhasan/inventory-manager/internal/http"
	handler "github.com/karimhasan/inventory-manager/internal/http/handlers"
)

func TestLoginHandler(t *testing.T) {
	r := api.NewRouter()

	t.Run("Valid credentials", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/login", "", handler.CredentialsRequest{Username: "admin", Password: "secret"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp handler.LoginResult
		json.NewDecoder(w.Body).Decode(&resp)
		if resp.Token == "" {
			t.Error("expected a token")
		}
	})

	t.Run("Wrong password", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/login", "", handler.CredentialsRequest{Username: "admin", Password: "wrong"})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("Unknown user", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/login", "", handler.CredentialsRequest{Username: "nobody", Password: "secret"})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})
}

func TestRegisterHandler(t *testing.T) {
	r := api.NewRouter()

	t.Run("New accounts get the Staff role", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/register", "", handler.CredentialsRequest{Username: "newguy", Password: "secret123"})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp handler.RegisterResult
		json.NewDecoder(w.Body).Decode(&resp)
		if resp.Token == "" {
			t.Error("expected a token for the new user")
		}

		user, err := userRepo.GetByUsername("newguy")
		if err != nil {
			t.Fatalf("user not stored: %v", err)
		}
		if !slices.Contains(user.Roles, "Staff") {
			t.Errorf("expected Staff role, got %v", user.Roles)
		}
		if slices.Contains(user.Roles, "Admin") {
			t.Errorf("self-registration must not grant Admin, got %v", user.Roles)
		}
	})

	t.Run("Duplicate username", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/register", "", handler.CredentialsRequest{Username: "newguy", Password: "secret123"})
		if w.Code != http.StatusConflict {
			t.Errorf("expected 409, got %d", w.Code)
		}
	})

	t.Run("Short password", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/register", "", handler.CredentialsRequest{Username: "shorty", Password: "abc"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Registration token is usable", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/register", "", handler.CredentialsRequest{Username: "tokenuser", Password: "secret123"})
		var resp handler.RegisterResult
		json.NewDecoder(w.Body).Decode(&resp)

		listW := doJSON(r, http.MethodGet, "/products", resp.Token, nil)
		if listW.Code != http.StatusOK {
			t.Errorf("expected 200 with fresh token, got %d", listW.Code)
		}
	})
}

func TestRegisterAsAdminHandler(t *testing.T) {
	r := api.NewRouter()

	t.Run("Staff cannot create users", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/admin/users", staffToken,
			handler.RegisterAsAdminRequest{Username: "sneaky", Password: "secret123", Role: "Admin"})
		if w.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", w.Code)
		}
	})

	t.Run("Admin creates user with role", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/admin/users", adminToken,
			handler.RegisterAsAdminRequest{Username: "clerk", Password: "secret123", Role: "Staff", FirstName: "Casey"})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("Unknown role", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/admin/users", adminToken,
			handler.RegisterAsAdminRequest{Username: "ghost", Password: "secret123", Role: "Wizard"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestRefreshHandler_InvalidToken(t *testing.T) {
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/refresh", "", handler.RefreshRequest{RefreshToken: "bogus"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}
