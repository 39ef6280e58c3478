package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"github.com/karimhasan/inventory-manager/internal/auth"
	api "github.com/karimhasan/inventory-manager/internal/http"
	handler "github.com/karimhasan/inventory-manager/internal/http/handlers"
	rl "github.com/karimhasan/inventory-manager/internal/http/rate_limiter"
	"github.com/karimhasan/inventory-manager/internal/models"
	"github.com/karimhasan/inventory-manager/internal/repo"
)

var (
	adminToken string
	staffToken string

	productRepo  *repo.InMemoryProductRepository
	categoryRepo *repo.InMemoryCategoryRepository
	supplierRepo *repo.InMemorySupplierRepository
	movementRepo *repo.InMemoryMovementRepository
	userRepo     *repo.InMemoryUserRepository
)

func init() {
	// Tests hammer /login, so lift the per-IP throttle.
	rl.SetLimit(rate.Limit(10000), 10000)

	setupTestRepos("secret")
	r := api.NewRouter()

	var err error
	adminToken, err = generateToken(r, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating admin token: %v", err))
	}
	staffToken, err = generateToken(r, "staff", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating staff token: %v", err))
	}
}

func setupTestRepos(password string) {
	productRepo = repo.NewInMemoryProductRepository()
	categoryRepo = repo.NewInMemoryCategoryRepository()
	supplierRepo = repo.NewInMemorySupplierRepository()
	movementRepo = repo.NewInMemoryMovementRepository()
	userRepo = repo.NewInMemoryUserRepository()

	productRepo.SetLookupRepositories(categoryRepo, supplierRepo)
	categoryRepo.SetProductRepository(productRepo)
	supplierRepo.SetProductRepository(productRepo)

	handler.SetProductRepo(productRepo)
	handler.SetCategoryRepo(categoryRepo)
	handler.SetSupplierRepo(supplierRepo)
	handler.SetMovementRepo(movementRepo)
	handler.SetUserRepo(userRepo)

	dashboardRepo := repo.NewInMemoryDashboardRepository()
	dashboardRepo.SetRepositories(productRepo, categoryRepo, supplierRepo, userRepo)
	handler.SetDashboardRepo(dashboardRepo)

	userRepo.CreateRole(auth.RoleAdmin)
	userRepo.CreateRole(auth.RoleStaff)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Username:     "admin",
		PasswordHash: string(hash),
	}, auth.RoleAdmin)
	userRepo.CreateUser(models.User{
		Username:     "staff",
		PasswordHash: string(hash),
	}, auth.RoleStaff)
}

func clearAllProducts() {
	productRepo.Clear()
	movementRepo.Clear()
}

func clearAllCategories() {
	categoryRepo.Clear()
}

func clearAllSuppliers() {
	supplierRepo.Clear()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func doJSON(r http.Handler, method, path, token string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/products", adminToken, p)
}

func createCategory(r http.Handler, c handler.CategoryRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/categories", adminToken, c)
}

func createSupplier(r http.Handler, s handler.SupplierRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/suppliers", adminToken, s)
}

func adjustProduct(r http.Handler, productID int, adj handler.QuantityAdjustmentRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, fmt.Sprintf("/products/%d/adjust", productID), adminToken, adj)
}
