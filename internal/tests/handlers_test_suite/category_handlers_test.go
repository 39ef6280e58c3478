package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	api "github.com/karimhasan/inventory-manager/internal/http"
	handler "github.com/karimhasan/inventory-manager/internal/http/handlers"
)

func TestCategoryCRUD(t *testing.T) {
	t.Cleanup(clearAllCategories)
	r := api.NewRouter()

	w := createCategory(r, handler.CategoryRequest{Name: "Electronics"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var created handler.CategoryResponse
	json.NewDecoder(w.Body).Decode(&created)
	if created.Name != "Electronics" {
		t.Errorf("expected name 'Electronics', got %q", created.Name)
	}

	getW := doJSON(r, http.MethodGet, fmt.Sprintf("/categories/%d", created.Id), adminToken, nil)
	if getW.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", getW.Code)
	}

	upW := doJSON(r, http.MethodPut, fmt.Sprintf("/categories/%d", created.Id), adminToken,
		handler.CategoryRequest{Name: "Gadgets"})
	if upW.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", upW.Code)
	}
	var updated handler.CategoryResponse
	json.NewDecoder(upW.Body).Decode(&updated)
	if updated.Name != "Gadgets" {
		t.Errorf("expected name 'Gadgets', got %q", updated.Name)
	}

	delW := doJSON(r, http.MethodDelete, fmt.Sprintf("/categories/%d", created.Id), adminToken, nil)
	if delW.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", delW.Code)
	}

	getW = doJSON(r, http.MethodGet, fmt.Sprintf("/categories/%d", created.Id), adminToken, nil)
	if getW.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", getW.Code)
	}
}

func TestCreateCategoryHandler_Invalid(t *testing.T) {
	r := api.NewRouter()

	w := createCategory(r, handler.CategoryRequest{Name: "  "})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestDeleteCategory_DetachesProducts(t *testing.T) {
	t.Cleanup(clearAllProducts)
	t.Cleanup(clearAllCategories)
	r := api.NewRouter()

	wc := createCategory(r, handler.CategoryRequest{Name: "Tools"})
	var cat handler.CategoryResponse
	json.NewDecoder(wc.Body).Decode(&cat)

	wp := createProduct(r, handler.ProductRequest{Name: "Hammer", Price: 9.99, Quantity: 3, CategoryID: &cat.Id})
	var product handler.ProductResponse
	json.NewDecoder(wp.Body).Decode(&product)

	delW := doJSON(r, http.MethodDelete, fmt.Sprintf("/categories/%d", cat.Id), adminToken, nil)
	if delW.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", delW.Code)
	}

	// The product survives with its category reference cleared.
	getW := doJSON(r, http.MethodGet, fmt.Sprintf("/products/%d", product.Id), adminToken, nil)
	if getW.Code != http.StatusOK {
		t.Fatalf("expected product to survive category delete, got %d", getW.Code)
	}
	var survived handler.ProductResponse
	json.NewDecoder(getW.Body).Decode(&survived)
	if survived.CategoryID != nil {
		t.Errorf("expected nil category after delete, got %v", *survived.CategoryID)
	}
}

func TestGetCategoryProductsHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	t.Cleanup(clearAllCategories)
	r := api.NewRouter()

	wc := createCategory(r, handler.CategoryRequest{Name: "Office"})
	var cat handler.CategoryResponse
	json.NewDecoder(wc.Body).Decode(&cat)

	createProduct(r, handler.ProductRequest{Name: "Desk", Price: 120, Quantity: 2, CategoryID: &cat.Id})
	createProduct(r, handler.ProductRequest{Name: "Plant", Price: 15, Quantity: 9})

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/categories/%d/products", cat.Id), adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var products []handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&products)
	if len(products) != 1 || products[0].Name != "Desk" {
		t.Errorf("expected only 'Desk', got %v", products)
	}

	t.Run("Unknown category", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/categories/999999/products", adminToken, nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}

func TestGetCategoriesHandler_Pagination(t *testing.T) {
	t.Cleanup(clearAllCategories)
	r := api.NewRouter()

	for i := 1; i <= 8; i++ {
		w := createCategory(r, handler.CategoryRequest{Name: fmt.Sprintf("Category %02d", i)})
		if w.Code != http.StatusCreated {
			t.Fatalf("failed to create category %d", i)
		}
	}

	w := doJSON(r, http.MethodGet, "/categories?page=2", adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp handler.CategoriesSearchResult
	json.NewDecoder(w.Body).Decode(&resp)
	if len(resp.Data) != 2 {
		t.Errorf("expected 2 items on page 2, got %d", len(resp.Data))
	}
	if resp.Meta.TotalPages != 2 {
		t.Errorf("expected 2 total pages, got %d", resp.Meta.TotalPages)
	}
}
