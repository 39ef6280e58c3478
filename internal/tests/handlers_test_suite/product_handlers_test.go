package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	api "github.com/karimhasan/inventory-manager/internal/http"
	handler "github.com/karimhasan/inventory-manager/internal/http/handlers"
)

func TestCreateProductHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Laptop", Price: 1500.0, Quantity: 1, Threshold: 10})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if resp.Name != "Laptop" {
		t.Errorf("expected name 'Laptop', got %v", resp.Name)
	}
	if resp.Price != 1500.0 {
		t.Errorf("expected price 1500.0, got %v", resp.Price)
	}
	if resp.Quantity != 1 {
		t.Errorf("expected quantity 1, got %v", resp.Quantity)
	}
	if !resp.Available {
		t.Error("expected new product to be available")
	}
}

func TestCreateProductHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	tests := []struct {
		name           string
		payload        handler.ProductRequest
		expectCode     int
		expectedErrors []string
	}{
		{
			name:           "Empty name and price",
			payload:        handler.ProductRequest{Name: "", Price: 0.0},
			expectCode:     http.StatusBadRequest,
			expectedErrors: []string{"Name", "Price"},
		},
		{
			name:           "Empty name only",
			payload:        handler.ProductRequest{Name: "", Price: 100.0},
			expectCode:     http.StatusBadRequest,
			expectedErrors: []string{"Name"},
		},
		{
			name:           "Invalid price only",
			payload:        handler.ProductRequest{Name: "Mouse", Price: -5.0},
			expectCode:     http.StatusBadRequest,
			expectedErrors: []string{"Price"},
		},
		{
			name:           "Negative quantity",
			payload:        handler.ProductRequest{Name: "Keyboard", Price: 50.0, Quantity: -1},
			expectCode:     http.StatusBadRequest,
			expectedErrors: []string{"Quantity"},
		},
		{
			name:           "Negative threshold",
			payload:        handler.ProductRequest{Name: "Screen", Price: 50.0, Threshold: -1},
			expectCode:     http.StatusBadRequest,
			expectedErrors: []string{"Threshold"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createProduct(r, tt.payload)

			if w.Code != tt.expectCode {
				t.Errorf("expected status %d, got %d", tt.expectCode, w.Code)
			}

			var resp []handler.ValidationError
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}

			for _, field := range tt.expectedErrors {
				found := false
				for _, err := range resp {
					if strings.EqualFold(err.Field, field) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, but not found", field)
				}
			}
		})
	}
}

func TestCreateProductHandler_Unauthorized(t *testing.T) {
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/products", "", handler.ProductRequest{Name: "Laptop", Price: 10})

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", w.Code)
	}
}

func TestGetProductsHandler_Pagination(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	for i := 1; i <= 14; i++ {
		w := createProduct(r, handler.ProductRequest{
			Name:     fmt.Sprintf("Product %02d", i),
			Price:    10.0,
			Quantity: 5,
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("failed to create product %d: %d", i, w.Code)
		}
	}

	pageSizes := []struct {
		page     int
		expected int
	}{
		{1, 6},
		{2, 6},
		{3, 2},
	}

	for _, tt := range pageSizes {
		w := doJSON(r, http.MethodGet, fmt.Sprintf("/products?page=%d", tt.page), adminToken, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("page %d: expected 200, got %d", tt.page, w.Code)
		}

		var resp handler.ProductsSearchResult
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}

		if len(resp.Data) != tt.expected {
			t.Errorf("page %d: expected %d items, got %d", tt.page, tt.expected, len(resp.Data))
		}
		if resp.Meta.TotalCount != 14 {
			t.Errorf("page %d: expected total count 14, got %d", tt.page, resp.Meta.TotalCount)
		}
		if resp.Meta.TotalPages != 3 {
			t.Errorf("page %d: expected 3 total pages, got %d", tt.page, resp.Meta.TotalPages)
		}
		if resp.Meta.CurrentPage != tt.page {
			t.Errorf("expected current page %d, got %d", tt.page, resp.Meta.CurrentPage)
		}
	}

	t.Run("Page beyond last is empty, not an error", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/products?page=99", adminToken, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp handler.ProductsSearchResult
		json.NewDecoder(w.Body).Decode(&resp)
		if len(resp.Data) != 0 {
			t.Errorf("expected empty page, got %d items", len(resp.Data))
		}
		if resp.Meta.TotalCount != 14 {
			t.Errorf("expected total count 14, got %d", resp.Meta.TotalCount)
		}
	})

	t.Run("Explicit zero pageSize is rejected", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/products?pageSize=0", adminToken, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Explicit zero page is rejected", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/products?page=0", adminToken, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Custom pageSize", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/products?pageSize=10&page=2", adminToken, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp handler.ProductsSearchResult
		json.NewDecoder(w.Body).Decode(&resp)
		if len(resp.Data) != 4 {
			t.Errorf("expected 4 items on page 2 of size 10, got %d", len(resp.Data))
		}
		if resp.Meta.TotalPages != 2 {
			t.Errorf("expected 2 total pages, got %d", resp.Meta.TotalPages)
		}
	})
}

func TestGetProductsHandler_KeywordPrefix(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	for _, name := range []string{"Laptop", "Lamp", "Phone", "laptop case"} {
		w := createProduct(r, handler.ProductRequest{Name: name, Price: 10.0, Quantity: 1})
		if w.Code != http.StatusCreated {
			t.Fatalf("failed to create %q: %d", name, w.Code)
		}
	}

	t.Run("Prefix match", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/products?keyword=La", adminToken, nil)
		var resp handler.ProductsSearchResult
		json.NewDecoder(w.Body).Decode(&resp)
		if resp.Meta.TotalCount != 2 {
			t.Errorf("expected 2 matches for 'La', got %d", resp.Meta.TotalCount)
		}
	})

	t.Run("Match is case sensitive", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/products?keyword=la", adminToken, nil)
		var resp handler.ProductsSearchResult
		json.NewDecoder(w.Body).Decode(&resp)
		if resp.Meta.TotalCount != 1 {
			t.Errorf("expected 1 match for 'la', got %d", resp.Meta.TotalCount)
		}
	})

	t.Run("Substring does not match", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/products?keyword=top", adminToken, nil)
		var resp handler.ProductsSearchResult
		json.NewDecoder(w.Body).Decode(&resp)
		if resp.Meta.TotalCount != 0 {
			t.Errorf("expected 0 matches for 'top', got %d", resp.Meta.TotalCount)
		}
	})
}

func TestGetProductsHandler_CategoryFilter(t *testing.T) {
	t.Cleanup(clearAllProducts)
	t.Cleanup(clearAllCategories)
	r := api.NewRouter()

	wc := createCategory(r, handler.CategoryRequest{Name: "Electronics"})
	var cat handler.CategoryResponse
	json.NewDecoder(wc.Body).Decode(&cat)

	createProduct(r, handler.ProductRequest{Name: "Laptop", Price: 10, Quantity: 1, CategoryID: &cat.Id})
	createProduct(r, handler.ProductRequest{Name: "Chair", Price: 10, Quantity: 1})

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/products?categoryId=%d", cat.Id), adminToken, nil)
	var resp handler.ProductsSearchResult
	json.NewDecoder(w.Body).Decode(&resp)

	if resp.Meta.TotalCount != 1 {
		t.Fatalf("expected 1 product in category, got %d", resp.Meta.TotalCount)
	}
	if resp.Data[0].Name != "Laptop" {
		t.Errorf("expected 'Laptop', got %q", resp.Data[0].Name)
	}
	if resp.Data[0].CategoryName == nil || *resp.Data[0].CategoryName != "Electronics" {
		t.Errorf("expected category name 'Electronics', got %v", resp.Data[0].CategoryName)
	}
}

func TestUpdateProductHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Old Name", Price: 100.0, Quantity: 1})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	updateW := doJSON(r, http.MethodPut, fmt.Sprintf("/products/%d", created.Id), adminToken,
		handler.ProductRequest{Name: "New Name", Price: 200.0, Quantity: 2})

	if updateW.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", updateW.Code)
	}

	var updated handler.ProductResponse
	if err := json.NewDecoder(updateW.Body).Decode(&updated); err != nil {
		t.Fatalf("error decoding update response: %v", err)
	}
	if updated.Name != "New Name" {
		t.Errorf("expected name 'New Name', got %v", updated.Name)
	}
	if updated.Price != 200.0 {
		t.Errorf("expected price 200.0, got %v", updated.Price)
	}
}

func TestUpdateProductHandler_NotFound(t *testing.T) {
	r := api.NewRouter()

	w := doJSON(r, http.MethodPut, "/products/999999", adminToken,
		handler.ProductRequest{Name: "Ghost", Price: 1.0})

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestDeleteProductHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Doomed", Price: 1.0, Quantity: 1})
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	delW := doJSON(r, http.MethodDelete, fmt.Sprintf("/products/%d", created.Id), adminToken, nil)
	if delW.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", delW.Code)
	}

	getW := doJSON(r, http.MethodGet, fmt.Sprintf("/products/%d", created.Id), adminToken, nil)
	if getW.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", getW.Code)
	}
}

func TestAdjustQuantityHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Widget", Price: 5.0, Quantity: 10, Threshold: 8})
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	t.Run("Positive delta", func(t *testing.T) {
		aw := adjustProduct(r, created.Id, handler.QuantityAdjustmentRequest{Delta: 5})
		if aw.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", aw.Code)
		}
		var resp handler.ProductResponse
		json.NewDecoder(aw.Body).Decode(&resp)
		if resp.Quantity != 15 {
			t.Errorf("expected quantity 15, got %d", resp.Quantity)
		}
	})

	t.Run("Negative delta crossing threshold flags low stock", func(t *testing.T) {
		aw := adjustProduct(r, created.Id, handler.QuantityAdjustmentRequest{Delta: -10})
		if aw.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", aw.Code)
		}
		var resp handler.ProductResponse
		json.NewDecoder(aw.Body).Decode(&resp)
		if resp.Quantity != 5 {
			t.Errorf("expected quantity 5, got %d", resp.Quantity)
		}
		if !resp.LowStock {
			t.Error("expected low stock flag")
		}
	})

	t.Run("Overdraw is rejected", func(t *testing.T) {
		aw := adjustProduct(r, created.Id, handler.QuantityAdjustmentRequest{Delta: -100})
		if aw.Code != http.StatusConflict {
			t.Errorf("expected 409 Conflict, got %d", aw.Code)
		}
	})

	t.Run("Unknown product", func(t *testing.T) {
		aw := adjustProduct(r, 999999, handler.QuantityAdjustmentRequest{Delta: 1})
		if aw.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", aw.Code)
		}
	})
}

func TestGetMovementsHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Tracked", Price: 5.0, Quantity: 100})
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	for _, delta := range []int{-5, 10, -3} {
		aw := adjustProduct(r, created.Id, handler.QuantityAdjustmentRequest{Delta: delta})
		if aw.Code != http.StatusOK {
			t.Fatalf("adjust failed: %d", aw.Code)
		}
	}

	mw := doJSON(r, http.MethodGet, fmt.Sprintf("/products/%d/movements", created.Id), adminToken, nil)
	if mw.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", mw.Code)
	}

	var resp handler.MovementsSearchResult
	json.NewDecoder(mw.Body).Decode(&resp)
	if resp.Meta.TotalCount != 3 {
		t.Fatalf("expected 3 movements, got %d", resp.Meta.TotalCount)
	}
	// Newest first.
	if resp.Data[0].Delta != -3 {
		t.Errorf("expected latest delta -3 first, got %d", resp.Data[0].Delta)
	}

	t.Run("Unknown product", func(t *testing.T) {
		mw := doJSON(r, http.MethodGet, "/products/999999/movements", adminToken, nil)
		if mw.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", mw.Code)
		}
	})
}
