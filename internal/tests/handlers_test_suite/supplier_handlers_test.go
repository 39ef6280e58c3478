package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	api "github.com/karimhasan/inventory-manager/internal/http"
	handler "github.com/karimhasan/inventory-manager/internal/http/handlers"
)

func TestSupplierCRUD(t *testing.T) {
	t.Cleanup(clearAllSuppliers)
	r := api.NewRouter()

	w := createSupplier(r, handler.SupplierRequest{
		Name:    "Acme Wholesale",
		Phone:   "+20 100 555 0101",
		Email:   "sales@acme.example",
		Address: "12 Port Said St, Cairo",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var created handler.SupplierResponse
	json.NewDecoder(w.Body).Decode(&created)
	if created.Email != "sales@acme.example" {
		t.Errorf("expected email to round-trip, got %q", created.Email)
	}

	upW := doJSON(r, http.MethodPut, fmt.Sprintf("/suppliers/%d", created.Id), adminToken,
		handler.SupplierRequest{Name: "Acme Trading", Email: "orders@acme.example"})
	if upW.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", upW.Code)
	}
	var updated handler.SupplierResponse
	json.NewDecoder(upW.Body).Decode(&updated)
	if updated.Name != "Acme Trading" {
		t.Errorf("expected updated name, got %q", updated.Name)
	}

	delW := doJSON(r, http.MethodDelete, fmt.Sprintf("/suppliers/%d", created.Id), adminToken, nil)
	if delW.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", delW.Code)
	}
}

func TestCreateSupplierHandler_Invalid(t *testing.T) {
	r := api.NewRouter()

	tests := []struct {
		name    string
		payload handler.SupplierRequest
	}{
		{"Missing name", handler.SupplierRequest{Email: "a@b.c"}},
		{"Bad email", handler.SupplierRequest{Name: "X Corp", Email: "not-an-email"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createSupplier(r, tt.payload)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestDeleteSupplier_DetachesProducts(t *testing.T) {
	t.Cleanup(clearAllProducts)
	t.Cleanup(clearAllSuppliers)
	r := api.NewRouter()

	ws := createSupplier(r, handler.SupplierRequest{Name: "Parts Inc"})
	var sup handler.SupplierResponse
	json.NewDecoder(ws.Body).Decode(&sup)

	wp := createProduct(r, handler.ProductRequest{Name: "Gear", Price: 4.5, Quantity: 40, SupplierID: &sup.Id})
	var product handler.ProductResponse
	json.NewDecoder(wp.Body).Decode(&product)

	delW := doJSON(r, http.MethodDelete, fmt.Sprintf("/suppliers/%d", sup.Id), adminToken, nil)
	if delW.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", delW.Code)
	}

	getW := doJSON(r, http.MethodGet, fmt.Sprintf("/products/%d", product.Id), adminToken, nil)
	if getW.Code != http.StatusOK {
		t.Fatalf("expected product to survive supplier delete, got %d", getW.Code)
	}
	var survived handler.ProductResponse
	json.NewDecoder(getW.Body).Decode(&survived)
	if survived.SupplierID != nil {
		t.Errorf("expected nil supplier after delete, got %v", *survived.SupplierID)
	}
}

func TestGetSupplierProductsHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	t.Cleanup(clearAllSuppliers)
	r := api.NewRouter()

	ws := createSupplier(r, handler.SupplierRequest{Name: "Bolt Bros"})
	var sup handler.SupplierResponse
	json.NewDecoder(ws.Body).Decode(&sup)

	createProduct(r, handler.ProductRequest{Name: "Bolt", Price: 0.5, Quantity: 500, SupplierID: &sup.Id})

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/suppliers/%d/products", sup.Id), adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var products []handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&products)
	if len(products) != 1 || products[0].Name != "Bolt" {
		t.Errorf("expected only 'Bolt', got %v", products)
	}
}
