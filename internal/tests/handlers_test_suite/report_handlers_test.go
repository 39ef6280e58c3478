package handlers_test_suite

import (
	"bytes"
	"net/http"
	"testing"

	api "github.com/karimhasan/inventory-manager/internal/http"
	handler "github.com/karimhasan/inventory-manager/internal/http/handlers"
)

func TestExportPDFReportHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	createProduct(r, handler.ProductRequest{Name: "Laptop", Price: 1500, Quantity: 3, Threshold: 10})

	t.Run("Staff is forbidden", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/reports/inventory.pdf", staffToken, nil)
		if w.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", w.Code)
		}
	})

	t.Run("Admin downloads PDF", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/reports/inventory.pdf", adminToken, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Errorf("expected application/pdf, got %q", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="Inventory Report.pdf"` {
			t.Errorf("unexpected disposition %q", cd)
		}
		if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")) {
			t.Error("response is not a PDF document")
		}
	})
}

func TestExportExcelReportHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	createProduct(r, handler.ProductRequest{Name: "Laptop", Price: 1500, Quantity: 3, Threshold: 10})

	// Any authenticated user may download the workbook.
	w := doJSON(r, http.MethodGet, "/reports/inventory.xlsx", staffToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("unexpected content type %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="Inventory Report.xlsx"` {
		t.Errorf("unexpected disposition %q", cd)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("PK")) {
		t.Error("response is not an xlsx archive")
	}
}
