package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/karimhasan/inventory-manager/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		quantity, threshold int
		want                Status
	}{
		{0, 10, StatusOutOfStock},
		{5, 10, StatusLowStock},
		{9, 10, StatusLowStock},
		{10, 10, StatusNormal},
		{15, 10, StatusNormal},
		{0, 0, StatusOutOfStock},
		{1, 0, StatusNormal},
	}
	for _, tt := range tests {
		if got := Classify(tt.quantity, tt.threshold); got != tt.want {
			t.Errorf("Classify(%d, %d) = %v, want %v", tt.quantity, tt.threshold, got, tt.want)
		}
	}
}

func strPtr(s string) *string { return &s }

func TestBuild(t *testing.T) {
	products := []models.Product{
		{Name: "Laptop", Price: 1500, Quantity: 15, Threshold: 10, CategoryName: strPtr("Electronics"), SupplierName: strPtr("TechCo")},
		{Name: "Mouse", Price: 20, Quantity: 5, Threshold: 10, CategoryName: strPtr("Electronics"), SupplierName: strPtr("TechCo")},
		{Name: "Cable", Price: 3.555, Quantity: 0, Threshold: 10},
	}

	rep := Build(products, time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC))

	if len(rep.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rep.Rows))
	}

	if rep.Rows[0].Status != StatusNormal || rep.Rows[0].QuantityLabel != "15" {
		t.Errorf("row 0: got %v / %q", rep.Rows[0].Status, rep.Rows[0].QuantityLabel)
	}
	if rep.Rows[1].Status != StatusLowStock || !strings.Contains(rep.Rows[1].QuantityLabel, "(Low Stock)") {
		t.Errorf("row 1: got %v / %q", rep.Rows[1].Status, rep.Rows[1].QuantityLabel)
	}
	if rep.Rows[2].Status != StatusOutOfStock || !strings.Contains(rep.Rows[2].QuantityLabel, "(Out of Stock)") {
		t.Errorf("row 2: got %v / %q", rep.Rows[2].Status, rep.Rows[2].QuantityLabel)
	}

	// Missing category/supplier rows get placeholder labels instead of
	// crashing the renderer.
	if rep.Rows[2].Category != NoCategoryLabel {
		t.Errorf("expected %q, got %q", NoCategoryLabel, rep.Rows[2].Category)
	}
	if rep.Rows[2].Supplier != NoSupplierLabel {
		t.Errorf("expected %q, got %q", NoSupplierLabel, rep.Rows[2].Supplier)
	}

	// 15*1500 + 5*20 + 0*3.555 = 22600.00
	if rep.TotalStockValue != 22600.00 {
		t.Errorf("expected total 22600.00, got %v", rep.TotalStockValue)
	}
}

func TestBuild_TotalRounding(t *testing.T) {
	products := []models.Product{
		{Name: "Widget", Price: 0.333, Quantity: 10, Threshold: 5},
	}
	rep := Build(products, time.Now())
	if rep.TotalStockValue != 3.33 {
		t.Errorf("expected 3.33, got %v", rep.TotalStockValue)
	}
}

func TestBuild_StatusesAreExclusive(t *testing.T) {
	for q := 0; q <= 20; q++ {
		status := Classify(q, 10)
		count := 0
		if status == StatusNormal {
			count++
		}
		if status == StatusLowStock {
			count++
		}
		if status == StatusOutOfStock {
			count++
		}
		if count != 1 {
			t.Errorf("quantity %d: expected exactly one status, got %d", q, count)
		}
	}
}

func TestRenderPDF_Magic(t *testing.T) {
	rep := Build([]models.Product{{Name: "Laptop", Price: 100, Quantity: 2, Threshold: 10}}, time.Now())
	out, err := RenderPDF(rep)
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Errorf("expected PDF magic bytes, got %q", out[:8])
	}
}

func TestRenderExcel_Magic(t *testing.T) {
	rep := Build([]models.Product{{Name: "Laptop", Price: 100, Quantity: 2, Threshold: 10}}, time.Now())
	out, err := RenderExcel(rep)
	if err != nil {
		t.Fatalf("RenderExcel: %v", err)
	}
	// xlsx files are zip archives.
	if !bytes.HasPrefix(out, []byte("PK")) {
		t.Errorf("expected zip magic bytes, got %q", out[:4])
	}
}
