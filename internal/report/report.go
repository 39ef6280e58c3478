// Package report builds the inventory report row model and renders it as a
// PDF document or an Excel workbook. Row building is pure; the renderers only
// consume the finished row model.
package report

import (
	"fmt"
	"math"
	"time"

	"github.com/karimhasan/inventory-manager/internal/models"
)

// Status classifies a product's stock level. Exactly one status holds for
// any (quantity, threshold) pair.
type Status int

const (
	StatusNormal Status = iota
	StatusLowStock
	StatusOutOfStock
)

func (s Status) String() string {
	switch s {
	case StatusLowStock:
		return "low_stock"
	case StatusOutOfStock:
		return "out_of_stock"
	default:
		return "normal"
	}
}

// Fallback labels for products whose category or supplier was deleted
// (the foreign keys are nullable, delete behaviour is set-null).
const (
	NoCategoryLabel = "Uncategorized"
	NoSupplierLabel = "Unassigned"
)

// Classify derives the stock status: out of stock at exactly zero, low stock
// strictly between zero and the threshold.
func Classify(quantity, threshold int) Status {
	switch {
	case quantity == 0:
		return StatusOutOfStock
	case quantity < threshold:
		return StatusLowStock
	default:
		return StatusNormal
	}
}

// Row is one product line of the report.
type Row struct {
	Name          string
	Category      string
	Supplier      string
	Price         float64
	Quantity      int
	QuantityLabel string
	Status        Status
}

// Report is the format-agnostic document model shared by the PDF and Excel
// renderers.
type Report struct {
	Rows            []Row
	TotalStockValue float64
	GeneratedAt     time.Time
}

// Build assembles the report over the full product set. TotalStockValue is
// Σ quantity×price rounded to two decimal places, matching the dashboard
// total.
func Build(products []models.Product, generatedAt time.Time) Report {
	rep := Report{
		Rows:        make([]Row, 0, len(products)),
		GeneratedAt: generatedAt,
	}

	for _, p := range products {
		row := Row{
			Name:     p.Name,
			Category: NoCategoryLabel,
			Supplier: NoSupplierLabel,
			Price:    p.Price,
			Quantity: p.Quantity,
			Status:   Classify(p.Quantity, p.Threshold),
		}
		if p.CategoryName != nil {
			row.Category = *p.CategoryName
		}
		if p.SupplierName != nil {
			row.Supplier = *p.SupplierName
		}

		switch row.Status {
		case StatusOutOfStock:
			row.QuantityLabel = fmt.Sprintf("%d (Out of Stock)", p.Quantity)
		case StatusLowStock:
			row.QuantityLabel = fmt.Sprintf("%d (Low Stock)", p.Quantity)
		default:
			row.QuantityLabel = fmt.Sprintf("%d", p.Quantity)
		}

		rep.Rows = append(rep.Rows, row)
		rep.TotalStockValue += float64(p.Quantity) * p.Price
	}

	rep.TotalStockValue = math.Round(rep.TotalStockValue*100) / 100
	return rep
}
