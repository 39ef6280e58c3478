package repo

import "github.com/karimhasan/inventory-manager/internal/models"

// Dashboard is the home-view summary. TotalStockValue is Σ quantity×price
// over every product and must agree with the report builder's total.
type Dashboard struct {
	TotalProducts   int              `json:"total_products"`
	TotalCategories int              `json:"total_categories"`
	TotalSuppliers  int              `json:"total_suppliers"`
	TotalUsers      int              `json:"total_users"`
	TotalStockValue float64          `json:"total_stock_value"`
	LowStock        []models.Product `json:"low_stock"`
}

type DashboardRepository interface {
	GetDashboard() (Dashboard, error)
}
