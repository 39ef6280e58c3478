package repo

import (
	"github.com/karimhasan/inventory-manager/internal/models"
	"github.com/karimhasan/inventory-manager/internal/pagination"
)

type SupplierFilter struct {
	Keyword string
	Page    pagination.Page
}

type SupplierRepository interface {
	Create(supplier models.Supplier) (models.Supplier, error)
	GetAll() ([]models.Supplier, error)
	GetByID(id int) (models.Supplier, error)
	Update(supplier models.Supplier) (models.Supplier, error)
	Delete(id int) error
	Filter(f SupplierFilter) ([]models.Supplier, int, error)
}
