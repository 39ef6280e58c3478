package repo

import (
	"github.com/karimhasan/inventory-manager/internal/models"
	"github.com/karimhasan/inventory-manager/internal/pagination"
)

// ProductFilter narrows a product listing. Keyword is a case-sensitive
// name-prefix match; CategoryID is an exact match. Zero values mean
// "no filter".
type ProductFilter struct {
	Keyword    string
	CategoryID *int
	Page       pagination.Page
}

// ProductRepository defines the interface for product data operations.
// Read methods resolve category and supplier names for each row.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id int) error
	Filter(f ProductFilter) ([]models.Product, int, error)
	AdjustQuantity(productID, delta int) (models.Product, error)
	ByCategory(categoryID int) ([]models.Product, error)
	BySupplier(supplierID int) ([]models.Product, error)
}
