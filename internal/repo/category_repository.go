package repo

import (
	"github.com/karimhasan/inventory-manager/internal/models"
	"github.com/karimhasan/inventory-manager/internal/pagination"
)

// CategoryFilter narrows a category listing by a case-sensitive name prefix.
type CategoryFilter struct {
	Keyword string
	Page    pagination.Page
}

type CategoryRepository interface {
	Create(category models.Category) (models.Category, error)
	GetAll() ([]models.Category, error)
	GetByID(id int) (models.Category, error)
	Update(category models.Category) (models.Category, error)
	// Delete removes the category; dependent products survive with their
	// category reference cleared.
	Delete(id int) error
	Filter(f CategoryFilter) ([]models.Category, int, error)
}
