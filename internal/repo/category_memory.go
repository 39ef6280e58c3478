package repo

import (
	"strings"

	"github.com/karimhasan/inventory-manager/internal/models"
	"github.com/karimhasan/inventory-manager/internal/pagination"
)

type InMemoryCategoryRepository struct {
	categories []models.Category
	nextID     int

	productRepo *InMemoryProductRepository
}

func NewInMemoryCategoryRepository() *InMemoryCategoryRepository {
	return &InMemoryCategoryRepository{
		categories: []models.Category{},
		nextID:     1,
	}
}

// SetProductRepository wires the repository whose products get detached when
// a category is deleted, standing in for ON DELETE SET NULL.
func (r *InMemoryCategoryRepository) SetProductRepository(p *InMemoryProductRepository) {
	r.productRepo = p
}

func (r *InMemoryCategoryRepository) Create(c models.Category) (models.Category, error) {
	for _, existing := range r.categories {
		if existing.Name == c.Name {
			return models.Category{}, ErrDuplicatedValueUnique
		}
	}
	c.ID = r.nextID
	r.nextID++
	r.categories = append(r.categories, c)
	return c, nil
}

func (r *InMemoryCategoryRepository) GetAll() ([]models.Category, error) {
	return r.categories, nil
}

func (r *InMemoryCategoryRepository) GetByID(id int) (models.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Category{}, ErrCategoryNotFound
}

func (r *InMemoryCategoryRepository) Update(c models.Category) (models.Category, error) {
	for i, existing := range r.categories {
		if existing.ID == c.ID {
			r.categories[i] = c
			return c, nil
		}
	}
	return models.Category{}, ErrCategoryNotFound
}

func (r *InMemoryCategoryRepository) Delete(id int) error {
	for i, c := range r.categories {
		if c.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			if r.productRepo != nil {
				r.productRepo.DetachCategory(id)
			}
			return nil
		}
	}
	return ErrCategoryNotFound
}

func (r *InMemoryCategoryRepository) Filter(f CategoryFilter) ([]models.Category, int, error) {
	var matching []models.Category
	for _, c := range r.categories {
		if f.Keyword != "" && !strings.HasPrefix(c.Name, f.Keyword) {
			continue
		}
		matching = append(matching, c)
	}
	return pagination.Slice(matching, f.Page), len(matching), nil
}

func (r *InMemoryCategoryRepository) Clear() {
	r.categories = []models.Category{}
	r.nextID = 1
}
