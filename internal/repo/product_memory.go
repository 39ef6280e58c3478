package repo

import (
	"strings"
	"time"

	"github.com/karimhasan/inventory-manager/internal/models"
	"github.com/karimhasan/inventory-manager/internal/pagination"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository, used by the handler test suites.
type InMemoryProductRepository struct {
	products []models.Product
	nextID   int

	categoryRepo *InMemoryCategoryRepository
	supplierRepo *InMemorySupplierRepository
}

func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		nextID:   1,
	}
}

// SetLookupRepositories wires the repositories used to resolve category and
// supplier names, mirroring the joins the postgres implementation performs.
func (r *InMemoryProductRepository) SetLookupRepositories(c *InMemoryCategoryRepository, s *InMemorySupplierRepository) {
	r.categoryRepo = c
	r.supplierRepo = s
}

func (r *InMemoryProductRepository) resolve(p models.Product) models.Product {
	p.CategoryName = nil
	p.SupplierName = nil
	if p.CategoryID != nil && r.categoryRepo != nil {
		if c, err := r.categoryRepo.GetByID(*p.CategoryID); err == nil {
			name := c.Name
			p.CategoryName = &name
		}
	}
	if p.SupplierID != nil && r.supplierRepo != nil {
		if s, err := r.supplierRepo.GetByID(*p.SupplierID); err == nil {
			name := s.Name
			p.SupplierName = &name
		}
	}
	return p
}

// checkConstraints enforces the same rules the postgres schema does: product
// names are unique and category/supplier references must exist.
func (r *InMemoryProductRepository) checkConstraints(product models.Product) error {
	for _, p := range r.products {
		if p.Name == product.Name && p.ID != product.ID {
			return ErrDuplicatedValueUnique
		}
	}
	if product.CategoryID != nil && r.categoryRepo != nil {
		if _, err := r.categoryRepo.GetByID(*product.CategoryID); err != nil {
			return ErrCategoryNotFound
		}
	}
	if product.SupplierID != nil && r.supplierRepo != nil {
		if _, err := r.supplierRepo.GetByID(*product.SupplierID); err != nil {
			return ErrSupplierNotFound
		}
	}
	return nil
}

func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	if err := r.checkConstraints(product); err != nil {
		return models.Product{}, err
	}
	product.ID = r.nextID
	product.CreatedAt = time.Now().Format(time.RFC3339)
	product.UpdatedAt = product.CreatedAt
	r.nextID++
	r.products = append(r.products, product)
	return r.resolve(product), nil
}

func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	out := make([]models.Product, len(r.products))
	for i, p := range r.products {
		out[i] = r.resolve(p)
	}
	return out, nil
}

func (r *InMemoryProductRepository) GetByID(id int) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return r.resolve(p), nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Update(product models.Product) (models.Product, error) {
	if err := r.checkConstraints(product); err != nil {
		return models.Product{}, err
	}
	for i, p := range r.products {
		if p.ID == product.ID {
			product.CreatedAt = p.CreatedAt
			product.UpdatedAt = time.Now().Format(time.RFC3339)
			r.products[i] = product
			return r.resolve(product), nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Delete(id int) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

func (r *InMemoryProductRepository) Filter(f ProductFilter) ([]models.Product, int, error) {
	var matching []models.Product
	for _, p := range r.products {
		if f.Keyword != "" && !strings.HasPrefix(p.Name, f.Keyword) {
			continue
		}
		if f.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *f.CategoryID) {
			continue
		}
		matching = append(matching, r.resolve(p))
	}

	page := pagination.Slice(matching, f.Page)
	return page, len(matching), nil
}

func (r *InMemoryProductRepository) AdjustQuantity(productID, delta int) (models.Product, error) {
	for i, p := range r.products {
		if p.ID == productID {
			if p.Quantity+delta < 0 {
				return models.Product{}, ErrInvalidQuantityChange
			}
			r.products[i].Quantity += delta
			r.products[i].UpdatedAt = time.Now().Format(time.RFC3339)
			return r.resolve(r.products[i]), nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) ByCategory(categoryID int) ([]models.Product, error) {
	var out []models.Product
	for _, p := range r.products {
		if p.CategoryID != nil && *p.CategoryID == categoryID {
			out = append(out, r.resolve(p))
		}
	}
	return out, nil
}

func (r *InMemoryProductRepository) BySupplier(supplierID int) ([]models.Product, error) {
	var out []models.Product
	for _, p := range r.products {
		if p.SupplierID != nil && *p.SupplierID == supplierID {
			out = append(out, r.resolve(p))
		}
	}
	return out, nil
}

// DetachCategory clears the category reference on dependent products,
// mirroring the ON DELETE SET NULL behaviour of the postgres schema.
func (r *InMemoryProductRepository) DetachCategory(categoryID int) {
	for i, p := range r.products {
		if p.CategoryID != nil && *p.CategoryID == categoryID {
			r.products[i].CategoryID = nil
		}
	}
}

func (r *InMemoryProductRepository) DetachSupplier(supplierID int) {
	for i, p := range r.products {
		if p.SupplierID != nil && *p.SupplierID == supplierID {
			r.products[i].SupplierID = nil
		}
	}
}

func (r *InMemoryProductRepository) Clear() {
	r.products = []models.Product{}
	r.nextID = 1
}
