package repo

import (
	"strings"

	"github.com/karimhasan/inventory-manager/internal/models"
	"github.com/karimhasan/inventory-manager/internal/pagination"
)

type InMemorySupplierRepository struct {
	suppliers []models.Supplier
	nextID    int

	productRepo *InMemoryProductRepository
}

func NewInMemorySupplierRepository() *InMemorySupplierRepository {
	return &InMemorySupplierRepository{
		suppliers: []models.Supplier{},
		nextID:    1,
	}
}

func (r *InMemorySupplierRepository) SetProductRepository(p *InMemoryProductRepository) {
	r.productRepo = p
}

func (r *InMemorySupplierRepository) Create(s models.Supplier) (models.Supplier, error) {
	for _, existing := range r.suppliers {
		if existing.Name == s.Name {
			return models.Supplier{}, ErrDuplicatedValueUnique
		}
	}
	s.ID = r.nextID
	r.nextID++
	r.suppliers = append(r.suppliers, s)
	return s, nil
}

func (r *InMemorySupplierRepository) GetAll() ([]models.Supplier, error) {
	return r.suppliers, nil
}

func (r *InMemorySupplierRepository) GetByID(id int) (models.Supplier, error) {
	for _, s := range r.suppliers {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Supplier{}, ErrSupplierNotFound
}

func (r *InMemorySupplierRepository) Update(s models.Supplier) (models.Supplier, error) {
	for i, existing := range r.suppliers {
		if existing.ID == s.ID {
			r.suppliers[i] = s
			return s, nil
		}
	}
	return models.Supplier{}, ErrSupplierNotFound
}

func (r *InMemorySupplierRepository) Delete(id int) error {
	for i, s := range r.suppliers {
		if s.ID == id {
			r.suppliers = append(r.suppliers[:i], r.suppliers[i+1:]...)
			if r.productRepo != nil {
				r.productRepo.DetachSupplier(id)
			}
			return nil
		}
	}
	return ErrSupplierNotFound
}

func (r *InMemorySupplierRepository) Filter(f SupplierFilter) ([]models.Supplier, int, error) {
	var matching []models.Supplier
	for _, s := range r.suppliers {
		if f.Keyword != "" && !strings.HasPrefix(s.Name, f.Keyword) {
			continue
		}
		matching = append(matching, s)
	}
	return pagination.Slice(matching, f.Page), len(matching), nil
}

func (r *InMemorySupplierRepository) Clear() {
	r.suppliers = []models.Supplier{}
	r.nextID = 1
}
