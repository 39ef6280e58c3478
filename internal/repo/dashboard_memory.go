package repo

import "math"

type InMemoryDashboardRepository struct {
	productRepo  *InMemoryProductRepository
	categoryRepo *InMemoryCategoryRepository
	supplierRepo *InMemorySupplierRepository
	userRepo     *InMemoryUserRepository
}

func NewInMemoryDashboardRepository() *InMemoryDashboardRepository {
	return &InMemoryDashboardRepository{}
}

func (r *InMemoryDashboardRepository) SetRepositories(
	productRepo *InMemoryProductRepository,
	categoryRepo *InMemoryCategoryRepository,
	supplierRepo *InMemorySupplierRepository,
	userRepo *InMemoryUserRepository,
) {
	r.productRepo = productRepo
	r.categoryRepo = categoryRepo
	r.supplierRepo = supplierRepo
	r.userRepo = userRepo
}

func (r *InMemoryDashboardRepository) GetDashboard() (Dashboard, error) {
	var d Dashboard

	products, err := r.productRepo.GetAll()
	if err != nil {
		return d, err
	}
	d.TotalProducts = len(products)

	categories, err := r.categoryRepo.GetAll()
	if err != nil {
		return d, err
	}
	d.TotalCategories = len(categories)

	suppliers, err := r.supplierRepo.GetAll()
	if err != nil {
		return d, err
	}
	d.TotalSuppliers = len(suppliers)

	users, err := r.userRepo.GetAll()
	if err != nil {
		return d, err
	}
	d.TotalUsers = len(users)

	for _, p := range products {
		d.TotalStockValue += float64(p.Quantity) * p.Price
		if p.Quantity < p.Threshold {
			d.LowStock = append(d.LowStock, p)
		}
	}
	d.TotalStockValue = math.Round(d.TotalStockValue*100) / 100

	return d, nil
}
