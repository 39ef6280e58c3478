package handlers

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/karimhasan/inventory-manager/internal/pagination"
	"github.com/karimhasan/inventory-manager/internal/redissvc"
	repo "github.com/karimhasan/inventory-manager/internal/repo"
)

var (
	productRepo   repo.ProductRepository
	categoryRepo  repo.CategoryRepository
	supplierRepo  repo.SupplierRepository
	movementRepo  repo.MovementRepository
	userRepo      repo.UserRepository
	dashboardRepo repo.DashboardRepository

	defaultPageSize = pagination.DefaultPageSize

	Rdb *redis.Client
	Ctx context.Context
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetCategoryRepo(r repo.CategoryRepository) {
	categoryRepo = r
}

func SetSupplierRepo(r repo.SupplierRepository) {
	supplierRepo = r
}

func SetMovementRepo(r repo.MovementRepository) {
	movementRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetDashboardRepo(r repo.DashboardRepository) {
	dashboardRepo = r
}

func SetDefaultPageSize(size int) {
	if size > 0 {
		defaultPageSize = size
	}
}

func SetRedisService(rs *redissvc.RedisService) {
	Rdb = rs.Rdb()
	Ctx = rs.Ctx()
}
