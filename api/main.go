package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/karimhasan/inventory-manager/internal/alert"
	"github.com/karimhasan/inventory-manager/internal/auth"
	"github.com/karimhasan/inventory-manager/internal/config"
	"github.com/karimhasan/inventory-manager/internal/db"
	api "github.com/karimhasan/inventory-manager/internal/http"
	"github.com/karimhasan/inventory-manager/internal/http/handlers"
	rl "github.com/karimhasan/inventory-manager/internal/http/rate_limiter"
	"github.com/karimhasan/inventory-manager/internal/redissvc"
	"github.com/karimhasan/inventory-manager/internal/repo"
)

// @title Inventory Manager API
// @version 1.0
// @description REST API for managing products, categories, suppliers, users and inventory reports.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Could not load configuration: %v", err)
	}

	auth.SetSecret(cfg.JWTSecret)
	handlers.SetDefaultPageSize(cfg.PageSize)

	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	defer rdb.Close()

	redisService := redissvc.NewRedisService(rdb, ctx)
	handlers.SetRedisService(redisService)
	auth.SetRedisService(redisService)
	alert.SetRedisService(redisService)

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Could not connect to database:", err)
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		log.Fatal("Could not migrate database:", err)
	}
	if err := db.Seed(database, cfg.AdminPassword); err != nil {
		log.Fatal("Could not seed database:", err)
	}

	handlers.SetProductRepo(repo.NewPostgresProductRepository(database))
	handlers.SetCategoryRepo(repo.NewPostgresCategoryRepository(database))
	handlers.SetSupplierRepo(repo.NewPostgresSupplierRepository(database))
	handlers.SetMovementRepo(repo.NewPostgresMovementRepository(database))
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))
	handlers.SetDashboardRepo(repo.NewPostgresDashboardRepository(database))

	go rl.StartVisitorCleanupLoop()
	go alert.StartDailySummary(24 * time.Hour)

	r := api.NewRouter()
	log.Printf("Server running on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
