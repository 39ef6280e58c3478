package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/karimhasan/inventory-manager/docs"
	"github.com/karimhasan/inventory-manager/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	// Public endpoints, throttled per client IP.
	r.Group(func(r chi.Router) {
		r.Use(RateLimitMiddleware)
		r.Post("/login", handlers.LoginHandler)
		r.Post("/refresh", handlers.RefreshHandler)
		r.Post("/register", handlers.RegisterHandler)
	})

	// Endpoints for any authenticated user.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)

		r.Post("/products", handlers.CreateProductHandler)
		r.Get("/products", handlers.GetProductsHandler)
		r.Get("/products/{id}", handlers.GetProductByIDHandler)
		r.Put("/products/{id}", handlers.UpdateProductHandler)
		r.Delete("/products/{id}", handlers.DeleteProductHandler)
		r.Post("/products/{id}/adjust", handlers.AdjustQuantityHandler)
		r.Get("/products/{id}/movements", handlers.GetMovementsHandler)

		r.Post("/categories", handlers.CreateCategoryHandler)
		r.Get("/categories", handlers.GetCategoriesHandler)
		r.Get("/categories/{id}", handlers.GetCategoryByIDHandler)
		r.Put("/categories/{id}", handlers.UpdateCategoryHandler)
		r.Delete("/categories/{id}", handlers.DeleteCategoryHandler)
		r.Get("/categories/{id}/products", handlers.GetCategoryProductsHandler)

		r.Post("/suppliers", handlers.CreateSupplierHandler)
		r.Get("/suppliers", handlers.GetSuppliersHandler)
		r.Get("/suppliers/{id}", handlers.GetSupplierByIDHandler)
		r.Put("/suppliers/{id}", handlers.UpdateSupplierHandler)
		r.Delete("/suppliers/{id}", handlers.DeleteSupplierHandler)
		r.Get("/suppliers/{id}/products", handlers.GetSupplierProductsHandler)

		r.Get("/dashboard", handlers.GetDashboardHandler)
		r.Get("/reports/inventory.xlsx", handlers.ExportExcelReportHandler)
	})

	// Admin-only endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware, RequireAdmin)

		r.Get("/reports/inventory.pdf", handlers.ExportPDFReportHandler)

		r.Get("/users", handlers.GetUsersHandler)
		r.Get("/users/{id}", handlers.GetUserByIDHandler)
		r.Put("/users/{id}", handlers.UpdateUserHandler)
		r.Delete("/users/{id}", handlers.DeleteUserHandler)

		r.Get("/roles", handlers.GetRolesHandler)
		r.Post("/roles", handlers.CreateRoleHandler)
		r.Post("/admin/users", handlers.RegisterAsAdminHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}
