package repo

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"
)

type PostgresDashboardRepository struct {
	db *sql.DB
}

func NewPostgresDashboardRepository(db *sql.DB) *PostgresDashboardRepository {
	return &PostgresDashboardRepository{db: db}
}

func (r *PostgresDashboardRepository) GetDashboard() (Dashboard, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var d Dashboard

	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM products`, &d.TotalProducts},
		{`SELECT COUNT(*) FROM categories`, &d.TotalCategories},
		{`SELECT COUNT(*) FROM suppliers`, &d.TotalSuppliers},
		{`SELECT COUNT(*) FROM users`, &d.TotalUsers},
	}
	for _, c := range counts {
		if err := r.db.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return Dashboard{}, err
		}
	}

	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(quantity * price), 0) FROM products`).Scan(&d.TotalStockValue)
	if err != nil {
		return Dashboard{}, err
	}
	d.TotalStockValue = math.Round(d.TotalStockValue*100) / 100

	query := fmt.Sprintf("SELECT %s %s WHERE p.quantity < p.threshold ORDER BY p.id", productColumns, productJoin)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return Dashboard{}, err
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return Dashboard{}, err
		}
		d.LowStock = append(d.LowStock, p)
	}
	return d, rows.Err()
}
