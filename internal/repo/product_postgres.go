package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/karimhasan/inventory-manager/internal/models"
)

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

const productColumns = `p.id, p.name, p.category_id, p.supplier_id, p.price, p.quantity, p.threshold, p.available, c.name, s.name`

const productJoin = `FROM products p
	LEFT JOIN categories c ON p.category_id = c.id
	LEFT JOIN suppliers s ON p.supplier_id = s.id`

func scanProduct(row interface{ Scan(...any) error }) (models.Product, error) {
	var p models.Product
	var categoryID, supplierID sql.NullInt64
	var categoryName, supplierName sql.NullString

	err := row.Scan(&p.ID, &p.Name, &categoryID, &supplierID, &p.Price, &p.Quantity, &p.Threshold, &p.Available, &categoryName, &supplierName)
	if err != nil {
		return models.Product{}, err
	}

	if categoryID.Valid {
		id := int(categoryID.Int64)
		p.CategoryID = &id
	}
	if supplierID.Valid {
		id := int(supplierID.Int64)
		p.SupplierID = &id
	}
	if categoryName.Valid {
		p.CategoryName = &categoryName.String
	}
	if supplierName.Valid {
		p.SupplierName = &supplierName.String
	}
	return p, nil
}

// productReferenceError maps foreign key violations on products to the
// matching not-found sentinel, or returns nil for unrelated errors.
func productReferenceError(err error) error {
	msg := err.Error()
	if !strings.Contains(msg, "foreign key constraint") {
		return nil
	}
	if strings.Contains(msg, "category") {
		return ErrCategoryNotFound
	}
	if strings.Contains(msg, "supplier") {
		return ErrSupplierNotFound
	}
	return nil
}

func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	query := `INSERT INTO products (name, category_id, supplier_id, price, quantity, threshold, available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	now := time.Now().UTC()
	err := r.db.QueryRowContext(ctx, query, p.Name, p.CategoryID, p.SupplierID, p.Price, p.Quantity, p.Threshold, p.Available, now, now).Scan(&p.ID)
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") {
			return models.Product{}, ErrDuplicatedValueUnique
		}
		if fkErr := productReferenceError(err); fkErr != nil {
			return models.Product{}, fkErr
		}
		return models.Product{}, err
	}
	return r.GetByID(p.ID)
}

func (r *PostgresProductRepository) GetAll() ([]models.Product, error) {
	query := fmt.Sprintf("SELECT %s %s ORDER BY p.id", productColumns, productJoin)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return r.queryProducts(ctx, query)
}

func (r *PostgresProductRepository) GetByID(id int) (models.Product, error) {
	query := fmt.Sprintf("SELECT %s %s WHERE p.id = $1", productColumns, productJoin)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) Update(p models.Product) (models.Product, error) {
	query := `UPDATE products SET name = $1, category_id = $2, supplier_id = $3, price = $4, quantity = $5, threshold = $6, available = $7, updated_at = $8 WHERE id = $9`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, p.Name, p.CategoryID, p.SupplierID, p.Price, p.Quantity, p.Threshold, p.Available, time.Now().UTC(), p.ID)
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") {
			return models.Product{}, ErrDuplicatedValueUnique
		}
		if fkErr := productReferenceError(err); fkErr != nil {
			return models.Product{}, fkErr
		}
		return models.Product{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}
	return r.GetByID(p.ID)
}

func (r *PostgresProductRepository) Delete(id int) error {
	query := `DELETE FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Filter returns one page of matching products plus the total match count.
func (r *PostgresProductRepository) Filter(f ProductFilter) ([]models.Product, int, error) {
	conditions := ""
	args := []any{}
	argIdx := 1

	if f.Keyword != "" {
		conditions += fmt.Sprintf(" AND p.name LIKE $%d", argIdx)
		args = append(args, f.Keyword+"%")
		argIdx++
	}
	if f.CategoryID != nil {
		conditions += fmt.Sprintf(" AND p.category_id = $%d", argIdx)
		args = append(args, *f.CategoryID)
		argIdx++
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var totalCount int
	countQuery := "SELECT COUNT(*) FROM products p WHERE 1=1" + conditions
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf("SELECT %s %s WHERE 1=1%s ORDER BY p.id LIMIT $%d OFFSET $%d",
		productColumns, productJoin, conditions, argIdx, argIdx+1)
	args = append(args, f.Page.Size, f.Page.Offset())

	products, err := r.queryProducts(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return products, totalCount, nil
}

// AdjustQuantity applies a stock delta; the conditional update refuses to
// drive the quantity below zero.
func (r *PostgresProductRepository) AdjustQuantity(productID int, delta int) (models.Product, error) {
	query := `
		UPDATE products
		SET quantity = quantity + $1, updated_at = $2
		WHERE id = $3 AND quantity + $1 >= 0
		RETURNING id
	`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var id int
	err := r.db.QueryRowContext(ctx, query, delta, time.Now().UTC(), productID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		// Either the product is gone or the delta would go negative.
		if _, lookupErr := r.GetByID(productID); errors.Is(lookupErr, ErrProductNotFound) {
			return models.Product{}, ErrProductNotFound
		}
		return models.Product{}, ErrInvalidQuantityChange
	}
	if err != nil {
		return models.Product{}, err
	}
	return r.GetByID(id)
}

func (r *PostgresProductRepository) ByCategory(categoryID int) ([]models.Product, error) {
	query := fmt.Sprintf("SELECT %s %s WHERE p.category_id = $1 ORDER BY p.id", productColumns, productJoin)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return r.queryProducts(ctx, query, categoryID)
}

func (r *PostgresProductRepository) BySupplier(supplierID int) ([]models.Product, error) {
	query := fmt.Sprintf("SELECT %s %s WHERE p.supplier_id = $1 ORDER BY p.id", productColumns, productJoin)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return r.queryProducts(ctx, query, supplierID)
}

func (r *PostgresProductRepository) queryProducts(ctx context.Context, query string, args ...any) ([]models.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
