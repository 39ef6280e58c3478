package models

// Movement is one stock adjustment (positive delta for incoming stock,
// negative for exported stock).
type Movement struct {
	ID        int    `json:"id"`
	ProductID int    `json:"product_id"`
	Delta     int    `json:"delta"`
	CreatedAt string `json:"created_at"`
}
