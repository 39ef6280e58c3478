package models

// Product represents a product entity in the inventory system. CategoryName
// and SupplierName are resolved at the query boundary and stay nil when the
// corresponding foreign key is null.
type Product struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	CategoryID   *int    `json:"category_id,omitempty"`
	SupplierID   *int    `json:"supplier_id,omitempty"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	Threshold    int     `json:"threshold"`
	Available    bool    `json:"available"`
	CategoryName *string `json:"category_name,omitempty"`
	SupplierName *string `json:"supplier_name,omitempty"`
	CreatedAt    string  `json:"created_at,omitempty"`
	UpdatedAt    string  `json:"updated_at,omitempty"`
}
