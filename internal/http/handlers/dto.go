package handlers

type ProductRequest struct {
	Id         int     `json:"id,omitempty"`
	Name       string  `json:"name"`
	CategoryID *int    `json:"category_id"`
	SupplierID *int    `json:"supplier_id"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Threshold  int     `json:"threshold"`
}

type ProductResponse struct {
	Id           int     `json:"id"`
	Name         string  `json:"name"`
	CategoryID   *int    `json:"category_id"`
	CategoryName *string `json:"category_name"`
	SupplierID   *int    `json:"supplier_id"`
	SupplierName *string `json:"supplier_name"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	Threshold    int     `json:"threshold"`
	Available    bool    `json:"available"`
	LowStock     bool    `json:"low_stock,omitempty"`
}

type Meta struct {
	TotalCount  int `json:"total_count"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

type ProductsSearchResult struct {
	Data []ProductResponse `json:"data"`
	Meta Meta              `json:"meta,omitempty"`
}

type CategoryRequest struct {
	Name string `json:"name"`
}

type CategoryResponse struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type CategoriesSearchResult struct {
	Data []CategoryResponse `json:"data"`
	Meta Meta               `json:"meta,omitempty"`
}

type SupplierRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type SupplierResponse struct {
	Id      int    `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type SuppliersSearchResult struct {
	Data []SupplierResponse `json:"data"`
	Meta Meta               `json:"meta,omitempty"`
}

type QuantityAdjustmentRequest struct {
	Delta int `json:"delta"` // can be positive or negative
}

type MovementResponse struct {
	ID        int    `json:"id"`
	ProductID int    `json:"product_id"`
	Delta     int    `json:"delta"`
	CreatedAt string `json:"created_at"`
}

type MovementsSearchResult struct {
	Data []MovementResponse `json:"data"`
	Meta Meta               `json:"meta,omitempty"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type RegisterAsAdminRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type UserRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
}

type UserResponse struct {
	Id        int      `json:"id"`
	Username  string   `json:"username"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Roles     []string `json:"roles"`
}

type RoleRequest struct {
	Name string `json:"name"`
}

type RoleResponse struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type StatusResult struct {
	Message string `json:"message"`
}
