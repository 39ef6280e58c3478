package repo

import (
	"github.com/karimhasan/inventory-manager/internal/models"
	"github.com/karimhasan/inventory-manager/internal/pagination"
)

// MovementRepository is the stock adjustment audit trail.
type MovementRepository interface {
	Log(productID, delta int) error
	GetByProductID(productID int, page pagination.Page) ([]models.Movement, int, error)
}
