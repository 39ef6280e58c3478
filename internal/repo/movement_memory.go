package repo

import (
	"time"

	"github.com/karimhasan/inventory-manager/internal/models"
	"github.com/karimhasan/inventory-manager/internal/pagination"
)

type InMemoryMovementRepository struct {
	movements []models.Movement
}

func NewInMemoryMovementRepository() *InMemoryMovementRepository {
	return &InMemoryMovementRepository{
		movements: []models.Movement{},
	}
}

func (r *InMemoryMovementRepository) Log(productID, delta int) error {
	movement := models.Movement{
		ID:        len(r.movements) + 1,
		ProductID: productID,
		Delta:     delta,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	r.movements = append(r.movements, movement)
	return nil
}

func (r *InMemoryMovementRepository) GetByProductID(productID int, page pagination.Page) ([]models.Movement, int, error) {
	var filtered []models.Movement
	// Newest first, matching the postgres ordering.
	for i := len(r.movements) - 1; i >= 0; i-- {
		if r.movements[i].ProductID == productID {
			filtered = append(filtered, r.movements[i])
		}
	}
	return pagination.Slice(filtered, page), len(filtered), nil
}

func (r *InMemoryMovementRepository) Clear() {
	r.movements = []models.Movement{}
}
