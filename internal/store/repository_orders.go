package store

import (
	"context"

	"github.com/MKhiriev/qa-demo-api/internal/logger"
	"github.com/MKhiriev/qa-demo-api/models"
)

// orderRepository is a read-only in-memory [OrderRepository].
type orderRepository struct {
	orders map[int64]models.Order

	logger *logger.Logger
}

// NewOrderRepository indexes orders by id. Later duplicates win.
func NewOrderRepository(orders []models.Order, logger *logger.Logger) OrderRepository {
	logger.Debug().Int("orders", len(orders)).Msg("creating order repository")

	byID := make(map[int64]models.Order, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
	}

	return &orderRepository{
		orders: byID,
		logger: logger,
	}
}

// FindOrderByID implements [OrderRepository].
func (r *orderRepository) FindOrderByID(ctx context.Context, orderID int64) (models.Order, error) {
	order, ok := r.orders[orderID]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}

	return order, nil
}
