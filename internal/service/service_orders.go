package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/qa-demo-api/internal/logger"
	"github.com/MKhiriev/qa-demo-api/internal/store"
	"github.com/MKhiriev/qa-demo-api/models"
)

type orderService struct {
	orderRepository store.OrderRepository

	logger *logger.Logger
}

func NewOrderService(orders store.OrderRepository, logger *logger.Logger) OrderService {
	return &orderService{
		orderRepository: orders,
		logger:          logger,
	}
}

// GetOrder returns the order with orderID or ErrOrderNotFound.
func (s *orderService) GetOrder(ctx context.Context, orderID int64) (models.Order, error) {
	order, err := s.orderRepository.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			return models.Order{}, ErrOrderNotFound
		}
		logger.FromContext(ctx).Err(err).Int64("order_id", orderID).Msg("order lookup failed")
		return models.Order{}, fmt.Errorf("order lookup failed: %w", err)
	}

	return order, nil
}
