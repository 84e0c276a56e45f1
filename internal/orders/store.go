package orders

import (
	"context"
	"fmt"

	"storefront-app/internal/models"

	"gorm.io/gorm"
)

// Store keeps the local record of submitted orders for the customer's
// tracking list.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Record(ctx context.Context, order *models.Order) error {
	if err := s.db.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("failed to record order: %w", err)
	}
	return nil
}

func (s *Store) ListByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	var list []models.Order
	if err := s.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("placed_at desc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return list, nil
}

func (s *Store) ByInvoice(ctx context.Context, userID uint, invoiceID string) (models.Order, error) {
	var order models.Order
	if err := s.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ? AND invoice_id = ?", userID, invoiceID).
		First(&order).Error; err != nil {
		return models.Order{}, err
	}
	return order, nil
}
