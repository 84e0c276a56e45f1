package cart

import (
	"context"
	"fmt"

	"storefront-app/internal/models"

	"gorm.io/gorm"
)

// Store persists cart lines. One cart per customer, keyed by user id.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// AddItem appends a line, snapshotting the product's name and current price.
// Adding the same product+size again bumps the quantity instead.
func (s *Store) AddItem(ctx context.Context, userID uint, product models.Product, size string, quantity int) (models.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}

	var existing models.CartItem
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ? AND size = ?", userID, product.ID, size).
		First(&existing).Error
	if err == nil {
		existing.Quantity += quantity
		if err := s.db.WithContext(ctx).Save(&existing).Error; err != nil {
			return models.CartItem{}, fmt.Errorf("failed to update cart line: %w", err)
		}
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return models.CartItem{}, fmt.Errorf("failed to read cart: %w", err)
	}

	item := models.CartItem{
		UserID:      userID,
		ProductID:   product.ID,
		ProductName: product.Name,
		UnitPrice:   product.UnitPrice,
		Size:        size,
		Quantity:    quantity,
		Selected:    true,
	}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return models.CartItem{}, fmt.Errorf("failed to add cart line: %w", err)
	}
	return item, nil
}

func (s *Store) List(ctx context.Context, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("added_at").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list cart: %w", err)
	}
	return items, nil
}

func (s *Store) UpdateQuantity(ctx context.Context, userID, itemID uint, quantity int) error {
	if quantity < 1 {
		return s.RemoveItems(ctx, userID, []uint{itemID})
	}
	res := s.db.WithContext(ctx).Model(&models.CartItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("quantity", quantity)
	if res.Error != nil {
		return fmt.Errorf("failed to update quantity: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *Store) SetSelected(ctx context.Context, userID, itemID uint, selected bool) error {
	res := s.db.WithContext(ctx).Model(&models.CartItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("selected", selected)
	if res.Error != nil {
		return fmt.Errorf("failed to update selection: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SelectedItems returns the lines that participate in checkout.
func (s *Store) SelectedItems(ctx context.Context, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND selected = ?", userID, true).
		Order("added_at").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list selected cart lines: %w", err)
	}
	return items, nil
}

// RemoveItems deletes only the given lines; unselected lines survive a
// successful checkout.
func (s *Store) RemoveItems(ctx context.Context, userID uint, itemIDs []uint) error {
	if len(itemIDs) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, itemIDs).
		Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to remove cart lines: %w", err)
	}
	return nil
}

// Subtotal sums price*quantity over the selected lines.
func Subtotal(items []models.CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.UnitPrice * float64(it.Quantity)
	}
	return total
}
