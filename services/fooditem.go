package services

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"online-canteen-api/models"
)

// FoodItemService is the inventory half of the catalog store.
type FoodItemService struct {
	db *gorm.DB
}

func NewFoodItemService(db *gorm.DB) *FoodItemService {
	return &FoodItemService{db: db}
}

func (s *FoodItemService) GetFoodItemByID(id uint) (*models.FoodItem, error) {
	var item models.FoodItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("food item %w", ErrNotFound)
		}
		return nil, err
	}
	return &item, nil
}

func (s *FoodItemService) ItemsByShop(shopID uint) ([]models.FoodItem, error) {
	var items []models.FoodItem
	if err := s.db.Where("shop_id = ?", shopID).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list food items: %w", err)
	}
	return items, nil
}

// AvailableItemsByShop returns the customer-facing menu of a shop.
func (s *FoodItemService) AvailableItemsByShop(shopID uint) ([]models.FoodItem, error) {
	var items []models.FoodItem
	if err := s.db.Where("shop_id = ? AND is_available = ?", shopID, true).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list available food items: %w", err)
	}
	return items, nil
}

func (s *FoodItemService) CreateFoodItem(item *models.FoodItem, shopID uint) error {
	var shop models.Shop
	if err := s.db.First(&shop, shopID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("shop %w", ErrNotFound)
		}
		return err
	}
	item.ShopID = shop.ID
	if err := s.db.Create(item).Error; err != nil {
		return fmt.Errorf("create food item: %w", err)
	}
	log.Info().Uint("food_item_id", item.ID).Uint("shop_id", shopID).Msg("food item created")
	return nil
}

// UpdateFoodItem replaces the editable fields of an item. The shop
// reference and creation time never change through this path.
func (s *FoodItemService) UpdateFoodItem(item *models.FoodItem) error {
	existing, err := s.GetFoodItemByID(item.ID)
	if err != nil {
		return err
	}
	item.ShopID = existing.ShopID
	item.CreatedAt = existing.CreatedAt
	if err := s.db.Save(item).Error; err != nil {
		return fmt.Errorf("update food item: %w", err)
	}
	return nil
}

// SetQuantity is the explicit seller-side stock adjustment. Availability
// follows the new quantity directly.
func (s *FoodItemService) SetQuantity(id uint, quantity int) (*models.FoodItem, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative: %w", ErrInvalidArgument)
	}
	item, err := s.GetFoodItemByID(id)
	if err != nil {
		return nil, err
	}
	item.Quantity = quantity
	item.IsAvailable = quantity > 0
	if err := s.db.Save(item).Error; err != nil {
		return nil, fmt.Errorf("update food item quantity: %w", err)
	}
	return item, nil
}

func (s *FoodItemService) DeleteFoodItem(id uint) error {
	if _, err := s.GetFoodItemByID(id); err != nil {
		return err
	}
	if err := s.db.Delete(&models.FoodItem{}, id).Error; err != nil {
		return fmt.Errorf("delete food item: %w", err)
	}
	log.Info().Uint("food_item_id", id).Msg("food item deleted")
	return nil
}

// IsFoodItemInShop reports membership; a missing item is not in any shop.
func (s *FoodItemService) IsFoodItemInShop(itemID, shopID uint) bool {
	var item models.FoodItem
	if err := s.db.Select("shop_id").First(&item, itemID).Error; err != nil {
		return false
	}
	return item.ShopID == shopID
}
