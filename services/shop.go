package services

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"online-canteen-api/models"
)

// ShopService is the shop half of the catalog store.
type ShopService struct {
	db *gorm.DB
}

func NewShopService(db *gorm.DB) *ShopService {
	return &ShopService{db: db}
}

// ActiveShops returns every shop that has not been soft-deleted. This is
// the only listing customers ever see.
func (s *ShopService) ActiveShops() ([]models.Shop, error) {
	var shops []models.Shop
	if err := s.db.Where("is_active = ?", true).Find(&shops).Error; err != nil {
		return nil, fmt.Errorf("list shops: %w", err)
	}
	return shops, nil
}

func (s *ShopService) GetShopByID(id uint) (*models.Shop, error) {
	var shop models.Shop
	if err := s.db.First(&shop, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("shop %w", ErrNotFound)
		}
		return nil, err
	}
	return &shop, nil
}

func (s *ShopService) ShopsByOwner(ownerID uint) ([]models.Shop, error) {
	var shops []models.Shop
	if err := s.db.Where("owner_id = ?", ownerID).Find(&shops).Error; err != nil {
		return nil, fmt.Errorf("list shops by owner: %w", err)
	}
	return shops, nil
}

func (s *ShopService) CreateShop(shop *models.Shop, owner *models.User) error {
	shop.OwnerID = owner.ID
	shop.IsActive = true
	if err := s.db.Create(shop).Error; err != nil {
		return fmt.Errorf("create shop: %w", err)
	}
	log.Info().Uint("shop_id", shop.ID).Uint("owner_id", owner.ID).Msg("shop created")
	return nil
}

func (s *ShopService) UpdateShop(shop *models.Shop) error {
	if err := s.db.Save(shop).Error; err != nil {
		return fmt.Errorf("update shop: %w", err)
	}
	return nil
}

// SoftDeleteShop marks a shop inactive. The row stays so historical orders
// keep a valid shop reference.
func (s *ShopService) SoftDeleteShop(id uint) error {
	shop, err := s.GetShopByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Model(shop).Update("is_active", false).Error; err != nil {
		return fmt.Errorf("soft delete shop: %w", err)
	}
	log.Info().Uint("shop_id", id).Msg("shop soft-deleted")
	return nil
}

// IsShopOwnedByUser reports ownership; a missing shop is simply not owned.
func (s *ShopService) IsShopOwnedByUser(userID, shopID uint) bool {
	var shop models.Shop
	if err := s.db.Select("owner_id").First(&shop, shopID).Error; err != nil {
		return false
	}
	return shop.OwnerID == userID
}
