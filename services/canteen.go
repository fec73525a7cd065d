package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"online-canteen-api/models"
)

// CanteenService backs the legacy quick-order endpoints. It predates the
// shop/inventory flow and deliberately stays decoupled from it.
type CanteenService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewCanteenService(db *gorm.DB, now func() time.Time) *CanteenService {
	if now == nil {
		now = time.Now
	}
	return &CanteenService{db: db, now: now}
}

func (s *CanteenService) CreateOrder(order *models.CanteenOrder) error {
	if order.OrderDate.IsZero() {
		order.OrderDate = s.now()
	}
	if err := s.db.Create(order).Error; err != nil {
		return fmt.Errorf("create canteen order: %w", err)
	}
	return nil
}

func (s *CanteenService) AllOrders() ([]models.CanteenOrder, error) {
	var orders []models.CanteenOrder
	if err := s.db.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list canteen orders: %w", err)
	}
	return orders, nil
}

func (s *CanteenService) OrdersByStatus(status string) ([]models.CanteenOrder, error) {
	var orders []models.CanteenOrder
	if err := s.db.Where("status = ?", status).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list canteen orders by status: %w", err)
	}
	return orders, nil
}

func (s *CanteenService) GetOrderByID(id uint) (*models.CanteenOrder, error) {
	var order models.CanteenOrder
	if err := s.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("canteen order %w", ErrNotFound)
		}
		return nil, err
	}
	return &order, nil
}

func (s *CanteenService) UpdateOrder(id uint, details *models.CanteenOrder) (*models.CanteenOrder, error) {
	order, err := s.GetOrderByID(id)
	if err != nil {
		return nil, err
	}
	order.CustomerName = details.CustomerName
	order.Items = details.Items
	order.TotalPrice = details.TotalPrice
	order.Status = details.Status
	if err := s.db.Save(order).Error; err != nil {
		return nil, fmt.Errorf("update canteen order: %w", err)
	}
	return order, nil
}

func (s *CanteenService) UpdateOrderStatus(id uint, status string) (*models.CanteenOrder, error) {
	order, err := s.GetOrderByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(order).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("update canteen order status: %w", err)
	}
	return order, nil
}

func (s *CanteenService) DeleteOrder(id uint) error {
	if _, err := s.GetOrderByID(id); err != nil {
		return err
	}
	if err := s.db.Delete(&models.CanteenOrder{}, id).Error; err != nil {
		return fmt.Errorf("delete canteen order: %w", err)
	}
	return nil
}
