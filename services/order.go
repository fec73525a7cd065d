package services

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"online-canteen-api/models"
	"online-canteen-api/statemachine"
)

// OrderLine is one requested line of a new order.
type OrderLine struct {
	FoodItemID uint
	Quantity   int
}

// OrderService is the order engine: it creates orders against the catalog,
// reserves inventory, and moves orders through the status lifecycle.
//
// Every multi-step sequence runs inside a single database transaction, so
// two concurrent orders can never both pass the quantity check against the
// same stale stock.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// CreateOrder places an order for a customer at a shop. For every line the
// referenced food item must exist, belong to the shop, and have enough
// stock. On success each line's quantity is reserved (decremented) and the
// order is persisted as PENDING with unit prices snapshotted; on any
// failure nothing is committed.
func (s *OrderService) CreateOrder(customerID, shopID uint, lines []OrderLine, notes string) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("order must contain at least one item: %w", ErrInvalidArgument)
	}

	var orderID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var customer models.User
		if err := tx.First(&customer, customerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("customer %w", ErrNotFound)
			}
			return err
		}

		var shop models.Shop
		if err := tx.First(&shop, shopID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("shop %w", ErrNotFound)
			}
			return err
		}

		order := models.Order{
			CustomerID: customer.ID,
			ShopID:     shop.ID,
			Status:     models.StatusPending,
			Notes:      notes,
		}

		for _, line := range lines {
			if line.Quantity <= 0 {
				return fmt.Errorf("quantity for food item %d must be positive: %w", line.FoodItemID, ErrInvalidArgument)
			}

			var item models.FoodItem
			if err := tx.First(&item, line.FoodItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("food item %d does not exist: %w", line.FoodItemID, ErrInvalidArgument)
				}
				return err
			}
			if item.ShopID != shop.ID {
				return fmt.Errorf("food item %s does not belong to the shop: %w", item.Name, ErrInvalidArgument)
			}

			// Reserve: decrement stock, flipping availability off at zero.
			if !item.DecreaseQuantity(line.Quantity) {
				return fmt.Errorf("not enough quantity for %s: %w", item.Name, ErrInvalidArgument)
			}
			if err := tx.Save(&item).Error; err != nil {
				return fmt.Errorf("reserve inventory: %w", err)
			}

			order.Items = append(order.Items, models.OrderItem{
				FoodItemID: item.ID,
				Quantity:   line.Quantity,
				Price:      item.Price,
				Subtotal:   item.Price * float64(line.Quantity),
			})
		}

		order.RecalculateTotal()
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Uint("order_id", orderID).Uint("customer_id", customerID).Uint("shop_id", shopID).Msg("order created")
	return s.GetOrderByID(orderID)
}

// UpdateOrderStatus moves an order to a new status. Transitions out of a
// terminal status (COMPLETED, CANCELLED) are rejected; because re-entering
// CANCELLED is among them, a cancelled order can never release its
// inventory twice. Moving into CANCELLED from any live status returns every
// reserved line quantity to its food item, restoring availability where the
// reservation had exhausted it.
func (s *OrderService) UpdateOrderStatus(orderID uint, newStatus models.OrderStatus) (*models.Order, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Preload("Items").First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("order %w", ErrNotFound)
			}
			return err
		}

		if err := statemachine.CanTransition(order.Status, newStatus); err != nil {
			return fmt.Errorf("%v: %w", err, ErrInvalidArgument)
		}

		if newStatus == models.StatusCancelled {
			// Release every reservation held by this order.
			for i := range order.Items {
				var item models.FoodItem
				if err := tx.First(&item, order.Items[i].FoodItemID).Error; err != nil {
					return fmt.Errorf("load food item for release: %w", err)
				}
				item.IncreaseQuantity(order.Items[i].Quantity)
				if err := tx.Save(&item).Error; err != nil {
					return fmt.Errorf("release inventory: %w", err)
				}
			}
		}

		prev := order.Status
		if err := tx.Model(&order).Update("status", newStatus).Error; err != nil {
			return fmt.Errorf("update order status: %w", err)
		}

		log.Info().Uint("order_id", orderID).
			Str("from", prev.String()).Str("to", newStatus.String()).
			Msg("order status updated")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetOrderByID(orderID)
}

// CancelOrder is shorthand for moving an order into CANCELLED.
func (s *OrderService) CancelOrder(orderID uint) (*models.Order, error) {
	return s.UpdateOrderStatus(orderID, models.StatusCancelled)
}

func (s *OrderService) GetOrderByID(id uint) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("Items.FoodItem").Preload("Customer").Preload("Shop").First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %w", ErrNotFound)
		}
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) OrdersByCustomer(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items.FoodItem").Preload("Shop").
		Where("customer_id = ?", customerID).
		Order("created_at desc").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("list orders by customer: %w", err)
	}
	return orders, nil
}

func (s *OrderService) OrdersByShop(shopID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items.FoodItem").Preload("Customer").
		Where("shop_id = ?", shopID).
		Order("created_at desc").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("list orders by shop: %w", err)
	}
	return orders, nil
}

func (s *OrderService) OrdersByShopAndStatus(shopID uint, status models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items.FoodItem").Preload("Customer").
		Where("shop_id = ? AND status = ?", shopID, status).
		Order("created_at desc").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("list orders by shop and status: %w", err)
	}
	return orders, nil
}

func (s *OrderService) OrdersByCustomerAndStatus(customerID uint, status models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items.FoodItem").Preload("Shop").
		Where("customer_id = ? AND status = ?", customerID, status).
		Order("created_at desc").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("list orders by customer and status: %w", err)
	}
	return orders, nil
}

// IsOrderOwnedByCustomer reports whether the order belongs to the customer.
// A missing order is not owned by anyone.
func (s *OrderService) IsOrderOwnedByCustomer(orderID, customerID uint) bool {
	var order models.Order
	if err := s.db.Select("customer_id").First(&order, orderID).Error; err != nil {
		return false
	}
	return order.CustomerID == customerID
}

// IsOrderFromShop reports whether the order was placed at the shop.
func (s *OrderService) IsOrderFromShop(orderID, shopID uint) bool {
	var order models.Order
	if err := s.db.Select("shop_id").First(&order, orderID).Error; err != nil {
		return false
	}
	return order.ShopID == shopID
}
