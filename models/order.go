package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// OrderStatus represents the lifecycle of a canteen order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPreparing OrderStatus = "PREPARING"
	StatusReady     OrderStatus = "READY"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// ParseOrderStatus converts a raw string into an OrderStatus,
// case-insensitively.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(strings.ToUpper(s)) {
	case StatusPending:
		return StatusPending, nil
	case StatusPreparing:
		return StatusPreparing, nil
	case StatusReady:
		return StatusReady, nil
	case StatusCompleted:
		return StatusCompleted, nil
	case StatusCancelled:
		return StatusCancelled, nil
	}
	return "", fmt.Errorf("invalid status: %s", s)
}

func (s OrderStatus) String() string {
	return string(s)
}

type Order struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	CustomerID  uint        `json:"customer_id" gorm:"not null"`
	Customer    User        `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	ShopID      uint        `json:"shop_id" gorm:"not null"`
	Shop        Shop        `json:"shop,omitempty" gorm:"foreignKey:ShopID"`
	Status      OrderStatus `json:"status" gorm:"not null;default:'PENDING'"`
	TotalAmount float64     `json:"total_amount"`
	Notes       string      `json:"notes" gorm:"size:500"`
	Items       []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// RecalculateTotal sets TotalAmount to the sum of the item subtotals.
func (o *Order) RecalculateTotal() {
	total := 0.0
	for i := range o.Items {
		total += o.Items[i].Subtotal
	}
	o.TotalAmount = total
}

// OrderItem is one line of an order. Price is the unit price snapshotted
// at creation time, so later menu price changes never rewrite history.
type OrderItem struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	OrderID    uint     `json:"order_id" gorm:"not null"`
	FoodItemID uint     `json:"food_item_id" gorm:"not null"`
	FoodItem   FoodItem `json:"food_item,omitempty" gorm:"foreignKey:FoodItemID"`
	Quantity   int      `json:"quantity" gorm:"not null"`
	Price      float64  `json:"price" gorm:"not null"`
	Subtotal   float64  `json:"subtotal" gorm:"not null"`
}

// BeforeSave keeps Subtotal = Price × Quantity on every persist.
func (oi *OrderItem) BeforeSave(tx *gorm.DB) error {
	oi.Subtotal = oi.Price * float64(oi.Quantity)
	return nil
}
