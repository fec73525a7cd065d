package models

import "time"

// CanteenOrder is the legacy quick-order record kept alongside the full
// order flow. It carries a free-text item list and an unconstrained status
// string, and it does not touch shop inventory.
type CanteenOrder struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id"`
	CustomerName string    `json:"customer_name"`
	Items        string    `json:"items"`
	TotalPrice   float64   `json:"total_price"`
	Status       string    `json:"status"`
	OrderDate    time.Time `json:"order_date"`
}
