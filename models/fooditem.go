package models

import "time"

// FoodItem holds the sellable inventory of a shop. Quantity and
// availability are mutated only through DecreaseQuantity/IncreaseQuantity
// or an explicit seller update, never directly by order creation.
//
// Invariant: IsAvailable is false whenever Quantity is zero. The reverse
// does not hold — a seller can mark an item unavailable while stock remains.
type FoodItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ShopID      uint      `json:"shop_id" gorm:"not null"`
	Shop        Shop      `json:"shop,omitempty" gorm:"foreignKey:ShopID"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"not null"`
	ImageURL    string    `json:"image_url"`
	Quantity    int       `json:"quantity" gorm:"not null"`
	IsAvailable bool      `json:"is_available" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DecreaseQuantity reserves stock. It succeeds only when the current
// quantity covers the requested amount; at zero the item flips unavailable
// in the same step.
func (f *FoodItem) DecreaseQuantity(amount int) bool {
	if f.Quantity < amount {
		return false
	}
	f.Quantity -= amount
	if f.Quantity == 0 {
		f.IsAvailable = false
	}
	return true
}

// IncreaseQuantity releases a reservation back into stock. An item that
// went unavailable at zero quantity becomes available again.
func (f *FoodItem) IncreaseQuantity(amount int) {
	f.Quantity += amount
	if !f.IsAvailable && f.Quantity > 0 {
		f.IsAvailable = true
	}
}
