package models

import "time"

// Shop is a seller-owned storefront. Deletion is soft: IsActive flips to
// false and the shop disappears from customer-facing reads while existing
// orders keep their reference.
type Shop struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	OwnerID     uint       `json:"owner_id" gorm:"not null"`
	Owner       User       `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Name        string     `json:"name" gorm:"not null"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`
	FoodItems   []FoodItem `json:"food_items,omitempty" gorm:"foreignKey:ShopID"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
