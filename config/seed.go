package config

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"online-canteen-api/models"
)

// Seed inserts a small demo dataset the first time the service starts
// against an empty database: two sellers with a shop each, two customers,
// and a stocked menu.
func Seed(db *gorm.DB) {
	var userCount, shopCount int64
	db.Model(&models.User{}).Count(&userCount)
	db.Model(&models.Shop{}).Count(&shopCount)
	if userCount > 0 || shopCount > 0 {
		return
	}

	seller1 := models.User{
		Name:         "Coffee Shop Owner",
		Email:        "shop.coffee@example.com",
		PasswordHash: mustHash("password123"),
		Role:         models.RoleSeller,
		IsActive:     true,
	}
	seller2 := models.User{
		Name:         "Sandwich Shop Owner",
		Email:        "shop.sandwich@example.com",
		PasswordHash: mustHash("password456"),
		Role:         models.RoleSeller,
		IsActive:     true,
	}
	customer1 := models.User{
		Name:         "John Doe",
		Email:        "john.doe@example.com",
		PasswordHash: mustHash("password123"),
		Role:         models.RoleCustomer,
		IsActive:     true,
	}
	customer2 := models.User{
		Name:         "Jane Smith",
		Email:        "jane.smith@example.com",
		PasswordHash: mustHash("password456"),
		Role:         models.RoleCustomer,
		IsActive:     true,
	}
	for _, u := range []*models.User{&seller1, &seller2, &customer1, &customer2} {
		if err := db.Create(u).Error; err != nil {
			log.Error().Err(err).Str("email", u.Email).Msg("seed: failed to create user")
			return
		}
	}

	shop1 := models.Shop{
		OwnerID:     seller1.ID,
		Name:        "Coffee Haven",
		Description: "Specialty coffee and pastries",
		Location:    "Building A, Floor 1",
		Phone:       "123-456-7890",
		IsActive:    true,
	}
	shop2 := models.Shop{
		OwnerID:     seller2.ID,
		Name:        "Sandwich Corner",
		Description: "Fresh sandwiches made to order",
		Location:    "Building B, Floor 2",
		Phone:       "098-765-4321",
		IsActive:    true,
	}
	for _, s := range []*models.Shop{&shop1, &shop2} {
		if err := db.Create(s).Error; err != nil {
			log.Error().Err(err).Str("shop", s.Name).Msg("seed: failed to create shop")
			return
		}
	}

	items := []models.FoodItem{
		{ShopID: shop1.ID, Name: "Latte", Description: "Espresso with steamed milk", Price: 3.50, Quantity: 50, IsAvailable: true},
		{ShopID: shop1.ID, Name: "Cappuccino", Description: "Espresso with foamed milk", Price: 3.25, Quantity: 50, IsAvailable: true},
		{ShopID: shop1.ID, Name: "Croissant", Description: "Butter croissant baked daily", Price: 2.75, Quantity: 20, IsAvailable: true},
		{ShopID: shop2.ID, Name: "Club Sandwich", Description: "Triple-decker with chicken and bacon", Price: 6.50, Quantity: 30, IsAvailable: true},
		{ShopID: shop2.ID, Name: "Veggie Wrap", Description: "Grilled vegetables in a tortilla", Price: 5.25, Quantity: 25, IsAvailable: true},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			log.Error().Err(err).Str("item", items[i].Name).Msg("seed: failed to create food item")
			return
		}
	}

	log.Info().Msg("seed data created")
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("seed: failed to hash password")
	}
	return string(hash)
}
