package services_test

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"online-canteen-api/config"
	"online-canteen-api/models"
)

// testClock is the injected clock for tests; advance it to observe
// timestamp refreshes.
type testClock struct {
	t time.Time
}

func newTestClock() *testClock {
	return &testClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// newTestDB opens an isolated in-memory sqlite database. The connection
// pool is pinned to one connection so every query sees the same memory DB.
func newTestDB(t *testing.T, clock *testClock) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:  gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: clock.Now,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

// fixture is the standard scene: one seller with a stocked shop, a second
// shop belonging to someone else, and a customer.
type fixture struct {
	customer  models.User
	seller    models.User
	shop      models.Shop
	latte     models.FoodItem // 3.50, stock 5
	croissant models.FoodItem // 2.75, stock 10
	otherShop models.Shop
	wrap      models.FoodItem // belongs to otherShop
}

func seedFixture(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	f := &fixture{
		customer: models.User{Name: "John Doe", Email: "john.doe@example.com", PasswordHash: string(hash), Role: models.RoleCustomer, IsActive: true},
		seller:   models.User{Name: "Coffee Shop Owner", Email: "shop.coffee@example.com", PasswordHash: string(hash), Role: models.RoleSeller, IsActive: true},
	}
	require.NoError(t, db.Create(&f.customer).Error)
	require.NoError(t, db.Create(&f.seller).Error)

	otherSeller := models.User{Name: "Sandwich Shop Owner", Email: "shop.sandwich@example.com", PasswordHash: string(hash), Role: models.RoleSeller, IsActive: true}
	require.NoError(t, db.Create(&otherSeller).Error)

	f.shop = models.Shop{OwnerID: f.seller.ID, Name: "Coffee Haven", IsActive: true}
	require.NoError(t, db.Create(&f.shop).Error)
	f.otherShop = models.Shop{OwnerID: otherSeller.ID, Name: "Sandwich Corner", IsActive: true}
	require.NoError(t, db.Create(&f.otherShop).Error)

	f.latte = models.FoodItem{ShopID: f.shop.ID, Name: "Latte", Price: 3.50, Quantity: 5, IsAvailable: true}
	require.NoError(t, db.Create(&f.latte).Error)
	f.croissant = models.FoodItem{ShopID: f.shop.ID, Name: "Croissant", Price: 2.75, Quantity: 10, IsAvailable: true}
	require.NoError(t, db.Create(&f.croissant).Error)
	f.wrap = models.FoodItem{ShopID: f.otherShop.ID, Name: "Veggie Wrap", Price: 5.25, Quantity: 25, IsAvailable: true}
	require.NoError(t, db.Create(&f.wrap).Error)

	return f
}

// reloadItem fetches the current state of a food item.
func reloadItem(t *testing.T, db *gorm.DB, id uint) models.FoodItem {
	t.Helper()
	var item models.FoodItem
	require.NoError(t, db.First(&item, id).Error)
	return item
}
