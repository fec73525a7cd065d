package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"online-canteen-api/models"
	"online-canteen-api/services"
)

func TestCreateOrderComputesTotal(t *testing.T) {
	db := newTestDB(t, newTestClock())
	f := seedFixture(t, db)
	svc := services.NewOrderService(db)

	order, err := svc.CreateOrder(f.customer.ID, f.shop.ID, []services.OrderLine{
		{FoodItemID: f.latte.ID, Quantity: 2},
		{FoodItemID: f.croissant.ID, Quantity: 1},
	}, "no sugar")
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, "no sugar", order.Notes)
	require.Len(t, order.Items, 2)

	// Unit prices are snapshotted and subtotals sum to the total.
	assert.Equal(t, 3.50, order.Items[0].Price)
	assert.Equal(t, 7.00, order.Items[0].Subtotal)
	assert.Equal(t, 2.75, order.Items[1].Subtotal)

	sum := 0.0
	for _, item := range order.Items {
		sum += item.Subtotal
	}
	assert.Equal(t, sum, order.TotalAmount)
	assert.Equal(t, 9.75, order.TotalAmount)

	// Inventory was reserved.
	assert.Equal(t, 3, reloadItem(t, db, f.latte.ID).Quantity)
	assert.Equal(t, 9, reloadItem(t, db, f.croissant.ID).Quantity)
}

func TestCreateOrderSnapshotInsulatesFromPriceChange(t *testing.T) {
	db := newTestDB(t, newTestClock())
	f := seedFixture(t, db)
	svc := services.NewOrderService(db)

	order, err := svc.CreateOrder(f.customer.ID, f.shop.ID, []services.OrderLine{
		{FoodItemID: f.latte.ID, Quantity: 1},
	}, "")
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.FoodItem{}).Where("id = ?", f.latte.ID).Update("price", 9.99).Error)

	reloaded, err := svc.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 3.50, reloaded.Items[0].Price)
	assert.Equal(t, 3.50, reloaded.TotalAmount)
}

func TestCreateOrderExhaustsStockAndCancelRestores(t *testing.T) {
	db := newTestDB(t, newTestClock())
	f := seedFixture(t, db)
	svc := services.NewOrderService(db)

	// Order the entire stock of 5 lattes.
	order, err := svc.CreateOrder(f.customer.ID, f.shop.ID, []services.OrderLine{
		{FoodItemID: f.latte.ID, Quantity: 5},
	}, "")
	require.NoError(t, err)
	assert.Equal(t, 5*3.50, order.TotalAmount)

	item := reloadItem(t, db, f.latte.ID)
	assert.Equal(t, 0, item.Quantity)
	assert.False(t, item.IsAvailable)

	// Cancelling releases the reservation and restores availability.
	cancelled, err := svc.CancelOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)

	item = reloadItem(t, db, f.latte.ID)
	assert.Equal(t, 5, item.Quantity)
	assert.True(t, item.IsAvailable)
}

func TestCreateOrderInsufficientStockIsAtomic(t *testing.T) {
	db := newTestDB(t, newTestClock())
	f := seedFixture(t, db)
	svc := services.NewOrderService(db)

	// The first line would reserve fine; the second cannot be satisfied.
	_, err := svc.CreateOrder(f.customer.ID, f.shop.ID, []services.OrderLine{
		{FoodItemID: f.croissant.ID, Quantity: 2},
		{FoodItemID: f.latte.ID, Quantity: 6},
	}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "Latte")

	// Nothing was reserved and no order exists.
	assert.Equal(t, 10, reloadItem(t, db, f.croissant.ID).Quantity)
	assert.Equal(t, 5, reloadItem(t, db, f.latte.ID).Quantity)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateOrderItemFromOtherShop(t *testing.T) {
	db := newTestDB(t, newTestClock())
	f := seedFixture(t, db)
	svc := services.NewOrderService(db)

	_, err := svc.CreateOrder(f.customer.ID, f.shop.ID, []services.OrderLine{
		{FoodItemID: f.wrap.ID, Quantity: 1},
	}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrInvalidArgument)

	assert.Equal(t, 25, reloadItem(t, db, f.wrap.ID).Quantity)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateOrderMissingReferences(t *testing.T) {
	db := newTestDB(t, newTestClock())
	f := seedFixture(t, db)
	svc := services.NewOrderService(db)

	lines := []services.OrderLine{{FoodItemID: f.latte.ID, Quantity: 1}}

	_, err := svc.CreateOrder(9999, f.shop.ID, lines, "")
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = svc.CreateOrder(f.customer.ID, 9999, lines, "")
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = svc.CreateOrder(f.customer.ID, f.shop.ID, []services.OrderLine{{FoodItemID: 9999, Quantity: 1}}, "")
	assert.ErrorIs(t, err, services.ErrInvalidArgument)

	_, err = svc.CreateOrder(f.customer.ID, f.shop.ID, nil, "")
	assert.ErrorIs(t, err, services.ErrInvalidArgument)
}

func TestCancelTwiceDoesNotDoubleCredit(t *testing.T) {
	db := newTestDB(t, newTestClock())
	f := seedFixture(t, db)
	svc := services.NewOrderService(db)

	order, err := svc.CreateOrder(f.customer.ID, f.shop.ID, []services.OrderLine{
		{FoodItemID: f.latte.ID, Quantity: 3},
	}, "")
	require.NoError(t, err)
	assert.Equal(t, 2, reloadItem(t, db, f.latte.ID).Quantity)

	_, err = svc.CancelOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, reloadItem(t, db, f.latte.ID).Quantity)

	// A second cancel is rejected and must not release inventory again.
	_, err = svc.CancelOrder(order.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrInvalidArgument)
	assert.Equal(t, 5, reloadItem(t, db, f.latte.ID).Quantity)
}

func TestUpdateOrderStatusLifecycle(t *testing.T) {
	db := newTestDB(t, newTestClock())
	f := seedFixture(t, db)
	svc := services.NewOrderService(db)

	order, err := svc.CreateOrder(f.customer.ID, f.shop.ID, []services.OrderLine{
		{FoodItemID: f.croissant.ID, Quantity: 1},
	}, "")
	require.NoError(t, err)

	for _, status := range []models.OrderStatus{models.StatusPreparing, models.StatusReady, models.StatusCompleted} {
		order, err = svc.UpdateOrderStatus(order.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, order.Status)
	}

	// COMPLETED is terminal: nothing moves out of it, including a cancel.
	_, err = svc.UpdateOrderStatus(order.ID, models.StatusPreparing)
	assert.ErrorIs(t, err, services.ErrInvalidArgument)
	_, err = svc.CancelOrder(order.ID)
	assert.ErrorIs(t, err, services.ErrInvalidArgument)

	// Completing never releases the reservation.
	assert.Equal(t, 9, reloadItem(t, db, f.croissant.ID).Quantity)
}

func TestUpdateOrderStatusUnknownOrder(t *testing.T) {
	db := newTestDB(t, newTestClock())
	seedFixture(t, db)
	svc := services.NewOrderService(db)

	_, err := svc.UpdateOrderStatus(424242, models.StatusPreparing)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestUpdateOrderStatusRefreshesTimestamp(t *testing.T) {
	clock := newTestClock()
	db := newTestDB(t, clock)
	f := seedFixture(t, db)
	svc := services.NewOrderService(db)

	order, err := svc.CreateOrder(f.customer.ID, f.shop.ID, []services.OrderLine{
		{FoodItemID: f.latte.ID, Quantity: 1},
	}, "")
	require.NoError(t, err)
	createdAt := order.UpdatedAt

	clock.Advance(10 * time.Minute)

	order, err = svc.UpdateOrderStatus(order.ID, models.StatusPreparing)
	require.NoError(t, err)
	assert.True(t, order.UpdatedAt.After(createdAt))
	assert.WithinDuration(t, clock.Now(), order.UpdatedAt, time.Second)
}

func TestOwnershipPredicates(t *testing.T) {
	db := newTestDB(t, newTestClock())
	f := seedFixture(t, db)
	svc := services.NewOrderService(db)

	order, err := svc.CreateOrder(f.customer.ID, f.shop.ID, []services.OrderLine{
		{FoodItemID: f.latte.ID, Quantity: 1},
	}, "")
	require.NoError(t, err)

	assert.True(t, svc.IsOrderOwnedByCustomer(order.ID, f.customer.ID))
	assert.False(t, svc.IsOrderOwnedByCustomer(order.ID, f.seller.ID))
	assert.False(t, svc.IsOrderOwnedByCustomer(9999, f.customer.ID))

	assert.True(t, svc.IsOrderFromShop(order.ID, f.shop.ID))
	assert.False(t, svc.IsOrderFromShop(order.ID, f.otherShop.ID))
	assert.False(t, svc.IsOrderFromShop(9999, f.shop.ID))
}

func TestOrderQueriesFilterByStatus(t *testing.T) {
	db := newTestDB(t, newTestClock())
	f := seedFixture(t, db)
	svc := services.NewOrderService(db)

	first, err := svc.CreateOrder(f.customer.ID, f.shop.ID, []services.OrderLine{
		{FoodItemID: f.latte.ID, Quantity: 1},
	}, "")
	require.NoError(t, err)
	second, err := svc.CreateOrder(f.customer.ID, f.shop.ID, []services.OrderLine{
		{FoodItemID: f.croissant.ID, Quantity: 1},
	}, "")
	require.NoError(t, err)

	_, err = svc.UpdateOrderStatus(second.ID, models.StatusPreparing)
	require.NoError(t, err)

	pending, err := svc.OrdersByShopAndStatus(f.shop.ID, models.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, first.ID, pending[0].ID)

	all, err := svc.OrdersByShop(f.shop.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := svc.OrdersByCustomer(f.customer.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	byStatus, err := svc.OrdersByCustomerAndStatus(f.customer.ID, models.StatusPreparing)
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, second.ID, byStatus[0].ID)
}
