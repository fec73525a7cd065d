package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderRecalculateTotal(t *testing.T) {
	order := Order{
		Items: []OrderItem{
			{Quantity: 2, Price: 3.50, Subtotal: 7.00},
			{Quantity: 1, Price: 2.75, Subtotal: 2.75},
		},
	}
	order.RecalculateTotal()
	assert.Equal(t, 9.75, order.TotalAmount)

	order.Items = nil
	order.RecalculateTotal()
	assert.Equal(t, 0.0, order.TotalAmount)
}

func TestOrderItemBeforeSaveRecomputesSubtotal(t *testing.T) {
	item := OrderItem{Quantity: 3, Price: 2.50, Subtotal: 999}
	assert.NoError(t, item.BeforeSave(nil))
	assert.Equal(t, 7.50, item.Subtotal)
}

func TestParseOrderStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    OrderStatus
		wantErr bool
	}{
		{input: "PENDING", want: StatusPending},
		{input: "preparing", want: StatusPreparing},
		{input: "Ready", want: StatusReady},
		{input: "COMPLETED", want: StatusCompleted},
		{input: "cancelled", want: StatusCancelled},
		{input: "SHIPPED", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOrderStatus(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("customer")
	assert.NoError(t, err)
	assert.Equal(t, RoleCustomer, role)

	role, err = ParseRole("SELLER")
	assert.NoError(t, err)
	assert.Equal(t, RoleSeller, role)

	_, err = ParseRole("admin")
	assert.Error(t, err)
}
