package order

import (
	"testing"

	"storefront-be/internal/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInfo() CustomerInfo {
	return CustomerInfo{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Address: "1 Main St",
		City:    "Springfield",
		ZipCode: "12345",
	}
}

func TestDerive_Success(t *testing.T) {
	lines := []cart.Line{
		{ProductID: "A", Name: "Widget", Price: 10, Quantity: 2},
	}

	sub, err := Derive(lines, validInfo())
	require.NoError(t, err)

	assert.Equal(t, StatusPending, sub.Status)
	assert.Equal(t, 20.0, sub.Total)
	if assert.Len(t, sub.Items, 1) {
		assert.Equal(t, "A", sub.Items[0].ProductID)
		assert.Equal(t, 10.0, sub.Items[0].Price)
		assert.Equal(t, 2, sub.Items[0].Quantity)
	}
	assert.Equal(t, "Jane Doe", sub.CustomerName)
	assert.Equal(t, "Springfield", sub.ShippingAddress.City)
}

func TestDerive_EmptyCart(t *testing.T) {
	t.Run("with valid customer info", func(t *testing.T) {
		_, err := Derive(nil, validInfo())
		assert.ErrorIs(t, err, ErrEmptyCart)
	})

	t.Run("with blank customer info", func(t *testing.T) {
		// Empty cart wins regardless of form contents.
		_, err := Derive([]cart.Line{}, CustomerInfo{})
		assert.ErrorIs(t, err, ErrEmptyCart)
	})
}

func TestDerive_MissingFields(t *testing.T) {
	lines := []cart.Line{{ProductID: "A", Price: 5, Quantity: 1}}

	cases := []struct {
		field  string
		mutate func(*CustomerInfo)
	}{
		{"name", func(i *CustomerInfo) { i.Name = "" }},
		{"email", func(i *CustomerInfo) { i.Email = "  " }},
		{"address", func(i *CustomerInfo) { i.Address = "" }},
		{"city", func(i *CustomerInfo) { i.City = "" }},
		{"zipCode", func(i *CustomerInfo) { i.ZipCode = "\t" }},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			info := validInfo()
			tc.mutate(&info)

			_, err := Derive(lines, info)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
			assert.True(t, IsValidation(err))
		})
	}
}

func TestDerive_TotalMatchesItems(t *testing.T) {
	lines := []cart.Line{
		{ProductID: "A", Price: 9.99, Quantity: 3},
		{ProductID: "B", Price: 4.50, Quantity: 2},
		{ProductID: "C", Price: 120.00, Quantity: 1},
	}

	sub, err := Derive(lines, validInfo())
	require.NoError(t, err)

	var expected float64
	for _, item := range sub.Items {
		expected += item.Price * float64(item.Quantity)
	}
	assert.Equal(t, expected, sub.Total)
}

func TestDerive_ItemsPreserveLineOrder(t *testing.T) {
	lines := []cart.Line{
		{ProductID: "B", Price: 1, Quantity: 1},
		{ProductID: "A", Price: 2, Quantity: 1},
	}

	sub, err := Derive(lines, validInfo())
	require.NoError(t, err)

	assert.Equal(t, "B", sub.Items[0].ProductID)
	assert.Equal(t, "A", sub.Items[1].ProductID)
}
