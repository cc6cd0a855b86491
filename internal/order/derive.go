package order

import (
	"strings"

	"storefront-be/internal/cart"
)

// Derive transforms a cart snapshot plus the checkout form into an order
// submission. Prices are captured from the cart lines, so later catalog
// changes never alter the order. The total is recomputed from the derived
// items rather than copied from the cart, keeping the invariant
// total == sum(price x quantity) for exactly the items persisted.
func Derive(lines []cart.Line, info CustomerInfo) (Submission, error) {
	if len(lines) == 0 {
		return Submission{}, ErrEmptyCart
	}

	for _, f := range []struct{ name, value string }{
		{"name", info.Name},
		{"email", info.Email},
		{"address", info.Address},
		{"city", info.City},
		{"zipCode", info.ZipCode},
	} {
		if strings.TrimSpace(f.value) == "" {
			return Submission{}, &ValidationError{Field: f.name}
		}
	}

	items := make([]Item, 0, len(lines))
	var total float64
	for _, l := range lines {
		items = append(items, Item{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price,
			Quantity:  l.Quantity,
		})
		total += l.Price * float64(l.Quantity)
	}

	return Submission{
		CustomerName:  info.Name,
		CustomerEmail: info.Email,
		ShippingAddress: ShippingAddress{
			Address: info.Address,
			City:    info.City,
			ZipCode: info.ZipCode,
		},
		Items:  items,
		Total:  total,
		Status: StatusPending,
	}, nil
}
