package catalog

import "errors"

var (
	// -- Validation & Input --
	ErrNameRequired  = errors.New("product name is required")
	ErrNegativePrice = errors.New("product price cannot be negative")
	ErrNegativeStock = errors.New("product stock cannot be negative")
	ErrNoFields      = errors.New("no fields to update")

	// -- Resource State --
	ErrProductNotFound = errors.New("product not found")

	// -- Authorization --
	ErrNotOwner = errors.New("product belongs to another seller")
)
