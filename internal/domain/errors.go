package domain

import "errors"

var (
	// ErrDuplicateItem is returned when a product already in the basket is
	// added again.
	ErrDuplicateItem = errors.New("item already in basket")

	// ErrNotInBasket is returned when removing a product the basket does not
	// contain.
	ErrNotInBasket = errors.New("item not in basket")

	// ErrEmptyOrder is returned when an order without purchasable items is
	// submitted.
	ErrEmptyOrder = errors.New("order has no purchasable items")

	// ErrNotFound is returned when a product id is unknown.
	ErrNotFound = errors.New("product not found")
)
