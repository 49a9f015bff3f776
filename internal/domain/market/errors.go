package market

import "errors"

var (
	// ErrInvalidOrder is returned when an order name is not sell, buy or manual
	ErrInvalidOrder = errors.New("invalid market order")

	// ErrInvalidPrice is returned when a price is negative
	ErrInvalidPrice = errors.New("invalid price")
)
