package market

import (
	"fmt"
	"strings"
)

// Order is the kind of price source a market uses
type Order int

const (
	// OrderSell prices from market sell orders
	OrderSell Order = 0

	// OrderBuy prices from market buy orders
	OrderBuy Order = 1

	// OrderManual uses a manually entered price
	OrderManual Order = 2
)

var orderNames = map[Order]string{
	OrderSell:   "sell",
	OrderBuy:    "buy",
	OrderManual: "manual",
}

// OrderFromCode converts a persisted numeric code into an Order
func OrderFromCode(code int) (Order, bool) {
	o := Order(code)
	if !o.IsValid() {
		return OrderSell, false
	}
	return o, true
}

// ParseOrder converts a name ("sell", "buy", "manual") into an Order
func ParseOrder(name string) (Order, error) {
	for o, n := range orderNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return o, nil
		}
	}
	return OrderSell, fmt.Errorf("%w: %q", ErrInvalidOrder, name)
}

// IsValid reports whether o is one of the known orders
func (o Order) IsValid() bool {
	_, ok := orderNames[o]
	return ok
}

func (o Order) String() string {
	if n, ok := orderNames[o]; ok {
		return n
	}
	return fmt.Sprintf("order(%d)", int(o))
}
